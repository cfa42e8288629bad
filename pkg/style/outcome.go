package style

import (
	"github.com/pterm/pterm"

	"github.com/arthur-debert/vendorlink/pkg/symlink"
)

// OutcomeStyle returns the pterm style used for an outcome label
func OutcomeStyle(o symlink.Outcome) *pterm.Style {
	switch {
	case o == symlink.Created:
		return pterm.NewStyle(pterm.FgGreen)
	case o.IsFailure():
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgYellow)
	}
}

// OutcomeIndicator returns the glyph shown before a result line
func OutcomeIndicator(o symlink.Outcome) string {
	switch {
	case o == symlink.Created:
		return SuccessIndicator
	case o.IsFailure():
		return ErrorIndicator
	default:
		return WarningIndicator
	}
}

// OutcomeLabel is the short human label for an outcome
func OutcomeLabel(o symlink.Outcome) string {
	switch o {
	case symlink.Created:
		return "linked"
	case symlink.SkippedSourceMissing:
		return "no source"
	case symlink.SkippedTargetOccupied:
		return "occupied"
	case symlink.FailedMkdir:
		return "mkdir failed"
	case symlink.FailedLink:
		return "link failed"
	default:
		return string(o)
	}
}

// StateStyle returns the pterm style for a status line
func StateStyle(s symlink.LinkState) *pterm.Style {
	switch s {
	case symlink.StateLinked:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgWhite)
	case symlink.StateStale, symlink.StateMissing:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	case symlink.StateOccupied:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// Summary counts results by category
type Summary struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Summarize tallies results
func Summarize(results []symlink.Result) Summary {
	var s Summary
	for _, r := range results {
		switch {
		case r.Outcome == symlink.Created:
			s.Created++
		case r.Outcome.IsFailure():
			s.Failed++
		default:
			s.Skipped++
		}
	}
	return s
}
