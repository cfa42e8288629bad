package style

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/vendorlink/pkg/errors"
	"github.com/arthur-debert/vendorlink/pkg/symlink"
)

// Renderer writes command output in one format
type Renderer interface {
	RenderResults(results []symlink.Result) error
	RenderStatus(statuses []symlink.Status) error
	RenderMessage(msg string) error
	RenderError(err error) error
}

// NewRenderer returns the renderer for a concrete format. FormatAuto must be
// resolved by the caller first; it falls back to text.
func NewRenderer(f Format, w io.Writer) Renderer {
	switch f {
	case FormatTerminal:
		return &TerminalRenderer{w: w}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return &JSONRenderer{enc: enc}
	default:
		return &TextRenderer{w: w}
	}
}

// TerminalRenderer writes colored, aligned output
type TerminalRenderer struct {
	w io.Writer
}

func (r *TerminalRenderer) RenderResults(results []symlink.Result) error {
	width := nameWidth(len(results), func(i int) string { return results[i].Package })
	var b strings.Builder
	for _, res := range results {
		label := OutcomeStyle(res.Outcome).Sprint(fmt.Sprintf("%-12s", OutcomeLabel(res.Outcome)))
		fmt.Fprintf(&b, "%s %s %-*s ", OutcomeIndicator(res.Outcome), label, width, res.Package)
		if res.Outcome == symlink.Created {
			fmt.Fprintf(&b, "%s → %s\n", PathStyle.Render(res.Target), MutedStyle.Render(res.LinkTarget))
			continue
		}
		fmt.Fprintf(&b, "%s\n", MutedStyle.Render(res.Error()))
	}

	s := Summarize(results)
	summary := fmt.Sprintf("%s created  %s skipped  %s failed",
		SuccessStyle.Render(fmt.Sprint(s.Created)),
		WarningStyle.Render(fmt.Sprint(s.Skipped)),
		ErrorStyle.Render(fmt.Sprint(s.Failed)))
	b.WriteString(SummaryBoxStyle.Render(summary) + "\n")

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TerminalRenderer) RenderStatus(statuses []symlink.Status) error {
	if len(statuses) == 0 {
		return r.RenderMessage("[muted]No installed package matches a symlink rule[/muted]")
	}
	width := nameWidth(len(statuses), func(i int) string { return statuses[i].Package })
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Symlinks") + "\n")
	for _, st := range statuses {
		state := StateStyle(st.State).Sprint(fmt.Sprintf(" %-14s ", st.State))
		fmt.Fprintf(&b, "%s %-*s %s", state, width, st.Package, PathStyle.Render(st.Target))
		if st.State == symlink.StateStale {
			fmt.Fprintf(&b, " %s", MutedStyle.Render(fmt.Sprintf("(points to %s, expected %s)", st.Actual, st.Expected)))
		}
		if st.InstalledAt != "" {
			fmt.Fprintf(&b, " %s", WarningStyle.Render(fmt.Sprintf("(installed at %s)", st.InstalledAt)))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TerminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.w, Render(msg))
	return err
}

func (r *TerminalRenderer) RenderError(err error) error {
	if err == nil {
		return nil
	}
	code := errors.GetErrorCode(err)
	_, werr := fmt.Fprintf(r.w, "%s %s %s\n", ErrorIndicator, ErrorStyle.Render(string(code)), err.Error())
	return werr
}

// TextRenderer writes plain, stable lines for pipes and logs
type TextRenderer struct {
	w io.Writer
}

func (r *TextRenderer) RenderResults(results []symlink.Result) error {
	var b strings.Builder
	for _, res := range results {
		if res.Outcome == symlink.Created {
			fmt.Fprintf(&b, "%s %s: %s -> %s\n", res.Outcome, res.Package, res.Target, res.LinkTarget)
			continue
		}
		fmt.Fprintf(&b, "%s %s: %s\n", res.Outcome, res.Package, res.Error())
	}
	s := Summarize(results)
	fmt.Fprintf(&b, "%d created, %d skipped, %d failed\n", s.Created, s.Skipped, s.Failed)
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TextRenderer) RenderStatus(statuses []symlink.Status) error {
	var b strings.Builder
	for _, st := range statuses {
		fmt.Fprintf(&b, "%s %s: %s", st.State, st.Package, st.Target)
		if st.Actual != "" {
			fmt.Fprintf(&b, " -> %s", st.Actual)
		}
		if st.InstalledAt != "" {
			fmt.Fprintf(&b, " (installed at %s)", st.InstalledAt)
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *TextRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.w, StripMarkup(msg))
	return err
}

func (r *TextRenderer) RenderError(err error) error {
	if err == nil {
		return nil
	}
	_, werr := fmt.Fprintf(r.w, "Error: %s\n", err.Error())
	return werr
}

// JSONRenderer writes one JSON document per call
type JSONRenderer struct {
	enc *json.Encoder
}

type jsonResult struct {
	symlink.Result
	Code  errors.ErrorCode `json:"code,omitempty"`
	Error string           `json:"error,omitempty"`
}

func (r *JSONRenderer) RenderResults(results []symlink.Result) error {
	out := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Result: res, Error: res.Error()}
		if res.Err != nil {
			jr.Code = res.Err.Code
		}
		out = append(out, jr)
	}
	return r.enc.Encode(struct {
		Results []jsonResult `json:"results"`
		Summary Summary      `json:"summary"`
	}{out, Summarize(results)})
}

func (r *JSONRenderer) RenderStatus(statuses []symlink.Status) error {
	if statuses == nil {
		statuses = []symlink.Status{}
	}
	return r.enc.Encode(struct {
		Statuses []symlink.Status `json:"statuses"`
	}{statuses})
}

func (r *JSONRenderer) RenderMessage(msg string) error {
	return r.enc.Encode(map[string]string{"message": StripMarkup(msg)})
}

func (r *JSONRenderer) RenderError(err error) error {
	if err == nil {
		return nil
	}
	return r.enc.Encode(map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	})
}

func nameWidth(n int, name func(int) string) int {
	width := 0
	for i := 0; i < n; i++ {
		if l := len(name(i)); l > width {
			width = l
		}
	}
	return width
}
