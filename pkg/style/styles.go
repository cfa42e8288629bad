package style

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(LinkColor).
			Italic(true)

	SummaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)
)

// Outcome indicators
var (
	SuccessIndicator = SuccessStyle.Render("✓")
	WarningIndicator = WarningStyle.Render("!")
	ErrorIndicator   = ErrorStyle.Render("✗")
	PendingIndicator = MutedStyle.Render("○")
)

func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}
