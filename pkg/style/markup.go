package style

import (
	"regexp"

	"github.com/charmbracelet/lipgloss"
)

var (
	markupTags = map[string]lipgloss.Style{
		"title":   TitleStyle,
		"muted":   MutedStyle,
		"success": SuccessStyle,
		"warning": WarningStyle,
		"error":   ErrorStyle,
		"path":    PathStyle,
		"bold":    lipgloss.NewStyle().Bold(true),
	}

	markupPattern = regexp.MustCompile(`\[(\w+)\](.*?)\[/(\w+)\]`)
)

// Render replaces [tag]text[/tag] markup with terminal styles. Tags do not
// nest; unknown or mismatched tags are left as written.
func Render(text string) string {
	return replaceMarkup(text, func(tag, content string) string {
		return markupTags[tag].Render(content)
	})
}

// StripMarkup removes known markup tags, keeping their content
func StripMarkup(text string) string {
	return replaceMarkup(text, func(_, content string) string { return content })
}

func replaceMarkup(text string, apply func(tag, content string) string) string {
	for {
		next := markupPattern.ReplaceAllStringFunc(text, func(match string) string {
			m := markupPattern.FindStringSubmatch(match)
			if m[1] != m[3] {
				return match
			}
			if _, ok := markupTags[m[1]]; !ok {
				return match
			}
			return apply(m[1], m[2])
		})
		if next == text {
			return next
		}
		text = next
	}
}
