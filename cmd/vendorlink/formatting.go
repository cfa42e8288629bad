package vendorlink

import (
	"os"
	"strings"
	"text/template"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/vendorlink/pkg/style"
)

// formatBold emboldens help headings on a styled terminal. NO_COLOR and
// redirected output get the plain string.
func formatBold(s string) string {
	if style.DetectFormat(os.Stdout) != style.FormatTerminal {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// initTemplateFormatting registers the usage template functions
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": func(s string) string { return formatBold(strings.ToUpper(s)) },
	})
}
