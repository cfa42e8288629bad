// Package placeholders expands package-derived tokens in symlink target
// templates.
package placeholders

import (
	"strings"

	"github.com/arthur-debert/vendorlink/pkg/paths"
	"github.com/arthur-debert/vendorlink/pkg/types"
)

// Recognized tokens. Anything else in braces is left verbatim.
const (
	TokenName    = "{$name}"
	TokenVendor  = "{$vendor}"
	TokenPackage = "{$package}"
)

// Resolve substitutes all tokens in a single pass, so a substituted value is
// never expanded again, then converts separators to the host convention.
func Resolve(template string, pkg types.Package) string {
	r := strings.NewReplacer(
		TokenName, pkg.Project(),
		TokenVendor, pkg.Vendor(),
		TokenPackage, pkg.Name,
	)
	return paths.ToHost(r.Replace(template))
}
