package provision

import (
	"github.com/arthur-debert/vendorlink/pkg/rules"
	"github.com/arthur-debert/vendorlink/pkg/symlink"
	"github.com/arthur-debert/vendorlink/pkg/types"
)

// Status inspects, without mutating anything, the target each package's
// first matching rule would produce. Packages without a match are omitted.
func (e *Engine) Status(pkgs []types.Package) []symlink.Status {
	var out []symlink.Status
	for _, pkg := range pkgs {
		entry, ok := rules.FirstMatch(e.opts.Rules, pkg)
		if !ok {
			continue
		}
		out = append(out, symlink.Inspect(e.opts.FS, pkg, e.TargetPath(entry, pkg), e.opts.InstallRoot))
	}
	return out
}
