package packages

import (
	"sort"

	"github.com/arthur-debert/vendorlink/pkg/types"
)

// Diff compares two snapshots. Names only present in next are installed;
// names whose version changed are updated. Removals are ignored. Both
// results are sorted by name.
func Diff(prev, next []types.Package) (installed, updated []types.Package) {
	before := make(map[string]types.Package, len(prev))
	for _, p := range prev {
		before[p.Name] = p
	}

	for _, p := range next {
		old, ok := before[p.Name]
		switch {
		case !ok:
			installed = append(installed, p)
		case old.Version != p.Version:
			updated = append(updated, p)
		}
	}

	sort.Slice(installed, func(i, j int) bool { return installed[i].Name < installed[j].Name })
	sort.Slice(updated, func(i, j int) bool { return updated[i].Name < updated[j].Name })
	return installed, updated
}
