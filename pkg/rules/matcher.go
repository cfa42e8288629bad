package rules

import (
	"strings"

	"github.com/arthur-debert/vendorlink/pkg/types"
)

// Matches reports whether the package satisfies a single criterion
func (c Criterion) Matches(pkg types.Package) bool {
	switch c.Kind {
	case ByType:
		return pkg.Type == c.Value
	case ByVendor:
		return strings.HasPrefix(pkg.Name, c.Value+"/")
	default:
		return pkg.Name == c.Value
	}
}

// Matches reports whether any of the entry's criteria match the package
func (e Entry) Matches(pkg types.Package) bool {
	return MatchesAny(pkg, e.Criteria)
}

// MatchesAny reports whether any criterion matches, short-circuiting on the
// first hit. An empty list never matches.
func MatchesAny(pkg types.Package, criteria []Criterion) bool {
	for _, c := range criteria {
		if c.Matches(pkg) {
			return true
		}
	}
	return false
}

// FirstMatch returns the first entry, in declaration order, whose criteria
// match the package.
func FirstMatch(entries []Entry, pkg types.Package) (Entry, bool) {
	for _, e := range entries {
		if e.Matches(pkg) {
			return e, true
		}
	}
	return Entry{}, false
}
