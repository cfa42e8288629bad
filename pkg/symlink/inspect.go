package symlink

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/vendorlink/pkg/paths"
	"github.com/arthur-debert/vendorlink/pkg/types"
)

// LinkState is the read-only view of a target path
type LinkState string

const (
	StateLinked        LinkState = "linked"
	StateStale         LinkState = "stale"
	StateMissing       LinkState = "missing"
	StateOccupied      LinkState = "occupied"
	StateSourceMissing LinkState = "source_missing"
)

// Status describes a target path without modifying it
type Status struct {
	Package string    `json:"package"`
	State   LinkState `json:"state"`
	Source  string    `json:"source"`
	Target  string    `json:"target"`
	// Expected is the relative link Install would create
	Expected string `json:"expected"`
	// Actual is the current link content, for linked and stale targets
	Actual string `json:"actual,omitempty"`
	// InstalledAt is the host's recorded install path when it is not Source.
	// Links always point at Source, so such a package is linked elsewhere.
	InstalledAt string `json:"installed_at,omitempty"`
}

// Inspect reports what Install would find at targetPath for pkg
func Inspect(fsys types.FS, pkg types.Package, targetPath, installRoot string) Status {
	source := SourcePath(installRoot, pkg)
	st := Status{
		Package:  pkg.Name,
		Source:   source,
		Target:   targetPath,
		Expected: paths.ResolveRelative(fsys, filepath.Dir(targetPath), source),
	}
	if pkg.Path != "" && paths.Resolve(fsys, pkg.Path) != paths.Resolve(fsys, source) {
		st.InstalledAt = pkg.Path
	}

	if info, err := fsys.Stat(source); err != nil || !info.IsDir() {
		st.State = StateSourceMissing
		return st
	}

	info, err := fsys.Lstat(targetPath)
	switch {
	case os.IsNotExist(err):
		st.State = StateMissing
	case err != nil:
		st.State = StateOccupied
	case info.Mode()&os.ModeSymlink == 0:
		st.State = StateOccupied
	default:
		actual, err := fsys.Readlink(targetPath)
		if err != nil {
			st.State = StateStale
			return st
		}
		st.Actual = actual
		if filepath.Clean(actual) == filepath.Clean(st.Expected) {
			st.State = StateLinked
		} else {
			st.State = StateStale
		}
	}
	return st
}
