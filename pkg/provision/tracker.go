package provision

import (
	"github.com/arthur-debert/vendorlink/pkg/packages"
	"github.com/arthur-debert/vendorlink/pkg/symlink"
	"github.com/arthur-debert/vendorlink/pkg/types"
)

// Tracker turns successive snapshots of the installed packages into host
// events. Each Sync starts a fresh Engine, so one batch of changes is one
// provisioning run.
type Tracker struct {
	load      func() ([]types.Package, error)
	newEngine func() *Engine
	snapshot  []types.Package
}

// NewTracker takes the initial snapshot; packages already installed at this
// point produce no events.
func NewTracker(load func() ([]types.Package, error), newEngine func() *Engine) (*Tracker, error) {
	snapshot, err := load()
	if err != nil {
		return nil, err
	}
	return &Tracker{load: load, newEngine: newEngine, snapshot: snapshot}, nil
}

// Sync reloads the packages and feeds installs, then updates, to a new
// engine. The snapshot only advances when loading succeeds.
func (t *Tracker) Sync() ([]symlink.Result, error) {
	next, err := t.load()
	if err != nil {
		return nil, err
	}
	installed, updated := packages.Diff(t.snapshot, next)
	t.snapshot = next

	e := t.newEngine()
	var results []symlink.Result
	for _, pkg := range installed {
		if res, ok := e.OnInstalled(pkg); ok {
			results = append(results, res)
		}
	}
	for _, pkg := range updated {
		if res, ok := e.OnUpdated(pkg); ok {
			results = append(results, res)
		}
	}
	return results, nil
}

// Snapshot returns the packages seen by the last successful load
func (t *Tracker) Snapshot() []types.Package {
	return t.snapshot
}
