package provision

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/vendorlink/pkg/logging"
	"github.com/arthur-debert/vendorlink/pkg/metrics"
	"github.com/arthur-debert/vendorlink/pkg/placeholders"
	"github.com/arthur-debert/vendorlink/pkg/rules"
	"github.com/arthur-debert/vendorlink/pkg/symlink"
	"github.com/arthur-debert/vendorlink/pkg/types"
)

// EventHandler is the surface a package manager host calls after it
// installs or updates a package. For updates the package is the new one.
type EventHandler interface {
	OnInstalled(pkg types.Package) (symlink.Result, bool)
	OnUpdated(pkg types.Package) (symlink.Result, bool)
}

// Options configures an Engine
type Options struct {
	FS     types.FS
	Logger zerolog.Logger
	// Rules in declaration order; empty means nothing is provisioned
	Rules []rules.Entry
	// ProjectRoot anchors relative target paths and a relative InstallRoot
	ProjectRoot string
	// InstallRoot is the directory packages are installed under ("vendor")
	InstallRoot string
	// Metrics is optional
	Metrics *metrics.Recorder
}

// Engine provisions symlinks and remembers which packages it has handled
type Engine struct {
	opts      Options
	logger    zerolog.Logger
	installer *symlink.Installer
	processed map[string]struct{}
}

var _ EventHandler = (*Engine)(nil)

// New creates an engine with an empty processed-package set
func New(opts Options) *Engine {
	if !filepath.IsAbs(opts.InstallRoot) {
		opts.InstallRoot = filepath.Join(opts.ProjectRoot, opts.InstallRoot)
	}
	return &Engine{
		opts:      opts,
		logger:    opts.Logger,
		installer: symlink.NewInstaller(opts.FS, opts.Logger),
		processed: make(map[string]struct{}),
	}
}

// OnInstalled handles a package the host just installed
func (e *Engine) OnInstalled(pkg types.Package) (symlink.Result, bool) {
	return e.onPackageEvent(pkg)
}

// OnUpdated handles a package the host just updated
func (e *Engine) OnUpdated(pkg types.Package) (symlink.Result, bool) {
	return e.onPackageEvent(pkg)
}

// onPackageEvent provisions a package at most once per engine lifetime.
// Without configured rules it returns silently.
func (e *Engine) onPackageEvent(pkg types.Package) (symlink.Result, bool) {
	if !e.markProcessed(pkg.Name) {
		e.logger.Trace().Str("package", pkg.Name).Msg("Package already processed")
		return symlink.Result{}, false
	}
	if len(e.opts.Rules) == 0 {
		return symlink.Result{}, false
	}
	return e.ProvisionOne(pkg)
}

// ProvisionOne installs the symlink of the first rule entry matching pkg.
// It ignores the processed set; the bool is false when no entry matched.
func (e *Engine) ProvisionOne(pkg types.Package) (symlink.Result, bool) {
	entry, ok := rules.FirstMatch(e.opts.Rules, pkg)
	if !ok {
		e.logger.Debug().Str("package", pkg.Name).Msg("No symlink rule matches package")
		return symlink.Result{}, false
	}

	target := e.TargetPath(entry, pkg)
	res := e.installer.Install(pkg, target, e.opts.InstallRoot)
	if e.opts.Metrics != nil {
		e.opts.Metrics.ObserveOutcome(res.Outcome)
	}
	return res, true
}

// ProvisionAll runs ProvisionOne for every package not yet processed.
// A failure for one package never stops the others.
func (e *Engine) ProvisionAll(pkgs []types.Package) []symlink.Result {
	if len(e.opts.Rules) == 0 {
		e.logger.Info().Msg("No symlink-paths configuration found.")
		return nil
	}

	e.logger.Info().Int("packages", len(pkgs)).Msg("Recreating all symlinks...")
	done := logging.LogOperationStart(e.logger, "provision-all")
	defer done()
	if e.opts.Metrics != nil {
		e.opts.Metrics.ObserveRun()
	}

	var results []symlink.Result
	for _, pkg := range pkgs {
		if !e.markProcessed(pkg.Name) {
			continue
		}
		if res, ok := e.ProvisionOne(pkg); ok {
			results = append(results, res)
		}
	}
	return results
}

// TargetPath resolves an entry's template for pkg into an absolute path
func (e *Engine) TargetPath(entry rules.Entry, pkg types.Package) string {
	target := placeholders.Resolve(entry.Target, pkg)
	if !filepath.IsAbs(target) {
		target = filepath.Join(e.opts.ProjectRoot, target)
	}
	return filepath.Clean(target)
}

// InstallRoot returns the absolute directory packages are installed under
func (e *Engine) InstallRoot() string {
	return e.opts.InstallRoot
}

// HasRules reports whether any rule entry is configured
func (e *Engine) HasRules() bool {
	return len(e.opts.Rules) > 0
}

// Processed reports whether pkgName was already handled by this engine
func (e *Engine) Processed(pkgName string) bool {
	_, ok := e.processed[pkgName]
	return ok
}

// markProcessed records pkgName and reports whether it was new
func (e *Engine) markProcessed(pkgName string) bool {
	if _, ok := e.processed[pkgName]; ok {
		return false
	}
	e.processed[pkgName] = struct{}{}
	return true
}
