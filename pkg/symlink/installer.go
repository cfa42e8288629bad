package symlink

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/vendorlink/pkg/errors"
	"github.com/arthur-debert/vendorlink/pkg/paths"
	"github.com/arthur-debert/vendorlink/pkg/types"
	"github.com/rs/zerolog"
)

// DirPerm is used for target directories created on demand
const DirPerm fs.FileMode = 0755

// Installer creates symlinks for packages. It holds no per-run state.
type Installer struct {
	fs     types.FS
	logger zerolog.Logger
}

// NewInstaller creates an installer writing to fsys and reporting through logger
func NewInstaller(fsys types.FS, logger zerolog.Logger) *Installer {
	return &Installer{fs: fsys, logger: logger}
}

// SourcePath returns the install directory of a package under installRoot
func SourcePath(installRoot string, pkg types.Package) string {
	return filepath.Join(installRoot, paths.ToHost(pkg.Name))
}

// Install links targetPath to the package's directory under installRoot.
//
// Steps, in order: the source directory must exist; the target's parent is
// created if missing; an existing symlink at targetPath is removed while any
// other entry aborts the install; finally a relative symlink is created.
func (i *Installer) Install(pkg types.Package, targetPath, installRoot string) Result {
	source := SourcePath(installRoot, pkg)
	res := Result{Package: pkg.Name, Source: source, Target: targetPath}
	log := i.logger.With().
		Str("package", pkg.Name).
		Str("source", source).
		Str("target", targetPath).
		Logger()

	if info, err := i.fs.Stat(source); err != nil || !info.IsDir() {
		res.Outcome = SkippedSourceMissing
		res.Err = errors.Newf(errors.ErrSourceMissing, "package path does not exist: %s", source)
		res.Err.Wrapped = err
		log.Warn().Msgf("Package path does not exist: %s", source)
		return res
	}

	targetDir := filepath.Dir(targetPath)
	if info, err := i.fs.Stat(targetDir); err != nil || !info.IsDir() {
		if err := i.fs.MkdirAll(targetDir, DirPerm); err != nil {
			res.Outcome = FailedMkdir
			res.Err = errors.Wrapf(err, errors.ErrDirCreate, "failed to create target directory: %s", targetDir)
			log.Error().Err(err).Msgf("Failed to create target directory: %s", targetDir)
			return res
		}
		log.Debug().Str("dir", targetDir).Msg("Created target directory")
	}

	existing, err := i.fs.Lstat(targetPath)
	switch {
	case err == nil && existing.Mode()&os.ModeSymlink != 0:
		if err := i.fs.Remove(targetPath); err != nil {
			res.Outcome = FailedLink
			res.Err = errors.Wrapf(err, errors.ErrSymlinkRemove, "failed to remove stale symlink: %s", targetPath)
			log.Error().Err(err).Msgf("Failed to create symlink: %s", targetPath)
			return res
		}
		res.Replaced = true
		log.Debug().Msg("Removed stale symlink")
	case err == nil:
		res.Outcome = SkippedTargetOccupied
		res.Err = errors.Newf(errors.ErrTargetOccupied, "target path exists and is not a symlink: %s", targetPath).
			WithDetail("kind", entryKind(existing))
		log.Warn().Str("kind", entryKind(existing)).Msgf("Target path exists and is not a symlink: %s", targetPath)
		return res
	case !os.IsNotExist(err):
		// Unknown state; treat as occupied so nothing is overwritten.
		res.Outcome = SkippedTargetOccupied
		res.Err = errors.Wrapf(err, errors.ErrTargetOccupied, "cannot inspect target path: %s", targetPath).
			WithDetail("kind", "unknown")
		log.Warn().Err(err).Msgf("Target path exists and is not a symlink: %s", targetPath)
		return res
	}

	rel := paths.ResolveRelative(i.fs, targetDir, source)
	if err := i.fs.Symlink(rel, targetPath); err != nil {
		res.Outcome = FailedLink
		res.Err = errors.Wrapf(err, errors.ErrSymlinkCreate, "failed to create symlink: %s", targetPath)
		log.Error().Err(err).Msgf("Failed to create symlink: %s", targetPath)
		return res
	}

	res.Outcome = Created
	res.LinkTarget = rel
	log.Info().Str("link", rel).Msgf("Created symlink: %s -> %s", targetPath, source)
	return res
}

// entryKind names a non-symlink filesystem entry for diagnostics
func entryKind(info fs.FileInfo) string {
	switch {
	case info.IsDir():
		return "directory"
	case info.Mode().IsRegular():
		return "file"
	default:
		return "other"
	}
}
