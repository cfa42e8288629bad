package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/vendorlink/pkg/types"
)

const sep = string(filepath.Separator)

// ToHost rewrites both '/' and '\' to the host path separator
func ToHost(path string) string {
	return strings.NewReplacer("/", sep, `\`, sep).Replace(path)
}

// Normalize returns the canonical absolute form of path without touching the
// filesystem. Empty and "." segments are dropped, ".." pops the previous
// segment (a no-op at the root) and the result always starts with a single
// separator.
func Normalize(path string) string {
	return filepath.Clean(sep + ToHost(path))
}

// RelativePath returns the shortest relative path from the directory fromDir
// to toDir. Both arguments are treated as absolute. Identical directories
// yield "".
func RelativePath(fromDir, toDir string) string {
	from := splitSegments(Normalize(fromDir))
	to := splitSegments(Normalize(toDir))

	common := 0
	for common < len(from) && common < len(to) && from[common] == to[common] {
		common++
	}

	parts := make([]string, 0, len(from)-common+len(to)-common)
	for range from[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, to[common:]...)

	return strings.Join(parts, sep)
}

// ResolveRelative computes RelativePath after making both endpoints absolute
// and resolving existing symlinks through fsys. Paths that do not exist yet
// are used as given.
func ResolveRelative(fsys types.FS, fromDir, toDir string) string {
	return RelativePath(Resolve(fsys, fromDir), Resolve(fsys, toDir))
}

// Resolve makes path absolute against the working directory and, when it
// exists, resolves it through any symlinks.
func Resolve(fsys types.FS, path string) string {
	if real, err := fsys.EvalSymlinks(path); err == nil {
		path = real
	}
	if !filepath.IsAbs(path) {
		if wd, err := os.Getwd(); err == nil {
			path = filepath.Join(wd, path)
		}
	}
	return Normalize(path)
}

// splitSegments splits a normalized absolute path into its segments.
// The root yields no segments.
func splitSegments(normalized string) []string {
	trimmed := strings.Trim(normalized, sep)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, sep)
}
