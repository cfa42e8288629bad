package types

import "io/fs"

// FS abstracts the filesystem operations vendorlink performs. Only link and
// directory metadata is touched; file contents are never read or written
// through this interface.
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Remove deletes a single entry
	Remove(name string) error

	// EvalSymlinks resolves a path that exists on disk; callers fall back
	// to the unresolved path on error.
	EvalSymlinks(path string) (string, error)
}
