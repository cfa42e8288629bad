// Package paths computes canonical absolute paths and relative paths between
// directories. Symlinks are always created with a relative target so a link
// tree stays valid when the whole project directory is moved.
//
// Normalize and RelativePath are pure string functions. ResolveRelative adds
// the one filesystem-aware step: each endpoint is resolved through existing
// symlinks when it exists on disk, and used as given when it does not, since
// a link target may be computed before intermediate directories exist.
package paths
