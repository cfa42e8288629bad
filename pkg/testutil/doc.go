// Package testutil provides fixtures shared by vendorlink tests.
//
// Key components:
//   - MemoryFS: in-memory types.FS with symlink semantics and error injection
//   - Project: declarative project builder (manifest, installed.json, vendor dirs)
//     on the real filesystem, with XDG directories isolated per test
//   - AssertSymlink / AssertNotExist: link assertions
package testutil
