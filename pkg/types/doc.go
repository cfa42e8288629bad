// Package types defines the core types and interfaces shared across vendorlink:
// the read-only view of an installed Package and the FS abstraction used by
// every component that touches the filesystem.
package types
