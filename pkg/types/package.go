package types

import "strings"

// DefaultPackageType is assumed when an installed record carries no type
const DefaultPackageType = "library"

// Package is a read-only view of an installed dependency
type Package struct {
	// Name is the globally unique "vendor/project" identifier
	Name string `json:"name"`
	// Type classifies the package, e.g. "library" or "custom-component"
	Type string `json:"type"`
	// Version is informational; used only to detect updates
	Version string `json:"version,omitempty"`
	// Path is the absolute install directory. It may not exist yet.
	Path string `json:"path,omitempty"`
}

// Vendor returns the segment before the last "/" of the package name,
// or "." when the name has no vendor prefix.
func (p Package) Vendor() string {
	i := strings.LastIndex(p.Name, "/")
	if i < 0 {
		return "."
	}
	return p.Name[:i]
}

// Project returns the package name without its vendor prefix
func (p Package) Project() string {
	return p.Name[strings.LastIndex(p.Name, "/")+1:]
}
