// Package packages reads the host package manager's record of installed
// packages and compares snapshots of it.
package packages
