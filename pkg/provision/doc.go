// Package provision drives symlink creation for installed packages.
//
// An Engine owns the set of package names already handled in the current
// provisioning run. It is created per run (or per short-lived process) and
// discarded afterwards; nothing is persisted. Hosts feed it package events
// through OnInstalled and OnUpdated, or ask for a full pass with
// ProvisionAll. Execution is synchronous and single-threaded.
package provision
