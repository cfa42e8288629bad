// Package symlink creates and inspects the relative symlinks that expose
// installed packages at their configured target paths.
//
// Install is the only mutating operation. It never deletes or overwrites a
// filesystem entry unless that entry is itself a symlink, and every call
// ends in exactly one Outcome with one log event describing it. Inspect
// reports the same decisions without touching the filesystem.
package symlink
