// Package rules decides which configured symlink target a package belongs to.
//
// # Criterion Forms
//
// A criterion is written as a string in one of three forms:
//
//   - `type:<value>` - exact match against the package type
//   - `vendor:<value>` - the package name starts with `<value>/`
//   - `<name>` - exact match against the full `vendor/project` name
//
// Criteria are parsed once, when configuration is loaded, into a Criterion
// value. Matching never inspects prefixes again. Comparisons are
// case-sensitive and there is no glob or regex support.
//
// # Entry Order
//
// An Entry pairs a target path template with one or more criteria; any
// matching criterion selects the entry. Entries keep their declaration order
// and the first matching entry wins, so a package receives at most one
// symlink per provisioning pass.
package rules
