package symlink

import (
	"github.com/arthur-debert/vendorlink/pkg/errors"
)

// Outcome is the terminal state of one Install call
type Outcome string

const (
	Created               Outcome = "created"
	SkippedSourceMissing  Outcome = "skipped_source_missing"
	SkippedTargetOccupied Outcome = "skipped_target_occupied"
	FailedMkdir           Outcome = "failed_mkdir"
	FailedLink            Outcome = "failed_link"
)

// AllOutcomes lists every outcome in a stable order
var AllOutcomes = []Outcome{
	Created,
	SkippedSourceMissing,
	SkippedTargetOccupied,
	FailedMkdir,
	FailedLink,
}

// IsFailure reports whether the outcome is an error rather than a skip
func (o Outcome) IsFailure() bool {
	return o == FailedMkdir || o == FailedLink
}

// Result describes what Install did for one package
type Result struct {
	Package string  `json:"package"`
	Outcome Outcome `json:"outcome"`
	// Source is the absolute install directory of the package
	Source string `json:"source"`
	// Target is the absolute symlink path
	Target string `json:"target"`
	// LinkTarget is the relative path stored in the symlink, when created
	LinkTarget string `json:"link_target,omitempty"`
	// Replaced is true when a stale symlink was removed first
	Replaced bool `json:"replaced,omitempty"`
	// Err carries the coded error for every outcome except Created
	Err *errors.LinkError `json:"-"`
}

// Error returns the error message, or "" when the link was created
func (r Result) Error() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
