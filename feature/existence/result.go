package existence

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBucket is reported when the reference has no bucket name.
	ErrEmptyBucket = errors.New("bucket name is required")
	// ErrEmptyKey is reported when the reference has no object key.
	ErrEmptyKey = errors.New("object key is required")
)

// Reference identifies one object inside one bucket.
type Reference struct {
	Bucket string
	Key    string
}

// Validate checks that both fields are set.
func (r Reference) Validate() error {
	if r.Bucket == "" {
		return ErrEmptyBucket
	}
	if r.Key == "" {
		return ErrEmptyKey
	}
	return nil
}

func (r Reference) String() string {
	return r.Bucket + "/" + r.Key
}

// State is the outcome of a probe.
type State int

const (
	// Unknown means the probe could not decide; Result.Reason says why.
	Unknown State = iota
	// Exists means the provider returned the object's metadata.
	Exists
	// NotExists means the provider reported the object absent.
	NotExists
)

func (s State) String() string {
	switch s {
	case Exists:
		return "exists"
	case NotExists:
		return "not_exists"
	default:
		return "unknown"
	}
}

// Result is the tri-state answer of Checker.Check.
// Reason and Err are only set when State is Unknown.
type Result struct {
	State  State
	Reason string
	Err    error
}

// Found builds an Exists result.
func Found() Result {
	return Result{State: Exists}
}

// Absent builds a NotExists result.
func Absent() Result {
	return Result{State: NotExists}
}

// Indeterminate builds an Unknown result. The reason defaults to the error text.
func Indeterminate(reason string, err error) Result {
	if reason == "" && err != nil {
		reason = err.Error()
	}
	return Result{State: Unknown, Reason: reason, Err: err}
}

// IsUnknown reports whether the probe failed to decide.
func (r Result) IsUnknown() bool {
	return r.State == Unknown
}

// ExitCode maps the result to a process exit status.
func (r Result) ExitCode() int {
	if r.State == Unknown {
		return 1
	}
	return 0
}

func (r Result) String() string {
	if r.State == Unknown {
		return fmt.Sprintf("unknown (%s)", r.Reason)
	}
	return r.State.String()
}
