package kubectl

import (
	"errors"
	"fmt"
)

// ToolError is returned for every failed kubectl invocation: the process could
// not start, it exited non-zero, or it was cancelled. Callers that need to
// tell these apart can inspect Err.
type ToolError struct {
	Op      string // kubectl arguments, e.g. "config current-context"
	Message string // human-readable message shown to the user
	Stderr  string // captured stderr, trimmed
	Err     error  // underlying exec error
}

// Error implements the error interface
func (e *ToolError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying exec error
func (e *ToolError) Unwrap() error {
	return e.Err
}

// detail returns stderr when kubectl wrote any, the exec error otherwise
func (e *ToolError) detail() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// IsToolError reports whether err is (or wraps) a *ToolError
func IsToolError(err error) bool {
	var te *ToolError
	return errors.As(err, &te)
}

// withPrefix returns a copy of err whose message is "<prefix>: <detail>".
// Errors that are not *ToolError are wrapped into one.
func withPrefix(err error, prefix string) error {
	var te *ToolError
	if !errors.As(err, &te) {
		return &ToolError{Message: fmt.Sprintf("%s: %v", prefix, err), Err: err}
	}
	out := *te
	if te.startFailed() {
		// Start failures keep their fixed description
		return &out
	}
	out.Message = fmt.Sprintf("%s: %s", prefix, te.detail())
	return &out
}

func (e *ToolError) startFailed() bool {
	return errors.Is(e, errStart)
}

// errStart marks errors where the kubectl process never ran
var errStart = errors.New("failed to start kubectl process")
