package zmin

import (
	"errors"
	"fmt"
)

// Error codes reported across the C boundary. Stable; new failure classes
// get new negative values, existing values never change meaning.
const (
	CodeOK          = 0
	CodeInvalidJSON = -1
	CodeOutOfMemory = -2
	CodeInvalidMode = -3
	CodeTooDeep     = -4
)

// Engine errors.
var (
	// ErrInvalidJSON is returned when the input violates the JSON grammar.
	ErrInvalidJSON = errors.New("invalid JSON")
	// ErrOutOfMemory is returned when an output buffer cannot be obtained.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrInvalidMode is returned for a mode value with no registered strategy.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrTooDeep is returned when nesting exceeds MaxNestingDepth.
	ErrTooDeep = errors.New("nesting too deep")
)

// SyntaxError reports the earliest grammar violation and its byte offset.
// It unwraps to ErrInvalidJSON.
type SyntaxError struct {
	Msg    string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid JSON at offset %d: %s", e.Offset, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return ErrInvalidJSON
}

// CodeFor maps an engine error to its integer error code. A nil error maps
// to CodeOK.
func CodeFor(err error) int {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrTooDeep):
		return CodeTooDeep
	case errors.Is(err, ErrInvalidMode):
		return CodeInvalidMode
	case errors.Is(err, ErrOutOfMemory):
		return CodeOutOfMemory
	default:
		return CodeInvalidJSON
	}
}

// ErrorMessage returns a static description for an error code.
func ErrorMessage(code int) string {
	switch code {
	case CodeOK:
		return "success"
	case CodeInvalidJSON:
		return "invalid JSON"
	case CodeOutOfMemory:
		return "out of memory"
	case CodeInvalidMode:
		return "invalid mode"
	case CodeTooDeep:
		return "nesting too deep"
	default:
		return "unknown error"
	}
}
