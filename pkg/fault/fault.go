// Package fault defines the uniform error value shared by every fault
// boundary in a service: construction from raw collaborator failures,
// classification, and read-only consumption by the log pipeline and the
// response envelope.
package fault

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/Goden-Gun/fault-lib/pkg/codes"
)

// FieldViolation is one flattened field-level validation failure.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Error is the single error currency of the fault subsystem. It is created
// by the constructors in this package (or by Classify at a boundary) and is
// immutable afterwards; the log pipeline and the envelope only read it.
type Error struct {
	Message     string
	Code        string
	StatusCode  int
	Severity    codes.Severity
	Operational bool
	Timestamp   time.Time
	Stack       string
	Details     []FieldViolation

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the raw cause for errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }

// newError stamps kind defaults, the creation time and the creation stack.
func newError(kind codes.Kind, message string, cause error) *Error {
	if message == "" {
		message = kind.Message
	}
	return &Error{
		Message:     message,
		Code:        kind.Code,
		StatusCode:  kind.Status,
		Severity:    kind.Severity,
		Operational: true,
		Timestamp:   time.Now().UTC(),
		Stack:       string(debug.Stack()),
		cause:       cause,
	}
}

// New builds an operational fault of the given kind with a custom message.
func New(kind codes.Kind, message string) *Error {
	return newError(kind, message, nil)
}

// Newf builds an operational fault of the given kind with a formatted message.
func Newf(kind codes.Kind, format string, args ...any) *Error {
	return newError(kind, fmt.Sprintf(format, args...), nil)
}

// FromPanic synthesizes the critical, non-operational fault recorded when a
// panic escapes a scope. After such a fault in-process state is suspect, so
// callers at process scope terminate after recording it.
func FromPanic(r any) *Error {
	e := newError(codes.Internal, fmt.Sprintf("panic: %v", r), nil)
	e.Severity = codes.SeverityCritical
	e.Operational = false
	return e
}

// FromUnobserved marks a failure that no request scope ever observed, e.g.
// from a background task. The classification of the cause is kept, but the
// fault is escalated to critical and flagged non-operational.
func FromUnobserved(err error) *Error {
	e := Classify(err)
	if e == nil {
		return nil
	}
	out := *e
	out.Severity = codes.SeverityCritical
	out.Operational = false
	return &out
}
