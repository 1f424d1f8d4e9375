package fault

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/Goden-Gun/fault-lib/pkg/codes"
)

// The per-kind constructors accept the raw underlying cause and apply
// cause-specific severity refinement. They are pure: no I/O, no logging,
// deterministic for the same cause.

// NewValidation wraps a rejected-input failure. A validator.ValidationErrors
// cause is flattened into field-level Details.
func NewValidation(cause error) *Error {
	e := newError(codes.Validation, "", cause)
	var verrs validator.ValidationErrors
	if errors.As(cause, &verrs) {
		e.Details = make([]FieldViolation, 0, len(verrs))
		for _, fe := range verrs {
			e.Details = append(e.Details, FieldViolation{
				Field:   fe.Field(),
				Message: fe.Error(),
				Value:   fe.Value(),
			})
		}
	}
	return e
}

// NewAuthentication wraps a credential failure (missing, invalid or expired
// token).
func NewAuthentication(cause error) *Error {
	return newError(codes.Authentication, "", cause)
}

// NewAuthorization wraps a capability failure.
func NewAuthorization(cause error) *Error {
	return newError(codes.Authorization, "", cause)
}

// NewNotFound wraps a missing-resource failure.
func NewNotFound(cause error) *Error {
	return newError(codes.NotFound, "", cause)
}

// NewConflict wraps a resource state conflict.
func NewConflict(cause error) *Error {
	return newError(codes.Conflict, "", cause)
}

// NewRateLimit wraps a rate limiting rejection.
func NewRateLimit(cause error) *Error {
	return newError(codes.RateLimit, "", cause)
}

// NewInternal wraps an unclassified server-side failure.
func NewInternal(cause error) *Error {
	e := newError(codes.Internal, "", cause)
	if cause != nil {
		e.Message = cause.Error()
	}
	return e
}

// NewDatabase wraps a database failure. Duplicate keys are an expected,
// low-severity condition; a refused connection means the store is gone and
// is escalated.
func NewDatabase(cause error) *Error {
	e := newError(codes.Database, "", cause)
	switch ClassifyCause(cause) {
	case CauseDBDuplicateKey:
		e.Severity = codes.SeverityLow
		e.Message = "Duplicate entry found"
	case CauseDBConnRefused:
		e.Severity = codes.SeverityHigh
	}
	return e
}

// NewFileSystem wraps a file system failure, refining severity from the OS
// error code.
func NewFileSystem(cause error) *Error {
	e := newError(codes.FileSystem, "", cause)
	switch ClassifyCause(cause) {
	case CauseFSNotFound:
		e.Severity = codes.SeverityLow
		e.Message = "File or directory not found"
	case CauseFSPermission:
		e.Severity = codes.SeverityMedium
	case CauseFSNoSpace:
		e.Severity = codes.SeverityHigh
	}
	return e
}

// NewNetwork wraps an upstream network failure. A refused connection is
// escalated; timeouts and DNS misses keep the default severity.
func NewNetwork(cause error) *Error {
	e := newError(codes.Network, "", cause)
	switch ClassifyCause(cause) {
	case CauseNetConnRefused:
		e.Severity = codes.SeverityHigh
	case CauseNetTimeout, CauseNetHostNotFound:
		e.Severity = codes.SeverityMedium
	}
	return e
}

// NewTimeout wraps a timeout signalled by a collaborator. The library itself
// defines no timeouts.
func NewTimeout(cause error) *Error {
	return newError(codes.Timeout, "", cause)
}

// NewUnavailable wraps a temporarily-unavailable dependency.
func NewUnavailable(cause error) *Error {
	return newError(codes.Unavailable, "", cause)
}
