package fault

import (
	"errors"

	grpccodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Goden-Gun/fault-lib/pkg/codes"
)

// Classify converts an arbitrary failure into a uniform fault. A value that
// is already a *Error passes through untouched; everything else is matched
// against the closed cause set and wrapped by the corresponding constructor,
// falling back to INTERNAL_SERVER_ERROR.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr
	}

	if kind, ok := kindFromGRPC(err); ok {
		return newError(kind, status.Convert(err).Message(), err)
	}

	switch ClassifyCause(err) {
	case CauseValidation:
		return NewValidation(err)
	case CauseTokenExpired:
		return NewAuthentication(err)
	case CauseDeadline, CauseNetTimeout:
		return NewTimeout(err)
	case CauseFSNotFound, CauseFSPermission, CauseFSNoSpace:
		return NewFileSystem(err)
	case CauseDBDuplicateKey, CauseDBConnRefused:
		return NewDatabase(err)
	case CauseNetConnRefused, CauseNetHostNotFound:
		return NewNetwork(err)
	default:
		return NewInternal(err)
	}
}

// kindFromGRPC maps a gRPC status failure from a collaborator onto the
// taxonomy. Plain errors carry no status and report ok=false.
func kindFromGRPC(err error) (codes.Kind, bool) {
	s, ok := status.FromError(err)
	if !ok || s.Code() == grpccodes.OK {
		return codes.Kind{}, false
	}
	switch s.Code() {
	case grpccodes.InvalidArgument:
		return codes.Validation, true
	case grpccodes.Unauthenticated:
		return codes.Authentication, true
	case grpccodes.PermissionDenied:
		return codes.Authorization, true
	case grpccodes.NotFound:
		return codes.NotFound, true
	case grpccodes.AlreadyExists, grpccodes.Aborted:
		return codes.Conflict, true
	case grpccodes.ResourceExhausted:
		return codes.RateLimit, true
	case grpccodes.DeadlineExceeded:
		return codes.Timeout, true
	case grpccodes.Unavailable:
		return codes.Unavailable, true
	default:
		return codes.Internal, true
	}
}
