package fault

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Cause is the closed set of recognized external failure causes. Raw
// collaborator errors are converted to a Cause exactly once, at the boundary,
// by ClassifyCause; constructors refine severity from the tag and never poke
// at driver-specific fields themselves.
type Cause int

const (
	CauseUnknown Cause = iota
	CauseFSNotFound
	CauseFSPermission
	CauseFSNoSpace
	CauseDBDuplicateKey
	CauseDBConnRefused
	CauseNetConnRefused
	CauseNetTimeout
	CauseNetHostNotFound
	CauseTokenExpired
	CauseValidation
	CauseDeadline
)

// pgconn SQLSTATE values. Class 08 covers connection exceptions.
const (
	pgUniqueViolation   = "23505"
	pgConnectionClass   = "08"
	sqlStateClassDigits = 2
)

// ClassifyCause inspects a raw error with errors.Is / errors.As and returns
// its Cause tag. Unrecognized errors map to CauseUnknown.
func ClassifyCause(err error) Cause {
	if err == nil {
		return CauseUnknown
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return CauseValidation
	}
	if errors.Is(err, jwt.ErrTokenExpired) {
		return CauseTokenExpired
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CauseDeadline
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return CauseDBDuplicateKey
		}
		if len(pgErr.Code) >= sqlStateClassDigits && pgErr.Code[:sqlStateClassDigits] == pgConnectionClass {
			return CauseDBConnRefused
		}
		return CauseUnknown
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return CauseNetHostNotFound
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return CauseNetConnRefused
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CauseNetTimeout
	}

	if errors.Is(err, fs.ErrNotExist) {
		return CauseFSNotFound
	}
	if errors.Is(err, fs.ErrPermission) {
		return CauseFSPermission
	}
	if errors.Is(err, syscall.ENOSPC) {
		return CauseFSNoSpace
	}

	return CauseUnknown
}
