// Package envelope projects a fault onto the wire-level error response
// shared by all services: {"success":false,"error":{...}}.
package envelope

import (
	"time"

	"github.com/Goden-Gun/fault-lib/pkg/codes"
	"github.com/Goden-Gun/fault-lib/pkg/fault"
)

// DefaultRequestID is substituted when the caller supplies no request id.
const DefaultRequestID = "unknown"

// ErrorBody is the error member of the response envelope. Stack appears only
// in verbose mode; Details only when the fault carries validation detail.
type ErrorBody struct {
	Message    string                 `json:"message"`
	Code       string                 `json:"code"`
	StatusCode int                    `json:"statusCode"`
	Timestamp  string                 `json:"timestamp"`
	RequestID  string                 `json:"requestId"`
	TraceID    string                 `json:"traceId,omitempty"`
	Stack      string                 `json:"stack,omitempty"`
	Details    []fault.FieldViolation `json:"details,omitempty"`
}

// ErrorResponse is the complete wire response for a failed request. It is
// built per request and discarded after transmission.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// Format builds the outgoing error body for a fault. It never fails: a nil
// or partially filled fault is defaulted the same way the log pipeline
// defaults it, and a missing request id becomes DefaultRequestID.
func Format(ferr *fault.Error, requestID string, verbose bool) ErrorResponse {
	if requestID == "" {
		requestID = DefaultRequestID
	}

	body := ErrorBody{
		Message:    codes.Unknown.Message,
		Code:       codes.Unknown.Code,
		StatusCode: codes.Unknown.Status,
		RequestID:  requestID,
	}

	ts := time.Now().UTC()
	if ferr != nil {
		if !ferr.Timestamp.IsZero() {
			ts = ferr.Timestamp.UTC()
		}
		if ferr.Message != "" {
			body.Message = ferr.Message
		}
		if ferr.Code != "" {
			body.Code = ferr.Code
		}
		if codes.ValidStatus(ferr.StatusCode) {
			body.StatusCode = ferr.StatusCode
		}
		if verbose {
			body.Stack = ferr.Stack
		}
		body.Details = ferr.Details
	}
	body.Timestamp = ts.Format(time.RFC3339Nano)

	return ErrorResponse{Success: false, Error: body}
}
