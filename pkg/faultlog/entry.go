package faultlog

import (
	"github.com/Goden-Gun/fault-lib/pkg/codes"
	"github.com/Goden-Gun/fault-lib/pkg/fault"
)

// RequestContext carries the request (or background task) details attached
// to a log entry. All fields are optional.
type RequestContext struct {
	ID        string            `json:"id,omitempty"`
	URL       string            `json:"url,omitempty"`
	Method    string            `json:"method,omitempty"`
	IP        string            `json:"ip,omitempty"`
	UserAgent string            `json:"userAgent,omitempty"`
	UserID    string            `json:"userId,omitempty"`
	Body      any               `json:"body,omitempty"`
	Query     map[string]string `json:"query,omitempty"`
	Params    map[string]string `json:"params,omitempty"`
	Task      string            `json:"task,omitempty"`
}

// LogEntry is the flattened, serializable projection of a fault plus its
// request context. One entry is appended per observed failure; entries are
// never mutated or deleted.
type LogEntry struct {
	Timestamp   string                 `json:"timestamp"`
	Severity    codes.Severity         `json:"severity"`
	Code        string                 `json:"errorCode"`
	StatusCode  int                    `json:"statusCode"`
	Message     string                 `json:"message"`
	Operational bool                   `json:"isOperational"`
	Stack       string                 `json:"stack,omitempty"`
	Details     []fault.FieldViolation `json:"details,omitempty"`
	TraceID     string                 `json:"traceId,omitempty"`
	Request     *RequestContext        `json:"request,omitempty"`
}
