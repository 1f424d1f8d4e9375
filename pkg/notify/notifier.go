// Package notify delivers per-fault alerts to an external monitoring
// collaborator. The fault log forwards attention-grade entries here; nothing
// in this package aggregates.
package notify

import (
	"context"

	"github.com/Goden-Gun/fault-lib/pkg/codes"
)

// Alert is the per-fault notification payload.
type Alert struct {
	Code      string         `json:"errorCode"`
	Severity  codes.Severity `json:"severity"`
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	Service   string         `json:"service,omitempty"`
	RequestID string         `json:"requestId,omitempty"`
	TraceID   string         `json:"traceId,omitempty"`
}

// Notifier pushes one alert per recorded fault. Implementations must be safe
// for concurrent use; delivery is best effort and the caller swallows errors.
type Notifier interface {
	Notify(ctx context.Context, alert Alert) error
}

// Noop discards alerts.
type Noop struct{}

func (Noop) Notify(context.Context, Alert) error { return nil }
