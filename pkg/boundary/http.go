// Package boundary intercepts failures at the request edge: HTTP middleware,
// a gRPC unary interceptor and an async task adapter all feed the same
// classify → record → reply pipeline.
package boundary

import (
	"encoding/json"
	"net/http"

	"github.com/Goden-Gun/fault-lib/pkg/codes"
	"github.com/Goden-Gun/fault-lib/pkg/envelope"
	"github.com/Goden-Gun/fault-lib/pkg/fault"
	"github.com/Goden-Gun/fault-lib/pkg/faultlog"
	log "github.com/Goden-Gun/fault-lib/pkg/logger"
	"github.com/Goden-Gun/fault-lib/pkg/tracing"
)

// Handler is an http.Handler that may signal failure, either with a raw
// cause or a pre-built *fault.Error. A nil return means the handler already
// replied.
type Handler func(http.ResponseWriter, *http.Request) error

// Options tunes the boundary.
type Options struct {
	// Verbose permits stack traces in outgoing responses. Keep it off in
	// production.
	Verbose bool
}

// Middleware returns the request-scope fault boundary. For every failing
// handler it classifies the failure, records it (the reply is not written
// until the log attempt has resolved), formats the envelope and replies with
// the fault's status. It never panics outward: any internal fault falls back
// to a generic INTERNAL_SERVER_ERROR reply.
func Middleware(rec *faultlog.Recorder, opts Options) func(Handler) http.Handler {
	return func(h Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := RequestID(r)
			reqCtx := Capture(r)
			reqCtx.ID = requestID

			defer func() {
				if rc := recover(); rc != nil {
					// Interception itself failed; the caller still gets a reply.
					log.Errorf("fault boundary panic: %v", rc)
					writeJSON(w, requestID, fault.New(codes.Internal, ""), false, "")
				}
			}()

			err := invoke(h, w, r)
			if err == nil {
				return
			}

			ferr := fault.Classify(err)
			rec.Record(r.Context(), ferr, reqCtx)
			writeJSON(w, requestID, ferr, opts.Verbose, tracing.TraceID(r.Context()))
		})
	}
}

// invoke runs the handler, converting a panic into an error return so the
// failure path stays single.
func invoke(h Handler, w http.ResponseWriter, r *http.Request) (err error) {
	defer func() {
		if rc := recover(); rc != nil {
			err = fault.FromPanic(rc)
		}
	}()
	return h(w, r)
}

func writeJSON(w http.ResponseWriter, requestID string, ferr *fault.Error, verbose bool, traceID string) {
	resp := envelope.Format(ferr, requestID, verbose)
	resp.Error.TraceID = traceID

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Error.StatusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		// Response already started; nothing left to send the caller.
		log.WithError(err).Error("failed to encode error response")
	}
}
