package boundary

import (
	"context"

	"github.com/Goden-Gun/fault-lib/pkg/fault"
	"github.com/Goden-Gun/fault-lib/pkg/faultlog"
)

// Go runs fn on its own goroutine and guarantees that a failure, whether
// returned or panicked, and even one that surfaces only after fn blocks on
// an external resource, is classified and recorded exactly once. A nil
// return never enters the failure path.
//
// This is the adapter for fire-and-forget work spawned inside a request:
// there is no reply to send, but the failure must not go unobserved.
func Go(ctx context.Context, task string, rec *faultlog.Recorder, fn func(context.Context) error) {
	go func() {
		var ferr *fault.Error
		defer func() {
			if rc := recover(); rc != nil {
				ferr = fault.FromPanic(rc)
			}
			if ferr != nil {
				rec.Record(ctx, ferr, &faultlog.RequestContext{Task: task})
			}
		}()
		ferr = fault.Classify(fn(ctx))
	}()
}
