package bootstrap

import (
	"context"
	"os"
	"sync"

	"github.com/Goden-Gun/fault-lib/pkg/fault"
	"github.com/Goden-Gun/fault-lib/pkg/faultlog"
)

// osExit is swapped in tests.
var osExit = os.Exit

var (
	installOnce sync.Once
	installed   *Process
)

// Process holds the two last-resort fault handlers. It is created exactly
// once, deliberately, during process bootstrap; the logging pipeline is
// passed in rather than reached through ambient global state.
type Process struct {
	rec *faultlog.Recorder
}

// InstallProcessHandlers installs the process-scope handlers. The first call
// wins; later calls return the already-installed instance.
func InstallProcessHandlers(rec *faultlog.Recorder) *Process {
	installOnce.Do(func() {
		installed = newProcess(rec)
	})
	return installed
}

func newProcess(rec *faultlog.Recorder) *Process {
	return &Process{rec: rec}
}

// HandleFatal is deferred first thing in main. A failure that escapes every
// scope synchronously is a defect: it is recorded as a critical fault and
// the process exits with status 1, because shared in-process state can no
// longer be trusted. Recovery is the supervisor's job, via restart.
func (p *Process) HandleFatal() {
	if rc := recover(); rc != nil {
		p.rec.Record(context.Background(), fault.FromPanic(rc), nil)
		osExit(1)
	}
}

// Go starts a background task whose failure no request scope will ever
// observe. Such a failure is recorded as critical and the process keeps
// running: it may come from a non-critical task and is not assumed fatal.
func (p *Process) Go(task string, fn func(context.Context) error) {
	go func() {
		ctx := context.Background()
		var failure error
		defer func() {
			if rc := recover(); rc != nil {
				p.rec.Record(ctx, fault.FromPanic(rc), &faultlog.RequestContext{Task: task})
				return
			}
			if failure != nil {
				p.rec.Record(ctx, fault.FromUnobserved(failure), &faultlog.RequestContext{Task: task})
			}
		}()
		failure = fn(ctx)
	}()
}
