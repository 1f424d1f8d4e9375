package boundary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/fault-lib/pkg/faultlog"
)

func newAsyncRecorder(t *testing.T) (*lockedBuffer, *faultlog.Recorder) {
	t.Helper()
	buf := &lockedBuffer{}
	rec, err := faultlog.NewRecorder(faultlog.Options{Writer: buf})
	require.NoError(t, err)
	return buf, rec
}

func waitForLines(t *testing.T, buf *lockedBuffer, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return len(buf.lines()) >= n
	}, time.Second, 5*time.Millisecond)
}

func TestGoReportsFailureExactlyOnce(t *testing.T) {
	buf, rec := newAsyncRecorder(t)

	done := make(chan struct{})
	Go(context.Background(), "reindex", rec, func(context.Context) error {
		defer close(done)
		return errors.New("index corrupted")
	})

	<-done
	waitForLines(t, buf, 1)
	time.Sleep(20 * time.Millisecond)
	assert.Len(t, buf.lines(), 1)
	assert.Contains(t, buf.lines()[0], `"task":"reindex"`)
}

func TestGoSuccessNeverEntersFailurePath(t *testing.T) {
	buf, rec := newAsyncRecorder(t)

	done := make(chan struct{})
	Go(context.Background(), "cleanup", rec, func(context.Context) error {
		defer close(done)
		return nil
	})

	<-done
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, buf.lines())
}

func TestGoReportsPanicExactlyOnce(t *testing.T) {
	buf, rec := newAsyncRecorder(t)

	Go(context.Background(), "compact", rec, func(context.Context) error {
		panic("nil map write")
	})

	waitForLines(t, buf, 1)
	time.Sleep(20 * time.Millisecond)
	require.Len(t, buf.lines(), 1)
	assert.Contains(t, buf.lines()[0], `"severity":"critical"`)
	assert.Contains(t, buf.lines()[0], `"isOperational":false`)
}

func TestGoFailureAfterSuspension(t *testing.T) {
	buf, rec := newAsyncRecorder(t)

	Go(context.Background(), "fetch", rec, func(ctx context.Context) error {
		timer := time.NewTimer(10 * time.Millisecond)
		defer timer.Stop()
		select {
		case <-timer.C:
			return errors.New("upstream gone")
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	waitForLines(t, buf, 1)
	assert.Len(t, buf.lines(), 1)
}
