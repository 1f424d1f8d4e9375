package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/fault-lib/pkg/codes"
	"github.com/Goden-Gun/fault-lib/pkg/faultlog"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := strings.TrimSpace(b.buf.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func newProcessWithBuffer(t *testing.T) (*lockedBuffer, *Process) {
	t.Helper()
	buf := &lockedBuffer{}
	rec, err := faultlog.NewRecorder(faultlog.Options{Writer: buf})
	require.NoError(t, err)
	return buf, newProcess(rec)
}

func TestHandleFatalRecordsAndExits(t *testing.T) {
	buf, p := newProcessWithBuffer(t)

	exitCode := -1
	osExit = func(code int) { exitCode = code }
	defer func() { osExit = os.Exit }()

	func() {
		defer p.HandleFatal()
		panic("shared state corrupted")
	}()

	assert.Equal(t, 1, exitCode)
	require.Len(t, buf.lines(), 1)

	var entry faultlog.LogEntry
	require.NoError(t, json.Unmarshal([]byte(buf.lines()[0]), &entry))
	assert.Equal(t, codes.SeverityCritical, entry.Severity)
	assert.False(t, entry.Operational)
	assert.Contains(t, entry.Message, "shared state corrupted")
}

func TestHandleFatalNoPanicNoExit(t *testing.T) {
	buf, p := newProcessWithBuffer(t)

	exited := false
	osExit = func(int) { exited = true }
	defer func() { osExit = os.Exit }()

	func() {
		defer p.HandleFatal()
	}()

	assert.False(t, exited)
	assert.Empty(t, buf.lines())
}

func TestProcessGoRecordsUnobservedFailure(t *testing.T) {
	buf, p := newProcessWithBuffer(t)

	p.Go("feed-sync", func(context.Context) error {
		return errors.New("broker unreachable")
	})

	require.Eventually(t, func() bool {
		return len(buf.lines()) == 1
	}, time.Second, 5*time.Millisecond)

	var entry faultlog.LogEntry
	require.NoError(t, json.Unmarshal([]byte(buf.lines()[0]), &entry))
	assert.Equal(t, codes.SeverityCritical, entry.Severity)
	assert.False(t, entry.Operational)
	require.NotNil(t, entry.Request)
	assert.Equal(t, "feed-sync", entry.Request.Task)
}

func TestProcessGoKeepsRunningAfterFailure(t *testing.T) {
	_, p := newProcessWithBuffer(t)

	done := make(chan struct{})
	p.Go("background", func(context.Context) error {
		defer close(done)
		return errors.New("non-critical task failed")
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("background task did not finish")
	}
	// Reaching here at all shows the failure was reported, not rethrown.
}

func TestInstallProcessHandlersOnce(t *testing.T) {
	rec, err := faultlog.NewRecorder(faultlog.Options{Writer: &lockedBuffer{}})
	require.NoError(t, err)

	first := InstallProcessHandlers(rec)
	second := InstallProcessHandlers(rec)
	assert.Same(t, first, second)
}
