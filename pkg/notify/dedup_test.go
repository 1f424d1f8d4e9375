package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/Goden-Gun/fault-lib/pkg/codes"
)

type fakeStore struct {
	claimed bool
	err     error
	calls   int
}

func (f *fakeStore) SetNX(ctx context.Context, key string, value any, _ time.Duration) *redis.BoolCmd {
	f.calls++
	cmd := redis.NewBoolCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
	} else {
		cmd.SetVal(f.claimed)
	}
	return cmd
}

type captureNotifier struct {
	alerts []Alert
}

func (c *captureNotifier) Notify(_ context.Context, alert Alert) error {
	c.alerts = append(c.alerts, alert)
	return nil
}

func testAlert() Alert {
	return Alert{
		Code:      "DATABASE_ERROR",
		Severity:  codes.SeverityHigh,
		Message:   "database operation failed",
		Timestamp: "2026-01-02T03:04:05Z",
	}
}

func TestDedupForwardsFirstAlert(t *testing.T) {
	next := &captureNotifier{}
	d := NewDedup(next, &fakeStore{claimed: true}, time.Minute)

	assert.NoError(t, d.Notify(context.Background(), testAlert()))
	assert.Len(t, next.alerts, 1)
}

func TestDedupSuppressesWithinWindow(t *testing.T) {
	next := &captureNotifier{}
	d := NewDedup(next, &fakeStore{claimed: false}, time.Minute)

	assert.NoError(t, d.Notify(context.Background(), testAlert()))
	assert.Empty(t, next.alerts)
}

func TestDedupFailsOpen(t *testing.T) {
	next := &captureNotifier{}
	d := NewDedup(next, &fakeStore{err: errors.New("redis down")}, time.Minute)

	assert.NoError(t, d.Notify(context.Background(), testAlert()))
	assert.Len(t, next.alerts, 1)
}

func TestDedupZeroWindowDisablesSuppression(t *testing.T) {
	next := &captureNotifier{}
	store := &fakeStore{claimed: false}
	d := NewDedup(next, store, 0)

	assert.NoError(t, d.Notify(context.Background(), testAlert()))
	assert.Len(t, next.alerts, 1)
	assert.Zero(t, store.calls)
}
