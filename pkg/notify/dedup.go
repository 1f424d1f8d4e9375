package notify

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DedupStore is the slice of the Redis API the suppressor needs.
// *redis.Client satisfies it.
type DedupStore interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
}

// Dedup suppresses repeated alerts for the same error code inside a fixed
// window, so a crash loop does not flood the alert topic. The first alert of
// a window claims a Redis key with SETNX; followers are dropped.
//
// Redis being unreachable fails open: the alert is forwarded anyway.
type Dedup struct {
	next   Notifier
	store  DedupStore
	window time.Duration
	prefix string
}

// NewDedup wraps next with a suppression window. A zero window disables
// suppression.
func NewDedup(next Notifier, store DedupStore, window time.Duration) *Dedup {
	return &Dedup{
		next:   next,
		store:  store,
		window: window,
		prefix: "faultlib:alert",
	}
}

func (d *Dedup) Notify(ctx context.Context, alert Alert) error {
	if d.window <= 0 || d.store == nil {
		return d.next.Notify(ctx, alert)
	}

	key := d.prefix + ":" + alert.Code
	claimed, err := d.store.SetNX(ctx, key, alert.Timestamp, d.window).Result()
	if err != nil {
		return d.next.Notify(ctx, alert)
	}
	if !claimed {
		return nil
	}
	return d.next.Notify(ctx, alert)
}
