package memory

import (
	"context"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
)

const DefaultValidationCacheTTL = 30 * time.Second

type validationEntry struct {
	valid     bool
	writtenAt time.Time
}

type validationCache struct {
	entries *xsync.MapOf[string, validationEntry]
	ttl     time.Duration
	clock   pkgtime.Clock
}

func NewValidationCache(ttl time.Duration, clock pkgtime.Clock) domain.ValidationCache {
	if ttl <= 0 {
		ttl = DefaultValidationCacheTTL
	}

	return &validationCache{
		entries: xsync.NewMapOf[string, validationEntry](),
		ttl:     ttl,
		clock:   clock,
	}
}

func (c *validationCache) Get(ctx context.Context, subject string) (valid bool, ok bool) {
	now := c.clock.Now(ctx)

	entry, ok := c.entries.Load(subject)
	if !ok {
		return false, false
	}
	if !c.isStale(entry, now) {
		return entry.valid, true
	}

	c.deleteIfStale(subject, now)
	return false, false
}

func (c *validationCache) Put(ctx context.Context, subject string, valid bool) {
	c.entries.Store(subject, validationEntry{
		valid:     valid,
		writtenAt: c.clock.Now(ctx),
	})
}

func (c *validationCache) Invalidate(subject string) {
	c.entries.Delete(subject)
}

func (c *validationCache) Clear() {
	c.entries.Clear()
}

func (c *validationCache) Size() int {
	return c.entries.Size()
}

func (c *validationCache) SweepExpired(ctx context.Context) int {
	now := c.clock.Now(ctx)

	removed := 0
	c.entries.Range(func(subject string, entry validationEntry) bool {
		if c.isStale(entry, now) && c.deleteIfStale(subject, now) {
			removed++
		}
		return true
	})

	return removed
}

func (c *validationCache) isStale(entry validationEntry, now time.Time) bool {
	return now.Sub(entry.writtenAt) > c.ttl
}

func (c *validationCache) deleteIfStale(subject string, now time.Time) bool {
	deleted := false
	c.entries.Compute(subject, func(entry validationEntry, loaded bool) (validationEntry, bool) {
		if !loaded {
			return entry, true
		}

		deleted = c.isStale(entry, now)
		return entry, deleted
	})

	return deleted
}
