package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/cmlabs-hris/working-date-go/internal/pkg/businesstime"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultTTL          = time.Hour
	DefaultFetchTimeout = 30 * time.Second
)

type snapshot struct {
	set       businesstime.HolidaySet
	fetchedAt time.Time
	expires   time.Time
}

// Cache keeps the most recent holiday set in memory. Readers never block on
// each other; concurrent misses share a single upstream fetch. When a refresh
// fails and an older set exists, the older set is served.
type Cache struct {
	source       Source
	ttl          time.Duration
	fetchTimeout time.Duration
	logger       *slog.Logger
	now          func() time.Time
	current      atomic.Pointer[snapshot]
	group        singleflight.Group
}

type CacheOption func(*Cache)

// WithClock overrides the time source used for expiry.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

func WithLogger(logger *slog.Logger) CacheOption {
	return func(c *Cache) { c.logger = logger }
}

// WithFetchTimeout bounds a shared upstream fetch. Non-positive values keep
// DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) CacheOption {
	return func(c *Cache) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

func NewCache(source Source, ttl time.Duration, opts ...CacheOption) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &Cache{
		source:       source,
		ttl:          ttl,
		fetchTimeout: DefaultFetchTimeout,
		logger:       slog.Default(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Holidays returns the cached set, loading it when absent or expired.
func (c *Cache) Holidays(ctx context.Context) (businesstime.HolidaySet, error) {
	if snap := c.current.Load(); snap != nil && c.now().Before(snap.expires) {
		return snap.set, nil
	}
	set, err := c.reload(ctx)
	if err != nil {
		if snap := c.current.Load(); snap != nil {
			c.logger.Warn("holiday refresh failed, serving stale list",
				"error", err,
				"fetched_at", snap.fetchedAt,
			)
			return snap.set, nil
		}
		return nil, err
	}
	return set, nil
}

// Refresh reloads the set regardless of expiry. On failure the previous set
// stays in place and the error is returned.
func (c *Cache) Refresh(ctx context.Context) error {
	_, err := c.reload(ctx)
	return err
}

// Loaded reports whether a set has been fetched at least once.
func (c *Cache) Loaded() bool {
	return c.current.Load() != nil
}

// FetchedAt returns when the current set was fetched; zero if never.
func (c *Cache) FetchedAt() time.Time {
	if snap := c.current.Load(); snap != nil {
		return snap.fetchedAt
	}
	return time.Time{}
}

// reload shares one upstream fetch between concurrent callers. The fetch is
// detached from the caller that started it and bounded by fetchTimeout; each
// caller stops waiting when its own ctx is done.
func (c *Cache) reload(ctx context.Context) (businesstime.HolidaySet, error) {
	ch := c.group.DoChan("holidays", func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()

		set, err := c.fetch(fetchCtx)
		if err != nil {
			return nil, err
		}
		now := c.now()
		c.current.Store(&snapshot{set: set, fetchedAt: now, expires: now.Add(c.ttl)})
		c.logger.Info("holiday list refreshed", "count", set.Len())
		return set, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(businesstime.HolidaySet), nil
	}
}

func (c *Cache) fetch(ctx context.Context) (businesstime.HolidaySet, error) {
	dates, err := c.source.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	set, err := businesstime.ParseHolidaySet(dates)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return set, nil
}
