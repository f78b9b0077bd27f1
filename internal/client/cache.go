package client

import (
	"context"
	"errors"
	"strconv"
	"sync/atomic"
	"time"

	"connectrpc.com/connect"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"
)

// Cache keys. Every query result is stored under exactly one of these.
const (
	keyProfile         = "profile"
	keyRole            = "role"
	keyTotalsAircraft  = "totals/aircraft"
	keyTotalsStudent   = "totals/student"
	keyCategoriesFmt   = "categories/%s"
	keyEntriesFmt      = "entries/%s/%s"
	keyEntryFmt        = "entry/%s"
	keyDailyHoursFmt   = "hours/daily/%s"
	keyMonthlyHoursFmt = "hours/monthly/%s"
	keyUserProfileFmt  = "profile/%s"
)

// queryCache holds wire responses keyed by query. Values are shared between
// callers and must not be modified.
type queryCache struct {
	lru   *expirable.LRU[string, any]
	group singleflight.Group

	// gen advances on every invalidation. A fetch that started under an
	// older generation neither stores its result nor is joined by callers
	// arriving after the invalidation.
	gen atomic.Uint64
}

func newQueryCache(size int, ttl time.Duration) *queryCache {
	return &queryCache{lru: expirable.NewLRU[string, any](size, nil, ttl)}
}

func (c *queryCache) invalidate() {
	c.gen.Add(1)
	c.lru.Purge()
}

// query returns the cached value for key or fetches it. Concurrent fetches of
// one key share a single call, and transient failures are retried once.
func query[T any](ctx context.Context, c *Client, key string, fetch func(context.Context) (T, error)) (T, error) {
	if v, ok := c.cache.lru.Get(key); ok {
		if t, ok := v.(T); ok {
			return t, nil
		}
	}

	gen := c.cache.gen.Load()
	flight := strconv.FormatUint(gen, 10) + ":" + key
	v, err, _ := c.cache.group.Do(flight, func() (any, error) {
		var res T
		err := retry.Do(ctx, retry.WithMaxRetries(1, retry.NewConstant(c.retryDelay)), func(ctx context.Context) error {
			var err error
			res, err = fetch(ctx)
			if transient(err) {
				c.logger.Debug("Retrying query", "key", key, "error", err)
				return retry.RetryableError(err)
			}
			return err
		})
		if err != nil {
			return nil, err
		}
		if c.cache.gen.Load() == gen {
			c.cache.lru.Add(key, res)
		}
		return res, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// invalidateOn drops every cached query when a write succeeded (err is nil)
// and passes err through otherwise. Writes are never retried.
func (c *Client) invalidateOn(err error) error {
	if err != nil {
		return err
	}
	c.cache.invalidate()
	return nil
}

// transient reports whether err is worth one more attempt.
func transient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch connect.CodeOf(err) {
	case connect.CodeUnavailable, connect.CodeAborted, connect.CodeResourceExhausted:
		return true
	}
	return false
}
