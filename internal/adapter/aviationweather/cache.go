package aviationweather

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/metar-reader/internal/domain"
	"github.com/couchcryptid/metar-reader/internal/observability"
)

// CachedFetcher wraps a Fetcher with an in-memory LRU cache whose entries
// expire after a fixed TTL.
type CachedFetcher struct {
	inner   domain.Fetcher
	cache   *lru.Cache[string, cachedReport]
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics
}

type cachedReport struct {
	raw     string
	expires time.Time
}

// NewCachedFetcher creates a cache decorator around a fetcher.
func NewCachedFetcher(inner domain.Fetcher, maxEntries int, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) (*CachedFetcher, error) {
	cache, err := lru.New[string, cachedReport](maxEntries)
	if err != nil {
		return nil, fmt.Errorf("create report cache: %w", err)
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CachedFetcher{
		inner:   inner,
		cache:   cache,
		ttl:     ttl,
		clock:   clock,
		metrics: metrics,
	}, nil
}

func (c *CachedFetcher) FetchMETAR(ctx context.Context, station string) (string, error) {
	now := c.clock.Now()
	if entry, ok := c.cache.Get(station); ok {
		if now.Before(entry.expires) {
			c.metrics.FetchCache.WithLabelValues("hit").Inc()
			return entry.raw, nil
		}
		c.cache.Remove(station)
	}
	c.metrics.FetchCache.WithLabelValues("miss").Inc()

	raw, err := c.inner.FetchMETAR(ctx, station)
	if err != nil {
		return "", err
	}
	// Failures are never cached so a later request can succeed.
	c.cache.Add(station, cachedReport{raw: raw, expires: now.Add(c.ttl)})
	return raw, nil
}
