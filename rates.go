package cgt

import (
	"errors"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ohehir/cgt/date"
)

// Rater resolves the USD in EUR exchange rate for a calendar date, such that
// an EUR amount is the USD amount divided by the rate.
type Rater interface {
	Rate(on date.Date) (float64, error)
}

// RateCache memoizes a Rater per date, so a run performs one external
// resolution per distinct sale date instead of one per row.
//
// Entries never expire and are never evicted: the cache is scoped to a
// single normalization pass and discarded with it. It is not safe for
// concurrent use and does not need to be, normalization is sequential.
type RateCache struct {
	source  Rater
	entries *gocache.Cache
}

// NewRateCache wraps source with a per-date memo.
func NewRateCache(source Rater) *RateCache {
	return &RateCache{
		source:  source,
		entries: gocache.New(gocache.NoExpiration, 0),
	}
}

// Rate returns the memoized rate for the date, resolving and storing it on
// first use. A non-positive rate from the source is a resolution failure,
// never returned or stored. Failures are not memoized either, only resolved
// rates populate the cache.
func (c *RateCache) Rate(on date.Date) (float64, error) {
	key := on.String()
	if v, ok := c.entries.Get(key); ok {
		return v.(float64), nil
	}
	rate, err := c.source.Rate(on)
	if err != nil {
		return 0, err
	}
	if rate <= 0 {
		return 0, &RateUnavailableError{Date: on, Err: errors.New("rate must be strictly positive")}
	}
	c.entries.Set(key, rate, gocache.NoExpiration)
	return rate, nil
}
