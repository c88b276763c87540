package weather

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"time"

	"github.com/mkryukov/personal-site-content/internal/store"
)

// coordEpsilon is the tolerance for cache-key coordinate equality.
const coordEpsilon = 1e-6

// Fetcher performs one GET and reports "no result" as ok == false.
// *transport.Chain satisfies it.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, bool)
}

// Manager answers weather-text requests, preferring a fresh matching cache
// entry over the network. It keeps no per-request state; every call walks
// the same check-cache / fetch-fresh path.
type Manager struct {
	cache *store.FileCache
	chain Fetcher
	now   func() time.Time
}

// NewManager creates a Manager over the given cache file and transport.
func NewManager(cache *store.FileCache, chain Fetcher) *Manager {
	return &Manager{cache: cache, chain: chain, now: time.Now}
}

// Text returns the rendered weather line for the location, from cache when
// the stored entry matches the location exactly and is within ttl.
// ok is false only when both the cache misses and the fresh fetch fails;
// the old cache file is left untouched in that case.
func (m *Manager) Text(ctx context.Context, loc Location, ttl time.Duration) (string, bool) {
	if entry, err := m.cache.Load(); err == nil && m.entryMatches(entry, loc, ttl) {
		return entry.Text, true
	}

	body, ok := m.chain.Get(ctx, buildRequestURL(loc))
	if !ok {
		return "", false
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("weather: unexpected response body: %v", err)
		return "", false
	}
	current, ok := currentBlock(payload)
	if !ok {
		return "", false
	}

	text := renderText(loc, current)
	if text == "" {
		return "", false
	}

	// Caching is an optimization, not a correctness requirement.
	entry := store.WeatherEntry{
		TS:           m.now().Unix(),
		Text:         text,
		LocationName: loc.Name,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		Timezone:     loc.Timezone,
	}
	if err := m.cache.Save(entry); err != nil {
		log.Printf("weather: cache write failed: %v", err)
	}
	return text, true
}

// entryMatches checks location equality and freshness of a cache entry.
func (m *Manager) entryMatches(entry store.WeatherEntry, loc Location, ttl time.Duration) bool {
	if entry.LocationName != loc.Name || entry.Timezone != loc.Timezone {
		return false
	}
	if math.Abs(entry.Latitude-loc.Latitude) > coordEpsilon {
		return false
	}
	if math.Abs(entry.Longitude-loc.Longitude) > coordEpsilon {
		return false
	}
	age := m.now().Sub(time.Unix(entry.TS, 0))
	return age <= ttl
}
