package gamefeed

import (
	"sync"
	"time"

	"github.com/danielhkuo/gameday/models"
)

type cacheEntry struct {
	snap models.GameSnapshot
	at   time.Time
}

// snapshotCache holds live snapshots per game id for a fixed TTL.
type snapshotCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newSnapshotCache(ttl time.Duration) *snapshotCache {
	return &snapshotCache{ttl: ttl, entries: make(map[string]cacheEntry)}
}

func (c *snapshotCache) get(key string, now time.Time) (models.GameSnapshot, bool) {
	if c.ttl <= 0 {
		return models.GameSnapshot{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || now.Sub(e.at) >= c.ttl {
		return models.GameSnapshot{}, false
	}
	return e.snap, true
}

func (c *snapshotCache) put(key string, snap models.GameSnapshot, now time.Time) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{snap: snap, at: now}
}
