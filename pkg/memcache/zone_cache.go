package memcache

import (
	"sync"
	"time"

	"github.com/Yadavallitejas/tourist-guard/internal/models/db_models"
)

// ZoneCache holds the danger-zone set for the ingest hot path, so every
// location ping does not go back to the database. Entries keep their store
// order; the geofence evaluator depends on that.
type ZoneCache struct {
	mu        sync.RWMutex
	zones     []db_models.DangerZone
	filled    bool
	expiresAt time.Time
	ttl       time.Duration
}

func NewZoneCache(ttl time.Duration) *ZoneCache {
	return &ZoneCache{ttl: ttl}
}

func (c *ZoneCache) Get() ([]db_models.DangerZone, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.filled || time.Now().After(c.expiresAt) {
		return nil, false
	}
	return c.zones, true
}

// Set stores the zone set, including an empty one; an empty table must not
// send every ping back to the database.
func (c *ZoneCache) Set(zones []db_models.DangerZone) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zones = zones
	c.filled = true
	c.expiresAt = time.Now().Add(c.ttl)
}

// Invalidate drops the cached set; called after any zone mutation.
func (c *ZoneCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.zones = nil
	c.filled = false
}
