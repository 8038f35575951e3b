// Package cache holds in-process caches backed by an expirable LRU.
package cache

import (
	"sync"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
)

// permissionCache is a per-instance LRU of resolved permission sets with a TTL.
// Entries are copied on the way in and out so callers cannot mutate cached sets.
//
// Every invalidation stamps the principal with a fresh value of clock, and a purge
// stamps purgedAt. The generation of a principal is the later of the two, so a Set
// carrying an older generation lost a race with an invalidation and is dropped.
type permissionCache struct {
	cache  *expirable.LRU[int64, entity.Permissions]
	hits   prometheus.Counter
	misses prometheus.Counter

	mu          sync.Mutex
	clock       uint64
	purgedAt    uint64
	invalidated map[int64]uint64
}

// NewPermissionCache creates the cache and registers its hit/miss counters.
func NewPermissionCache(size int, ttl time.Duration, registry prometheus.Registerer) service.PermissionCache {
	c := &permissionCache{
		cache:       expirable.NewLRU[int64, entity.Permissions](size, nil, ttl),
		invalidated: make(map[int64]uint64),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "backoffice",
			Name:      "permission_cache_hits_total",
			Help:      "Permission cache hits.",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "backoffice",
			Name:      "permission_cache_misses_total",
			Help:      "Permission cache misses.",
		}),
	}
	registry.MustRegister(c.hits, c.misses)

	return c
}

func (c *permissionCache) Get(principalID int64) (entity.Permissions, uint64, bool) {
	c.mu.Lock()
	generation := c.generation(principalID)
	c.mu.Unlock()

	perms, ok := c.cache.Get(principalID)
	if !ok {
		c.misses.Inc()

		return nil, generation, false
	}
	c.hits.Inc()

	return entity.Permissions(perms.Strings()), generation, true
}

func (c *permissionCache) Set(principalID int64, generation uint64, permissions entity.Permissions) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation(principalID) != generation {
		return false
	}
	c.cache.Add(principalID, entity.Permissions(permissions.Strings()))

	return true
}

func (c *permissionCache) Invalidate(principalIDs ...int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range principalIDs {
		c.clock++
		c.invalidated[id] = c.clock
		c.cache.Remove(id)
	}
}

func (c *permissionCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clock++
	c.purgedAt = c.clock
	clear(c.invalidated)
	c.cache.Purge()
}

// generation must be called with mu held.
func (c *permissionCache) generation(principalID int64) uint64 {
	return max(c.invalidated[principalID], c.purgedAt)
}
