// Package cache holds the two caching layers described by SPEC_FULL.md's
// ambient-layers table: the in-process bounded LRU result cache mandated
// by spec.md §4.E (this file), and the optional on-disk parse cache in
// the diskcache subpackage.
package cache

import (
	"container/list"
	"sync"

	"github.com/umlforge/javauml/models"
)

// MaxEntries is the cache's hard capacity (spec.md §3 invariant iv).
const MaxEntries = 128

type entry struct {
	fingerprint string
	result      models.ConversionResult
}

// ResultCache is the mutex-guarded, content-fingerprint-keyed LRU the
// Conversion Facade fronts itself with. There is no third-party LRU in
// the example pack's dependency surface (the teacher's own caches are
// SQLite-backed, not in-memory LRUs), so this is built on
// container/list + sync.Mutex, the same primitives the standard library
// itself uses internally for such structures.
type ResultCache struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List
	index    map[string]*list.Element
}

// NewResultCache returns an empty cache bounded at capacity entries.
func NewResultCache(capacity int) *ResultCache {
	if capacity <= 0 {
		capacity = MaxEntries
	}
	return &ResultCache{
		capacity: capacity,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get looks up fingerprint and, on a hit, promotes the entry to
// most-recently-used (spec.md §3 invariant v).
func (c *ResultCache) Get(fingerprint string) (models.ConversionResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[fingerprint]
	if !ok {
		return models.ConversionResult{}, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*entry).result, true
}

// Put inserts result at most-recently-used, evicting the least-recently-used
// entry if the cache is over capacity afterward.
func (c *ResultCache) Put(fingerprint string, result models.ConversionResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[fingerprint]; ok {
		el.Value.(*entry).result = result
		c.ll.MoveToFront(el)
		return
	}

	el := c.ll.PushFront(&entry{fingerprint: fingerprint, result: result})
	c.index[fingerprint] = el

	if c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		if oldest != nil {
			c.ll.Remove(oldest)
			delete(c.index, oldest.Value.(*entry).fingerprint)
		}
	}
}

// Len reports the current number of cached entries.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Has reports whether fingerprint is currently cached, without affecting
// LRU order. Intended for tests asserting eviction behavior.
func (c *ResultCache) Has(fingerprint string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.index[fingerprint]
	return ok
}
