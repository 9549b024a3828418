package cache

import "iter"

// Cache is an LRU cache with weighted eviction. Every entry is a separate
// heap allocation linked into a recency list; for the slab-backed variant
// of the same contract, see ArenaCache.
//
// All operations run in constant time. Cache is not safe for concurrent
// use. The zero value is not ready for use; call New.
type Cache[K comparable, V any] struct {
	items map[K]*entry[K, V]
	list  entryList[K, V]

	maxEntries int
	maxWeight  int
	weight     int

	counters
}

// New creates an empty Cache with the given limits.
// It panics if cfg contains a negative value.
func New[K comparable, V any](cfg Config) *Cache[K, V] {
	cfg.validate()
	c := &Cache[K, V]{
		items:      make(map[K]*entry[K, V]),
		maxEntries: cfg.MaxEntries,
		maxWeight:  cfg.MaxWeight,
	}
	c.list.init()
	return c
}

// Set inserts or updates key with weight 1. It is shorthand for
// SetWeighted(key, value, 1).
func (c *Cache[K, V]) Set(key K, value V) (prev V, replaced bool) {
	return c.SetWeighted(key, value, 1)
}

// SetWeighted inserts or updates key with an explicit weight and makes the
// entry the most recently used. If the key was already present, its value
// and weight are replaced and the previous value is returned.
//
// Eviction runs before SetWeighted returns, so the cache never stays over
// its limits. An entry whose weight alone exceeds MaxWeight is inserted
// and then evicted again by the same call; the return values still
// describe only the state prior to the call.
//
// SetWeighted panics if weight is negative.
func (c *Cache[K, V]) SetWeighted(key K, value V, weight int) (prev V, replaced bool) {
	if weight < 0 {
		panic("cache: negative entry weight")
	}

	if e, ok := c.items[key]; ok {
		prev = e.value
		c.weight += weight - e.weight
		e.value = value
		e.weight = weight
		c.list.moveToFront(e)
		c.evict()
		return prev, true
	}

	e := &entry[K, V]{key: key, value: value, weight: weight}
	c.items[key] = e
	c.list.pushFront(e)
	c.weight += weight
	c.insertions++
	c.evict()
	return prev, false
}

// Get returns the value stored for key and makes the entry the most
// recently used. The second result reports whether the key was present.
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	e, ok := c.items[key]
	if !ok {
		c.misses++
		return value, false
	}
	c.list.moveToFront(e)
	c.hits++
	return e.value, true
}

// GetOrCreate returns the value stored for key, creating it on a miss.
// A hit promotes the entry exactly like Get. On a miss, create is called,
// its result is inserted with weight 1, and eviction runs as for Set.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	if e, ok := c.items[key]; ok {
		c.list.moveToFront(e)
		c.hits++
		return e.value
	}
	c.misses++
	value := create()
	c.SetWeighted(key, value, 1)
	return value
}

// Peek returns the value stored for key without changing its recency.
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	e, ok := c.items[key]
	if !ok {
		return value, false
	}
	return e.value, true
}

// Contains reports whether key is present without changing its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Delete removes key and returns the value it held. The second result
// reports whether the key was present.
func (c *Cache[K, V]) Delete(key K) (value V, ok bool) {
	e, ok := c.items[key]
	if !ok {
		return value, false
	}
	value = e.value
	c.deleteEntry(e)
	return value, true
}

// Oldest returns the least recently used entry, the next eviction
// candidate, without changing its recency.
func (c *Cache[K, V]) Oldest() (key K, value V, ok bool) {
	e := c.list.back()
	if e == nil {
		return key, value, false
	}
	return e.key, e.value, true
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int { return len(c.items) }

// Weight returns the sum of live entry weights.
func (c *Cache[K, V]) Weight() int { return c.weight }

// MaxEntries returns the entry limit. 0 means unlimited.
func (c *Cache[K, V]) MaxEntries() int { return c.maxEntries }

// MaxWeight returns the weight limit. 0 means unlimited.
func (c *Cache[K, V]) MaxWeight() int { return c.maxWeight }

// SetMaxEntries changes the entry limit; 0 disables it. Lowering the limit
// below the current Len does not evict anything by itself; call
// EvictIfNeeded to enforce the new limit.
//
// SetMaxEntries panics if limit is negative.
func (c *Cache[K, V]) SetMaxEntries(limit int) {
	if limit < 0 {
		panic("cache: negative MaxEntries")
	}
	c.maxEntries = limit
}

// SetMaxWeight changes the weight limit; 0 disables it. Lowering the limit
// below the current Weight does not evict anything by itself; call
// EvictIfNeeded to enforce the new limit.
//
// SetMaxWeight panics if limit is negative.
func (c *Cache[K, V]) SetMaxWeight(limit int) {
	if limit < 0 {
		panic("cache: negative MaxWeight")
	}
	c.maxWeight = limit
}

// EvictIfNeeded removes least recently used entries until both configured
// limits are satisfied. Inserts run it automatically; it exists so that
// lowering a limit, which never evicts on its own, can be followed by an
// explicit enforcement pass.
func (c *Cache[K, V]) EvictIfNeeded() {
	c.evict()
}

// Clear removes all entries. Limits and lifetime counters are kept.
func (c *Cache[K, V]) Clear() {
	clear(c.items)
	c.list.init()
	c.weight = 0
}

// Stats returns a snapshot of the cache contents and access counters.
func (c *Cache[K, V]) Stats() Stats {
	return c.counters.snapshot(len(c.items), c.weight)
}

// All returns the live entries as a lazy sequence in map iteration order.
// The sequence ranges over the cache itself, not a snapshot, and does not
// change recency. Mutating the cache while consuming the sequence follows
// the usual Go map iteration rules.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, e := range c.items {
			if !yield(k, e.value) {
				return
			}
		}
	}
}

// ByRecency returns the live entries as a lazy sequence from most to least
// recently used, without changing recency.
//
// The sequence aliases the cache; it holds no snapshot. Each range over it
// walks the recency list as it is at that moment, so mutations made after
// obtaining the sequence, promotions by Get included, are visible to the
// walk. A walk in progress advances along links it has already read:
// deleting the entry it stands on is safe, deleting the entry ahead of it
// ends the walk early, and promoting entries moves them across the walk's
// position, which can hide them from or repeat them in the remainder.
// Inserting adds at the most recently used end, which the walk has already
// passed, so new entries are not yielded; evictions caused by the insert
// behave like deletions.
func (c *Cache[K, V]) ByRecency() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		root := &c.list.root
		for e := root.next; e != root; {
			next := e.next
			if next == nil {
				// e was unlinked after the walk stepped onto it.
				return
			}
			if !yield(e.key, e.value) {
				return
			}
			e = next
		}
	}
}

// evict removes entries from the least recently used end until both limits
// hold. Entries over either limit leave in strict LRU order.
func (c *Cache[K, V]) evict() {
	for c.overLimit() {
		e := c.list.back()
		if e == nil {
			return
		}
		c.deleteEntry(e)
		c.evictions++
	}
}

func (c *Cache[K, V]) overLimit() bool {
	return (c.maxEntries > 0 && len(c.items) > c.maxEntries) ||
		(c.maxWeight > 0 && c.weight > c.maxWeight)
}

// deleteEntry unlinks e from both the map and the recency list and settles
// the weight account.
func (c *Cache[K, V]) deleteEntry(e *entry[K, V]) {
	c.list.remove(e)
	delete(c.items, e.key)
	c.weight -= e.weight
}
