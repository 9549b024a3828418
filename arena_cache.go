package cache

import "iter"

// ArenaCache is an LRU cache with weighted eviction, equivalent in contract
// to Cache but backed by a single growable slab. Entries occupy slots
// addressed by stable integer offsets instead of separate heap allocations,
// so steady-state churn allocates nothing and the garbage collector sees
// one slice instead of a linked structure.
//
// All operations run in constant time, amortized over slab growth.
// ArenaCache is not safe for concurrent use. The zero value is not ready
// for use; call NewArena.
type ArenaCache[K comparable, V any] struct {
	items map[K]int32
	arena arena[K, V]

	maxEntries int
	maxWeight  int
	weight     int

	counters
}

// NewArena creates an empty ArenaCache with the given limits. A non-zero
// cfg.InitialCapacity sizes the slab so that early inserts do not grow it.
// NewArena panics if cfg contains a negative value.
func NewArena[K comparable, V any](cfg Config) *ArenaCache[K, V] {
	cfg.validate()
	c := &ArenaCache[K, V]{
		items:      make(map[K]int32, cfg.InitialCapacity),
		maxEntries: cfg.MaxEntries,
		maxWeight:  cfg.MaxWeight,
	}
	c.arena.init(cfg.InitialCapacity)
	return c
}

// Set inserts or updates key with weight 1. It is shorthand for
// SetWeighted(key, value, 1).
func (c *ArenaCache[K, V]) Set(key K, value V) (prev V, replaced bool) {
	return c.SetWeighted(key, value, 1)
}

// SetWeighted inserts or updates key with an explicit weight and makes the
// entry the most recently used. If the key was already present, its value
// and weight are replaced in place and the previous value is returned.
//
// Eviction runs before SetWeighted returns, so the cache never stays over
// its limits. An entry whose weight alone exceeds MaxWeight is inserted
// and then evicted again by the same call; the return values still
// describe only the state prior to the call.
//
// SetWeighted panics if weight is negative.
func (c *ArenaCache[K, V]) SetWeighted(key K, value V, weight int) (prev V, replaced bool) {
	if weight < 0 {
		panic("cache: negative entry weight")
	}

	if off, ok := c.items[key]; ok {
		s := &c.arena.slots[off]
		prev = s.value
		c.weight += weight - s.weight
		s.value = value
		s.weight = weight
		c.arena.moveToFront(off)
		c.evict()
		return prev, true
	}

	// Allocate before touching the slot: allocation may grow the slab.
	off := c.arena.allocate()
	s := &c.arena.slots[off]
	s.key = key
	s.value = value
	s.weight = weight
	c.arena.attachFront(off)
	c.items[key] = off
	c.weight += weight
	c.insertions++
	c.evict()
	return prev, false
}

// Get returns the value stored for key and makes the entry the most
// recently used. The second result reports whether the key was present.
func (c *ArenaCache[K, V]) Get(key K) (value V, ok bool) {
	off, ok := c.items[key]
	if !ok {
		c.misses++
		return value, false
	}
	c.arena.moveToFront(off)
	c.hits++
	return c.arena.slots[off].value, true
}

// GetOrCreate returns the value stored for key, creating it on a miss.
// A hit promotes the entry exactly like Get. On a miss, create is called,
// its result is inserted with weight 1, and eviction runs as for Set.
func (c *ArenaCache[K, V]) GetOrCreate(key K, create func() V) V {
	if off, ok := c.items[key]; ok {
		c.arena.moveToFront(off)
		c.hits++
		return c.arena.slots[off].value
	}
	c.misses++
	value := create()
	c.SetWeighted(key, value, 1)
	return value
}

// Peek returns the value stored for key without changing its recency.
func (c *ArenaCache[K, V]) Peek(key K) (value V, ok bool) {
	off, ok := c.items[key]
	if !ok {
		return value, false
	}
	return c.arena.slots[off].value, true
}

// Contains reports whether key is present without changing its recency.
func (c *ArenaCache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Delete removes key and returns the value it held. The slot is recycled
// through the free list. The second result reports whether the key was
// present.
func (c *ArenaCache[K, V]) Delete(key K) (value V, ok bool) {
	off, ok := c.items[key]
	if !ok {
		return value, false
	}
	value = c.arena.slots[off].value
	c.deleteSlot(key, off)
	return value, true
}

// Oldest returns the least recently used entry, the next eviction
// candidate, without changing its recency.
func (c *ArenaCache[K, V]) Oldest() (key K, value V, ok bool) {
	off := c.arena.tail()
	if off == noSlot {
		return key, value, false
	}
	s := &c.arena.slots[off]
	return s.key, s.value, true
}

// Len returns the number of live entries.
func (c *ArenaCache[K, V]) Len() int { return len(c.items) }

// Weight returns the sum of live entry weights.
func (c *ArenaCache[K, V]) Weight() int { return c.weight }

// Cap returns the number of slots the slab currently holds, live and free
// together. It grows as the cache grows and never shrinks.
func (c *ArenaCache[K, V]) Cap() int { return len(c.arena.slots) - 1 }

// MaxEntries returns the entry limit. 0 means unlimited.
func (c *ArenaCache[K, V]) MaxEntries() int { return c.maxEntries }

// MaxWeight returns the weight limit. 0 means unlimited.
func (c *ArenaCache[K, V]) MaxWeight() int { return c.maxWeight }

// SetMaxEntries changes the entry limit; 0 disables it. Lowering the limit
// below the current Len does not evict anything by itself; call
// EvictIfNeeded to enforce the new limit.
//
// SetMaxEntries panics if limit is negative.
func (c *ArenaCache[K, V]) SetMaxEntries(limit int) {
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
func (c *ArenaCache[K, V]) SetMaxWeight(limit int) {
	if limit < 0 {
		panic("cache: negative MaxWeight")
	}
	c.maxWeight = limit
}

// EvictIfNeeded removes least recently used entries until both configured
// limits are satisfied. Inserts run it automatically; it exists so that
// lowering a limit, which never evicts on its own, can be followed by an
// explicit enforcement pass.
func (c *ArenaCache[K, V]) EvictIfNeeded() {
	c.evict()
}

// Clear removes all entries and recycles every slot. The slab keeps its
// capacity; limits and lifetime counters are kept as well.
func (c *ArenaCache[K, V]) Clear() {
	c.arena.clear()
	clear(c.items)
	c.weight = 0
}

// Stats returns a snapshot of the cache contents and access counters.
func (c *ArenaCache[K, V]) Stats() Stats {
	return c.counters.snapshot(len(c.items), c.weight)
}

// All returns the live entries as a lazy sequence in map iteration order.
// The sequence ranges over the cache itself, not a snapshot, and does not
// change recency. Mutating the cache while consuming the sequence follows
// the usual Go map iteration rules.
func (c *ArenaCache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, off := range c.items {
			if !yield(k, c.arena.slots[off].value) {
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
//
// Slot recycling adds one slab-specific case: when an insert reuses the
// slot of an entry deleted ahead of the walk before the walk reaches it,
// the walk finds a live entry where the deletion left a dead end and
// continues from the reused slot's position in the list.
func (c *ArenaCache[K, V]) ByRecency() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for off := c.arena.slots[0].next; off != 0; {
			s := &c.arena.slots[off]
			if s.prev == noSlot {
				// The slot was freed after the walk stepped onto it.
				return
			}
			next := s.next
			if !yield(s.key, s.value) {
				return
			}
			off = next
		}
	}
}

// evict removes entries from the least recently used end until both limits
// hold. Entries over either limit leave in strict LRU order.
func (c *ArenaCache[K, V]) evict() {
	for c.overLimit() {
		off := c.arena.tail()
		if off == noSlot {
			return
		}
		c.deleteSlot(c.arena.slots[off].key, off)
		c.evictions++
	}
}

func (c *ArenaCache[K, V]) overLimit() bool {
	return (c.maxEntries > 0 && len(c.items) > c.maxEntries) ||
		(c.maxWeight > 0 && c.weight > c.maxWeight)
}

// deleteSlot detaches off from the live list, settles the weight account,
// and recycles the slot. The key is taken as an argument because release
// zeroes the slot's payload.
func (c *ArenaCache[K, V]) deleteSlot(key K, off int32) {
	c.arena.detach(off)
	c.weight -= c.arena.slots[off].weight
	c.arena.release(off)
	delete(c.items, key)
}
