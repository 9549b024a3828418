package cache

// Stats is a point-in-time snapshot of a cache's contents and lifetime
// access counters.
type Stats struct {
	// Len is the current number of live entries.
	Len int

	// Weight is the current sum of live entry weights.
	Weight int

	// Hits is the number of lookups that found an entry.
	Hits uint64

	// Misses is the number of lookups that found nothing.
	Misses uint64

	// HitRate is Hits over all lookups, in [0, 1]. 0 before any lookup.
	HitRate float64

	// Evictions is the number of entries removed by limit enforcement.
	// Delete and Clear do not count.
	Evictions uint64

	// Insertions is the number of entries created by Set, SetWeighted and
	// GetOrCreate. Updates of existing keys do not count.
	Insertions uint64
}

// counters accumulates the lifetime totals embedded in both cache variants.
// Plain integers; the caches are single-threaded.
type counters struct {
	hits       uint64
	misses     uint64
	evictions  uint64
	insertions uint64
}

func (c *counters) snapshot(length, weight int) Stats {
	var hitRate float64
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}
	return Stats{
		Len:        length,
		Weight:     weight,
		Hits:       c.hits,
		Misses:     c.misses,
		HitRate:    hitRate,
		Evictions:  c.evictions,
		Insertions: c.insertions,
	}
}
