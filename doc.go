// Package cache provides generic LRU caches with weighted eviction.
//
// The package offers two implementations with the same operation set,
// differing only in how entries are stored:
//
// # Cache
//
// The straightforward form. Every entry is a separate heap allocation,
// linked into a recency list.
//
//	c := cache.New[string, int](cache.Config{MaxEntries: 128})
//	c.Set("answer", 42)
//	v, ok := c.Get("answer")
//
// # ArenaCache
//
// The allocation-free form. All entries live in a single growable slab and
// are addressed by stable integer offsets; released slots are recycled
// through an internal free list, so steady-state churn performs no
// allocations at all. Use it for hot caches where allocation count and GC
// scan work matter.
//
//	c := cache.NewArena[string, []byte](cache.Config{
//		MaxWeight:       1 << 20,
//		InitialCapacity: 1024,
//	})
//	c.SetWeighted(name, blob, len(blob))
//
// # Weighted eviction
//
// Every entry carries a non-negative weight; Set stores weight 1, and
// SetWeighted stores an explicit weight. A cache enforces up to two limits:
// MaxEntries bounds the number of live entries, MaxWeight bounds the sum of
// live weights, and zero disables either limit. After every insert, least
// recently used entries are evicted until both configured limits hold.
// Changing a limit with SetMaxEntries or SetMaxWeight never evicts on its
// own; call EvictIfNeeded afterwards to enforce the new limit.
//
// # Iteration
//
// All returns the live entries in map iteration order. ByRecency returns
// them from most to least recently used. Both are lazy range-over-func
// sequences over the live cache, not snapshots: mutations made between
// obtaining a sequence and consuming it are visible to the walk. See the
// ByRecency documentation for the exact rules.
//
// # Thread safety
//
// Caches in this package are not safe for concurrent use. Callers that
// share a cache across goroutines must serialize access, for example with
// a sync.Mutex.
//
// # Logging
//
// The package produces no log output by default. Call SetLogger to receive
// the rare lifecycle events (slab growth) on a log/slog logger.
package cache

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
