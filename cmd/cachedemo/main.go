// Command cachedemo runs a synthetic workload against both cache
// implementations and reports throughput and hit rates.
package main

import (
	"flag"
	"fmt"
	"iter"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gogpu/cache"
)

// kvCache is the slice of the cache API the workload needs; both
// implementations satisfy it.
type kvCache interface {
	SetWeighted(key, value, weight int) (int, bool)
	Get(key int) (int, bool)
	Delete(key int) (int, bool)
	Len() int
	Weight() int
	SetMaxEntries(int)
	EvictIfNeeded()
	ByRecency() iter.Seq2[int, int]
	Stats() cache.Stats
}

func main() {
	var (
		entries = flag.Int("entries", 1024, "entry limit, 0 for unlimited")
		weight  = flag.Int("weight", 0, "weight limit, 0 for unlimited")
		ops     = flag.Int("ops", 1_000_000, "operations per run")
		keys    = flag.Int("keys", 8192, "distinct keys in the workload")
		seed    = flag.Int64("seed", 1, "workload seed")
		verbose = flag.Bool("v", false, "log debug events such as slab growth")
	)
	flag.Parse()

	if *entries < 0 || *weight < 0 {
		log.Fatal("entries and weight must not be negative")
	}
	if *ops <= 0 || *keys <= 0 {
		log.Fatal("ops and keys must be positive")
	}

	if *verbose {
		cache.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := cache.Config{MaxEntries: *entries, MaxWeight: *weight}

	pointer := cache.New[int, int](cfg)
	arena := cache.NewArena[int, int](cache.Config{
		MaxEntries:      cfg.MaxEntries,
		MaxWeight:       cfg.MaxWeight,
		InitialCapacity: cfg.MaxEntries,
	})

	runWorkload("Cache", pointer, *ops, *keys, *seed)
	runWorkload("ArenaCache", arena, *ops, *keys, *seed)

	showRecency(pointer)
	tightenLimit(pointer)
}

// runWorkload drives a read-heavy mix: lookups that insert on a miss,
// plain overwrites, and occasional deletes.
func runWorkload(name string, c kvCache, ops, keys int, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	start := time.Now()

	for i := 0; i < ops; i++ {
		key := rng.Intn(keys)
		switch r := rng.Intn(100); {
		case r < 70:
			if _, ok := c.Get(key); !ok {
				c.SetWeighted(key, key, 1+key%16)
			}
		case r < 95:
			c.SetWeighted(key, i, 1+key%16)
		default:
			c.Delete(key)
		}
	}

	elapsed := time.Since(start)
	s := c.Stats()
	fmt.Printf("%-10s  %d ops in %v (%.0f ops/sec)\n",
		name, ops, elapsed.Round(time.Millisecond), float64(ops)/elapsed.Seconds())
	fmt.Printf("            len=%d weight=%d hitRate=%.1f%% evictions=%d\n",
		s.Len, s.Weight, s.HitRate*100, s.Evictions)
}

// showRecency prints the hottest entries according to the recency view.
func showRecency(c kvCache) {
	fmt.Print("hottest keys:")
	n := 0
	for key := range c.ByRecency() {
		fmt.Printf(" %d", key)
		n++
		if n == 5 {
			break
		}
	}
	fmt.Println()
}

// tightenLimit halves the entry limit and applies it explicitly; lowering
// a limit on its own never evicts.
func tightenLimit(c kvCache) {
	before := c.Len()
	if before < 2 {
		return
	}
	c.SetMaxEntries(before / 2)
	fmt.Printf("limit halved: len=%d before EvictIfNeeded\n", c.Len())
	c.EvictIfNeeded()
	fmt.Printf("limit halved: len=%d after EvictIfNeeded\n", c.Len())
}
