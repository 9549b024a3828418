package cache

// Config controls the capacity of a cache.
//
// The zero value is valid and describes an unbounded cache.
type Config struct {
	// MaxEntries bounds the number of live entries. 0 means unlimited.
	MaxEntries int

	// MaxWeight bounds the sum of live entry weights. 0 means unlimited.
	MaxWeight int

	// InitialCapacity pre-allocates slots in an ArenaCache so that early
	// inserts do not grow the slab. Ignored by Cache. 0 starts empty.
	InitialCapacity int
}

// validate panics on configurations that can only come from a caller bug.
func (cfg Config) validate() {
	if cfg.MaxEntries < 0 {
		panic("cache: negative MaxEntries")
	}
	if cfg.MaxWeight < 0 {
		panic("cache: negative MaxWeight")
	}
	if cfg.InitialCapacity < 0 {
		panic("cache: negative InitialCapacity")
	}
}
