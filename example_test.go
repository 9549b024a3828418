package cache_test

import (
	"fmt"

	"github.com/gogpu/cache"
)

func ExampleCache() {
	c := cache.New[string, int](cache.Config{MaxEntries: 2})

	c.Set("one", 1)
	c.Set("two", 2)
	c.Set("three", 3) // pushes "one" out

	if _, ok := c.Get("one"); !ok {
		fmt.Println("one was evicted")
	}
	v, _ := c.Get("three")
	fmt.Println("three =", v)
	// Output:
	// one was evicted
	// three = 3
}

func ExampleArenaCache() {
	c := cache.NewArena[string, string](cache.Config{
		MaxWeight:       10,
		InitialCapacity: 4,
	})

	c.SetWeighted("small", "s", 2)
	c.SetWeighted("large", "L", 8)
	c.SetWeighted("huge", "H", 6) // evicts small and large

	fmt.Println("len:", c.Len(), "weight:", c.Weight())
	// Output:
	// len: 1 weight: 6
}

func ExampleCache_ByRecency() {
	c := cache.New[string, int](cache.Config{})
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)
	c.Get("a") // promote

	for k, v := range c.ByRecency() {
		fmt.Println(k, v)
	}
	// Output:
	// a 1
	// c 3
	// b 2
}

func ExampleCache_EvictIfNeeded() {
	c := cache.New[string, int](cache.Config{})
	c.SetWeighted("a", 1, 5)
	c.SetWeighted("b", 2, 5)
	c.SetWeighted("c", 3, 5)

	// Lowering a limit never evicts by itself.
	c.SetMaxWeight(10)
	fmt.Println("before:", c.Len())

	c.EvictIfNeeded()
	fmt.Println("after:", c.Len())
	// Output:
	// before: 3
	// after: 2
}

func ExampleCache_GetOrCreate() {
	c := cache.New[string, int](cache.Config{MaxEntries: 8})
	expensive := func() int {
		fmt.Println("computing")
		return 42
	}

	fmt.Println(c.GetOrCreate("answer", expensive))
	fmt.Println(c.GetOrCreate("answer", expensive))
	// Output:
	// computing
	// 42
	// 42
}

func ExampleCache_SetWeighted() {
	c := cache.New[string, []byte](cache.Config{MaxWeight: 1 << 10})

	payload := []byte("some bytes worth caching")
	c.SetWeighted("blob", payload, len(payload))

	fmt.Println("weight:", c.Weight())
	// Output:
	// weight: 24
}
