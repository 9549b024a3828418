package cache

// noSlot terminates the free list and marks the prev link of free slots.
const noSlot int32 = -1

// slot is one cell of an arena: the payload plus the offsets threading it
// into either the recency list or the free list.
type slot[K comparable, V any] struct {
	key    K
	value  V
	weight int

	prev, next int32
}

// arena is a growable slab of slots addressed by stable integer offsets.
//
// Offset 0 is a sentinel that holds no payload. Live slots are threaded
// circularly through it: slots[0].next is the most recently used offset and
// slots[0].prev the least recently used. Free slots form a separate chain,
// singly linked through next and terminated by noSlot, with prev parked at
// noSlot so that a free slot is recognizable by its prev link alone. Every
// non-sentinel offset is on exactly one of the two chains.
//
// Growth appends slots to the slab and never moves an issued offset:
// offsets index the slice, and reallocation keeps indices intact. Callers
// must not hold a *slot across anything that can grow the slab.
type arena[K comparable, V any] struct {
	slots []slot[K, V]
	free  int32
}

func (a *arena[K, V]) init(capacity int) {
	// The sentinel is born self linked: the zero slot's links are 0.
	a.slots = make([]slot[K, V], 1, 1+capacity)
	a.free = noSlot
	if capacity > 0 {
		a.grow(capacity)
	}
}

// allocate pops an offset from the free list, growing the slab by half its
// size (at least one slot) first when the free list is empty. The returned
// slot is not yet on either chain; the caller fills it and attaches it.
func (a *arena[K, V]) allocate() int32 {
	if a.free == noSlot {
		n := len(a.slots) / 2
		if n == 0 {
			n = 1
		}
		a.grow(n)
	}
	off := a.free
	a.free = a.slots[off].next
	return off
}

// release zeroes the payload of off, letting the garbage collector reclaim
// the key and value, and pushes the offset onto the free list. off must be
// detached from the live list first.
func (a *arena[K, V]) release(off int32) {
	a.slots[off] = slot[K, V]{}
	a.pushFree(off)
}

// pushFree puts off at the head of the free list, so offsets are reused in
// last-freed-first order.
func (a *arena[K, V]) pushFree(off int32) {
	a.slots[off].prev = noSlot
	a.slots[off].next = a.free
	a.free = off
}

// grow appends n slots to the slab and threads them into the free list,
// lowest offset on top.
func (a *arena[K, V]) grow(n int) {
	start := len(a.slots)
	a.slots = append(a.slots, make([]slot[K, V], n)...)
	for i := len(a.slots) - 1; i >= start; i-- {
		a.pushFree(int32(i))
	}
	Logger().Debug("cache: arena slab grown", "slots", len(a.slots)-1, "added", n)
}

// attachFront splices off in as the most recently used live slot.
func (a *arena[K, V]) attachFront(off int32) {
	first := a.slots[0].next
	a.slots[off].prev = 0
	a.slots[off].next = first
	a.slots[0].next = off
	a.slots[first].prev = off
}

// detach unlinks off from the live list, reconnecting its neighbors. The
// slot's own links are left stale; the caller either reattaches or
// releases it.
func (a *arena[K, V]) detach(off int32) {
	prev, next := a.slots[off].prev, a.slots[off].next
	a.slots[prev].next = next
	a.slots[next].prev = prev
}

// moveToFront makes off the most recently used live slot.
func (a *arena[K, V]) moveToFront(off int32) {
	a.detach(off)
	a.attachFront(off)
}

// tail returns the least recently used live offset, or noSlot if the live
// list is empty.
func (a *arena[K, V]) tail() int32 {
	if a.slots[0].prev == 0 {
		return noSlot
	}
	return a.slots[0].prev
}

// clear releases every slot and rebuilds the free list over the whole
// slab, keeping the allocated capacity for reuse.
func (a *arena[K, V]) clear() {
	clear(a.slots[1:])
	a.free = noSlot
	for i := len(a.slots) - 1; i >= 1; i-- {
		a.pushFree(int32(i))
	}
	a.slots[0].prev = 0
	a.slots[0].next = 0
}
