package cache

// entry is a single cache entry: the payload plus its position in the
// recency list.
type entry[K comparable, V any] struct {
	key    K
	value  V
	weight int

	prev, next *entry[K, V]
}

// entryList is a doubly linked recency list threaded circularly through a
// sentinel root. root.next is the most recently used entry and root.prev
// the least recently used. The circular form keeps attach and detach free
// of nil checks.
//
// The zero value is not ready for use; call init first.
type entryList[K comparable, V any] struct {
	root entry[K, V]
}

func (l *entryList[K, V]) init() {
	l.root.prev = &l.root
	l.root.next = &l.root
}

// pushFront splices e in directly after the root, making it the most
// recently used entry. e must not be on the list already.
func (l *entryList[K, V]) pushFront(e *entry[K, V]) {
	e.prev = &l.root
	e.next = l.root.next
	e.prev.next = e
	e.next.prev = e
}

// remove unlinks e and clears its own links, so a walk standing on e stops
// instead of wandering into unlinked entries.
func (l *entryList[K, V]) remove(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = nil
	e.next = nil
}

// moveToFront makes e the most recently used entry. e must be on the list.
func (l *entryList[K, V]) moveToFront(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	l.pushFront(e)
}

// back returns the least recently used entry, or nil if the list is empty.
func (l *entryList[K, V]) back() *entry[K, V] {
	if l.root.prev == &l.root {
		return nil
	}
	return l.root.prev
}

// front returns the most recently used entry, or nil if the list is empty.
func (l *entryList[K, V]) front() *entry[K, V] {
	if l.root.next == &l.root {
		return nil
	}
	return l.root.next
}
