package cache

import "testing"

// keys walks the list from most to least recently used.
func (l *entryList[K, V]) keys() []K {
	var out []K
	for e := l.root.next; e != &l.root; e = e.next {
		out = append(out, e.key)
	}
	return out
}

func TestEntryListPushFront(t *testing.T) {
	var l entryList[string, int]
	l.init()

	if l.front() != nil || l.back() != nil {
		t.Fatal("expected empty list after init")
	}

	a := &entry[string, int]{key: "a"}
	b := &entry[string, int]{key: "b"}
	c := &entry[string, int]{key: "c"}
	l.pushFront(a)
	l.pushFront(b)
	l.pushFront(c)

	if got := l.keys(); len(got) != 3 || got[0] != "c" || got[1] != "b" || got[2] != "a" {
		t.Errorf("expected order [c b a], got %v", got)
	}
	if l.front() != c {
		t.Errorf("expected front to be c, got %v", l.front().key)
	}
	if l.back() != a {
		t.Errorf("expected back to be a, got %v", l.back().key)
	}
}

func TestEntryListMoveToFront(t *testing.T) {
	var l entryList[string, int]
	l.init()

	a := &entry[string, int]{key: "a"}
	b := &entry[string, int]{key: "b"}
	c := &entry[string, int]{key: "c"}
	l.pushFront(a)
	l.pushFront(b)
	l.pushFront(c)

	// Promote the oldest entry.
	l.moveToFront(a)
	if got := l.keys(); got[0] != "a" || got[2] != "b" {
		t.Errorf("expected order [a c b], got %v", got)
	}

	// Promoting the front entry is a no-op for the order.
	l.moveToFront(a)
	if got := l.keys(); got[0] != "a" || got[2] != "b" {
		t.Errorf("expected order [a c b], got %v", got)
	}
}

func TestEntryListRemove(t *testing.T) {
	var l entryList[string, int]
	l.init()

	a := &entry[string, int]{key: "a"}
	b := &entry[string, int]{key: "b"}
	c := &entry[string, int]{key: "c"}
	l.pushFront(a)
	l.pushFront(b)
	l.pushFront(c)

	l.remove(b)
	if got := l.keys(); len(got) != 2 || got[0] != "c" || got[1] != "a" {
		t.Errorf("expected order [c a], got %v", got)
	}

	// Removed entries have their links cleared.
	if b.prev != nil || b.next != nil {
		t.Error("expected removed entry links to be nil")
	}

	l.remove(c)
	l.remove(a)
	if l.front() != nil || l.back() != nil {
		t.Error("expected empty list after removing every entry")
	}
}

func TestEntryListSentinelCircularity(t *testing.T) {
	var l entryList[int, int]
	l.init()

	// An empty list is the root linked to itself.
	if l.root.next != &l.root || l.root.prev != &l.root {
		t.Fatal("expected root to be self linked when empty")
	}

	e := &entry[int, int]{key: 1}
	l.pushFront(e)
	if e.prev != &l.root || e.next != &l.root {
		t.Error("expected a single entry to be linked to the root on both sides")
	}

	l.remove(e)
	if l.root.next != &l.root || l.root.prev != &l.root {
		t.Error("expected root to be self linked again after removal")
	}
}
