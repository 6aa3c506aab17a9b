package frontier

import "container/heap"

// Entry is one (Key, ID) pair stored in the Frontier.
type Entry struct {
	Key float64 // priority: accumulated cost (dijkstra) or f-score (astar)
	ID  string  // node ID, also the tie-break
}

// less is the total order of the Frontier: Key ascending, then ID ascending.
func (e Entry) less(o Entry) bool {
	if e.Key != o.Key {
		return e.Key < o.Key
	}

	return e.ID < o.ID
}

// Frontier is a min-heap of Entry values with lazy invalidation.
// The zero value is an empty, ready-to-use Frontier.
type Frontier struct {
	h entryHeap
}

// New returns an empty Frontier with room for capacity entries.
func New(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}

	return &Frontier{h: make(entryHeap, 0, capacity)}
}

// Push inserts (key, id). Earlier entries for id stay in the heap and become
// stale from the consumer's point of view.
// Complexity: O(log N).
func (f *Frontier) Push(key float64, id string) {
	heap.Push(&f.h, Entry{Key: key, ID: id})
}

// Pop removes and returns the minimal entry; ok is false when empty.
// Complexity: O(log N).
func (f *Frontier) Pop() (Entry, bool) {
	if len(f.h) == 0 {
		return Entry{}, false
	}

	return heap.Pop(&f.h).(Entry), true
}

// Peek returns the minimal entry without removing it; ok is false when empty.
// Complexity: O(1).
func (f *Frontier) Peek() (Entry, bool) {
	if len(f.h) == 0 {
		return Entry{}, false
	}

	return f.h[0], true
}

// Len returns the number of stored entries, stale ones included.
func (f *Frontier) Len() int { return len(f.h) }

// entryHeap implements heap.Interface over Entry values.
type entryHeap []Entry

func (h entryHeap) Len() int           { return len(h) }
func (h entryHeap) Less(i, j int) bool { return h[i].less(h[j]) }
func (h entryHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an Entry.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(Entry)) }

// Pop is called by heap.Pop and removes the last element.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
