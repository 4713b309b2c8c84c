// Package crawl: work queue with deduplication.
// ParseNumbers collects a selection through it and Crawler.Run drains it,
// so an element is processed at most once per run.
package crawl

// Queue is a FIFO queue of atomic numbers with deduplication.
type Queue struct {
	items []int
	seen  map[int]bool
	idx   int // current read position
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		seen: make(map[int]bool),
	}
}

// Add enqueues an atomic number if it hasn't been seen before.
func (q *Queue) Add(n int) {
	if q.seen[n] {
		return
	}
	q.seen[n] = true
	q.items = append(q.items, n)
}

// HasNext returns true if there are unprocessed numbers.
func (q *Queue) HasNext() bool {
	return q.idx < len(q.items)
}

// Next returns the next unprocessed number and advances the pointer.
func (q *Queue) Next() int {
	n := q.items[q.idx]
	q.idx++
	return n
}

// Len returns the total number of unique numbers seen.
func (q *Queue) Len() int {
	return len(q.seen)
}

// All returns all queued numbers in insertion order.
func (q *Queue) All() []int {
	return append([]int(nil), q.items...)
}
