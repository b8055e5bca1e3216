package traverse

// frontier is the pending-to-expand queue of a breadth-first walk. A
// traversal is single-consumer by contract, so no locking is involved.
type frontier[T any] struct {
	head  int
	items []T
}

func newFrontier[T any]() *frontier[T] {
	return &frontier[T]{}
}

// Enqueue adds items to the frontier.
func (q *frontier[T]) Enqueue(items ...T) {
	q.items = append(q.items, items...)
}

// Dequeue returns an item from the frontier and advances the frontier head.
func (q *frontier[T]) Dequeue() (T, bool) {
	if q.head >= len(q.items) {
		var zeroVal T

		return zeroVal, false
	}

	item := q.items[q.head]
	q.head++

	return item, true
}

// HasRemainingItems returns whether the frontier has remaining items.
func (q *frontier[T]) HasRemainingItems() bool {
	return q.head < len(q.items)
}
