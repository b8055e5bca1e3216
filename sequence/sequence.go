// Package sequence implements lazy, forward-only sequences and the
// transformations the traversal and finder layers are built on. A sequence
// produces its elements on demand; stopping consumption stops all further
// production, so no work happens for elements nobody pulls.
package sequence

// Seq is a pull-based sequence of values paired with an in-band error. When
// iterated, it calls yield for each element until the sequence is exhausted
// or yield returns false. A non-nil error is always the terminal element;
// no values follow it.
//
// A Seq is single-use: once consumed (fully or partially), a fresh Seq must
// be constructed to iterate again.
type Seq[T any] func(yield func(T, error) bool)

// Of returns a [Seq] producing the given items in order.
func Of[T any](items ...T) Seq[T] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}

// Empty returns a [Seq] producing no elements.
func Empty[T any]() Seq[T] {
	return func(yield func(T, error) bool) {}
}

// Fail returns a [Seq] whose only element is the given failure.
func Fail[T any](err error) Seq[T] {
	return func(yield func(T, error) bool) {
		var zeroVal T
		yield(zeroVal, err)
	}
}

// Concat returns a [Seq] producing the elements of the given sequences one
// sequence after the other, in the order they were given. A failure in any
// sequence terminates the concatenation at that element.
func Concat[T any](seqs ...Seq[T]) Seq[T] {
	return func(yield func(T, error) bool) {
		for _, seq := range seqs {
			ok := true

			seq(func(item T, err error) bool {
				if err != nil {
					yield(item, err)
					ok = false

					return false
				}

				ok = yield(item, nil)

				return ok
			})

			if !ok {
				return
			}
		}
	}
}

// Collect drains the given [Seq] into a slice, preserving order. It returns
// the first failure produced by the sequence, together with the elements
// collected up to that point.
func Collect[T any](seq Seq[T]) ([]T, error) {
	items := []T{}

	var failure error

	seq(func(item T, err error) bool {
		if err != nil {
			failure = err

			return false
		}

		items = append(items, item)

		return true
	})

	if failure != nil {
		return items, failure
	}

	return items, nil
}

// First pulls the first element of the given [Seq], reporting whether one
// existed. No further elements are produced after the first.
func First[T any](seq Seq[T]) (T, bool, error) {
	var first T
	var found bool
	var failure error

	seq(func(item T, err error) bool {
		if err != nil {
			failure = err

			return false
		}

		first = item
		found = true

		return false
	})

	if failure != nil {
		var zeroVal T

		return zeroVal, false, failure
	}

	return first, found, nil
}
