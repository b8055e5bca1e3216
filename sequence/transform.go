package sequence

// Filter returns a [Seq] producing only the elements of seq for which keep
// returns true, preserving order. The inclusion decision for an element is
// resolved before the next element's predicate runs. A predicate failure is
// produced in place of that element and terminates the sequence; later
// elements are never pulled.
func Filter[T any](seq Seq[T], keep func(item T) (bool, error)) Seq[T] {
	return func(yield func(T, error) bool) {
		seq(func(item T, err error) bool {
			if err != nil {
				yield(item, err)

				return false
			}

			ok, err := keep(item)
			if err != nil {
				var zeroVal T
				yield(zeroVal, err)

				return false
			}

			if !ok {
				return true
			}

			return yield(item, nil)
		})
	}
}

// Map returns a [Seq] producing fn applied to each element of seq, in order.
// A mapping failure is produced in place of that element and terminates the
// sequence.
func Map[T, U any](seq Seq[T], fn func(item T) (U, error)) Seq[U] {
	return func(yield func(U, error) bool) {
		seq(func(item T, err error) bool {
			var zeroVal U

			if err != nil {
				yield(zeroVal, err)

				return false
			}

			mapped, err := fn(item)
			if err != nil {
				yield(zeroVal, err)

				return false
			}

			return yield(mapped, nil)
		})
	}
}

// FlatMap returns a [Seq] producing, for each element of seq, all values
// expand returned for it (possibly none), in the order returned. Outputs of
// an earlier element always precede outputs of a later one. An expansion
// failure is produced in place of that element's outputs and terminates the
// sequence.
func FlatMap[T, U any](seq Seq[T], expand func(item T) ([]U, error)) Seq[U] {
	return func(yield func(U, error) bool) {
		seq(func(item T, err error) bool {
			var zeroVal U

			if err != nil {
				yield(zeroVal, err)

				return false
			}

			expanded, err := expand(item)
			if err != nil {
				yield(zeroVal, err)

				return false
			}

			for _, out := range expanded {
				if !yield(out, nil) {
					return false
				}
			}

			return true
		})
	}
}
