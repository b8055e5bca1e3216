// Package pathfilter implements predicates over filesystem paths and the
// combinators to compose them. Predicates are built from testers (exact
// strings, patterns or arbitrary functions) applied to a substring derived
// from the path, such as its basename, extension or segment list.
package pathfilter

import "context"

// Predicate decides whether a path counts as a match. Implementations may
// read the filesystem but must not mutate any traversal state; a returned
// error aborts the enclosing evaluation and surfaces to its caller.
type Predicate func(ctx context.Context, path string) (bool, error)

// AllOf combines the given predicates into their conjunction. Predicates are
// evaluated left to right, stopping at the first false; an empty predicate
// list yields a predicate that is true for every input. A predicate failure
// propagates immediately, with no further predicates evaluated.
func AllOf(preds ...Predicate) Predicate {
	return func(ctx context.Context, path string) (bool, error) {
		for _, pred := range preds {
			ok, err := pred(ctx, path)
			if err != nil {
				return false, err
			}

			if !ok {
				return false, nil
			}
		}

		return true, nil
	}
}

// AnyOf combines the given predicates into their disjunction. Predicates are
// evaluated left to right, stopping at the first true; an empty predicate
// list yields a predicate that is false for every input. A predicate failure
// propagates immediately, with no further predicates evaluated.
func AnyOf(preds ...Predicate) Predicate {
	return func(ctx context.Context, path string) (bool, error) {
		for _, pred := range preds {
			ok, err := pred(ctx, path)
			if err != nil {
				return false, err
			}

			if ok {
				return true, nil
			}
		}

		return false, nil
	}
}
