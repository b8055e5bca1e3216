package pathfilter

import (
	"context"
	"path/filepath"
	"strings"
)

// ofExtracted builds a [Predicate] testing one substring of the path against
// the disjunction of the given testers. Zero testers yield a predicate that
// can never match.
func ofExtracted(extract func(path string) string, testers []Tester) Predicate {
	match := AnyOf(testersAsPredicates(testers)...)

	return func(ctx context.Context, path string) (bool, error) {
		return match(ctx, extract(path))
	}
}

// OfBasename returns a [Predicate] matching paths whose basename matches any
// of the given testers.
func OfBasename(testers ...Tester) Predicate {
	return ofExtracted(filepath.Base, testers)
}

// OfName returns a [Predicate] matching paths whose basename, stripped of
// its extension, matches any of the given testers.
func OfName(testers ...Tester) Predicate {
	return ofExtracted(func(path string) string {
		base := filepath.Base(path)

		return strings.TrimSuffix(base, filepath.Ext(base))
	}, testers)
}

// OfDirname returns a [Predicate] matching paths whose directory part
// matches any of the given testers.
func OfDirname(testers ...Tester) Predicate {
	return ofExtracted(filepath.Dir, testers)
}

// OfExtname returns a [Predicate] matching paths whose extension (including
// the leading dot) matches any of the given testers.
func OfExtname(testers ...Tester) Predicate {
	return ofExtracted(filepath.Ext, testers)
}
