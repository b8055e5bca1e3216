package pathfilter

import (
	"context"
	"path/filepath"
	"strings"
)

// Segments splits the given path into its ordered segment list. The path is
// cleaned first; the root segment, a single leading "." and any trailing
// empty or whitespace-only segments are removed.
func Segments(path string) []string {
	parts := strings.Split(filepath.Clean(path), string(filepath.Separator))

	segments := make([]string, 0, len(parts))
	for i, part := range parts {
		if i == 0 && (part == "" || part == ".") {
			continue
		}

		segments = append(segments, part)
	}

	for len(segments) > 0 && strings.TrimSpace(segments[len(segments)-1]) == "" {
		segments = segments[:len(segments)-1]
	}

	return segments
}

// HasPathSegments returns a [Predicate] matching paths where every segment
// matches any of the given testers. Zero testers yield a predicate that can
// never match.
func HasPathSegments(testers ...Tester) Predicate {
	match := AnyOf(testersAsPredicates(testers)...)

	return func(ctx context.Context, path string) (bool, error) {
		if len(testers) == 0 {
			return false, nil
		}

		for _, segment := range Segments(path) {
			ok, err := match(ctx, segment)
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

// HasNoPathSegments returns a [Predicate] matching paths where no segment
// matches any of the given testers. Zero testers yield a predicate that can
// never match.
func HasNoPathSegments(testers ...Tester) Predicate {
	match := AnyOf(testersAsPredicates(testers)...)

	return func(ctx context.Context, path string) (bool, error) {
		if len(testers) == 0 {
			return false, nil
		}

		for _, segment := range Segments(path) {
			ok, err := match(ctx, segment)
			if err != nil {
				return false, err
			}

			if ok {
				return false, nil
			}
		}

		return true, nil
	}
}
