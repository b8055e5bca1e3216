package finder

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/desertwitch/pathfind/pathfilter"
	"github.com/desertwitch/pathfind/sequence"
)

// matchSeq lazily scans the direct children of every scope directory, in
// scope order and listing order, producing the paths satisfying the
// conjunction of the given predicates. Predicate failures propagate
// verbatim; a scope entry that is missing or not a directory fails the scan
// at that entry.
func (h *Handler) matchSeq(ctx context.Context, scope Scope, preds []pathfilter.Predicate) sequence.Seq[string] {
	match := pathfilter.AllOf(preds...)

	return func(yield func(string, error) bool) {
		h.startDirs(scope)(func(dir string, err error) bool {
			if err != nil {
				yield("", err)

				return false
			}

			dirPath, err := filepath.Abs(dir)
			if err != nil {
				yield("", fmt.Errorf("(finder-scan) failed to resolve scope: %w", err))

				return false
			}

			info, err := h.OSOps.Stat(dirPath)
			if err != nil {
				yield("", fmt.Errorf("(finder-scan) failed to stat scope: %w", err))

				return false
			}
			if !info.IsDir() {
				yield("", fmt.Errorf("(finder-scan) %w: %s", ErrScopeNotDirectory, dirPath))

				return false
			}

			children, err := h.OSOps.ReadDir(dirPath)
			if err != nil {
				yield("", fmt.Errorf("(finder-scan) failed to readdir: %w", err))

				return false
			}

			for _, child := range children {
				if err := ctx.Err(); err != nil {
					yield("", fmt.Errorf("(finder-scan) %w", err))

					return false
				}

				path := filepath.Join(dirPath, child.Name())

				ok, err := match(ctx, path)
				if err != nil {
					yield("", err)

					return false
				}

				if !ok {
					continue
				}

				if !yield(path, nil) {
					return false
				}
			}

			return true
		})
	}
}

// FindFile returns the first path across the scope, in scope order and
// listing order within each directory, whose direct-child entry satisfies
// all given predicates. It returns an empty path (and no error) when the
// scope or the predicate list is empty, or when nothing matches. Scanning
// stops at the first match; no further entries are evaluated.
func (h *Handler) FindFile(ctx context.Context, scope Scope, preds ...pathfilter.Predicate) (string, error) {
	if len(preds) == 0 {
		return "", nil
	}

	match, _, err := sequence.First(h.matchSeq(ctx, scope, preds))
	if err != nil {
		return "", err
	}

	return match, nil
}

// FindAllFiles returns every matching path across the scope, concatenated in
// scope order and listing order within each directory. It returns an empty
// slice when the scope or the predicate list is empty.
func (h *Handler) FindAllFiles(ctx context.Context, scope Scope, preds ...pathfilter.Predicate) ([]string, error) {
	if len(preds) == 0 {
		return []string{}, nil
	}

	matches, err := sequence.Collect(h.matchSeq(ctx, scope, preds))
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// StrictFindFile returns the single path across the scope satisfying all
// given predicates. It returns an empty path (and no error) when nothing
// matches, and fails with [ErrAmbiguousMatch] as soon as a second match is
// seen. Uniqueness cannot be confirmed without looking past the first
// match, so the scan always continues at least one element beyond it.
func (h *Handler) StrictFindFile(ctx context.Context, scope Scope, preds ...pathfilter.Predicate) (string, error) {
	if len(preds) == 0 {
		return "", nil
	}

	var first string
	var matches int
	var failure error

	h.matchSeq(ctx, scope, preds)(func(path string, err error) bool {
		if err != nil {
			failure = err

			return false
		}

		matches++
		if matches == 1 {
			first = path

			return true
		}

		failure = fmt.Errorf("(finder-strict) %w: %s and %s", ErrAmbiguousMatch, first, path)

		return false
	})

	if failure != nil {
		return "", failure
	}

	return first, nil
}

// FindFileSync is [Handler.FindFile] without suspension points.
func (h *Handler) FindFileSync(scope Scope, preds ...pathfilter.Predicate) (string, error) {
	return h.FindFile(context.Background(), scope, preds...)
}

// FindAllFilesSync is [Handler.FindAllFiles] without suspension points.
func (h *Handler) FindAllFilesSync(scope Scope, preds ...pathfilter.Predicate) ([]string, error) {
	return h.FindAllFiles(context.Background(), scope, preds...)
}

// StrictFindFileSync is [Handler.StrictFindFile] without suspension points.
func (h *Handler) StrictFindFileSync(scope Scope, preds ...pathfilter.Predicate) (string, error) {
	return h.StrictFindFile(context.Background(), scope, preds...)
}
