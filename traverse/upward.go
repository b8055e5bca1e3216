package traverse

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/desertwitch/pathfind/sequence"
)

// UpwardPaths returns a lazy sequence of the ancestors of the start path,
// nearest first, ending with (and including) the filesystem root. The start
// path itself is never produced. The sequence is pure path algebra: it does
// not require the start path, or any ancestor, to exist on disk.
func (h *Handler) UpwardPaths(ctx context.Context, start string) sequence.Seq[string] {
	return func(yield func(string, error) bool) {
		current, err := filepath.Abs(start)
		if err != nil {
			yield("", fmt.Errorf("(traverse-up) failed to resolve start: %w", err))

			return
		}

		for {
			if err := ctx.Err(); err != nil {
				yield("", fmt.Errorf("(traverse-up) %w", err))

				return
			}

			parent := filepath.Dir(current)
			if parent == current {
				return
			}

			if !yield(parent, nil) {
				return
			}

			current = parent
		}
	}
}

// UpwardPathsWithin is [Handler.UpwardPaths] bounded to at most maxHeight
// ancestors. A maxHeight of zero or below yields nothing.
func (h *Handler) UpwardPathsWithin(ctx context.Context, start string, maxHeight int) sequence.Seq[string] {
	return func(yield func(string, error) bool) {
		if maxHeight <= 0 {
			return
		}

		yielded := 0

		h.UpwardPaths(ctx, start)(func(path string, err error) bool {
			if err != nil {
				yield("", err)

				return false
			}

			if !yield(path, nil) {
				return false
			}

			yielded++

			return yielded < maxHeight
		})
	}
}

// UpwardPathsUntil is [Handler.UpwardPaths] bounded by a limit path: it
// yields ancestors up to and including the limit, then stops. If the limit
// is never encountered, it yields all the way to the filesystem root.
func (h *Handler) UpwardPathsUntil(ctx context.Context, start string, limit string) sequence.Seq[string] {
	return func(yield func(string, error) bool) {
		limitPath, err := filepath.Abs(limit)
		if err != nil {
			yield("", fmt.Errorf("(traverse-up) failed to resolve limit: %w", err))

			return
		}

		h.UpwardPaths(ctx, start)(func(path string, err error) bool {
			if err != nil {
				yield("", err)

				return false
			}

			if !yield(path, nil) {
				return false
			}

			return path != limitPath
		})
	}
}

// UpwardDirectories returns [Handler.UpwardPaths] filtered to ancestors that
// are directories on disk.
func (h *Handler) UpwardDirectories(ctx context.Context, start string) sequence.Seq[string] {
	return sequence.Filter(h.UpwardPaths(ctx, start), func(path string) (bool, error) {
		return h.IsDirectory(path)
	})
}

// UpwardDirectoriesWithin returns [Handler.UpwardPathsWithin] filtered to
// ancestors that are directories on disk.
func (h *Handler) UpwardDirectoriesWithin(ctx context.Context, start string, maxHeight int) sequence.Seq[string] {
	return sequence.Filter(h.UpwardPathsWithin(ctx, start, maxHeight), func(path string) (bool, error) {
		return h.IsDirectory(path)
	})
}

// UpwardDirectoriesUntil returns [Handler.UpwardPathsUntil] filtered to
// ancestors that are directories on disk.
func (h *Handler) UpwardDirectoriesUntil(ctx context.Context, start string, limit string) sequence.Seq[string] {
	return sequence.Filter(h.UpwardPathsUntil(ctx, start, limit), func(path string) (bool, error) {
		return h.IsDirectory(path)
	})
}

// UpwardPathsSync is [Handler.UpwardPaths] without suspension points.
func (h *Handler) UpwardPathsSync(start string) sequence.Seq[string] {
	return h.UpwardPaths(context.Background(), start)
}

// UpwardPathsWithinSync is [Handler.UpwardPathsWithin] without suspension
// points.
func (h *Handler) UpwardPathsWithinSync(start string, maxHeight int) sequence.Seq[string] {
	return h.UpwardPathsWithin(context.Background(), start, maxHeight)
}

// UpwardPathsUntilSync is [Handler.UpwardPathsUntil] without suspension
// points.
func (h *Handler) UpwardPathsUntilSync(start string, limit string) sequence.Seq[string] {
	return h.UpwardPathsUntil(context.Background(), start, limit)
}

// UpwardDirectoriesSync is [Handler.UpwardDirectories] without suspension
// points.
func (h *Handler) UpwardDirectoriesSync(start string) sequence.Seq[string] {
	return h.UpwardDirectories(context.Background(), start)
}

// UpwardDirectoriesWithinSync is [Handler.UpwardDirectoriesWithin] without
// suspension points.
func (h *Handler) UpwardDirectoriesWithinSync(start string, maxHeight int) sequence.Seq[string] {
	return h.UpwardDirectoriesWithin(context.Background(), start, maxHeight)
}

// UpwardDirectoriesUntilSync is [Handler.UpwardDirectoriesUntil] without
// suspension points.
func (h *Handler) UpwardDirectoriesUntilSync(start string, limit string) sequence.Seq[string] {
	return h.UpwardDirectoriesUntil(context.Background(), start, limit)
}
