package finder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/desertwitch/pathfind/pathfilter"
)

// HasFile returns a [pathfilter.Predicate] that is true for paths which are
// directories whose direct children (no recursion) contain at least one
// entry satisfying all given predicates. It is false, not a failure, for
// paths that do not exist or are plain files.
func (h *Handler) HasFile(preds ...pathfilter.Predicate) pathfilter.Predicate {
	match := pathfilter.AllOf(preds...)

	return func(ctx context.Context, path string) (bool, error) {
		info, err := h.OSOps.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return false, nil
			}

			return false, fmt.Errorf("(finder-hasfile) failed to stat: %w", err)
		}

		if !info.IsDir() {
			return false, nil
		}

		children, err := h.OSOps.ReadDir(path)
		if err != nil {
			return false, fmt.Errorf("(finder-hasfile) failed to readdir: %w", err)
		}

		for _, child := range children {
			if err := ctx.Err(); err != nil {
				return false, fmt.Errorf("(finder-hasfile) %w", err)
			}

			ok, err := match(ctx, filepath.Join(path, child.Name()))
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
