package traverse

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/desertwitch/pathfind/sequence"
)

// frontierEntry is one not-yet-expanded directory of a breadth-first walk,
// together with the depth it was discovered at.
type frontierEntry struct {
	path  string
	depth int
}

// DownwardPaths returns a lazy sequence enumerating the subtree below the
// start directory breadth-first: all immediate children first (in listing
// order), then the children of each subdirectory, down to maxDepth levels
// below the start. The start directory itself is never produced; maxDepth 0
// produces only the immediate children.
//
// Symbolic links are followed, but each directory is expanded at most once
// per traversal, so link cycles terminate. A negative maxDepth fails the
// sequence before any I/O; a start path that is missing or not a directory
// fails it at the first pull.
func (h *Handler) DownwardPaths(ctx context.Context, start string, maxDepth int) sequence.Seq[string] {
	return func(yield func(string, error) bool) {
		if maxDepth < 0 {
			yield("", fmt.Errorf("(traverse-down) %w: %d", ErrNegativeBound, maxDepth))

			return
		}

		root, err := filepath.Abs(start)
		if err != nil {
			yield("", fmt.Errorf("(traverse-down) failed to resolve start: %w", err))

			return
		}

		info, err := h.OSOps.Stat(root)
		if err != nil {
			yield("", fmt.Errorf("(traverse-down) failed to stat start: %w", err))

			return
		}
		if !info.IsDir() {
			yield("", fmt.Errorf("(traverse-down) %w: %s", ErrNotDirectory, root))

			return
		}

		expanded := make(map[fileID]struct{})

		queue := newFrontier[frontierEntry]()
		queue.Enqueue(frontierEntry{path: root, depth: 0})

		for {
			entry, ok := queue.Dequeue()
			if !ok {
				return
			}

			if err := ctx.Err(); err != nil {
				yield("", fmt.Errorf("(traverse-down) %w", err))

				return
			}

			id, err := h.identity(entry.path)
			if err != nil {
				yield("", fmt.Errorf("(traverse-down) %w", err))

				return
			}

			if _, seen := expanded[id]; seen {
				slog.Debug("Skipping already expanded directory", "path", entry.path)

				continue
			}
			expanded[id] = struct{}{}

			children, err := h.OSOps.ReadDir(entry.path)
			if err != nil {
				yield("", fmt.Errorf("(traverse-down) failed to readdir: %w", err))

				return
			}

			for _, child := range children {
				childPath := filepath.Join(entry.path, child.Name())

				if !yield(childPath, nil) {
					return
				}

				if entry.depth+1 > maxDepth {
					continue
				}

				isDir, err := h.childIsDir(childPath, child)
				if err != nil {
					yield("", fmt.Errorf("(traverse-down) failed to stat child: %w", err))

					return
				}

				if isDir {
					queue.Enqueue(frontierEntry{path: childPath, depth: entry.depth + 1})
				}
			}
		}
	}
}

// childIsDir resolves whether a listed child is a directory, following a
// symbolic link where one is encountered. A broken link resolves to "not a
// directory" rather than a failure.
func (h *Handler) childIsDir(path string, child os.DirEntry) (bool, error) {
	if child.IsDir() {
		return true, nil
	}

	if child.Type()&os.ModeSymlink == 0 {
		return false, nil
	}

	info, err := h.OSOps.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return info.IsDir(), nil
}

// DownwardDirectories returns [Handler.DownwardPaths] filtered to entries
// that are directories. This costs one extra status query per entry over the
// listing itself.
func (h *Handler) DownwardDirectories(ctx context.Context, start string, maxDepth int) sequence.Seq[string] {
	return sequence.Filter(h.DownwardPaths(ctx, start, maxDepth), func(path string) (bool, error) {
		return h.IsDirectory(path)
	})
}

// DownwardFiles returns [Handler.DownwardPaths] filtered to entries that are
// regular files.
func (h *Handler) DownwardFiles(ctx context.Context, start string, maxDepth int) sequence.Seq[string] {
	return sequence.Filter(h.DownwardPaths(ctx, start, maxDepth), func(path string) (bool, error) {
		return h.IsFile(path)
	})
}

// DownwardPathsSync is [Handler.DownwardPaths] without suspension points.
func (h *Handler) DownwardPathsSync(start string, maxDepth int) sequence.Seq[string] {
	return h.DownwardPaths(context.Background(), start, maxDepth)
}

// DownwardDirectoriesSync is [Handler.DownwardDirectories] without
// suspension points.
func (h *Handler) DownwardDirectoriesSync(start string, maxDepth int) sequence.Seq[string] {
	return h.DownwardDirectories(context.Background(), start, maxDepth)
}

// DownwardFilesSync is [Handler.DownwardFiles] without suspension points.
func (h *Handler) DownwardFilesSync(start string, maxDepth int) sequence.Seq[string] {
	return h.DownwardFiles(context.Background(), start, maxDepth)
}
