// Package traverse implements lazy filesystem traversal generators: a
// breadth-first, depth-bounded downward walk and the upward ancestor chain
// in its unbounded, height-bounded and limit-path-bounded forms. Generators
// produce paths on demand; a consumer that stops pulling stops all further
// I/O.
package traverse

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/sys/unix"
)

type osProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
}

type unixProvider interface {
	Stat(path string, stat *unix.Stat_t) error
}

// Handler is the principal implementation structure for filesystem
// traversals.
type Handler struct {
	OSOps   osProvider
	UnixOps unixProvider
}

// NewHandler returns a pointer to a new traversal [Handler].
func NewHandler(osOps osProvider, unixOps unixProvider) *Handler {
	return &Handler{
		OSOps:   osOps,
		UnixOps: unixOps,
	}
}

// IsDirectory reports whether the given path resolves to a directory,
// following symbolic links. A path that does not exist is not a directory
// (and not a failure).
func (h *Handler) IsDirectory(path string) (bool, error) {
	info, err := h.OSOps.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("(traverse-stat) failed to stat: %w", err)
	}

	return info.IsDir(), nil
}

// IsFile reports whether the given path resolves to a regular file,
// following symbolic links. A path that does not exist is not a file (and
// not a failure).
func (h *Handler) IsFile(path string) (bool, error) {
	info, err := h.OSOps.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}

		return false, fmt.Errorf("(traverse-stat) failed to stat: %w", err)
	}

	return info.Mode().IsRegular(), nil
}

// fileID identifies a filesystem object across the paths that reach it.
type fileID struct {
	dev uint64
	ino uint64
}

func (h *Handler) identity(path string) (fileID, error) {
	var stat unix.Stat_t

	if err := h.UnixOps.Stat(path, &stat); err != nil {
		return fileID{}, fmt.Errorf("(traverse-identity) failed to stat: %w", err)
	}

	return fileID{dev: uint64(stat.Dev), ino: stat.Ino}, nil
}
