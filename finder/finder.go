// Package finder implements the search algorithms of the library: scanning
// the direct children of a scope of start directories for paths satisfying a
// conjunction of predicates, under a first-match, all-matches or
// exactly-one-match cardinality policy. Recursive searches are expressed by
// composing a finder with a traversal sequence as its scope.
package finder

import "os"

type osProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
	Getwd() (string, error)
}

// Handler is the principal implementation structure for the finder
// algorithms.
type Handler struct {
	OSOps osProvider
}

// NewHandler returns a pointer to a new finder [Handler].
func NewHandler(osOps osProvider) *Handler {
	return &Handler{
		OSOps: osOps,
	}
}
