package finder

import "errors"

var (
	// ErrAmbiguousMatch is an error that occurs when a strict finder
	// encounters a second matching path where exactly one was required.
	ErrAmbiguousMatch = errors.New("more than one matching file")

	// ErrScopeNotDirectory is an error that occurs when a search scope entry
	// exists but is not a directory.
	ErrScopeNotDirectory = errors.New("search scope is not a directory")
)
