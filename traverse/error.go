package traverse

import "errors"

var (
	// ErrNegativeBound is an error that occurs when a traversal is given a
	// negative depth bound. It is detected before any filesystem I/O.
	ErrNegativeBound = errors.New("negative traversal bound")

	// ErrNotDirectory is an error that occurs when a traversal start path
	// exists but is not a directory.
	ErrNotDirectory = errors.New("path is not a directory")
)
