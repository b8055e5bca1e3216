package finder

import (
	"fmt"

	"github.com/desertwitch/pathfind/sequence"
)

// Scope is the set of start directories a finder operates over. Each start
// directory is handled independently, in the order given; results
// concatenate scope entry by scope entry and are never re-sorted globally.
//
// The zero value means the current working directory.
type Scope struct {
	paths    []string
	seq      sequence.Seq[string]
	explicit bool
}

// Dirs returns a [Scope] of the given literal start directories. Calling it
// without arguments yields an explicitly empty scope, which no finder can
// match anything in.
func Dirs(paths ...string) Scope {
	return Scope{paths: paths, explicit: true}
}

// SeqScope returns a [Scope] drawing its start directories from a pre-built
// lazy sequence, such as a traversal generator.
func SeqScope(seq sequence.Seq[string]) Scope {
	return Scope{seq: seq, explicit: true}
}

// WorkingDir returns the default [Scope]: the current working directory.
func WorkingDir() Scope {
	return Scope{}
}

// startDirs renders the scope as a lazy sequence of start directories.
func (h *Handler) startDirs(scope Scope) sequence.Seq[string] {
	if scope.seq != nil {
		return scope.seq
	}

	if scope.explicit {
		return sequence.Of(scope.paths...)
	}

	return func(yield func(string, error) bool) {
		cwd, err := h.OSOps.Getwd()
		if err != nil {
			yield("", fmt.Errorf("(finder-scope) failed to getwd: %w", err))

			return
		}

		yield(cwd, nil)
	}
}
