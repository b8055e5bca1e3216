// Package pathfind composes lazy filesystem traversals, path predicates and
// cardinality-aware finders into one convenience surface bound to the real
// filesystem. The subpackages carry the implementations:
//
//   - [github.com/desertwitch/pathfind/sequence] for lazy sequences,
//   - [github.com/desertwitch/pathfind/pathfilter] for predicates and testers,
//   - [github.com/desertwitch/pathfind/traverse] for the traversal generators,
//   - [github.com/desertwitch/pathfind/finder] for the finder algorithms.
//
// Callers needing mockable providers construct the subpackage handlers
// directly; the functions here use the operating system.
package pathfind

import (
	"context"

	"github.com/desertwitch/pathfind/finder"
	"github.com/desertwitch/pathfind/internal/syscalls"
	"github.com/desertwitch/pathfind/pathfilter"
	"github.com/desertwitch/pathfind/sequence"
	"github.com/desertwitch/pathfind/traverse"
)

// Predicate decides whether a path counts as a match.
type Predicate = pathfilter.Predicate

// Tester matches a single string value inside a predicate constructor.
type Tester = pathfilter.Tester

// Scope is the set of start directories a finder operates over.
type Scope = finder.Scope

//nolint:gochecknoglobals
var (
	defaultTraverser = traverse.NewHandler(syscalls.RealOS{}, syscalls.RealUnix{})
	defaultFinder    = finder.NewHandler(syscalls.RealOS{})
)

// Dirs returns a [Scope] of the given literal start directories.
func Dirs(paths ...string) Scope { return finder.Dirs(paths...) }

// SeqScope returns a [Scope] drawing start directories from a lazy sequence.
func SeqScope(seq sequence.Seq[string]) Scope { return finder.SeqScope(seq) }

// WorkingDir returns the default [Scope], the current working directory.
func WorkingDir() Scope { return finder.WorkingDir() }

// FindFile returns the first path in the scope satisfying all predicates;
// see [finder.Handler.FindFile].
func FindFile(ctx context.Context, scope Scope, preds ...Predicate) (string, error) {
	return defaultFinder.FindFile(ctx, scope, preds...)
}

// FindAllFiles returns every path in the scope satisfying all predicates;
// see [finder.Handler.FindAllFiles].
func FindAllFiles(ctx context.Context, scope Scope, preds ...Predicate) ([]string, error) {
	return defaultFinder.FindAllFiles(ctx, scope, preds...)
}

// StrictFindFile returns the single path in the scope satisfying all
// predicates; see [finder.Handler.StrictFindFile].
func StrictFindFile(ctx context.Context, scope Scope, preds ...Predicate) (string, error) {
	return defaultFinder.StrictFindFile(ctx, scope, preds...)
}

// FindFileSync is [FindFile] without suspension points.
func FindFileSync(scope Scope, preds ...Predicate) (string, error) {
	return defaultFinder.FindFileSync(scope, preds...)
}

// FindAllFilesSync is [FindAllFiles] without suspension points.
func FindAllFilesSync(scope Scope, preds ...Predicate) ([]string, error) {
	return defaultFinder.FindAllFilesSync(scope, preds...)
}

// StrictFindFileSync is [StrictFindFile] without suspension points.
func StrictFindFileSync(scope Scope, preds ...Predicate) (string, error) {
	return defaultFinder.StrictFindFileSync(scope, preds...)
}

// HasFile returns a predicate matching directories whose direct children
// contain a match; see [finder.Handler.HasFile].
func HasFile(preds ...Predicate) Predicate {
	return defaultFinder.HasFile(preds...)
}

// DownwardPaths enumerates the subtree below start breadth-first; see
// [traverse.Handler.DownwardPaths].
func DownwardPaths(ctx context.Context, start string, maxDepth int) sequence.Seq[string] {
	return defaultTraverser.DownwardPaths(ctx, start, maxDepth)
}

// DownwardDirectories is [DownwardPaths] filtered to directories.
func DownwardDirectories(ctx context.Context, start string, maxDepth int) sequence.Seq[string] {
	return defaultTraverser.DownwardDirectories(ctx, start, maxDepth)
}

// DownwardFiles is [DownwardPaths] filtered to regular files.
func DownwardFiles(ctx context.Context, start string, maxDepth int) sequence.Seq[string] {
	return defaultTraverser.DownwardFiles(ctx, start, maxDepth)
}

// UpwardPaths enumerates the ancestors of start, nearest first, root
// inclusive; see [traverse.Handler.UpwardPaths].
func UpwardPaths(ctx context.Context, start string) sequence.Seq[string] {
	return defaultTraverser.UpwardPaths(ctx, start)
}

// UpwardPathsWithin is [UpwardPaths] bounded to at most maxHeight ancestors.
func UpwardPathsWithin(ctx context.Context, start string, maxHeight int) sequence.Seq[string] {
	return defaultTraverser.UpwardPathsWithin(ctx, start, maxHeight)
}

// UpwardPathsUntil is [UpwardPaths] bounded by (and inclusive of) a limit
// path.
func UpwardPathsUntil(ctx context.Context, start string, limit string) sequence.Seq[string] {
	return defaultTraverser.UpwardPathsUntil(ctx, start, limit)
}

// UpwardDirectories is [UpwardPaths] filtered to directories on disk.
func UpwardDirectories(ctx context.Context, start string) sequence.Seq[string] {
	return defaultTraverser.UpwardDirectories(ctx, start)
}

// UpwardDirectoriesWithin is [UpwardPathsWithin] filtered to directories on
// disk.
func UpwardDirectoriesWithin(ctx context.Context, start string, maxHeight int) sequence.Seq[string] {
	return defaultTraverser.UpwardDirectoriesWithin(ctx, start, maxHeight)
}

// UpwardDirectoriesUntil is [UpwardPathsUntil] filtered to directories on
// disk.
func UpwardDirectoriesUntil(ctx context.Context, start string, limit string) sequence.Seq[string] {
	return defaultTraverser.UpwardDirectoriesUntil(ctx, start, limit)
}
