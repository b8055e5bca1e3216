package finder_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/pathfind/internal/syscalls"
	"github.com/desertwitch/pathfind/pathfilter"
	"github.com/desertwitch/pathfind/sequence"
	"github.com/desertwitch/pathfind/traverse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasFile_MatchInDirectChildren(t *testing.T) {
	t.Parallel()

	dir := filesDir(t)
	h := realHandler()

	ok, err := h.HasFile(pathfilter.OfBasename(pathfilter.Exact("file.md")))(context.Background(), dir)

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestHasFile_NoRecursion(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "nested", "file.md"), []byte("md"), 0o644))

	h := realHandler()

	ok, err := h.HasFile(pathfilter.OfBasename(pathfilter.Exact("file.md")))(context.Background(), root)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasFile_EmptyDirZeroPredicates(t *testing.T) {
	t.Parallel()

	h := realHandler()

	ok, err := h.HasFile()(context.Background(), t.TempDir())

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasFile_MissingPath(t *testing.T) {
	t.Parallel()

	h := realHandler()

	ok, err := h.HasFile(pathfilter.OfBasename(pathfilter.Exact("file.md")))(context.Background(), filepath.Join(t.TempDir(), "ghost"))

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasFile_PlainFilePath(t *testing.T) {
	t.Parallel()

	dir := filesDir(t)
	h := realHandler()

	ok, err := h.HasFile(pathfilter.OfBasename(pathfilter.Exact("file.md")))(context.Background(), filepath.Join(dir, "file.md"))

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHasFile_PredicateFailurePropagates(t *testing.T) {
	t.Parallel()

	dir := filesDir(t)
	h := realHandler()

	pred := pathfilter.Predicate(func(context.Context, string) (bool, error) {
		return false, errPredicate
	})

	ok, err := h.HasFile(pred)(context.Background(), dir)

	require.ErrorIs(t, err, errPredicate)
	assert.False(t, ok)
}

// Locating a project root by walking up to the first ancestor holding a
// marker file is the canonical composition of HasFile with the upward
// directory traversal.
func TestHasFile_ProjectRootLookup(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	workDir := filepath.Join(root, "src", "pkg", "deep")
	require.NoError(t, os.MkdirAll(workDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x"), 0o644))

	ctx := context.Background()
	traverser := traverse.NewHandler(syscalls.RealOS{}, syscalls.RealUnix{})
	h := realHandler()

	marker := h.HasFile(pathfilter.OfBasename(pathfilter.Exact("go.mod")))

	projectRoot, found, err := sequence.First(sequence.Filter(
		traverser.UpwardDirectoriesUntil(ctx, filepath.Join(workDir, "leaf"), root),
		func(path string) (bool, error) { return marker(ctx, path) },
	))

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, root, projectRoot)
}
