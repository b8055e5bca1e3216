package pathfind_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/pathfind"
	"github.com/desertwitch/pathfind/pathfilter"
	"github.com/desertwitch/pathfind/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindAllFiles_RealFilesystem(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.md"), []byte("md"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.txt"), []byte("txt"), 0o644))

	paths, err := pathfind.FindAllFiles(context.Background(),
		pathfind.Dirs(root),
		pathfilter.OfExtname(pathfilter.Exact(".md")),
	)

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "file.md")}, paths)
}

func TestFindFileSync_RealFilesystem(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "file.md"), []byte("md"), 0o644))

	path, err := pathfind.FindFileSync(
		pathfind.Dirs(root),
		pathfilter.OfBasename(pathfilter.Exact("file.md")),
	)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "file.md"), path)
}

func TestDownwardFiles_RealFilesystem(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "a.txt"), []byte("a"), 0o644))

	paths, err := sequence.Collect(pathfind.DownwardFiles(context.Background(), root, 1))

	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "sub", "a.txt")}, paths)
}

// Walking up to a marker file via the convenience surface mirrors the most
// common use of the library.
func TestUpwardDirectories_MarkerLookup(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	deep := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(deep, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x"), 0o644))

	ctx := context.Background()
	marker := pathfind.HasFile(pathfilter.OfBasename(pathfilter.Exact("go.mod")))

	found, ok, err := sequence.First(sequence.Filter(
		pathfind.UpwardDirectoriesUntil(ctx, deep, root),
		func(path string) (bool, error) { return marker(ctx, path) },
	))

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, root, found)
}
