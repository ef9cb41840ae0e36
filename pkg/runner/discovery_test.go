package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsslint/pkg/runner"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("a {}\n"), 0o600))
	}
}

func relAll(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rel, err := filepath.Rel(root, p)
		require.NoError(t, err)
		out = append(out, filepath.ToSlash(rel))
	}
	return out
}

func TestDiscover_Directory(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root,
		"b.css", "a.scss", "notes.md", "sub/c.CSS",
		".hidden/x.css", "sub/.y.css", "vendor/lib.css",
	)

	files, err := runner.Discover(context.Background(), runner.DiscoverOptions{WorkingDir: root})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.scss", "b.css", "sub/c.CSS", "vendor/lib.css"}, relAll(t, root, files))
}

func TestDiscover_ExplicitFilesKeepOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, "z.css", "a.css", "page.md")

	files, err := runner.Discover(context.Background(), runner.DiscoverOptions{
		WorkingDir: root,
		Paths:      []string{"z.css", "page.md", "a.css", "z.css"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"z.css", "page.md", "a.css"}, relAll(t, root, files))
}

func TestDiscover_ExcludeGlobs(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, "a.css", "vendor/lib.css", "src/gen/out.css", "src/keep.css", "src/x.min.css")

	files, err := runner.Discover(context.Background(), runner.DiscoverOptions{
		WorkingDir:   root,
		ExcludeGlobs: []string{"vendor/**", "**/gen/**", "*.min.css"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.css", "src/keep.css"}, relAll(t, root, files))
}

func TestDiscover_CustomExtensions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, "a.css", "b.less", "c.md")

	files, err := runner.Discover(context.Background(), runner.DiscoverOptions{
		WorkingDir: root,
		Extensions: []string{".md"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"c.md"}, relAll(t, root, files))
}

func TestDiscover_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.DiscoverOptions{
		WorkingDir: t.TempDir(),
		Paths:      []string{"nope.css"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDiscover_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.Discover(ctx, runner.DiscoverOptions{WorkingDir: t.TempDir()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	outside := t.TempDir()
	writeTree(t, root, "a.css")
	writeTree(t, outside, "linked.css")
	if err := os.Symlink(outside, filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	files, err := runner.Discover(context.Background(), runner.DiscoverOptions{WorkingDir: root})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.css"}, relAll(t, root, files))

	files, err = runner.Discover(context.Background(), runner.DiscoverOptions{WorkingDir: root, FollowSymlinks: true})
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
