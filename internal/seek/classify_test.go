package seek

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(path, 0o755))
}

func TestClassify_Plain(t *testing.T) {
	dir := t.TempDir()

	kind, err := Classify(dir)
	require.NoError(t, err)
	assert.Equal(t, KindPlain, kind)
}

func TestClassify_Git(t *testing.T) {
	root := t.TempDir()
	mkdir(t, filepath.Join(root, ".git"))
	pkg := filepath.Join(root, "pkgs", "foo")
	mkdir(t, pkg)

	for _, path := range []string{root, pkg} {
		kind, err := Classify(path)
		require.NoError(t, err)
		assert.Equal(t, KindGit, kind, path)
	}
}

func TestClassify_GitSingle(t *testing.T) {
	root := t.TempDir()
	mkdir(t, filepath.Join(root, ".git"))
	writePackage(t, root, "")

	kind, err := Classify(root)
	require.NoError(t, err)
	assert.Equal(t, KindGitSingle, kind)
}

func TestClassify_SubdirMarkerIsNotSingle(t *testing.T) {
	// The single-package probe looks at the repository root only. A marker
	// inside a subdirectory means a multi-package repository.
	root := t.TempDir()
	mkdir(t, filepath.Join(root, ".git"))
	pkg := filepath.Join(root, "foo")
	writePackage(t, pkg, "")

	kind, err := Classify(pkg)
	require.NoError(t, err)
	assert.Equal(t, KindGit, kind)
}

func TestClassify_Sumo(t *testing.T) {
	root := t.TempDir()
	mkdir(t, filepath.Join(root, ".git"))
	mkdir(t, filepath.Join(root, "arena.internals"))
	pkg := filepath.Join(root, "arena.union", "foo")
	mkdir(t, pkg)

	kind, err := Classify(pkg)
	require.NoError(t, err)
	assert.Equal(t, KindSumo, kind)
}

func TestClassify_ArenaWinsOverMarker(t *testing.T) {
	root := t.TempDir()
	mkdir(t, filepath.Join(root, ".git"))
	mkdir(t, filepath.Join(root, "arena.internals"))
	writePackage(t, root, "")

	kind, err := Classify(root)
	require.NoError(t, err)
	assert.Equal(t, KindSumo, kind)
}

func TestClassify_GitdirPointerFile(t *testing.T) {
	// Worktrees and submodules store .git as a file pointing elsewhere.
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git"),
		[]byte("gitdir: /somewhere/else\n"), 0o644))

	kind, err := Classify(root)
	require.NoError(t, err)
	assert.Equal(t, KindGit, kind)
}

func TestClassify_Idempotent(t *testing.T) {
	root := t.TempDir()
	mkdir(t, filepath.Join(root, ".git"))
	writePackage(t, root, "")

	first, err := Classify(root)
	require.NoError(t, err)
	second, err := Classify(root)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "plain", KindPlain.String())
	assert.Equal(t, "git", KindGit.String())
	assert.Equal(t, "git-single", KindGitSingle.String())
	assert.Equal(t, "sumo", KindSumo.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
