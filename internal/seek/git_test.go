package seek

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeVersionRepo models the canonical history: three changelog commits
// producing 1.0, 1.2, 1.3 in chronological order on master.
func threeVersionRepo(t *testing.T) (*fakeRepo, *gitBackend) {
	t.Helper()
	dir := t.TempDir()
	writePackage(t, dir, "1.3")

	repo := newFakeRepo()
	repo.revLists["master -- debian/changelog"] = []string{"c3", "c2", "c1"}
	for commit, version := range map[string]string{"c1": "1.0", "c2": "1.2", "c3": "1.3"} {
		repo.blobs[commit+":debian/changelog"] = changelogFor(version)
		repo.blobs[commit+":debian/control"] = "Source: testpkg\n"
	}

	b, err := newGit(dir, dir, repo)
	require.NoError(t, err)
	return repo, b
}

func TestGit_ListVersions(t *testing.T) {
	_, b := threeVersionRepo(t)

	entries, err := b.ListVersions()
	require.NoError(t, err)
	assert.Equal(t, []VersionEntry{
		{Version: "1.3", Commit: "c3"},
		{Version: "1.2", Commit: "c2"},
		{Version: "1.0", Commit: "c1"},
	}, entries)
}

func TestGit_ListVersions_SkipsUnmarkedRevisions(t *testing.T) {
	repo, b := threeVersionRepo(t)
	delete(repo.blobs, "c1:debian/control")

	entries, err := b.ListVersions()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "1.3", entries[0].Version)
	assert.Equal(t, "1.2", entries[1].Version)
}

func TestGit_ListVersions_NoHistory(t *testing.T) {
	repo, b := threeVersionRepo(t)
	repo.revLists["master -- debian/changelog"] = nil

	_, err := b.ListVersions()
	require.ErrorIs(t, err, ErrNoChangelogHistory)
}

func TestGit_ListVersions_MalformedChangelog(t *testing.T) {
	repo, b := threeVersionRepo(t)
	repo.blobs["c2:debian/changelog"] = "garbage\n"

	_, err := b.ListVersions()
	require.ErrorIs(t, err, ErrMalformedChangelog)
	assert.Contains(t, err.Error(), "c2")
}

func TestGit_ListVersions_DetachedWithoutSeek(t *testing.T) {
	repo, b := threeVersionRepo(t)
	repo.head = ""

	_, err := b.ListVersions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HEAD is not pointing to a branch")
}

func TestGit_ListVersions_UsesSavedHeadWhileSeeked(t *testing.T) {
	repo, b := threeVersionRepo(t)
	require.NoError(t, b.Seek("1.2"))
	repo.head = "" // detached, as after a real checkout

	entries, err := b.ListVersions()
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestGit_SeekRestore_RoundTrip(t *testing.T) {
	repo, b := threeVersionRepo(t)

	require.NoError(t, b.Seek("1.2"))
	assert.Equal(t, []string{"c2"}, repo.checkedOut)
	assert.Equal(t, "refs/heads/master", repo.verseekHead)

	require.NoError(t, b.Restore())
	assert.Equal(t, []string{"c2", "master"}, repo.checkedOut)
	assert.Empty(t, repo.verseekHead)
}

func TestGit_Seek_WhileSeeked_KeepsSavedHead(t *testing.T) {
	repo, b := threeVersionRepo(t)

	require.NoError(t, b.Seek("1.0"))
	repo.head = ""
	require.NoError(t, b.Seek("1.3"))

	assert.Equal(t, []string{"c1", "c3"}, repo.checkedOut)
	assert.Equal(t, "refs/heads/master", repo.verseekHead)
}

func TestGit_Seek_VersionNotFound(t *testing.T) {
	_, b := threeVersionRepo(t)

	err := b.Seek("9.9")
	require.ErrorIs(t, err, ErrVersionNotFound)
}

func TestGit_Seek_DuplicateVersionResolvesNewest(t *testing.T) {
	repo, b := threeVersionRepo(t)
	// A revert reintroduced 1.0 as the newest commit.
	repo.revLists["master -- debian/changelog"] = []string{"c4", "c3", "c2", "c1"}
	repo.blobs["c4:debian/changelog"] = changelogFor("1.0")
	repo.blobs["c4:debian/control"] = "Source: testpkg\n"

	require.NoError(t, b.Seek("1.0"))
	assert.Equal(t, []string{"c4"}, repo.checkedOut)
}

func TestGit_Seek_CheckoutFailureLeavesStateUntouched(t *testing.T) {
	repo, b := threeVersionRepo(t)
	repo.failCheckout["c2"] = "pathspec 'c2' did not match"

	err := b.Seek("1.2")
	require.ErrorIs(t, err, ErrCheckoutFailed)
	assert.Empty(t, repo.verseekHead)
	assert.Empty(t, repo.checkedOut)
}

func TestGit_Seek_CheckoutFailureWhileSeeked(t *testing.T) {
	repo, b := threeVersionRepo(t)
	require.NoError(t, b.Seek("1.2"))
	repo.failCheckout["c1"] = "object corrupted"

	err := b.Seek("1.0")
	require.ErrorIs(t, err, ErrCheckoutFailed)
	// The record of the original branch survives a failed switch.
	assert.Equal(t, "refs/heads/master", repo.verseekHead)
}

func TestGit_Restore_NoSeekIsNoOp(t *testing.T) {
	repo, b := threeVersionRepo(t)

	require.NoError(t, b.Restore())
	assert.Empty(t, repo.checkedOut)
}

func TestGit_Restore_CheckoutFailureKeepsSavedHead(t *testing.T) {
	repo, b := threeVersionRepo(t)
	require.NoError(t, b.Seek("1.2"))
	repo.failCheckout["master"] = "working tree dirty"

	err := b.Restore()
	require.ErrorIs(t, err, ErrCheckoutFailed)
	assert.Equal(t, "refs/heads/master", repo.verseekHead)
}

func TestGit_SubdirectoryPackage(t *testing.T) {
	root := t.TempDir()
	pkg := root + "/pkgs/foo"
	writePackage(t, pkg, "1.3")

	repo := newFakeRepo()
	repo.revLists["master -- pkgs/foo/debian/changelog"] = []string{"c1"}
	repo.blobs["c1:pkgs/foo/debian/changelog"] = changelogFor("1.3")
	repo.blobs["c1:pkgs/foo/debian/control"] = "Source: testpkg\n"

	b, err := newGit(pkg, root, repo)
	require.NoError(t, err)

	entries, err := b.ListVersions()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "1.3", entries[0].Version)
}
