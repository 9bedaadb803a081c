package seek

import (
	gopath "path"
	"path/filepath"

	"github.com/turnkeylinux/verseek/internal/changelog"
	"github.com/turnkeylinux/verseek/internal/errors"
	"github.com/turnkeylinux/verseek/internal/gitcmd"
)

// gitBackend walks the changelog's revision history on the current branch.
// It is also the delegation base for the single-package and arena variants,
// which adjust the branch name, the tracked changelog path and the checkout
// mechanism without touching the history logic.
type gitBackend struct {
	path string
	git  *gitcmd.Git

	// changelogPath and markerPath are relative to the repository root.
	changelogPath string
	markerPath    string

	// branchSuffix is appended to the branch name before history walks.
	branchSuffix string

	// filterMarker skips revisions where the package marker blob is absent.
	filterMarker bool

	// checkout moves the working tree to a revision. Variants override it;
	// it must return a typed sentinel on failure.
	checkout func(rev string) error
}

func newGit(path, root string, runner gitcmd.Runner) (*gitBackend, error) {
	clRel, err := relPath(root, filepath.Join(path, changelogRel))
	if err != nil {
		return nil, err
	}
	markerRel, err := relPath(root, filepath.Join(path, controlRel))
	if err != nil {
		return nil, err
	}

	b := &gitBackend{
		path:          path,
		git:           gitcmd.NewWithRunner(root, runner),
		changelogPath: clRel,
		markerPath:    markerRel,
		filterMarker:  true,
	}
	b.checkout = b.gitCheckout
	return b, nil
}

func (b *gitBackend) gitCheckout(rev string) error {
	if err := b.git.Checkout(rev); err != nil {
		return errors.Wrapf(ErrCheckoutFailed, "%v", err)
	}
	return nil
}

// savedHead returns the ref recorded before the current seek, if any.
func (b *gitBackend) savedHead() (string, bool) {
	ref, err := b.git.SymbolicRef(verseekRef)
	if err != nil {
		return "", false
	}
	return ref, true
}

// head returns the ref HEAD points at, failing when the repository is
// detached outside of a seek.
func (b *gitBackend) head() (string, error) {
	ref, err := b.git.SymbolicRef("HEAD")
	if err != nil {
		return "", errors.New("HEAD is not pointing to a branch")
	}
	return ref, nil
}

// branch names the branch whose history to walk: the branch saved by a
// prior seek when one is in effect, the live HEAD branch otherwise.
func (b *gitBackend) branch() (string, error) {
	ref, ok := b.savedHead()
	if !ok {
		var err error
		ref, err = b.head()
		if err != nil {
			return "", err
		}
	}
	return gopath.Base(ref) + b.branchSuffix, nil
}

func (b *gitBackend) ListVersions() ([]VersionEntry, error) {
	branch, err := b.branch()
	if err != nil {
		return nil, err
	}

	commits, err := b.git.RevList(branch, b.changelogPath)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, errors.Wrapf(ErrNoChangelogHistory, "%s has no revisions on %s",
			b.changelogPath, branch)
	}

	entries := make([]VersionEntry, 0, len(commits))
	for _, commit := range commits {
		if b.filterMarker && !b.git.BlobExists(commit, b.markerPath) {
			continue
		}
		blob, err := b.git.CatFile("blob", commit+":"+b.changelogPath)
		if err != nil {
			return nil, err
		}
		version, err := changelog.ParseVersion([]byte(blob))
		if err != nil {
			return nil, errors.Wrapf(err, "changelog at revision %s", commit)
		}
		entries = append(entries, VersionEntry{Version: version, Commit: commit})
	}
	if len(entries) == 0 {
		return nil, errors.Wrapf(ErrNoChangelogHistory,
			"no revision of %s carries the package marker", b.changelogPath)
	}
	return entries, nil
}

// resolve maps a version to its revision. Duplicate version tokens occur in
// raw history (e.g. reverts); the newest match wins.
func (b *gitBackend) resolve(version string) (string, error) {
	entries, err := b.ListVersions()
	if err != nil {
		return "", err
	}
	for _, e := range entries {
		if e.Version == version {
			return e.Commit, nil
		}
	}
	return "", errors.Wrapf(ErrVersionNotFound, "no such version %q", version)
}

// seekCommit performs the detached checkout. The first seek away from a
// branch records the live HEAD ref so Restore can find its way back; a
// failed checkout removes that record again, so the saved state only
// advances together with the working tree.
func (b *gitBackend) seekCommit(commit string) error {
	recorded := false
	if _, ok := b.savedHead(); !ok {
		ref, err := b.head()
		if err != nil {
			return err
		}
		if err := b.git.SetSymbolicRef(verseekRef, ref); err != nil {
			return err
		}
		recorded = true
	}

	if err := b.checkout(commit); err != nil {
		if recorded {
			if derr := b.git.DeleteSymbolicRef(verseekRef); derr != nil {
				return errors.WithDetail(err, "also failed to clear "+verseekRef+": "+derr.Error())
			}
		}
		return err
	}
	return nil
}

func (b *gitBackend) Seek(version string) error {
	commit, err := b.resolve(version)
	if err != nil {
		return err
	}
	return b.seekCommit(commit)
}

func (b *gitBackend) Restore() error {
	ref, ok := b.savedHead()
	if !ok {
		return nil
	}
	if err := b.checkout(gopath.Base(ref)); err != nil {
		return err
	}
	return b.git.DeleteSymbolicRef(verseekRef)
}
