package seek

import (
	"os"
	"path/filepath"

	"github.com/turnkeylinux/verseek/internal/autoversion"
	"github.com/turnkeylinux/verseek/internal/changelog"
	"github.com/turnkeylinux/verseek/internal/config"
	"github.com/turnkeylinux/verseek/internal/errors"
	"github.com/turnkeylinux/verseek/internal/gitcmd"
	"github.com/turnkeylinux/verseek/pkg/fileutil"
)

// gitSingleBackend serves a repository that is itself one package with no
// maintained changelog. Versions are ordinals derived from commit position,
// and a seek writes a changelog entry to disk so downstream tooling that
// expects one still finds it. Restore removes that entry again.
type gitSingleBackend struct {
	*gitBackend
	release string
}

func newGitSingle(path, root string, runner gitcmd.Runner, cfg *config.Config) (*gitSingleBackend, error) {
	base, err := newGit(path, root, runner)
	if err != nil {
		return nil, err
	}
	return &gitSingleBackend{
		gitBackend: base,
		release:    cfg.Release,
	}, nil
}

// index builds the ordinal version index over the branch's full history.
// Ordinals are positional, so the index always covers every commit; marker
// filtering happens at listing time and never renumbers anything.
func (b *gitSingleBackend) index() (*autoversion.Index, error) {
	branch, err := b.branch()
	if err != nil {
		return nil, err
	}
	commits, err := b.git.RevList(branch)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		return nil, errors.Wrapf(ErrNoChangelogHistory, "branch %s has no commits", branch)
	}
	return autoversion.NewIndex(commits), nil
}

func (b *gitSingleBackend) ListVersions() ([]VersionEntry, error) {
	ix, err := b.index()
	if err != nil {
		return nil, err
	}

	entries := make([]VersionEntry, 0, ix.Len())
	for _, version := range ix.Versions() {
		commit, err := ix.Commit(version)
		if err != nil {
			return nil, err
		}
		// Revisions predating the package marker are not packages.
		if !b.git.BlobExists(commit, b.markerPath) {
			continue
		}
		entries = append(entries, VersionEntry{Version: version, Commit: commit})
	}
	if len(entries) == 0 {
		return nil, errors.Wrapf(ErrNoChangelogHistory,
			"no revision carries the package marker")
	}
	return entries, nil
}

func (b *gitSingleBackend) Seek(version string) error {
	entries, err := b.ListVersions()
	if err != nil {
		return err
	}
	commit := ""
	for _, e := range entries {
		if e.Version == version {
			commit = e.Commit
			break
		}
	}
	if commit == "" {
		return errors.Wrapf(ErrVersionNotFound, "no such version %q", version)
	}

	if err := b.seekCommit(commit); err != nil {
		return err
	}
	return b.synthesizeChangelog(version, commit)
}

// synthesizeChangelog writes a single-entry changelog for the checked-out
// revision, dated from the commit itself and labeled with the configured
// release.
func (b *gitSingleBackend) synthesizeChangelog(version, commit string) error {
	controlPath := filepath.Join(b.path, controlRel)
	content, err := fileutil.ReadFileWithLimit(controlPath)
	if err != nil {
		return errors.Wrapf(err, "reading %q", controlPath)
	}
	control, err := changelog.ParseControl(content)
	if err != nil {
		return errors.Wrapf(err, "parsing %q", controlPath)
	}

	date, err := b.git.CommitTime(commit)
	if err != nil {
		return err
	}

	entry := changelog.Entry{
		Source:     control.Source,
		Version:    version,
		Release:    b.release,
		Maintainer: control.Maintainer,
		Date:       date,
	}
	clPath := filepath.Join(b.path, changelogRel)
	if err := fileutil.AtomicWriteFile(clPath, entry.Format(), 0o644); err != nil {
		return errors.Wrapf(err, "writing %q", clPath)
	}
	return nil
}

func (b *gitSingleBackend) Restore() error {
	if _, ok := b.savedHead(); !ok {
		return nil
	}
	clPath := filepath.Join(b.path, changelogRel)
	if err := os.Remove(clPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "removing %q", clPath)
	}
	return b.gitBackend.Restore()
}
