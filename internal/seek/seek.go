// Package seek implements version seeking for source packages: it
// classifies a path by the storage backing it, lists the versions
// recoverable from that storage's history, and moves the working tree to a
// chosen version or back to the state before any seek.
//
// Concurrent seeks against the same path are not coordinated here. The
// underlying store's head, working tree and saved-head ref are one mutable
// resource; callers must serialize seeks per path themselves.
package seek

import (
	"os"
	"path/filepath"

	"github.com/turnkeylinux/verseek/internal/changelog"
	"github.com/turnkeylinux/verseek/internal/config"
	"github.com/turnkeylinux/verseek/internal/errors"
	"github.com/turnkeylinux/verseek/internal/gitcmd"
)

// changelogRel and controlRel locate the changelog and the package marker
// inside a package directory.
const (
	changelogRel = "debian/changelog"
	controlRel   = "debian/control"
)

// verseekRef is the symbolic ref recording the branch that was active
// before the current seek. Its absence means no seek is in effect.
const verseekRef = "VERSEEK_HEAD"

// Sentinel errors. All failures from this package match one of these with
// errors.Is.
var (
	ErrNotAPackage        = errors.New("not a package")
	ErrNoChangelogHistory = errors.New("no changelog history")
	ErrVersionNotFound    = errors.New("version not found")
	ErrUnsupportedSeek    = errors.New("unsupported seek")
	ErrCheckoutFailed     = errors.New("checkout failed")
	ErrNetworkUnavailable = errors.New("network unavailable")
	ErrAmbiguousBackend   = errors.New("ambiguous backend")

	// ErrMalformedChangelog is the changelog parser's sentinel, re-exported
	// so callers match every error kind from one package.
	ErrMalformedChangelog = changelog.ErrMalformed
)

// VersionEntry pairs a version with the revision that introduced it. Commit
// is empty for backends without revision storage.
type VersionEntry struct {
	Version string
	Commit  string
}

// Backend enumerates and switches between the historical versions of one
// package path. ListVersions is pure; Seek and Restore mutate the working
// tree in place.
type Backend interface {
	// ListVersions returns the recoverable versions, newest first.
	ListVersions() ([]VersionEntry, error)

	// Seek checks out the given version, recording the prior head on the
	// first seek away from it.
	Seek(version string) error

	// Restore reverts to the head saved by the first Seek and clears the
	// saved state. It is a no-op when no seek is in effect.
	Restore() error
}

type options struct {
	runner gitcmd.Runner
	cfg    *config.Config
}

// Option adjusts how New builds a backend.
type Option func(*options)

// WithRunner substitutes the command runner used for git and arena tools.
func WithRunner(r gitcmd.Runner) Option {
	return func(o *options) { o.runner = r }
}

// WithConfig supplies the configuration instead of the built-in defaults.
func WithConfig(cfg *config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// New classifies path and returns the backend for its storage kind. The
// path must be a directory containing the package marker file.
func New(path string, opts ...Option) (Backend, error) {
	o := options{
		runner: gitcmd.ExecRunner{},
		cfg:    config.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrapf(err, "no such directory %q", path)
	}
	if !info.IsDir() {
		return nil, errors.Newf("not a directory %q", path)
	}

	kind, err := Classify(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(filepath.Join(path, controlRel)); err != nil {
		return nil, errors.Wrapf(ErrNotAPackage, "missing %s in %q", controlRel, path)
	}

	switch kind {
	case KindPlain:
		return newPlain(path), nil
	case KindGit:
		root, err := gitRoot(path)
		if err != nil {
			return nil, err
		}
		return newGit(path, root, o.runner)
	case KindGitSingle:
		root, err := gitRoot(path)
		if err != nil {
			return nil, err
		}
		return newGitSingle(path, root, o.runner, o.cfg)
	case KindSumo:
		root, err := gitRoot(path)
		if err != nil {
			return nil, err
		}
		return newSumo(path, root, o.runner, o.cfg)
	}
	return nil, errors.Wrapf(ErrAmbiguousBackend, "unhandled kind %v", kind)
}

// relPath returns path relative to root, with forward slashes, for use as a
// git pathspec.
func relPath(root, path string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", errors.Wrap(err, "resolving root")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, "resolving path")
	}
	rel, err := filepath.Rel(absRoot, absPath)
	if err != nil {
		return "", errors.Wrapf(err, "relativizing %q against %q", path, root)
	}
	return filepath.ToSlash(rel), nil
}
