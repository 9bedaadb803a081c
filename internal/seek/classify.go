package seek

import (
	"os"
	"path/filepath"

	"github.com/turnkeylinux/verseek/internal/errors"
)

// Kind identifies the storage backing a package path.
type Kind int

const (
	// KindPlain is a directory with no revision history behind it.
	KindPlain Kind = iota

	// KindGit is a git working tree holding one or more packages.
	KindGit

	// KindGitSingle is a git working tree that is itself a single
	// auto-versioned package (the marker sits at the repository root).
	KindGitSingle

	// KindSumo is an overlay arena: a thin writable layer over an
	// immutable base, with its own checkout tooling.
	KindSumo
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindGit:
		return "git"
	case KindGitSingle:
		return "git-single"
	case KindSumo:
		return "sumo"
	}
	return "unknown"
}

// Classify inspects path and returns its storage kind. It only probes the
// filesystem and never mutates anything; repeated calls on an unchanged
// path return the same kind.
//
// Probe order is fixed: an open arena wins over everything else, then a
// repository whose root carries the package marker is single-package, then
// any repository is multi-package, and a path outside version control is
// plain.
func Classify(path string) (Kind, error) {
	root, err := gitRoot(path)
	if err != nil {
		return 0, err
	}
	if root == "" {
		return KindPlain, nil
	}

	if info, err := os.Stat(filepath.Join(root, "arena.internals")); err == nil && info.IsDir() {
		return KindSumo, nil
	}
	if _, err := os.Stat(filepath.Join(root, controlRel)); err == nil {
		return KindGitSingle, nil
	}
	return KindGit, nil
}

// gitRoot walks up from dir looking for a .git entry. It returns "" when
// dir is not inside a working tree. A .git that is neither a directory nor
// a regular gitdir-pointer file cannot be attributed to any backend.
func gitRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "resolving path")
	}

	for {
		info, err := os.Stat(filepath.Join(dir, ".git"))
		if err == nil {
			if info.IsDir() || info.Mode().IsRegular() {
				return dir, nil
			}
			return "", errors.Wrapf(ErrAmbiguousBackend,
				"%s is neither a directory nor a gitdir pointer", filepath.Join(dir, ".git"))
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
