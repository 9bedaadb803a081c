// Package autoversion derives synthetic version strings for repositories
// that carry no changelog of their own.
//
// Versions are ordinal: given N commits on a branch, the oldest commit is
// 0.1 and the newest is 0.N. The numbering is stable for a fixed history
// and grows by one with every new commit, so newer versions always compare
// higher.
package autoversion

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrUnknownVersion is returned when a version string does not map to any
// commit in the index.
var ErrUnknownVersion = errors.New("unknown version")

// Index maps ordinal versions to commits for one branch history.
type Index struct {
	// commits is newest first, as produced by rev-list.
	commits  []string
	byVer    map[string]string
	byCommit map[string]string
}

// NewIndex builds an index from a newest-first commit list.
func NewIndex(commits []string) *Index {
	ix := &Index{
		commits:  commits,
		byVer:    make(map[string]string, len(commits)),
		byCommit: make(map[string]string, len(commits)),
	}
	n := len(commits)
	for i, commit := range commits {
		ver := fmt.Sprintf("0.%d", n-i)
		ix.byVer[ver] = commit
		ix.byCommit[commit] = ver
	}
	return ix
}

// Versions returns all versions, newest first.
func (ix *Index) Versions() []string {
	vers := make([]string, len(ix.commits))
	n := len(ix.commits)
	for i := range ix.commits {
		vers[i] = fmt.Sprintf("0.%d", n-i)
	}
	return vers
}

// Commit resolves a version to its commit.
func (ix *Index) Commit(version string) (string, error) {
	commit, ok := ix.byVer[version]
	if !ok {
		return "", errors.Wrapf(ErrUnknownVersion, "%q", version)
	}
	return commit, nil
}

// VersionOf resolves a commit to its version.
func (ix *Index) VersionOf(commit string) (string, error) {
	ver, ok := ix.byCommit[commit]
	if !ok {
		return "", errors.Newf("commit %s not in index", commit)
	}
	return ver, nil
}

// Len returns the number of indexed commits.
func (ix *Index) Len() int {
	return len(ix.commits)
}
