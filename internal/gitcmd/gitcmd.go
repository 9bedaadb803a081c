// Package gitcmd wraps the git plumbing commands verseek relies on.
//
// The default implementation shells out to the git executable. All
// operations go through the Runner interface so tests can substitute an
// in-memory fake without spawning processes.
package gitcmd

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/turnkeylinux/verseek/internal/logging"
)

// Runner executes an external command in a working directory and returns
// its standard output with the trailing newline removed.
type Runner interface {
	Run(dir, name string, args ...string) (string, error)
}

// CommandError describes a failed external command. The wrapped error is
// the underlying exec failure; Stderr carries whatever the tool printed.
type CommandError struct {
	Name   string
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Name, strings.Join(e.Args, " "))
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(dir, name string, args ...string) (string, error) {
	slog.Log(context.Background(), logging.LevelTrace, "exec", "dir", dir, "cmd", name, "args", strings.Join(args, " "))

	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Name:   name,
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return strings.TrimRight(stdout.String(), "\n"), nil
}

// Git exposes the plumbing operations verseek needs against one repository.
type Git struct {
	dir string
	run Runner
}

// New returns a Git rooted at dir, executing real git commands.
func New(dir string) *Git {
	return NewWithRunner(dir, ExecRunner{})
}

// NewWithRunner returns a Git rooted at dir using the given runner.
func NewWithRunner(dir string, r Runner) *Git {
	return &Git{dir: dir, run: r}
}

// Dir returns the repository root this Git operates on.
func (g *Git) Dir() string {
	return g.dir
}

// Runner returns the runner used for command execution, so collaborating
// tools (e.g. the arena checkout) run through the same substitutable layer.
func (g *Git) Runner() Runner {
	return g.run
}

// SymbolicRef resolves a symbolic ref (e.g. HEAD) to the ref it points at.
func (g *Git) SymbolicRef(name string) (string, error) {
	out, err := g.run.Run(g.dir, "git", "symbolic-ref", name)
	if err != nil {
		return "", errors.Wrapf(err, "resolving symbolic ref %s", name)
	}
	return strings.TrimSpace(out), nil
}

// SetSymbolicRef points the symbolic ref name at ref.
func (g *Git) SetSymbolicRef(name, ref string) error {
	if _, err := g.run.Run(g.dir, "git", "symbolic-ref", name, ref); err != nil {
		return errors.Wrapf(err, "setting symbolic ref %s", name)
	}
	return nil
}

// DeleteSymbolicRef removes the symbolic ref name.
func (g *Git) DeleteSymbolicRef(name string) error {
	if _, err := g.run.Run(g.dir, "git", "symbolic-ref", "--delete", name); err != nil {
		return errors.Wrapf(err, "deleting symbolic ref %s", name)
	}
	return nil
}

// RevList lists the commits reachable from branch, newest first. When paths
// are given, only commits touching those paths are returned. The order is
// git's own reverse-chronological walk; no reordering happens here.
func (g *Git) RevList(branch string, paths ...string) ([]string, error) {
	args := []string{"rev-list", branch}
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	out, err := g.run.Run(g.dir, "git", args...)
	if err != nil {
		return nil, errors.Wrapf(err, "listing revisions of %s", branch)
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// CatFile returns the content of an object, e.g. ("blob", "<rev>:<path>")
// or ("commit", "<rev>").
func (g *Git) CatFile(kind, object string) (string, error) {
	out, err := g.run.Run(g.dir, "git", "cat-file", kind, object)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s %s", kind, object)
	}
	return out, nil
}

// BlobExists reports whether path exists as a blob at rev.
func (g *Git) BlobExists(rev, path string) bool {
	_, err := g.run.Run(g.dir, "git", "cat-file", "-e", rev+":"+path)
	return err == nil
}

// committerPattern extracts the unix timestamp from a commit object's
// committer line, e.g. "committer Alice <a@example.com> 1257894245 +0000".
var committerPattern = regexp.MustCompile(`(?m)^committer [^\n]* (\d+) [-+]\d{4}$`)

// CommitTime returns the committer timestamp of rev.
func (g *Git) CommitTime(rev string) (time.Time, error) {
	out, err := g.CatFile("commit", rev)
	if err != nil {
		return time.Time{}, err
	}
	m := committerPattern.FindStringSubmatch(out)
	if m == nil {
		return time.Time{}, errors.Newf("no committer timestamp in commit %s", rev)
	}
	ts, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parsing committer timestamp of %s", rev)
	}
	return time.Unix(ts, 0).UTC(), nil
}

// Checkout moves the working tree to rev, detached, discarding local changes.
func (g *Git) Checkout(rev string) error {
	if _, err := g.run.Run(g.dir, "git", "checkout", "-q", "-f", rev); err != nil {
		return errors.Wrapf(err, "checking out %s", rev)
	}
	return nil
}
