package seek

import (
	"path/filepath"
	"strings"

	"github.com/turnkeylinux/verseek/internal/config"
	"github.com/turnkeylinux/verseek/internal/errors"
	"github.com/turnkeylinux/verseek/internal/gitcmd"
)

// Arena layout: packages are visible under arena.union, their writable
// copies live under arena.internals/overlay, and overlay history is kept on
// a "<branch>-thin" companion branch.
const (
	arenaInternals = "arena.internals"
	arenaUnion     = "arena.union"
	arenaOverlay   = "arena.internals/overlay"
	thinSuffix     = "-thin"
)

// networkIndicators are stderr fragments the arena checkout tool emits when
// a journal replay needs connectivity and has none.
var networkIndicators = []string{
	"network is unreachable",
	"could not resolve host",
	"name or service not known",
	"connection refused",
	"connection timed out",
	"unable to connect",
}

// sumoBackend serves a package inside an overlay arena. History is scoped
// to the overlay layer: changelog changes living only in the base layer are
// invisible until a copy-on-write promotes the file into the overlay.
// Checkouts go through the arena's own tool, which may replay a journal
// over the network for revisions not cached locally.
type sumoBackend struct {
	*gitBackend
	tool   string
	runner gitcmd.Runner
}

func newSumo(path, root string, runner gitcmd.Runner, cfg *config.Config) (*sumoBackend, error) {
	base, err := newGit(path, root, runner)
	if err != nil {
		return nil, err
	}

	// Track the changelog's overlay copy, not its union view.
	relUnion, err := relPath(filepath.Join(root, arenaUnion), filepath.Join(path, changelogRel))
	if err != nil {
		return nil, err
	}
	base.changelogPath = filepath.ToSlash(filepath.Join(arenaOverlay, relUnion))
	base.branchSuffix = thinSuffix

	// The marker may live only in the base layer, so per-revision marker
	// probes against the overlay would reject valid versions.
	base.filterMarker = false

	b := &sumoBackend{
		gitBackend: base,
		tool:       cfg.SumoCheckout,
		runner:     runner,
	}
	base.checkout = b.arenaCheckout
	return b, nil
}

// arenaCheckout runs the configured checkout tool at the arena root.
// Connectivity failures surface distinctly so the caller can retry once the
// network is back instead of treating them as a bad revision.
func (b *sumoBackend) arenaCheckout(rev string) error {
	_, err := b.runner.Run(b.git.Dir(), b.tool, rev)
	if err == nil {
		return nil
	}

	var cmdErr *gitcmd.CommandError
	if errors.As(err, &cmdErr) {
		stderr := strings.ToLower(cmdErr.Stderr)
		for _, indicator := range networkIndicators {
			if strings.Contains(stderr, indicator) {
				return errors.Wrapf(ErrNetworkUnavailable, "%v", err)
			}
		}
	}
	return errors.Wrapf(ErrCheckoutFailed, "%v", err)
}
