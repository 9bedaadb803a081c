package commands

import (
	"fmt"
	"io"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/turnkeylinux/verseek/internal/errors"
	"github.com/turnkeylinux/verseek/internal/seek"
)

// runInteractive lets the user fuzzy-pick a version from the backend's
// index and seeks to it. Aborting the picker is not an error.
func runInteractive(w io.Writer, backend seek.Backend) error {
	entries, err := backend.ListVersions()
	if err != nil {
		return err
	}

	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			return entries[i].Version
		},
		fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			if i == -1 {
				return ""
			}
			e := entries[i]
			if e.Commit == "" {
				return fmt.Sprintf("Version: %s", e.Version)
			}
			return fmt.Sprintf("Version: %s\nRevision: %s", e.Version, e.Commit)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive version selection failed")
	}

	selected := entries[idx].Version
	if err := backend.Seek(selected); err != nil {
		return err
	}
	fmt.Fprintf(w, "Seeked to %s\n", selected)
	return nil
}
