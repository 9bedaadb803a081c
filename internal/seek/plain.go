package seek

import (
	"path/filepath"

	"github.com/turnkeylinux/verseek/internal/changelog"
	"github.com/turnkeylinux/verseek/internal/errors"
	"github.com/turnkeylinux/verseek/pkg/fileutil"
)

// plainBackend serves directories with no revision history. The only
// recoverable version is whatever the changelog currently records, so
// listing has at most one entry and the only legal seek is the identity.
type plainBackend struct {
	path string
}

func newPlain(path string) *plainBackend {
	return &plainBackend{path: path}
}

func (b *plainBackend) currentVersion() (string, error) {
	clPath := filepath.Join(b.path, changelogRel)
	content, err := fileutil.ReadFileWithLimit(clPath)
	if err != nil {
		return "", errors.Wrapf(ErrNoChangelogHistory, "reading %q: %v", clPath, err)
	}
	version, err := changelog.ParseVersion(content)
	if err != nil {
		return "", errors.Wrapf(err, "parsing %q", clPath)
	}
	return version, nil
}

func (b *plainBackend) ListVersions() ([]VersionEntry, error) {
	version, err := b.currentVersion()
	if err != nil {
		return nil, err
	}
	return []VersionEntry{{Version: version}}, nil
}

func (b *plainBackend) Seek(version string) error {
	current, err := b.currentVersion()
	if err != nil {
		return err
	}
	if version != current {
		return errors.Wrapf(ErrUnsupportedSeek,
			"can't seek to version %q in a plain directory (only %q is available)",
			version, current)
	}
	return nil
}

func (b *plainBackend) Restore() error {
	return nil
}
