package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the verseek configuration directory.
// Returns: <ConfigHome>/verseek/
func ConfigDir() string {
	return filepath.Join(ConfigHome(), "verseek")
}

// ConfigFile returns the path of the verseek configuration file.
// Returns: <ConfigHome>/verseek/config.yaml
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
