// Package paths provides path resolution for verseek's own files.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. On Linux and macOS, paths follow XDG conventions
// (~/.config); on Windows, %LOCALAPPDATA%.
//
// Note that seek state is deliberately NOT stored here: it lives in the
// underlying store's own side channel (a git symbolic ref), managed by
// the seek engine. This package only covers verseek's configuration file.
package paths
