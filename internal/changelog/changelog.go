// Package changelog reads and writes Debian-style changelog files.
//
// Only the first entry header is ever inspected: it carries the version
// token the seek engine resolves against. The rest of the file is opaque.
package changelog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// ErrMalformed indicates no parsable entry header was found in a changelog.
var ErrMalformed = errors.New("malformed changelog")

// headerPattern matches a changelog entry header line, e.g.
//
//	turnkey-core (1.0.2) lucid; urgency=low
//
// The version is the parenthesized group.
var headerPattern = regexp.MustCompile(`(?i)^\w[-+0-9a-z.]* \(([^() \t]+)\)(?:\s+[-+0-9a-z.]+)+;`)

// ParseVersion extracts the version of the most recent entry from raw
// changelog content. It scans for the first line that looks like an entry
// header and returns its version token.
func ParseVersion(content []byte) (string, error) {
	for _, line := range strings.Split(string(content), "\n") {
		if m := headerPattern.FindStringSubmatch(line); m != nil {
			return m[1], nil
		}
	}
	return "", errors.WithDetail(ErrMalformed, "no entry header found")
}

// Entry describes a changelog entry to be synthesized on disk after an
// auto-versioned seek, so tooling expecting a conventional changelog
// still finds one.
type Entry struct {
	Source     string
	Version    string
	Release    string
	Maintainer string
	Date       time.Time
}

// Format renders the entry in the conventional changelog format. The date
// renders in UTC with English month and day names regardless of locale.
func (e Entry) Format() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) %s; urgency=low\n", e.Source, e.Version, e.Release)
	b.WriteString("\n")
	b.WriteString("  * undocumented\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, " --  %s  %s\n", e.Maintainer,
		e.Date.UTC().Format("Mon, 02 Jan 2006 15:04:05 +0000"))
	return []byte(b.String())
}
