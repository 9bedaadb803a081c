package changelog

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
)

// Control holds the fields of a debian/control file that changelog
// synthesis needs. Fields retains everything else verbatim.
type Control struct {
	Source     string
	Maintainer string
	Fields     map[string]string
}

var fieldPattern = regexp.MustCompile(`^([^\s:]+)\s*:\s*(.*)$`)

// ParseControl parses a debian/control file. Continuation lines (starting
// with a space) are ignored; only the first value line of each field is kept.
// It fails if the Source field is missing, since the control file doubles as
// the package marker and a markerless parse indicates a broken package.
func ParseControl(content []byte) (*Control, error) {
	fields := make(map[string]string)
	for _, line := range strings.Split(string(content), "\n") {
		if strings.HasPrefix(line, " ") {
			continue
		}
		line = strings.TrimRight(line, "\r")
		if m := fieldPattern.FindStringSubmatch(line); m != nil {
			if _, dup := fields[m[1]]; !dup {
				fields[m[1]] = m[2]
			}
		}
	}

	ctl := &Control{
		Source:     fields["Source"],
		Maintainer: fields["Maintainer"],
		Fields:     fields,
	}
	if ctl.Source == "" {
		return nil, errors.New("control file has no Source field")
	}
	return ctl, nil
}
