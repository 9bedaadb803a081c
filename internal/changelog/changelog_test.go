package changelog

import (
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{
			name:    "simple entry",
			content: "turnkey-core (1.0.2) lucid; urgency=low\n\n  * fix things\n",
			want:    "1.0.2",
		},
		{
			name:    "native version",
			content: "foo (0.9) unstable; urgency=low\n",
			want:    "0.9",
		},
		{
			name:    "epoch and revision",
			content: "bar (1:2.3.4-1) stable; urgency=high\n",
			want:    "1:2.3.4-1",
		},
		{
			name:    "multiple distributions",
			content: "baz (3.1) stable unstable; urgency=low\n",
			want:    "3.1",
		},
		{
			name: "first entry wins",
			content: "pkg (2.0) unstable; urgency=low\n\n  * second release\n\n" +
				"pkg (1.0) unstable; urgency=low\n\n  * first release\n",
			want: "2.0",
		},
		{
			name: "leading noise skipped",
			content: "this line is not a header\n\n" +
				"pkg (1.5) unstable; urgency=low\n",
			want: "1.5",
		},
		{
			name:    "uppercase source allowed",
			content: "Pkg (1.0) unstable; urgency=low\n",
			want:    "1.0",
		},
		{
			name:    "empty content",
			content: "",
			wantErr: true,
		},
		{
			name:    "missing distribution",
			content: "pkg (1.0); urgency=low\n",
			wantErr: true,
		},
		{
			name:    "missing version",
			content: "pkg () unstable; urgency=low\n",
			wantErr: true,
		},
		{
			name:    "header must start the line",
			content: "  pkg (1.0) unstable; urgency=low\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVersion([]byte(tt.content))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVersion() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrMalformed) {
					t.Errorf("expected ErrMalformed, got %v", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEntryFormat(t *testing.T) {
	e := Entry{
		Source:     "turnkey-core",
		Version:    "0.42",
		Release:    "UNRELEASED",
		Maintainer: "Alice Example <alice@example.com>",
		Date:       time.Date(2009, time.November, 10, 23, 4, 5, 0, time.UTC),
	}

	got := string(e.Format())

	wantHeader := "turnkey-core (0.42) UNRELEASED; urgency=low\n"
	if !strings.HasPrefix(got, wantHeader) {
		t.Errorf("Format() header = %q, want prefix %q", got, wantHeader)
	}
	if !strings.Contains(got, "  * undocumented\n") {
		t.Errorf("Format() missing placeholder entry body: %q", got)
	}
	wantTrailer := " --  Alice Example <alice@example.com>  Tue, 10 Nov 2009 23:04:05 +0000\n"
	if !strings.HasSuffix(got, wantTrailer) {
		t.Errorf("Format() trailer = %q, want suffix %q", got, wantTrailer)
	}

	// Round-trip: the synthesized entry must itself parse
	version, err := ParseVersion([]byte(got))
	if err != nil {
		t.Fatalf("synthesized entry does not parse: %v", err)
	}
	if version != "0.42" {
		t.Errorf("round-trip version = %q, want %q", version, "0.42")
	}
}

func TestEntryFormat_NonUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	e := Entry{
		Source:     "pkg",
		Version:    "1.0",
		Release:    "UNRELEASED",
		Maintainer: "Bob <bob@example.com>",
		Date:       time.Date(2009, time.November, 11, 1, 4, 5, 0, loc),
	}

	got := string(e.Format())
	// 01:04 UTC+2 is 23:04 UTC the previous day
	if !strings.Contains(got, "Tue, 10 Nov 2009 23:04:05 +0000") {
		t.Errorf("Format() should render the date in UTC: %q", got)
	}
}
