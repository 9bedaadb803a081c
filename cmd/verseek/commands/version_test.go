package commands

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turnkeylinux/verseek/cmd"
)

func TestVersionCommand_Output(t *testing.T) {
	out, err := executeRoot(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "verseek version "+cmd.Version)
	assert.Contains(t, out, "commit: "+cmd.Commit)
	assert.Contains(t, out, "built:  "+cmd.Date)
	assert.Contains(t, out, "go:     "+runtime.Version())
}

func TestVersionCommand_Metadata(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.NotEmpty(t, versionCmd.Short)
	assert.NotEmpty(t, versionCmd.Long)
}
