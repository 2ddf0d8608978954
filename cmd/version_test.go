package cmd

import (
	"bytes"
	"encoding/json"
	"runtime"
	"testing"

	"github.com/killallgit/secondlife-api/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "summary line and runtime",
			args:     []string{"version"},
			contains: []string{"Second Life API " + Version, "commit " + GitCommit, "runtime " + runtime.Version()},
		},
		{
			name:     "short prints only the version",
			args:     []string{"version", "--short"},
			contains: []string{Version + "\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}

	_ = versionCmd.Flags().Set("short", "false")
}

func TestVersionCommand_JSON(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version", "--json"})

	require.NoError(t, cmd.Execute())
	_ = versionCmd.Flags().Set("json", "false")

	var got types.VersionResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, buildInfo(), got)
}

func TestVersionCommandFlags(t *testing.T) {
	cmd := NewRootCmd()
	versionCmd, _, err := cmd.Find([]string{"version"})
	require.NoError(t, err)

	assert.NotNil(t, versionCmd.Flags().Lookup("short"))
	assert.NotNil(t, versionCmd.Flags().Lookup("json"))
}
