package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListTools(t *testing.T) {
	fake := resetState(t)
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--list-tools"})

	require.NoError(t, rootCmd.Execute())

	out := buf.String()
	require.Contains(t, out, "TOOL")
	require.Contains(t, out, "bandit -r <directory>")
	require.Contains(t, out, "pyre check")
	require.Contains(t, out, "4 tools in catalog")
	require.Empty(t, fake.Calls, "--list-tools must not spawn tools")
}

func TestListToolsRejectsDirectory(t *testing.T) {
	resetState(t)
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"--list-tools", "somedir"})

	err := rootCmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not accept")
}
