package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverCmdStructure(t *testing.T) {
	cmd := discoverCmd()

	require.Equal(t, "discover", cmd.Name)
	require.NotNil(t, cmd.Action)

	names := commandFlagNames(t, "discover")
	for _, want := range []string{"path", "service", "process", "include-comments", "store", "output", "format"} {
		assert.Contains(t, names, want)
	}
}

func TestServeCmdStructure(t *testing.T) {
	cmd := serveCmd()

	require.Equal(t, "serve", cmd.Name)
	require.NotNil(t, cmd.Action)

	names := commandFlagNames(t, "serve")
	for _, want := range []string{"address", "port", "store"} {
		assert.Contains(t, names, want)
	}
}
