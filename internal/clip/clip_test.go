package clip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClipboard(t *testing.T) {
	var c Clipboard = Memory()
	s, err := c.ReadText()
	require.NoError(t, err)
	assert.Empty(t, s)

	require.NoError(t, c.WriteText("سلام hi"))
	s, err = c.ReadText()
	require.NoError(t, err)
	assert.Equal(t, "سلام hi", s)
}
