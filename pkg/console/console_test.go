package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLineTrimsAndPrintsLabel(t *testing.T) {
	var out bytes.Buffer
	c, err := New(strings.NewReader("  bonjour  \nsecond\n"), &out)
	require.NoError(t, err)

	line, err := c.ReadLine("Vous: ")
	require.NoError(t, err)
	assert.Equal(t, "bonjour", line)

	line, err = c.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	assert.Equal(t, "Vous: > ", out.String())
}

func TestReadLineReturnsEOF(t *testing.T) {
	c, err := New(strings.NewReader(""), nil)
	require.NoError(t, err)

	_, err = c.ReadLine("")
	assert.ErrorIs(t, err, io.EOF)
}

func TestNewRequiresInput(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}

func TestPrintHelpers(t *testing.T) {
	var out bytes.Buffer
	c, err := New(strings.NewReader(""), &out)
	require.NoError(t, err)

	c.Print("a")
	c.Println("b")
	c.Newline()
	assert.Equal(t, "ab\n\n", out.String())
	assert.Same(t, &out, c.Out())
}
