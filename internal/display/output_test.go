package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterPlain(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)

	require.NoError(t, p.Header("jokes"))
	require.NoError(t, p.Record("line one\nline two"))
	require.NoError(t, p.Fortune("single"))
	require.NoError(t, p.Fallback())

	assert.Equal(t, "(jokes)\nline one\nline two\n%\nsingle\nNo fortunes found\n", buf.String())
}

func TestPrinterColor(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	require.NoError(t, p.Header("jokes"))
	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "(jokes)")

	// Bodies are never colored
	buf.Reset()
	require.NoError(t, p.Record("text"))
	assert.Equal(t, "text\n%\n", buf.String())
}
