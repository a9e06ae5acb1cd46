package display

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/grovetools/gametidy/internal/transcript"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintTurnsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintTurnsTable([]string{"e4 e5", "Nf3 Nc6"}, &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "TURN"))
	assert.Contains(t, lines[0], "MOVES")
	assert.True(t, strings.HasPrefix(lines[1], "1"))
	assert.True(t, strings.HasSuffix(lines[1], "e4 e5"))
	assert.True(t, strings.HasSuffix(lines[2], "Nf3 Nc6"))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintJSON([]string{"e4 e5"}, &buf))

	var got []string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"e4 e5"}, got)
}

func TestRenderSummary(t *testing.T) {
	out := RenderSummary(&transcript.Result{
		Input:        "in.txt",
		Output:       "out.txt",
		Segments:     4,
		Turns:        []string{"e4 e5", "Nf3 Nc6"},
		BytesWritten: 14,
	})

	assert.Contains(t, out, "in.txt")
	assert.Contains(t, out, "out.txt")
	assert.Contains(t, out, "2 turns from 4 segments, 14 bytes")
}
