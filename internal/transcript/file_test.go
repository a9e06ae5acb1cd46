package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTidyFileWritesOneTurnPerLine(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, DefaultInputFile)
	out := filepath.Join(dir, DefaultOutputFile)
	require.NoError(t, os.WriteFile(in, []byte("Header text. e4 e5 !. Nf3 Nc6 #. trailer"), 0o644))

	res, err := newDefault(t).TidyFile(in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "e4 e5\nNf3 Nc6\n", string(data))
	assert.Equal(t, 4, res.Segments)
	assert.Equal(t, DefaultPolicy(), res.Policy)
	assert.Equal(t, len(data), res.BytesWritten)
	assert.Equal(t, []string{"e4 e5", "Nf3 Nc6"}, res.Turns)
}

func TestTidyFileTruncatesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("h. trailer"), 0o644))
	require.NoError(t, os.WriteFile(out, []byte("stale content\n"), 0o644))

	_, err := newDefault(t).TidyFile(in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestTidyFileIsByteIdenticalAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("h.\ne4 e5 2.\nNf3 Nc6 3. Bb5 a6 4. x"), 0o644))

	n := newDefault(t)
	_, err := n.TidyFile(in, out)
	require.NoError(t, err)
	first, err := os.ReadFile(out)
	require.NoError(t, err)

	_, err = n.TidyFile(in, out)
	require.NoError(t, err)
	second, err := os.ReadFile(out)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 3, strings.Count(string(first), "\n"))
}

func TestTidyFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	_, err := newDefault(t).TidyFile(filepath.Join(dir, "missing.txt"), out)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestTidyFileDoesNotWriteOnMalformedSegment(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("h. e4 e5 1. . x"), 0o644))

	_, err := newDefault(t).TidyFile(in, out)
	assert.ErrorIs(t, err, ErrEmptySegment)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteTurnsUnwritableDestination(t *testing.T) {
	dir := t.TempDir()

	_, err := WriteTurns(filepath.Join(dir, "missing", "out.txt"), []string{"e4 e5"})
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("h. a b c. d e f. x"), 0o644))

	turns, n, err := newDefault(t).ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, []string{"a b", "d e"}, turns)
	assert.Equal(t, 18, n)
}
