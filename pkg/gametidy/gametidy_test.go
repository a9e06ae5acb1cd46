package gametidy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	turns, err := Normalize([]byte("Header text. e4 e5 !. Nf3 Nc6 #. trailer"))
	require.NoError(t, err)
	assert.Equal(t, []string{"e4 e5", "Nf3 Nc6"}, turns)
}

func TestNormalizeWithPolicy(t *testing.T) {
	turns, err := NormalizeWithPolicy([]byte("e4 e5 1. x"), Policy{DropTail: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"e4 e5"}, turns)

	_, err = NormalizeWithPolicy(nil, Policy{DropHead: -1})
	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestTidy(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("h. a b c. x"), 0o644))

	res, err := Tidy(in, out)
	require.NoError(t, err)
	assert.Equal(t, []string{"a b"}, res.Turns)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a b\n", string(data))
}
