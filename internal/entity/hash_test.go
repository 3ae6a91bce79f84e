package entity

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashFileMatchesSum(t *testing.T) {
	dir := t.TempDir()
	content := []byte("some file content")
	path := filepath.Join(dir, "a.bin")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	h := DefaultHasher()
	got, err := h.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, h.Sum(content), got)
}

func TestHashFileLargerThanBuffer(t *testing.T) {
	dir := t.TempDir()
	content := bytes.Repeat([]byte("abcd1234"), hashBufSize/4)
	path := filepath.Join(dir, "big.bin")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	h := DefaultHasher()
	got, err := h.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, h.Sum(content), got)
}

func TestHashFileMissing(t *testing.T) {
	_, err := DefaultHasher().HashFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestEqualContentEqualHash(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("same"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("same"), 0o644))

	h := DefaultHasher()
	ha, err := h.HashFile(a)
	require.NoError(t, err)
	hb, err := h.HashFile(b)
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
}
