package entity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixtureTree builds:
//
//	root/a.txt        (3 bytes)
//	root/sub/b.txt    (5 bytes)
//	root/sub/deep/c.bin (7 bytes)
func fixtureTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub", "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("abc"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.txt"), []byte("12345"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "deep", "c.bin"), []byte("1234567"), 0o644))
	return root
}

func TestNewDir(t *testing.T) {
	root := fixtureTree(t)

	d, err := NewDir(root)
	require.NoError(t, err)

	assert.Equal(t, root, d.AbsPath)
	assert.Equal(t, filepath.Base(root), d.Base)
	assert.Equal(t, filepath.Dir(root), d.Parent)

	assert.Equal(t, 3, d.NumFileTotal)
	assert.Equal(t, 2, d.NumFolderTotal)
	assert.Equal(t, int64(15), d.SizeTotal)

	assert.Equal(t, 1, d.NumFileCurrent)
	assert.Equal(t, 1, d.NumFolderCurrent)
	assert.Equal(t, int64(3), d.SizeCurrent)
}

func TestNewDirTotalsCoverCurrent(t *testing.T) {
	root := fixtureTree(t)

	d, err := NewDir(root)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, d.SizeTotal, d.SizeCurrent)
	assert.GreaterOrEqual(t, d.NumFileTotal, d.NumFileCurrent)
	assert.GreaterOrEqual(t, d.NumFolderTotal, d.NumFolderCurrent)
}

func TestNewDirNotADirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := NewDir(file)
	assert.ErrorIs(t, err, ErrNotADirectory)

	_, err = NewDir(filepath.Join(root, "missing"))
	assert.ErrorIs(t, err, ErrNotADirectory)
}

func TestDirRename(t *testing.T) {
	parent := t.TempDir()
	old := filepath.Join(parent, "old")
	require.NoError(t, os.Mkdir(old, 0o755))

	d, err := NewDir(old)
	require.NoError(t, err)

	require.NoError(t, d.Rename("", "new"))
	want := filepath.Join(parent, "new")
	assert.Equal(t, want, d.AbsPath)
	assert.DirExists(t, want)
	assert.NoDirExists(t, old)
}
