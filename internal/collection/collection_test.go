package collection

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/filekit/internal/entity"
)

// fixtureTree builds a small tree with mixed extensions:
//
//	root/app.log      (2 bytes)
//	root/doc.pdf      (6 bytes)
//	root/notes.txt    (10 bytes)
//	root/photo.jpg    (4 bytes)
//	root/sub/pic.png  (8 bytes)
//	root/sub/trace.log (3 bytes)
//	root/sub/video.mp4 (12 bytes)
func fixtureTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	files := map[string]int{
		"app.log":       2,
		"doc.pdf":       6,
		"notes.txt":     10,
		"photo.jpg":     4,
		"sub/pic.png":   8,
		"sub/trace.log": 3,
		"sub/video.mp4": 12,
	}
	for name, size := range files {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte('a' + i%26)
		}
		require.NoError(t, os.WriteFile(filepath.Join(root, name), data, 0o644))
	}
	return root
}

func writeBytes(t *testing.T, path string, size int) {
	t.Helper()
	data := make([]byte, size)
	for i := range data {
		data[i] = byte('a' + i%26)
	}
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func mustFile(t *testing.T, root, name string) *entity.File {
	t.Helper()
	f, err := entity.NewFile(filepath.Join(root, name), entity.TierRegular)
	require.NoError(t, err)
	return f
}

func TestAddReportsDuplicates(t *testing.T) {
	root := fixtureTree(t)
	c := New()

	f := mustFile(t, root, "photo.jpg")
	assert.True(t, c.Add(f))
	assert.False(t, c.Add(f), "re-adding the same path is a reported no-op")
	assert.Equal(t, 1, c.Len())
}

func TestAddPath(t *testing.T) {
	root := fixtureTree(t)
	c := New()

	added, err := c.AddPath(filepath.Join(root, "doc.pdf"), entity.TierFast)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = c.AddPath(filepath.Join(root, "doc.pdf"), entity.TierFast)
	require.NoError(t, err)
	assert.False(t, added)

	_, err = c.AddPath(filepath.Join(root, "missing.txt"), entity.TierFast)
	assert.ErrorIs(t, err, entity.ErrNotAFile)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	root := fixtureTree(t)
	c, err := FromTrees(Options{}, root)
	require.NoError(t, err)

	before := c.Len()
	assert.False(t, c.Remove(filepath.Join(root, "never-there.txt")))
	assert.Equal(t, before, c.Len())

	assert.True(t, c.Remove(filepath.Join(root, "photo.jpg")))
	assert.Equal(t, before-1, c.Len())
}

func TestContains(t *testing.T) {
	root := fixtureTree(t)
	c, err := FromTrees(Options{}, root)
	require.NoError(t, err)

	assert.True(t, c.Contains(filepath.Join(root, "doc.pdf")))
	assert.False(t, c.Contains(filepath.Join(root, "other.pdf")))

	f := mustFile(t, root, "doc.pdf")
	assert.True(t, c.ContainsFile(f))
}

func TestIterationYieldsPathsInInsertionOrder(t *testing.T) {
	root := fixtureTree(t)
	c := New()
	for _, name := range []string{"notes.txt", "app.log", "doc.pdf"} {
		c.Add(mustFile(t, root, name))
	}

	want := []string{
		filepath.Join(root, "notes.txt"),
		filepath.Join(root, "app.log"),
		filepath.Join(root, "doc.pdf"),
	}
	assert.Equal(t, want, c.PathList())

	// restartable: a second pass sees the same sequence
	assert.Equal(t, want, c.PathList())

	var fromFiles []string
	for f := range c.Files() {
		fromFiles = append(fromFiles, f.AbsPath)
	}
	assert.Equal(t, want, fromFiles)
}

func TestIterationEarlyStop(t *testing.T) {
	root := fixtureTree(t)
	c, err := FromTrees(Options{}, root)
	require.NoError(t, err)
	require.Greater(t, c.Len(), 2)

	n := 0
	for range c.Paths() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestSelect(t *testing.T) {
	root := fixtureTree(t)
	c, err := FromTrees(Options{}, root)
	require.NoError(t, err)

	logs := c.Select(func(f *entity.File) bool { return f.Ext == ".log" })
	assert.Equal(t, 2, logs.Len())
	for f := range logs.Files() {
		assert.Equal(t, ".log", f.Ext)
	}
}

func TestPartitionCoversEveryFileOnce(t *testing.T) {
	root := fixtureTree(t)
	c, err := FromTrees(Options{}, root)
	require.NoError(t, err)

	big, small := c.Partition(func(f *entity.File) bool { return f.Size >= 6 })
	assert.Equal(t, c.Len(), big.Len()+small.Len())
	for f := range big.Files() {
		assert.False(t, small.Contains(f.AbsPath))
	}
}

func TestCloneIsDeep(t *testing.T) {
	root := fixtureTree(t)
	c, err := FromTrees(Options{}, root)
	require.NoError(t, err)

	clone := c.Clone()
	require.Equal(t, c.Len(), clone.Len())

	for f := range clone.Files() {
		f.Name = "mutated"
	}
	for f := range c.Files() {
		assert.NotEqual(t, "mutated", f.Name)
	}
}
