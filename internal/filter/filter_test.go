package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/filekit/internal/entity"
)

func fileWithExt(ext string) *entity.File {
	return &entity.File{Ext: ext}
}

func TestCategories(t *testing.T) {
	cases := []struct {
		pred func(*entity.File) bool
		yes  []string
		no   []string
	}{
		{Image, []string{".jpg", ".jpeg", ".png", ".svg"}, []string{".mp3", ".txt", ""}},
		{Audio, []string{".mp3", ".wav", ".ogg"}, []string{".jpg", ".avi"}},
		{Video, []string{".avi", ".mkv", ".mov"}, []string{".mp3", ".png"}},
		{PDF, []string{".pdf"}, []string{".doc", ".txt"}},
		{Word, []string{".doc", ".docx"}, []string{".xls", ".pdf"}},
		{Excel, []string{".xls", ".xlsx"}, []string{".doc", ".csv"}},
		{PPT, []string{".ppt"}, []string{".pptx", ".doc"}},
		{Archive, []string{".zip", ".rar", ".7z"}, []string{".txt", ".iso"}},
	}
	for _, tc := range cases {
		for _, ext := range tc.yes {
			assert.True(t, tc.pred(fileWithExt(ext)), ext)
		}
		for _, ext := range tc.no {
			assert.False(t, tc.pred(fileWithExt(ext)), ext)
		}
	}
}

func TestMp4IsBothAudioAndVideo(t *testing.T) {
	f := fileWithExt(".mp4")
	assert.True(t, Audio(f))
	assert.True(t, Video(f))
}

func TestByName(t *testing.T) {
	assert.NotNil(t, ByName("image"))
	assert.NotNil(t, ByName("Archive"))
	assert.Nil(t, ByName("spreadsheet"))

	assert.True(t, ByName("pdf")(fileWithExt(".pdf")))
}

func TestDetectPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extensionless")
	// PNG signature followed by padding
	data := append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 16)...)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	category, err := Detect(path)
	require.NoError(t, err)
	assert.Equal(t, "image", category)
}

func TestDetectUnknown(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(path, []byte("just some text"), 0o644))

	category, err := Detect(path)
	require.NoError(t, err)
	assert.Empty(t, category)
}

func TestDetectMissingFile(t *testing.T) {
	_, err := Detect(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
