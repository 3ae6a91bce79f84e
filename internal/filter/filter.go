// Package filter provides extension-based file classification predicates.
//
// Each predicate checks the record's already-lowercased extension against a
// fixed category table, so matching is case-insensitive by construction. The
// tables are the single source of truth for what belongs to a category.
package filter

import (
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/GriffinCanCode/filekit/internal/entity"
)

func extSet(exts ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		set[ext] = struct{}{}
	}
	return set
}

var (
	imageExts = extSet(".jpg", ".jpeg", ".png", ".gif", ".tiff",
		".bmp", ".ppm", ".pgm", ".pbm", ".pnm", ".svg")
	audioExts = extSet(".mp3", ".mp4", ".aac", ".m4a", ".wma",
		".wav", ".ape", ".tak", ".tta", ".3gp", ".webm", ".ogg")
	videoExts = extSet(".avi", ".wmv", ".mkv", ".mp4", ".flv",
		".vob", ".mov", ".rm", ".rmvb", ".3gp", ".3g2", ".nsv", ".webm",
		".mpg", ".mpeg", ".m4v", ".iso")
	wordExts    = extSet(".doc", ".docx", ".docm", ".dotx", ".dotm", ".docb")
	excelExts   = extSet(".xls", ".xlsx", ".xlsm", ".xltx", ".xltm")
	archiveExts = extSet(".zip", ".rar", ".gz", ".tgz", ".7z")
)

// Image matches common image formats.
func Image(f *entity.File) bool {
	_, ok := imageExts[f.Ext]
	return ok
}

// Audio matches common audio formats.
func Audio(f *entity.File) bool {
	_, ok := audioExts[f.Ext]
	return ok
}

// Video matches common video formats.
func Video(f *entity.File) bool {
	_, ok := videoExts[f.Ext]
	return ok
}

// PDF matches PDF documents.
func PDF(f *entity.File) bool {
	return f.Ext == ".pdf"
}

// Word matches Microsoft Word documents.
func Word(f *entity.File) bool {
	_, ok := wordExts[f.Ext]
	return ok
}

// Excel matches Microsoft Excel workbooks.
func Excel(f *entity.File) bool {
	_, ok := excelExts[f.Ext]
	return ok
}

// PPT matches Microsoft PowerPoint presentations.
func PPT(f *entity.File) bool {
	return f.Ext == ".ppt"
}

// Archive matches compressed archive formats.
func Archive(f *entity.File) bool {
	_, ok := archiveExts[f.Ext]
	return ok
}

// ByName returns the predicate for a category name, or nil if unknown.
func ByName(category string) func(*entity.File) bool {
	switch strings.ToLower(category) {
	case "image":
		return Image
	case "audio":
		return Audio
	case "video":
		return Video
	case "pdf":
		return PDF
	case "word":
		return Word
	case "excel":
		return Excel
	case "ppt":
		return PPT
	case "archive":
		return Archive
	default:
		return nil
	}
}

// Detect sniffs a file's content and maps its MIME type to a category name.
// Useful for files without a telling extension; returns "" when the content
// fits no category.
func Detect(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	mime := mtype.String()
	switch {
	case strings.HasPrefix(mime, "image/"):
		return "image", nil
	case strings.HasPrefix(mime, "audio/"):
		return "audio", nil
	case strings.HasPrefix(mime, "video/"):
		return "video", nil
	case mime == "application/pdf":
		return "pdf", nil
	case mime == "application/zip", mime == "application/gzip",
		mime == "application/x-rar-compressed", mime == "application/x-7z-compressed":
		return "archive", nil
	default:
		return "", nil
	}
}
