// Package backup streams a filtered file collection into a zip archive.
package backup

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/flate"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/filekit/internal/collection"
	"github.com/GriffinCanCode/filekit/internal/entity"
	"github.com/GriffinCanCode/filekit/internal/infrastructure/logging"
	"github.com/GriffinCanCode/filekit/internal/shared/format"
)

// stampLayout names archives "<name> 2006-01-02 15h-04m-05s.zip".
const stampLayout = "2006-01-02 15h-04m-05s"

// manifestName is the archive entry listing every backed-up file.
const manifestName = "manifest.yaml"

// Options configures one backup run.
type Options struct {
	// Name is the archive base name, without extension or timestamp.
	Name string
	// Root is the directory to back up.
	Root string
	// OutputDir is where the archive is written; "." when empty.
	OutputDir string
	// Ignore excludes files from the backup.
	Ignore collection.ExceptRules
	// Logger defaults to a production logger when nil.
	Logger *logging.Logger
}

// Result summarizes a completed backup.
type Result struct {
	Archive   string
	Files     int
	TotalSize int64
}

type manifestEntry struct {
	Path     string    `yaml:"path"`
	Size     int64     `yaml:"size"`
	Modified time.Time `yaml:"modified"`
}

// Run selects the files under opts.Root that pass the ignore rules and
// writes them into a timestamped zip archive, entry names relative to the
// root. A manifest.yaml entry lists every archived file.
func Run(opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logging.NewDefault()
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", opts.Root, err)
	}
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}

	log.Info("calculating files to back up", zap.String("root", root))

	fc, err := collection.FromTreesExcept(
		collection.Options{Tier: entity.TierRegular}, opts.Ignore, root)
	if err != nil {
		return nil, err
	}

	var totalSize int64
	for f := range fc.Files() {
		totalSize += f.Size
	}
	log.Info("backup set calculated",
		zap.Int("files", fc.Len()),
		zap.String("total_size", format.Size(totalSize)))

	name := fmt.Sprintf("%s %s.zip", opts.Name, time.Now().Format(stampLayout))
	archivePath := filepath.Join(outDir, name)

	if err := writeArchive(archivePath, root, fc); err != nil {
		return nil, err
	}

	log.Info("backup complete", zap.String("archive", archivePath))
	return &Result{Archive: archivePath, Files: fc.Len(), TotalSize: totalSize}, nil
}

// writeArchive streams the collection into a zip file at path.
func writeArchive(path, root string, fc *collection.Collection) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestSpeed)
	})

	var manifest []manifestEntry
	for f := range fc.Files() {
		rel, err := filepath.Rel(root, f.AbsPath)
		if err != nil {
			continue
		}
		src, err := os.Open(f.AbsPath)
		if err != nil {
			// vanished since discovery, leave it out of the archive
			continue
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			src.Close()
			return fmt.Errorf("archive entry %q: %w", rel, err)
		}
		if _, err := io.Copy(w, src); err != nil {
			src.Close()
			return fmt.Errorf("archive entry %q: %w", rel, err)
		}
		src.Close()
		manifest = append(manifest, manifestEntry{
			Path:     filepath.ToSlash(rel),
			Size:     f.Size,
			Modified: f.MTime,
		})
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	w, err := zw.Create(manifestName)
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize %q: %w", path, err)
	}
	return nil
}
