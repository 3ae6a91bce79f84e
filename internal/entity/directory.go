package entity

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charlievieth/fastwalk"
)

// Dir is an aggregate statistics record for one directory.
//
// Total counts and sizes cover the whole subtree; Current counts cover the
// directory's own entries only, so every Total is >= its Current counterpart.
// Both are computed once at construction and not kept live.
type Dir struct {
	AbsPath string
	Parent  string
	Base    string

	SizeTotal      int64
	NumFolderTotal int
	NumFileTotal   int

	SizeCurrent      int64
	NumFolderCurrent int
	NumFileCurrent   int
}

// NewDir builds a Dir record for path.
// Fails with ErrNotADirectory unless path resolves to an existing directory.
func NewDir(path string) (*Dir, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%q: %w", path, ErrNotADirectory)
	}

	d := &Dir{
		AbsPath: abs,
		Parent:  filepath.Dir(abs),
		Base:    filepath.Base(abs),
	}
	if err := d.aggregate(); err != nil {
		return nil, err
	}
	return d, nil
}

// aggregate computes the recursive totals and the single-level counts.
func (d *Dir) aggregate() error {
	conf := fastwalk.Config{Follow: false, NumWorkers: 1}
	err := fastwalk.Walk(&conf, d.AbsPath, func(p string, de os.DirEntry, err error) error {
		if err != nil || p == d.AbsPath {
			return nil
		}
		if de.IsDir() {
			d.NumFolderTotal++
			return nil
		}
		info, err := de.Info()
		if err != nil {
			// entry vanished mid-walk, skip it
			return nil
		}
		d.NumFileTotal++
		d.SizeTotal += info.Size()
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %q: %w", d.AbsPath, err)
	}

	entries, err := os.ReadDir(d.AbsPath)
	if err != nil {
		return fmt.Errorf("read %q: %w", d.AbsPath, err)
	}
	for _, de := range entries {
		if de.IsDir() {
			d.NumFolderCurrent++
			continue
		}
		info, err := de.Info()
		if err != nil {
			continue
		}
		d.NumFileCurrent++
		d.SizeCurrent += info.Size()
	}
	return nil
}

// String returns the absolute path.
func (d *Dir) String() string {
	return d.AbsPath
}

// Rename moves the underlying directory and mirrors the change into the
// record on success. Empty arguments keep the current component. The
// aggregate statistics are left as computed at construction.
func (d *Dir) Rename(newParent, newBase string) error {
	parent := d.Parent
	if newParent != "" {
		abs, err := filepath.Abs(newParent)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", newParent, err)
		}
		parent = abs
	}
	base := d.Base
	if newBase != "" {
		base = newBase
	}

	abs := filepath.Join(parent, base)
	if err := os.Rename(d.AbsPath, abs); err != nil {
		return fmt.Errorf("rename %q: %w", d.AbsPath, err)
	}

	d.AbsPath = abs
	d.Parent = parent
	d.Base = base
	return nil
}
