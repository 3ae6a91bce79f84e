package entity

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File is a metadata record for one regular file.
//
// Base keeps the on-disk spelling and AbsPath is always Dir joined with Base.
// Ext is normalized to lower case with its leading dot, so Base matches
// Name + Ext up to extension case. Which of the remaining fields are
// populated depends on the Tier the record was built with.
type File struct {
	AbsPath string
	Dir     string
	Base    string
	Name    string
	Ext     string

	ATime time.Time
	CTime time.Time
	MTime time.Time
	Size  int64

	// Hash is the hex digest of the full file content, set under TierSlow only.
	Hash string
}

// NewFile builds a File record for path at the given tier.
// Fails with ErrNotAFile unless path resolves to an existing regular file.
func NewFile(path string, tier Tier) (*File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%q: %w", path, ErrNotAFile)
	}

	f := &File{AbsPath: abs}
	f.splitPath()

	if tier >= TierRegular {
		f.Size = info.Size()
		f.MTime = info.ModTime()
		f.ATime, f.CTime = statTimes(info)
	}
	if tier >= TierSlow {
		sum, err := DefaultHasher().HashFile(abs)
		if err != nil {
			return nil, fmt.Errorf("hash %q: %w", path, err)
		}
		f.Hash = sum
	}
	return f, nil
}

// splitPath derives Dir, Base, Name and Ext from AbsPath.
func (f *File) splitPath() {
	f.Dir = filepath.Dir(f.AbsPath)
	f.Base = filepath.Base(f.AbsPath)
	f.Name, f.Ext = splitExt(f.Base)
}

// splitExt splits a base name into name and lowercased extension.
// A leading dot alone (dotfiles like .bashrc) is not an extension.
func splitExt(base string) (name, ext string) {
	ext = filepath.Ext(base)
	if ext == base {
		return base, ""
	}
	return strings.TrimSuffix(base, ext), strings.ToLower(ext)
}

// String returns the absolute path.
func (f *File) String() string {
	return f.AbsPath
}

// Clone returns an independent copy of the record.
func (f *File) Clone() *File {
	c := *f
	return &c
}

// Exists reports whether anything exists at the record's path.
func (f *File) Exists() bool {
	_, err := os.Stat(f.AbsPath)
	return err == nil
}

// IsFile reports whether the record's path is still a regular file.
func (f *File) IsFile() bool {
	info, err := os.Stat(f.AbsPath)
	return err == nil && info.Mode().IsRegular()
}

// Refresh re-reads the record's metadata from disk at the given tier.
func (f *File) Refresh(tier Tier) error {
	fresh, err := NewFile(f.AbsPath, tier)
	if err != nil {
		return err
	}
	*f = *fresh
	return nil
}

// Rename moves the underlying file and mirrors the change into the record.
// Empty arguments keep the current component. A non-empty newExt must begin
// with the extension separator; it is rejected with ErrInvalidExtension
// before anything touches disk. The rename happens on disk first, and the
// in-memory fields are updated only when it succeeds.
func (f *File) Rename(newDir, newName, newExt string) error {
	if newExt != "" && !strings.HasPrefix(newExt, ".") {
		return fmt.Errorf("%q: %w", newExt, ErrInvalidExtension)
	}

	dir := f.Dir
	if newDir != "" {
		abs, err := filepath.Abs(newDir)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", newDir, err)
		}
		dir = abs
	}
	name := f.Name
	if newName != "" {
		name = newName
	}
	ext := f.Ext
	if newExt != "" {
		ext = strings.ToLower(newExt)
	}

	base := name + ext
	abs := filepath.Join(dir, base)
	if err := os.Rename(f.AbsPath, abs); err != nil {
		return fmt.Errorf("rename %q: %w", f.AbsPath, err)
	}

	f.AbsPath = abs
	f.Dir = dir
	f.Base = base
	f.Name = name
	f.Ext = ext
	return nil
}

// CopyTo copies the file byte for byte to dst.
// Fails with ErrDestinationExists if dst exists and overwrite is false.
func (f *File) CopyTo(dst string, overwrite bool) error {
	if _, err := os.Stat(dst); err == nil && !overwrite {
		return fmt.Errorf("%q: %w", dst, ErrDestinationExists)
	}

	src, err := os.Open(f.AbsPath)
	if err != nil {
		return fmt.Errorf("open %q: %w", f.AbsPath, err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %q: %w", dst, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return fmt.Errorf("copy to %q: %w", dst, err)
	}
	return out.Close()
}

// Delete removes the underlying file. The record's cached fields stay
// readable as a snapshot of what the file was.
func (f *File) Delete() error {
	if err := os.Remove(f.AbsPath); err != nil {
		return fmt.Errorf("delete %q: %w", f.AbsPath, err)
	}
	return nil
}
