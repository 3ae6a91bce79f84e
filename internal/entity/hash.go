package entity

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
)

// Algorithm represents the hashing algorithm to use.
type Algorithm string

const (
	// MD5 identifies file content, it is not used for anything security-sensitive.
	MD5 Algorithm = "md5"
	// Extensible: add more algorithms here
)

// hashBufSize bounds how much of a file is held in memory while hashing.
const hashBufSize = 256 * 1024

// Hasher computes content digests for files.
type Hasher struct {
	algorithm Algorithm
}

// NewHasher creates a hasher with the specified algorithm.
func NewHasher(algorithm Algorithm) *Hasher {
	return &Hasher{algorithm: algorithm}
}

// DefaultHasher returns a hasher with the default algorithm.
func DefaultHasher() *Hasher {
	return NewHasher(MD5)
}

// Sum computes the hex digest of in-memory data.
func (h *Hasher) Sum(data []byte) string {
	hw := h.new()
	hw.Write(data)
	return hex.EncodeToString(hw.Sum(nil))
}

// HashFile computes the hex digest of a file's full content, reading it
// sequentially in hashBufSize chunks. The read runs to completion; there is
// no mid-file cancellation.
func (h *Hasher) HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	hw := h.new()
	buf := make([]byte, hashBufSize)
	if _, err := io.CopyBuffer(hw, f, buf); err != nil {
		return "", fmt.Errorf("read %q: %w", path, err)
	}
	return hex.EncodeToString(hw.Sum(nil)), nil
}

func (h *Hasher) new() hash.Hash {
	switch h.algorithm {
	case MD5:
		return md5.New()
	default:
		return md5.New()
	}
}
