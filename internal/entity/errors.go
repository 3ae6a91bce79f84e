package entity

import "errors"

var (
	// ErrNotAFile reports a path that does not resolve to an existing regular file.
	ErrNotAFile = errors.New("not an existing regular file")

	// ErrNotADirectory reports a path that does not resolve to an existing directory.
	ErrNotADirectory = errors.New("not an existing directory")

	// ErrInvalidExtension reports a rename extension missing the leading dot.
	ErrInvalidExtension = errors.New("extension must start with '.', for example .jpg")

	// ErrDestinationExists reports a copy destination that already exists.
	ErrDestinationExists = errors.New("destination already exists")
)
