package store

import "errors"

var (
	// ErrAtlasNotFound indicates a read of an atlas raster that has
	// never been written.
	ErrAtlasNotFound = errors.New("store: atlas not found")

	// ErrBadAtlasName indicates an atlas name that cannot be used as a
	// file name (empty, or containing path separators).
	ErrBadAtlasName = errors.New("store: bad atlas name")
)
