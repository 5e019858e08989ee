package pack

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySelection indicates a Move with no item ids.
	ErrEmptySelection = errors.New("pack: no items selected")

	// ErrNoAtlasName indicates an operation missing its atlas name.
	ErrNoAtlasName = errors.New("pack: atlas name required")

	// ErrBadFootprint indicates a Save item with missing or mismatched
	// footprint arrays, or no source raster. Outside strict mode such
	// items are skipped, not failed.
	ErrBadFootprint = errors.New("pack: item footprint missing or mismatched")
)

// NotFoundError indicates a required pre-existing entity that is
// absent: an item uid for Move, or an atlas raster a sub-operation
// depends on.
type NotFoundError struct {
	Kind string // "item" or "atlas"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pack: %s %q not found", e.Kind, e.Name)
}
