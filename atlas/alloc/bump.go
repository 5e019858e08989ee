package alloc

import (
	"fmt"

	"github.com/renzora/atlaskit/atlas"
)

// NextFree returns the next unreferenced tile index for an atlas, given
// every record currently placed on it: max referenced index + 1, or 0
// when no record references a tile. Holes inside the referenced set are
// deliberately not considered.
func NextFree(records []*atlas.Record) (int, error) {
	next := 0
	for _, rec := range records {
		idx, err := rec.Indices()
		if err != nil {
			return 0, fmt.Errorf("alloc: record %q: %w", rec.UID, err)
		}
		if len(idx) == 0 {
			continue
		}
		// Indices are ascending; the last one is the max.
		if last := idx[len(idx)-1]; last+1 > next {
			next = last + 1
		}
	}
	return next, nil
}

// Bump is an append-only tile slot allocator. Take hands out
// consecutive indices starting from the construction point.
type Bump struct {
	next int
}

// NewBump returns a bump allocator whose first Take yields start.
func NewBump(start int) *Bump {
	return &Bump{next: start}
}

// Take returns the next free index and advances the pointer.
func (b *Bump) Take() int {
	i := b.next
	b.next++
	return i
}

// Peek returns the index the next Take will yield.
func (b *Bump) Peek() int {
	return b.next
}
