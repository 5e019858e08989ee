// Package pack implements the atlas packing engine: the three
// operations that mutate tilesets and the object index together.
//
//   - Save appends newly uploaded artwork to an atlas, allocating tile
//     slots contiguously past the current high-water mark.
//   - Move migrates items between atlases, repacking their cells into a
//     fresh contiguous run on the target. Vacated source slots become
//     holes; the source raster is not rewritten.
//   - Delete removes items and compacts each affected atlas so the
//     surviving indices are exactly [0, N).
//
// Every operation is full read, in-memory mutation, full rewrite. A
// single engine mutex serializes mutations: the object index is one
// document, so finer-grained per-atlas locking would still race on it.
// Failure granularity is per atlas: a source atlas that cannot be read
// aborts only its own sub-operation, and the rest of the batch still
// commits. A malformed object index fails the whole request closed.
package pack
