// Package alloc computes tile slot allocation for atlases.
//
// Allocation is append-only bump allocation: the next free index is one
// past the highest index any record on the atlas references, and every
// subsequent slot is taken by advancing a bump pointer. Holes left by a
// move are never reused; they become dead tiles until a delete-triggered
// compaction rewrites the whole atlas from index zero.
//
// The Bump type threads the allocation counter explicitly through the
// packing loops instead of capturing a mutable counter in closures, so
// compaction reordering can never alias it.
package alloc
