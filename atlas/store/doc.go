// Package store defines the persistence contracts the packing engine
// consumes — the object index holding one record per placed graphic,
// and the raster store holding one PNG per atlas — together with their
// flat-file implementations and an in-memory decoded-raster cache.
//
// Both file stores replace their targets atomically (temp file, sync,
// rename), so a reader never observes a half-written index or raster.
// Consistency across the two stores is last-write-wins; the engine
// serializes mutations to keep the pair coherent.
package store
