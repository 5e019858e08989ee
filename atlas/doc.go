// Package atlas defines the core model for tileset atlases: the fixed
// tile grid geometry, the RGBA canvas an atlas is packed into, and the
// index records that describe which tile slots belong to which placed
// graphic.
//
// # Geometry
//
// An atlas is a PNG sprite sheet cut into fixed-size square tiles. Tiles
// are numbered left to right, top to bottom:
//
//	index 0     -> pixel origin (0, 0)
//	index 1     -> pixel origin (TileSize, 0)
//	index N     -> column N mod TilesPerRow, row N div TilesPerRow
//
// Grid is the single source of truth for this mapping. Every package
// that converts between tile indices and pixel coordinates goes through
// Grid.TileOrigin.
//
// # Canvas
//
// The raster is a plain *image.RGBA anchored at the origin. Atlases are
// created lazily, grow only in height, and only in whole tile-row
// increments. GrowHeight preserves existing content at identical
// coordinates; ShrinkToFit crops unused rows after compaction.
//
// # Records
//
// A Record ties a placed graphic (by UID) to its atlas and the compact
// frame-range encoding of the tile slots it owns. The frame-range
// grammar itself lives in the frames subpackage.
//
// # Related packages
//
//   - github.com/renzora/atlaskit/atlas/frames: range-string codec
//   - github.com/renzora/atlaskit/atlas/alloc: tile slot allocation
//   - github.com/renzora/atlaskit/atlas/pack: Save/Move/Delete engine
//   - github.com/renzora/atlaskit/atlas/store: persistence contracts
package atlas
