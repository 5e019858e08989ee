package atlas

const (
	// DefaultTileSize is the edge length of a single tile in pixels.
	DefaultTileSize = 16

	// DefaultTilesPerRow is the number of tile columns in every atlas.
	// Atlas width is fixed at DefaultTilesPerRow * DefaultTileSize pixels;
	// atlases only ever grow in height.
	DefaultTilesPerRow = 150
)

// Grid describes the tile geometry shared by every atlas. The zero
// value is not usable; construct with DefaultGrid or fill both fields.
type Grid struct {
	// TileSize is the tile edge length in pixels.
	TileSize int

	// TilesPerRow is the number of tile columns per atlas row.
	TilesPerRow int
}

// DefaultGrid returns the engine's standard 16px/150-column geometry.
func DefaultGrid() Grid {
	return Grid{TileSize: DefaultTileSize, TilesPerRow: DefaultTilesPerRow}
}

// TileOrigin returns the pixel origin of the tile at the given index.
// Indices advance column-first and wrap to the next row every
// TilesPerRow tiles.
func (g Grid) TileOrigin(index int) (x, y int) {
	return (index % g.TilesPerRow) * g.TileSize, (index / g.TilesPerRow) * g.TileSize
}

// RowFor returns the zero-based row that holds the given tile index.
func (g Grid) RowFor(index int) int {
	return index / g.TilesPerRow
}

// RowsFor returns the number of whole tile rows needed to hold
// tileCount tiles.
func (g Grid) RowsFor(tileCount int) int {
	if tileCount <= 0 {
		return 0
	}
	return (tileCount + g.TilesPerRow - 1) / g.TilesPerRow
}

// WidthPx returns the fixed pixel width of every atlas on this grid.
func (g Grid) WidthPx() int {
	return g.TilesPerRow * g.TileSize
}

// HeightPx returns the pixel height of an atlas with the given number
// of tile rows.
func (g Grid) HeightPx(rows int) int {
	return rows * g.TileSize
}
