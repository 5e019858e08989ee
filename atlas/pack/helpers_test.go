package pack

import (
	"image"
	"image/color"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/renzora/atlaskit/atlas"
	"github.com/renzora/atlaskit/atlas/store"
)

// testGrid keeps fixtures small: four columns per row so growth and
// compaction trigger after a handful of tiles.
func testGrid() atlas.Grid {
	return atlas.Grid{TileSize: 4, TilesPerRow: 4}
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newTestEngine builds an engine over real file stores in a temp dir.
func newTestEngine(t *testing.T, cfg Config) (*Engine, *store.FileIndexStore, *store.FileRasterStore) {
	t.Helper()
	dir := t.TempDir()
	idx := store.NewFileIndexStore(filepath.Join(dir, "objects.json"))
	ras := store.NewFileRasterStore(filepath.Join(dir, "tilesets"))
	if cfg.Logger == nil {
		cfg.Logger = quietLogger()
	}
	return New(idx, ras, cfg), idx, ras
}

// tileColor gives each source tile a distinct color so tests can track
// where pixels land.
func tileColor(col, row int) color.RGBA {
	return color.RGBA{R: uint8(10 + col*20), G: uint8(10 + row*20), B: 200, A: 255}
}

// sourceSheet builds a source raster of cols x rows tiles, each filled
// with its tileColor.
func sourceSheet(g atlas.Grid, cols, rows int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols*g.TileSize, rows*g.TileSize))
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			fillTile(img, g, c*g.TileSize, r*g.TileSize, tileColor(c, r))
		}
	}
	return img
}

func fillTile(img *image.RGBA, g atlas.Grid, x, y int, c color.RGBA) {
	for dy := 0; dy < g.TileSize; dy++ {
		for dx := 0; dx < g.TileSize; dx++ {
			img.SetRGBA(x+dx, y+dy, c)
		}
	}
}

// atlasTileColor reads the top-left pixel of the tile at index on an
// atlas raster.
func atlasTileColor(img *image.RGBA, g atlas.Grid, index int) color.RGBA {
	x, y := g.TileOrigin(index)
	return img.RGBAAt(x, y)
}

// mustRecords loads the index and fails the test on error.
func mustRecords(t *testing.T, idx store.IndexStore) map[string]*atlas.Record {
	t.Helper()
	records, err := idx.GetAll()
	require.NoError(t, err)
	return records
}
