package pack

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/renzora/atlaskit/atlas"
	"github.com/renzora/atlaskit/atlas/store"
)

// Config adjusts engine behavior. The zero value gives the standard
// grid, skip-and-warn item policy, and the process-wide logrus logger.
type Config struct {
	// Grid overrides the tile geometry. Zero means atlas.DefaultGrid.
	Grid atlas.Grid

	// Strict makes Save fail the whole request on a malformed item
	// instead of skipping it with a warning.
	Strict bool

	// Logger receives structured operation logs. Nil means the
	// standard logrus logger.
	Logger logrus.FieldLogger
}

// Engine orchestrates Save, Move and Delete over an index store and a
// raster store. Mutating operations are serialized by an internal
// mutex; see the package documentation for the consistency model.
type Engine struct {
	grid    atlas.Grid
	strict  bool
	index   store.IndexStore
	rasters store.RasterStore
	log     logrus.FieldLogger

	mu sync.Mutex
}

// New returns an engine over the given stores.
func New(index store.IndexStore, rasters store.RasterStore, cfg Config) *Engine {
	grid := cfg.Grid
	if grid.TileSize == 0 || grid.TilesPerRow == 0 {
		grid = atlas.DefaultGrid()
	}
	log := cfg.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{
		grid:    grid,
		strict:  cfg.Strict,
		index:   index,
		rasters: rasters,
		log:     log,
	}
}

// Grid returns the tile geometry the engine packs against.
func (e *Engine) Grid() atlas.Grid {
	return e.grid
}

// recordsOn returns every record placed on the named atlas.
func recordsOn(records map[string]*atlas.Record, name string) []*atlas.Record {
	var out []*atlas.Record
	for _, rec := range records {
		if rec.Tileset == name {
			out = append(out, rec)
		}
	}
	return out
}

// sortedKeys returns map keys in ascending order, for deterministic
// batch iteration.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// isNotFound reports whether err means the atlas raster has never been
// written.
func isNotFound(err error) bool {
	return errors.Is(err, store.ErrAtlasNotFound)
}

// newUID returns a fresh 16-hex-digit object id.
func newUID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("pack: rand: " + err.Error())
	}
	return hex.EncodeToString(b[:])
}
