package pack

import (
	"fmt"
	"image"

	"github.com/renzora/atlaskit/atlas"
	"github.com/renzora/atlaskit/atlas/alloc"
	"github.com/renzora/atlaskit/atlas/frames"
	"github.com/renzora/atlaskit/internal/raster"
)

// SaveItem is one graphic to place onto an atlas. Cols and Rows hold
// the footprint cell coordinates in source-tile units: cell k of the
// artwork sits at tile (Cols[k], Rows[k]) of the source raster. The
// arrays must be the same length and non-empty.
type SaveItem struct {
	// UID identifies the new record. Empty means the engine assigns one.
	UID string

	// Source is the cropped source raster the footprint refers to.
	Source *image.RGBA

	Cols []int
	Rows []int
}

// valid reports whether the item carries a usable footprint.
func (it SaveItem) valid() bool {
	return it.Source != nil && len(it.Cols) > 0 && len(it.Cols) == len(it.Rows)
}

// Save places new graphics onto the named atlas and returns the uids of
// the records it created, in item order. Tile slots are allocated
// contiguously past the atlas's current high-water mark, so each item
// ends up with a single frame range. The atlas raster is created lazily
// and grown in whole tile rows as the allocation crosses row
// boundaries.
//
// Items with a missing or mismatched footprint are skipped with a
// warning unless the engine is strict, in which case the whole request
// fails and nothing is written.
func (e *Engine) Save(atlasName string, items []SaveItem) ([]string, error) {
	if atlasName == "" {
		return nil, ErrNoAtlasName
	}
	if len(items) == 0 {
		return []string{}, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	records, err := e.index.GetAll()
	if err != nil {
		return nil, err
	}

	img, err := e.loadOrCreate(atlasName)
	if err != nil {
		return nil, err
	}

	next, err := alloc.NextFree(recordsOn(records, atlasName))
	if err != nil {
		return nil, err
	}
	b := alloc.NewBump(next)

	log := e.log.WithField("atlas", atlasName)

	uids := make([]string, 0, len(items))
	for n, it := range items {
		if !it.valid() {
			if e.strict {
				return nil, fmt.Errorf("%w: item %d", ErrBadFootprint, n)
			}
			log.WithField("item", n).Warn("skipping item with bad footprint")
			continue
		}

		start := b.Peek()
		for k := range it.Cols {
			idx := b.Take()
			img = e.growFor(img, idx)
			dstX, dstY := e.grid.TileOrigin(idx)
			raster.CopyTile(it.Source, img,
				it.Cols[k]*e.grid.TileSize, it.Rows[k]*e.grid.TileSize,
				dstX, dstY, e.grid.TileSize)
		}

		uid := it.UID
		if uid == "" {
			uid = newUID()
		}
		spanW, spanH := footprintSpan(it.Cols, it.Rows)
		records[uid] = &atlas.Record{
			UID:     uid,
			Tileset: atlasName,
			Frames:  frames.Serialize(frames.Run(start, len(it.Cols))),
			SpanW:   spanW,
			SpanH:   spanH,
		}
		uids = append(uids, uid)
	}

	if len(uids) == 0 {
		log.Warn("no valid items to save")
		return uids, nil
	}

	if err := e.rasters.Write(atlasName, img); err != nil {
		return nil, err
	}
	if err := e.index.PutAll(records); err != nil {
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"items": len(uids),
		"tiles": b.Peek() - next,
	}).Info("saved items")
	return uids, nil
}

// loadOrCreate reads the named raster, or starts an empty canvas when
// the atlas does not exist yet.
func (e *Engine) loadOrCreate(name string) (*image.RGBA, error) {
	img, err := e.rasters.Read(name)
	if err == nil {
		return img, nil
	}
	if isNotFound(err) {
		return atlas.NewCanvas(e.grid, 0), nil
	}
	return nil, err
}

// growFor extends the raster so the given tile index has a row to land
// in.
func (e *Engine) growFor(img *image.RGBA, index int) *image.RGBA {
	return atlas.GrowHeight(img, e.grid, e.grid.RowFor(index)+1)
}

// footprintSpan returns the bounding box of the footprint in tile units.
func footprintSpan(cols, rows []int) (w, h int) {
	minC, maxC := cols[0], cols[0]
	minR, maxR := rows[0], rows[0]
	for k := 1; k < len(cols); k++ {
		if cols[k] < minC {
			minC = cols[k]
		}
		if cols[k] > maxC {
			maxC = cols[k]
		}
		if rows[k] < minR {
			minR = rows[k]
		}
		if rows[k] > maxR {
			maxR = rows[k]
		}
	}
	return maxC - minC + 1, maxR - minR + 1
}
