package pack

import (
	"errors"
	"fmt"
	"image"

	"github.com/renzora/atlaskit/atlas"
	"github.com/renzora/atlaskit/atlas/alloc"
	"github.com/renzora/atlaskit/atlas/frames"
	"github.com/renzora/atlaskit/internal/raster"
)

// Move migrates the selected items onto the target atlas. Each item's
// cells are copied in ascending index order into a fresh contiguous run
// starting at the target's current high-water mark, then the record's
// tileset and frame ranges are rewritten. Only the target raster is
// persisted; the vacated source slots stay as holes until a Delete on
// that atlas compacts it.
//
// A source atlas that cannot be read aborts only its own items; moves
// from other atlases still commit, and the error reports the failed
// atlases. Unknown uids fail the whole request before any mutation.
func (e *Engine) Move(itemIDs []string, targetAtlas string) error {
	if len(itemIDs) == 0 {
		return ErrEmptySelection
	}
	if targetAtlas == "" {
		return ErrNoAtlasName
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	records, err := e.index.GetAll()
	if err != nil {
		return err
	}

	// Resolve the whole selection up front; a move of a nonexistent
	// item is a caller bug, not a partial success.
	bySource := map[string][]*atlas.Record{}
	for _, id := range itemIDs {
		rec, ok := records[id]
		if !ok {
			return &NotFoundError{Kind: "item", Name: id}
		}
		bySource[rec.Tileset] = append(bySource[rec.Tileset], rec)
	}

	next, err := alloc.NextFree(recordsOn(records, targetAtlas))
	if err != nil {
		return err
	}
	b := alloc.NewBump(next)

	tgt, err := e.loadOrCreate(targetAtlas)
	if err != nil {
		return err
	}

	log := e.log.WithField("target", targetAtlas)

	var subErrs []error
	moved := 0
	for _, src := range sortedKeys(bySource) {
		var srcImg *image.RGBA
		if src == targetAtlas {
			srcImg = tgt
		} else {
			srcImg, err = e.rasters.Read(src)
			if err != nil {
				// This atlas's items stay where they are; the rest of
				// the batch proceeds.
				subErrs = append(subErrs, fmt.Errorf("source atlas %q: %w", src, err))
				log.WithField("source", src).WithError(err).Warn("skipping unreadable source atlas")
				continue
			}
		}

		for _, rec := range bySource[src] {
			cells, err := rec.Indices()
			if err != nil {
				return fmt.Errorf("pack: record %q: %w", rec.UID, err)
			}
			start := b.Peek()
			for _, c := range cells {
				idx := b.Take()
				tgt = e.growFor(tgt, idx)
				if src == targetAtlas {
					srcImg = tgt
				}
				srcX, srcY := e.grid.TileOrigin(c)
				dstX, dstY := e.grid.TileOrigin(idx)
				raster.CopyTile(srcImg, tgt, srcX, srcY, dstX, dstY, e.grid.TileSize)
			}
			rec.Tileset = targetAtlas
			rec.Frames = frames.Serialize(frames.Run(start, len(cells)))
			moved++
		}
	}

	if moved > 0 {
		if err := e.rasters.Write(targetAtlas, tgt); err != nil {
			return err
		}
		if err := e.index.PutAll(records); err != nil {
			return err
		}
		log.WithField("items", moved).Info("moved items")
	}

	return errors.Join(subErrs...)
}
