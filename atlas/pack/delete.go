package pack

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/renzora/atlaskit/atlas"
	"github.com/renzora/atlaskit/atlas/alloc"
	"github.com/renzora/atlaskit/atlas/frames"
	"github.com/renzora/atlaskit/internal/raster"
)

// Delete removes the selected items and compacts every affected atlas:
// each survivor's cells are copied, in ascending original index order,
// into a fresh raster packed from index zero, so the live indices end
// up exactly [0, N). The rebuilt raster is cropped to the rows it
// actually uses. Survivors are ordered by their original minimum frame
// index, uid as tie-break.
//
// An empty id list is a no-op. Unknown uids are skipped (deleting the
// already-deleted is not an error). An atlas whose raster cannot be
// read aborts only its own sub-operation — its records, including the
// requested deletions, stay untouched — while other atlases commit. A
// survivor with malformed frame ranges fails the whole request before
// anything is written.
func (e *Engine) Delete(itemIDs []string) error {
	if len(itemIDs) == 0 {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	records, err := e.index.GetAll()
	if err != nil {
		return err
	}

	doomed := map[string]bool{}
	doomedByAtlas := map[string][]string{}
	for _, id := range itemIDs {
		rec, ok := records[id]
		if !ok {
			e.log.WithField("item", id).Debug("delete: unknown uid, skipping")
			continue
		}
		if !doomed[id] {
			doomed[id] = true
			doomedByAtlas[rec.Tileset] = append(doomedByAtlas[rec.Tileset], id)
		}
	}
	if len(doomed) == 0 {
		return nil
	}

	// Read and parse every affected atlas before touching disk, so a
	// malformed surviving record aborts while both stores are still in
	// their original state.
	type survivor struct {
		rec   *atlas.Record
		cells []int
		min   int
	}
	type compaction struct {
		name      string
		old       *image.RGBA
		survivors []survivor
	}
	var plans []compaction
	var subErrs []error
	for _, name := range sortedKeys(doomedByAtlas) {
		old, err := e.rasters.Read(name)
		if err != nil {
			subErrs = append(subErrs, fmt.Errorf("atlas %q: %w", name, err))
			e.log.WithField("atlas", name).WithError(err).Warn("delete: skipping unreadable atlas")
			continue
		}

		var survivors []survivor
		for _, rec := range recordsOn(records, name) {
			if doomed[rec.UID] {
				continue
			}
			cells, err := rec.Indices()
			if err != nil {
				return fmt.Errorf("pack: record %q: %w", rec.UID, err)
			}
			min := math.MaxInt
			if len(cells) > 0 {
				min = cells[0]
			}
			survivors = append(survivors, survivor{rec: rec, cells: cells, min: min})
		}
		sort.Slice(survivors, func(i, j int) bool {
			if survivors[i].min != survivors[j].min {
				return survivors[i].min < survivors[j].min
			}
			return survivors[i].rec.UID < survivors[j].rec.UID
		})
		plans = append(plans, compaction{name: name, old: old, survivors: survivors})
	}

	// Rebuild and persist per atlas. New frame ranges are applied only
	// once that atlas's raster rewrite has landed, so an aborted write
	// leaves its records exactly as they were.
	type reframe struct {
		rec    *atlas.Record
		frames []string
	}
	var apply []reframe
	var drop []string
	for _, p := range plans {
		b := alloc.NewBump(0)
		fresh := atlas.NewCanvas(e.grid, 0)
		pending := make([]reframe, 0, len(p.survivors))
		for _, sv := range p.survivors {
			start := b.Peek()
			for _, c := range sv.cells {
				idx := b.Take()
				fresh = e.growFor(fresh, idx)
				srcX, srcY := e.grid.TileOrigin(c)
				dstX, dstY := e.grid.TileOrigin(idx)
				raster.CopyTile(p.old, fresh, srcX, srcY, dstX, dstY, e.grid.TileSize)
			}
			pending = append(pending, reframe{
				rec:    sv.rec,
				frames: frames.Serialize(frames.Run(start, len(sv.cells))),
			})
		}
		fresh = atlas.ShrinkToFit(fresh, e.grid, b.Peek())
		// A fully emptied atlas still needs one blank row to stay
		// encodable.
		fresh = atlas.GrowHeight(fresh, e.grid, 1)

		if err := e.rasters.Write(p.name, fresh); err != nil {
			subErrs = append(subErrs, fmt.Errorf("atlas %q: %w", p.name, err))
			continue
		}

		apply = append(apply, pending...)
		drop = append(drop, doomedByAtlas[p.name]...)
		e.log.WithFields(map[string]interface{}{
			"atlas":     p.name,
			"deleted":   len(doomedByAtlas[p.name]),
			"survivors": len(p.survivors),
			"tiles":     b.Peek(),
		}).Info("compacted atlas")
	}

	if len(drop) > 0 {
		for _, r := range apply {
			r.rec.Frames = r.frames
		}
		for _, id := range drop {
			delete(records, id)
		}
		if err := e.index.PutAll(records); err != nil {
			subErrs = append(subErrs, err)
		}
	}

	return errors.Join(subErrs...)
}
