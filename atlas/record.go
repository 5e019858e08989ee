package atlas

import (
	"github.com/renzora/atlaskit/atlas/frames"
)

// Record is one entry in the object index: a placed graphic, the atlas
// it lives on, and the frame ranges describing the tile slots it owns.
// The UID is immutable once assigned; Save creates records, Move
// rewrites Tileset and Frames, Delete removes records and rewrites the
// Frames of survivors on the same atlas.
type Record struct {
	UID     string   `json:"uid"`
	Tileset string   `json:"tileset"`
	Frames  []string `json:"frames"`

	// SpanW and SpanH are the source footprint bounding box in tile
	// units, set at Save time and carried through Move/Delete.
	SpanW int `json:"spanW"`
	SpanH int `json:"spanH"`
}

// Indices returns the record's tile indices, ascending and unique.
func (r *Record) Indices() ([]int, error) {
	return frames.Parse(r.Frames)
}

// MinIndex returns the record's smallest tile index, or ok=false when
// the record owns no tiles.
func (r *Record) MinIndex() (min int, ok bool, err error) {
	idx, err := frames.Parse(r.Frames)
	if err != nil {
		return 0, false, err
	}
	if len(idx) == 0 {
		return 0, false, nil
	}
	return idx[0], true, nil
}
