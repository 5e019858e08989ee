package store

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/renzora/atlaskit/atlas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFileIndexStore_RoundTrip tests put/get of a small index.
func TestFileIndexStore_RoundTrip(t *testing.T) {
	s := NewFileIndexStore(filepath.Join(t.TempDir(), "objects.json"))

	in := map[string]*atlas.Record{
		"a1": {UID: "a1", Tileset: "gen1", Frames: []string{"0-1"}, SpanW: 2, SpanH: 1},
		"b2": {UID: "b2", Tileset: "gen1", Frames: []string{"2"}, SpanW: 1, SpanH: 1},
	}
	require.NoError(t, s.PutAll(in))

	out, err := s.GetAll()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

// TestFileIndexStore_MissingFile tests that a never-written store is an
// empty index.
func TestFileIndexStore_MissingFile(t *testing.T) {
	s := NewFileIndexStore(filepath.Join(t.TempDir(), "absent.json"))
	out, err := s.GetAll()
	require.NoError(t, err)
	assert.Empty(t, out)
}

// TestFileIndexStore_Malformed tests fail-closed on a corrupt index.
func TestFileIndexStore_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objects.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0o644))

	_, err := NewFileIndexStore(path).GetAll()
	assert.Error(t, err)
}

// TestFileRasterStore_RoundTrip tests write/read of an atlas raster.
func TestFileRasterStore_RoundTrip(t *testing.T) {
	s := NewFileRasterStore(filepath.Join(t.TempDir(), "tilesets"))

	img := image.NewRGBA(image.Rect(0, 0, 32, 16))
	img.SetRGBA(5, 6, color.RGBA{R: 9, A: 255})
	require.NoError(t, s.Write("gen1", img))

	back, err := s.Read("gen1")
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), back.Bounds())
	assert.Equal(t, color.RGBA{R: 9, A: 255}, back.RGBAAt(5, 6))
}

// TestFileRasterStore_NotFound tests the missing-atlas error.
func TestFileRasterStore_NotFound(t *testing.T) {
	s := NewFileRasterStore(t.TempDir())
	_, err := s.Read("ghost")
	assert.ErrorIs(t, err, ErrAtlasNotFound)
}

// TestFileRasterStore_BadName tests rejection of path-escaping names.
func TestFileRasterStore_BadName(t *testing.T) {
	s := NewFileRasterStore(t.TempDir())
	for _, name := range []string{"", "..", "a/b", `a\b`} {
		_, err := s.Read(name)
		assert.ErrorIs(t, err, ErrBadAtlasName, "name %q", name)
		err = s.Write(name, image.NewRGBA(image.Rect(0, 0, 1, 1)))
		assert.ErrorIs(t, err, ErrBadAtlasName, "name %q", name)
	}
}
