package store

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore wraps FileRasterStore and counts inner reads.
type countingStore struct {
	*FileRasterStore
	reads int
}

func (c *countingStore) Read(name string) (*image.RGBA, error) {
	c.reads++
	return c.FileRasterStore.Read(name)
}

// TestCachedRasterStore_ReadThrough tests that a write primes the cache
// and later reads skip the inner store.
func TestCachedRasterStore_ReadThrough(t *testing.T) {
	inner := &countingStore{FileRasterStore: NewFileRasterStore(filepath.Join(t.TempDir(), "a"))}
	s, err := NewCachedRasterStore(inner, 1<<20)
	require.NoError(t, err)
	defer s.Close()

	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	img.SetRGBA(1, 1, color.RGBA{G: 4, A: 255})
	require.NoError(t, s.Write("gen1", img))

	got, err := s.Read("gen1")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 4, A: 255}, got.RGBAAt(1, 1))
	assert.Zero(t, inner.reads, "cached read should not hit disk")
}

// TestCachedRasterStore_MissFallsBack tests the miss path and error
// passthrough.
func TestCachedRasterStore_MissFallsBack(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "b")
	inner := &countingStore{FileRasterStore: NewFileRasterStore(dir)}
	s, err := NewCachedRasterStore(inner, 1<<20)
	require.NoError(t, err)
	defer s.Close()

	_, err = s.Read("ghost")
	assert.ErrorIs(t, err, ErrAtlasNotFound)
	assert.Equal(t, 1, inner.reads)

	// Populate on disk only, then read through the cache.
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	require.NoError(t, inner.FileRasterStore.Write("gen2", img))
	_, err = s.Read("gen2")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.reads)
}

// TestCachedRasterStore_CloneIsolation tests that mutating a returned
// raster does not poison the cached copy.
func TestCachedRasterStore_CloneIsolation(t *testing.T) {
	inner := NewFileRasterStore(filepath.Join(t.TempDir(), "c"))
	s, err := NewCachedRasterStore(inner, 1<<20)
	require.NoError(t, err)
	defer s.Close()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	require.NoError(t, s.Write("gen1", img))

	first, err := s.Read("gen1")
	require.NoError(t, err)
	first.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	second, err := s.Read("gen1")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{}, second.RGBAAt(0, 0))
}
