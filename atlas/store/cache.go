package store

import (
	"image"

	"github.com/dgraph-io/ristretto/v2"
)

// CachedRasterStore wraps a RasterStore with an in-memory cache of
// decoded rasters, costed by pixel buffer size. Reads are read-through;
// writes go through to the inner store and refresh the cache.
//
// Cached rasters are cloned on the way out so a caller mutating its
// copy in place can never corrupt another reader's view.
type CachedRasterStore struct {
	inner RasterStore
	cache *ristretto.Cache[string, *image.RGBA]
}

// NewCachedRasterStore wraps inner with a decoded-raster cache bounded
// at maxBytes of pixel data.
func NewCachedRasterStore(inner RasterStore, maxBytes int64) (*CachedRasterStore, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, *image.RGBA]{
		NumCounters: 1000,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &CachedRasterStore{inner: inner, cache: cache}, nil
}

// Read returns the cached raster for name, falling back to the inner
// store on a miss.
func (s *CachedRasterStore) Read(name string) (*image.RGBA, error) {
	s.cache.Wait()
	if img, ok := s.cache.Get(name); ok {
		return cloneRGBA(img), nil
	}
	img, err := s.inner.Read(name)
	if err != nil {
		return nil, err
	}
	s.cache.Set(name, cloneRGBA(img), int64(len(img.Pix)))
	return img, nil
}

// Write persists through the inner store, then refreshes the cache so
// the next read sees the new raster without touching disk.
func (s *CachedRasterStore) Write(name string, img *image.RGBA) error {
	if err := s.inner.Write(name, img); err != nil {
		// The on-disk state is unknown to the cache now; drop the entry.
		s.cache.Del(name)
		return err
	}
	s.cache.Set(name, cloneRGBA(img), int64(len(img.Pix)))
	s.cache.Wait()
	return nil
}

// Close releases the cache's internal goroutines.
func (s *CachedRasterStore) Close() {
	s.cache.Close()
}

func cloneRGBA(img *image.RGBA) *image.RGBA {
	out := &image.RGBA{
		Pix:    make([]uint8, len(img.Pix)),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	copy(out.Pix, img.Pix)
	return out
}
