package store

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/renzora/atlaskit/internal/raster"
	"github.com/renzora/atlaskit/internal/writer"
)

// RasterStore holds one RGBA raster per atlas name.
type RasterStore interface {
	// Read returns the decoded raster for name, or ErrAtlasNotFound.
	Read(name string) (*image.RGBA, error)

	// Write replaces the raster for name.
	Write(name string, img *image.RGBA) error
}

// FileRasterStore persists atlas rasters as <dir>/<name>.png.
type FileRasterStore struct {
	// Dir is the directory holding the atlas PNGs. It is created on
	// first write.
	Dir string
}

// NewFileRasterStore returns a PNG raster store rooted at dir.
func NewFileRasterStore(dir string) *FileRasterStore {
	return &FileRasterStore{Dir: dir}
}

// Read loads and decodes the named atlas.
func (s *FileRasterStore) Read(name string) (*image.RGBA, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %q", ErrAtlasNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: read atlas %q: %w", name, err)
	}
	img, err := raster.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("store: atlas %q: %w", name, err)
	}
	return img, nil
}

// Write encodes and atomically replaces the named atlas.
func (s *FileRasterStore) Write(name string, img *image.RGBA) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	data, err := raster.Encode(img)
	if err != nil {
		return fmt.Errorf("store: atlas %q: %w", name, err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("store: create atlas dir: %w", err)
	}
	if err := writer.WriteFile(path, data); err != nil {
		return fmt.Errorf("store: write atlas %q: %w", name, err)
	}
	return nil
}

// path maps an atlas name onto its PNG file, rejecting names that would
// escape the store directory.
func (s *FileRasterStore) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrBadAtlasName, name)
	}
	return filepath.Join(s.Dir, name+".png"), nil
}
