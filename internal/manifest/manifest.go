// Package manifest reads the YAML sidecar files that describe staged
// artwork: which atlas a PNG belongs on and which source tiles its
// footprint occupies. The pipeline's save and watch commands pair each
// staged <name>.png with a <name>.yaml sidecar.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoFootprint indicates missing or mismatched cols/rows arrays.
	ErrNoFootprint = errors.New("manifest: footprint cols/rows missing or mismatched")

	// ErrNegativeCell indicates a footprint coordinate below zero.
	ErrNegativeCell = errors.New("manifest: negative footprint coordinate")
)

// Item describes one staged graphic.
type Item struct {
	// Name optionally fixes the record uid; empty lets the engine
	// assign one.
	Name string `yaml:"name"`

	// Atlas is the destination tileset. Commands may override it.
	Atlas string `yaml:"atlas"`

	// Cols and Rows are the footprint cell coordinates in source-tile
	// units, index-aligned.
	Cols []int `yaml:"cols"`
	Rows []int `yaml:"rows"`
}

// Load reads and validates the sidecar at path.
func Load(path string) (*Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	var it Item
	if err := yaml.Unmarshal(data, &it); err != nil {
		return nil, fmt.Errorf("manifest: decode %s: %w", path, err)
	}
	if err := it.Validate(); err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", path, err)
	}
	return &it, nil
}

// Validate checks the footprint arrays.
func (it *Item) Validate() error {
	if len(it.Cols) == 0 || len(it.Cols) != len(it.Rows) {
		return ErrNoFootprint
	}
	for k := range it.Cols {
		if it.Cols[k] < 0 || it.Rows[k] < 0 {
			return ErrNegativeCell
		}
	}
	return nil
}

// SidecarFor maps a staged PNG path onto its expected sidecar path.
func SidecarFor(pngPath string) string {
	return strings.TrimSuffix(pngPath, ".png") + ".yaml"
}

// IsArt reports whether path looks like staged artwork.
func IsArt(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".png")
}
