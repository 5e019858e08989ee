package thumb

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRender_Downscales tests aspect-preserving downscale of a wide
// raster.
func TestRender_Downscales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2400, 48))
	out, err := Render(src, 600)
	require.NoError(t, err)
	assert.Equal(t, 600, out.Bounds().Dx())
	assert.Equal(t, 12, out.Bounds().Dy())
}

// TestRender_NeverUpscales tests that small rasters keep their size.
func TestRender_NeverUpscales(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 32, 16))
	src.SetRGBA(0, 0, color.RGBA{R: 7, A: 255})

	out, err := Render(src, 600)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), out.Bounds())
	assert.Equal(t, color.RGBA{R: 7, A: 255}, out.RGBAAt(0, 0))
}

// TestRender_MinimumEdge tests that extreme aspect ratios never
// collapse to a zero-pixel edge.
func TestRender_MinimumEdge(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2400, 16))
	out, err := Render(src, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, out.Bounds().Dx())
	assert.Equal(t, 1, out.Bounds().Dy())
}

// TestRender_BadSize tests size validation.
func TestRender_BadSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	_, err := Render(src, 0)
	assert.ErrorIs(t, err, ErrBadSize)
}
