package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// TestCopyTile_FullBlock tests copying a complete tile block.
func TestCopyTile_FullBlock(t *testing.T) {
	src := solid(16, 16, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	dst := image.NewRGBA(image.Rect(0, 0, 64, 64))

	CopyTile(src, dst, 0, 0, 16, 32, 16)

	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, dst.RGBAAt(16, 32))
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, dst.RGBAAt(31, 47))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(15, 32), "left of block untouched")
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(16, 48), "below block untouched")
}

// TestCopyTile_PartialSource tests that pixels past the source edge are
// skipped instead of failing.
func TestCopyTile_PartialSource(t *testing.T) {
	// 10x10 source cannot fill a 16px tile.
	src := solid(10, 10, color.RGBA{B: 77, A: 255})
	dst := image.NewRGBA(image.Rect(0, 0, 32, 32))

	CopyTile(src, dst, 0, 0, 0, 0, 16)

	assert.Equal(t, color.RGBA{B: 77, A: 255}, dst.RGBAAt(9, 9))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(10, 0), "past source width stays zero")
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(0, 10), "past source height stays zero")
}

// TestCopyTile_PartialDestination tests clipping at the destination edge.
func TestCopyTile_PartialDestination(t *testing.T) {
	src := solid(16, 16, color.RGBA{G: 50, A: 255})
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))

	CopyTile(src, dst, 0, 0, 12, 12, 16)

	assert.Equal(t, color.RGBA{G: 50, A: 255}, dst.RGBAAt(19, 19))
	// Nothing panicked and nothing wrapped around.
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(0, 0))
}

// TestCopyTile_NegativeOrigins tests that negative coordinates are
// skipped pixel by pixel.
func TestCopyTile_NegativeOrigins(t *testing.T) {
	src := solid(16, 16, color.RGBA{R: 5, A: 255})
	dst := image.NewRGBA(image.Rect(0, 0, 16, 16))

	CopyTile(src, dst, -8, -8, 0, 0, 16)

	// Source pixel (0,0) lands at destination (8,8).
	assert.Equal(t, color.RGBA{R: 5, A: 255}, dst.RGBAAt(8, 8))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(7, 7))
}

// TestCodecRoundTrip tests PNG encode/decode preserving pixels.
func TestCodecRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.SetRGBA(3, 5, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	data, err := Encode(img)
	require.NoError(t, err)

	back, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), back.Bounds())
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 255}, back.RGBAAt(3, 5))
}

// TestDecode_Corrupt tests the corrupt-bytes error path.
func TestDecode_Corrupt(t *testing.T) {
	_, err := Decode([]byte("not a png"))
	assert.ErrorIs(t, err, ErrCorrupt)
}
