// Package raster provides low-level RGBA buffer operations: the
// bounds-checked tile blit every packing operation is built on, and the
// PNG codec used by the raster store.
package raster

import "image"

// CopyTile copies one tileSize x tileSize block of pixels from src to
// dst. Each pixel (4 RGBA bytes) is copied only when both its source
// and destination coordinates are inside their raster's bounds;
// out-of-bounds pixels are silently skipped, so partial edge tiles are
// tolerated rather than treated as errors.
//
// Both rasters must be origin-anchored, which is what atlas.NewCanvas
// and Decode produce.
func CopyTile(src, dst *image.RGBA, srcX, srcY, dstX, dstY, tileSize int) {
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	dw, dh := dst.Bounds().Dx(), dst.Bounds().Dy()
	for dy := 0; dy < tileSize; dy++ {
		sy, ty := srcY+dy, dstY+dy
		if sy < 0 || sy >= sh || ty < 0 || ty >= dh {
			continue
		}
		for dx := 0; dx < tileSize; dx++ {
			sx, tx := srcX+dx, dstX+dx
			if sx < 0 || sx >= sw || tx < 0 || tx >= dw {
				continue
			}
			so := sy*src.Stride + sx*4
			to := ty*dst.Stride + tx*4
			copy(dst.Pix[to:to+4], src.Pix[so:so+4])
		}
	}
}
