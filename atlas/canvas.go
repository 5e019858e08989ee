package atlas

import "image"

// NewCanvas allocates a zero-filled atlas raster with the given number
// of tile rows. Zero rows yields an empty canvas that GrowHeight can
// extend on first use.
func NewCanvas(g Grid, rows int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, g.WidthPx(), g.HeightPx(rows)))
}

// Rows returns the number of whole tile rows the raster currently
// holds.
func Rows(img *image.RGBA, g Grid) int {
	return img.Bounds().Dy() / g.TileSize
}

// GrowHeight returns a raster with at least newRows tile rows,
// preserving existing pixel content at identical coordinates. When the
// raster already has newRows or more rows it is returned unchanged.
// Growth is height-only; width stays fixed by the grid.
func GrowHeight(img *image.RGBA, g Grid, newRows int) *image.RGBA {
	if Rows(img, g) >= newRows {
		return img
	}
	grown := NewCanvas(g, newRows)
	copyRaster(grown, img)
	return grown
}

// ShrinkToFit crops the raster to the minimum number of whole tile rows
// that hold usedTileCount tiles, if that is smaller than the current
// height. The result never drops below one row so the raster stays
// encodable.
func ShrinkToFit(img *image.RGBA, g Grid, usedTileCount int) *image.RGBA {
	rows := g.RowsFor(usedTileCount)
	if rows < 1 {
		rows = 1
	}
	if rows >= Rows(img, g) {
		return img
	}
	cropped := NewCanvas(g, rows)
	copyRaster(cropped, img)
	return cropped
}

// copyRaster copies the overlapping region of src into dst scanline by
// scanline. Both rasters are origin-anchored.
func copyRaster(dst, src *image.RGBA) {
	h := src.Bounds().Dy()
	if dh := dst.Bounds().Dy(); dh < h {
		h = dh
	}
	rowBytes := src.Bounds().Dx() * 4
	if db := dst.Bounds().Dx() * 4; db < rowBytes {
		rowBytes = db
	}
	for y := 0; y < h; y++ {
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowBytes], src.Pix[y*src.Stride:y*src.Stride+rowBytes])
	}
}
