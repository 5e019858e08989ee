// Package thumb renders preview thumbnails of atlas rasters for asset
// browsers. Scaling is nearest-neighbor so pixel art stays crisp
// instead of smearing.
package thumb

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"
)

// ErrBadSize indicates a non-positive maximum edge length.
var ErrBadSize = errors.New("thumb: max edge must be positive")

// Render scales src down so its longer edge is at most maxEdge pixels,
// preserving aspect ratio. Rasters already within the limit are
// returned as a copy at original size; thumbnails never upscale.
func Render(src *image.RGBA, maxEdge int) (*image.RGBA, error) {
	if maxEdge <= 0 {
		return nil, ErrBadSize
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil, errors.New("thumb: empty raster")
	}

	long := w
	if h > long {
		long = h
	}
	tw, th := w, h
	if long > maxEdge {
		tw = w * maxEdge / long
		th = h * maxEdge / long
		if tw < 1 {
			tw = 1
		}
		if th < 1 {
			th = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
