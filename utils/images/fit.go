// Package images implements raster operations shared by gallery generation
// stages: aspect preserving scaling, letterboxing and format aware encoding.
package images

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Unbounded is passed as the box dimension which should not constrain scaling.
const Unbounded = 1 << 24

// FitSize computes dimensions of a (w, h) image scaled uniformly to fit the
// (maxW, maxH) box. Scale factor is applied to both dimensions and results are
// truncated, never below 1, so aspect ratio survives within a pixel.
func FitSize(w, h, maxW, maxH int) (int, int) {
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	nw := int(float64(w) * scale)
	nh := int(float64(h) * scale)
	return max(nw, 1), max(nh, 1)
}

// Fit returns a copy of img scaled to fit the (maxW, maxH) box preserving
// aspect ratio. Resampling uses Lanczos filter. When computed size matches the
// source no resampling happens and pixels are preserved exactly. Fit never
// refuses to upscale - callers wanting downscale-only behavior must check
// source dimensions first (see FitLongEdge).
func Fit(img image.Image, maxW, maxH int) *image.NRGBA {
	b := img.Bounds()
	nw, nh := FitSize(b.Dx(), b.Dy(), maxW, maxH)
	if nw == b.Dx() && nh == b.Dy() {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, nw, nh, imaging.Lanczos)
}

// FitLongEdge downscales img so its longer edge does not exceed limit. Images
// already within the limit are returned as is - there is no upscaling.
func FitLongEdge(img image.Image, limit int) image.Image {
	b := img.Bounds()
	if max(b.Dx(), b.Dy()) <= limit {
		return img
	}
	if b.Dx() >= b.Dy() {
		return Fit(img, limit, Unbounded)
	}
	return Fit(img, Unbounded, limit)
}

// Letterbox fits img into a (cellW, cellH) canvas filled with bg, centering
// the scaled copy and padding flanking sides. Centering offsets use floor
// division so odd leftover space leans a pixel toward top/left. Sources with
// alpha are composited over the background - the result is always opaque.
func Letterbox(img image.Image, cellW, cellH int, bg color.Color) *image.NRGBA {
	canvas := imaging.New(cellW, cellH, bg)
	fit := Fit(img, cellW, cellH)
	x := (cellW - fit.Bounds().Dx()) / 2
	y := (cellH - fit.Bounds().Dy()) / 2
	return imaging.Overlay(canvas, fit, image.Pt(x, y), 1.0)
}
