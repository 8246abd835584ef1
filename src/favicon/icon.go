package favicon

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"rbvstudio/src/common"
)

// Size is a target icon size in pixels
type Size struct {
	Width  int
	Height int
}

// SquareIcon scales img uniformly to fit inside size and centers it on a
// transparent canvas of exactly that size. Transparent areas of img keep the
// canvas transparent underneath.
func SquareIcon(img image.Image, size Size) *image.NRGBA {
	canvas := imaging.New(size.Width, size.Height, color.NRGBA{})

	b := img.Bounds()
	if b.Empty() {
		return canvas
	}

	newW, newH := fitSize(b.Dx(), b.Dy(), size.Width, size.Height)
	resized := common.Resize(img, newW, newH)

	offset := image.Pt((size.Width-newW)/2, (size.Height-newH)/2)
	return imaging.Overlay(canvas, resized, offset, 1.0)
}

// fitSize returns the largest srcW x srcH multiple that fits in w x h.
// Dimensions are rounded half to even and never drop below one pixel.
func fitSize(srcW, srcH, w, h int) (int, int) {
	scale := math.Min(float64(w)/float64(srcW), float64(h)/float64(srcH))
	newW := int(math.RoundToEven(float64(srcW) * scale))
	newH := int(math.RoundToEven(float64(srcH) * scale))
	return max(newW, 1), max(newH, 1)
}
