package images

import (
	"bytes"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// Policy selects the resampling filter used for a preview.
type Policy int

const (
	// Smooth resamples with a Lanczos filter (source preview).
	Smooth Policy = iota
	// Nearest keeps hard pixel edges (binary result preview).
	Nearest
)

func (p Policy) filter() imaging.ResampleFilter {
	if p == Nearest {
		return imaging.NearestNeighbor
	}
	return imaging.Lanczos
}

// EncodePNG encodes an image to PNG bytes. Errors are ignored and may return an empty slice.
func EncodePNG(img image.Image) []byte {
	if img == nil {
		return nil
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// FitScale returns the uniform factor that fits a w x h image inside a
// boxW x boxH box while preserving the aspect ratio. Small images are scaled up.
func FitScale(w, h, boxW, boxH int) float64 {
	if w <= 0 || h <= 0 || boxW <= 0 || boxH <= 0 {
		return 0
	}
	ratio := float64(boxW) / float64(w)
	if r := float64(boxH) / float64(h); r < ratio {
		ratio = r
	}
	return ratio
}

// ScaleToFit returns a copy of src resized by FitScale into boxW x boxH using
// the given policy, together with the factor applied. Sizes are truncated and
// never drop below 1x1.
func ScaleToFit(src image.Image, boxW, boxH int, policy Policy) (image.Image, float64) {
	if src == nil {
		return nil, 0
	}
	b := src.Bounds()
	ratio := FitScale(b.Dx(), b.Dy(), boxW, boxH)
	if ratio == 0 {
		return nil, 0
	}
	newW := int(float64(b.Dx()) * ratio)
	newH := int(float64(b.Dy()) * ratio)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}
	return imaging.Resize(src, newW, newH, policy.filter()), ratio
}
