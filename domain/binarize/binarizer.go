package binarize

import (
	"image"

	"github.com/disintegration/imaging"
)

// Luminance reduces img to a single channel using the ITU-R 601 weights
// (0.299, 0.587, 0.114). The returned image starts at (0,0).
func Luminance(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok && g.Rect.Min == (image.Point{}) {
		return g
	}
	nrgba := imaging.Grayscale(img)
	b := nrgba.Bounds()
	dst := image.NewGray(b)
	for y := 0; y < b.Dy(); y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+b.Dx()*4]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+b.Dx()]
		for x := range row {
			row[x] = src[x*4]
		}
	}
	return dst
}

// Apply thresholds a grayscale image into a new image of the same bounds.
// Pixels strictly brighter than t become White, all others Black.
func Apply(gray *image.Gray, t Threshold) *image.Gray {
	if gray == nil {
		return nil
	}
	b := gray.Bounds()
	dst := image.NewGray(b)
	level := uint8(t)
	for y := 0; y < b.Dy(); y++ {
		src := gray.Pix[y*gray.Stride : y*gray.Stride+b.Dx()]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+b.Dx()]
		for x, v := range src {
			if v > level {
				row[x] = White
			} else {
				row[x] = Black
			}
		}
	}
	return dst
}

// Crop extracts rect from src. rect is expressed relative to the top-left
// corner of src (so (0,0) is always the first pixel, whatever src.Bounds().Min
// is) and must lie fully inside the image.
func Crop(src image.Image, rect image.Rectangle) (image.Image, error) {
	if src == nil || rect.Empty() {
		return nil, ErrInvalidSelection
	}
	b := src.Bounds()
	abs := rect.Add(b.Min)
	if !abs.In(b) {
		return nil, ErrInvalidSelection
	}
	return imaging.Crop(src, abs), nil
}

// Binarize crops rect from src, reduces it to luminance and thresholds it.
// It also returns the intermediate grayscale crop so callers can re-apply a
// different threshold without cropping again.
func Binarize(src image.Image, rect image.Rectangle, t Threshold) (*image.Gray, *image.Gray, error) {
	roi, err := Crop(src, rect)
	if err != nil {
		return nil, nil, err
	}
	gray := Luminance(roi)
	return Apply(gray, t), gray, nil
}
