package binarize

import (
	"image"
	"math"
)

// ScaleFactor returns the uniform factor used to render an imgW x imgH image
// inside a canvasW x canvasH box: min(canvasW/imgW, canvasH/imgH).
// It returns 0 when any dimension is non-positive.
func ScaleFactor(canvasW, canvasH, imgW, imgH int) float64 {
	if canvasW <= 0 || canvasH <= 0 || imgW <= 0 || imgH <= 0 {
		return 0
	}
	return math.Min(float64(canvasW)/float64(imgW), float64(canvasH)/float64(imgH))
}

// Normalize builds the rectangle spanned by two drag corners so that
// Min is the top-left and Max the bottom-right corner.
func Normalize(a, b image.Point) image.Rectangle {
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	return image.Rectangle{Min: a, Max: b}
}

// MapSelection converts a display-space rectangle into source pixel space.
// Each coordinate is divided by scale and truncated, x is clamped to
// [0, width-1] and y to [0, height-1], and the corners are normalized again
// since clamping can reorder them. An empty result yields ErrInvalidSelection.
func MapSelection(display image.Rectangle, scale float64, width, height int) (image.Rectangle, error) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) || width <= 0 || height <= 0 {
		return image.Rectangle{}, ErrInvalidSelection
	}
	x1 := clamp(toSource(display.Min.X, scale), 0, width-1)
	y1 := clamp(toSource(display.Min.Y, scale), 0, height-1)
	x2 := clamp(toSource(display.Max.X, scale), 0, width-1)
	y2 := clamp(toSource(display.Max.Y, scale), 0, height-1)
	r := Normalize(image.Pt(x1, y1), image.Pt(x2, y2))
	if r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y {
		return image.Rectangle{}, ErrInvalidSelection
	}
	return r, nil
}

// toSource divides a display coordinate by scale, truncating toward zero.
func toSource(v int, scale float64) int {
	f := float64(v) / scale
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	if f < math.MinInt32 {
		return math.MinInt32
	}
	return int(f)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
