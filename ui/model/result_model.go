package model

import (
	"image"

	"github.com/soocke/roi-binarizer/domain/binarize"
)

// ResultModel holds the latest binary result, the grayscale crop it was
// computed from and the source-space rectangle. A new binarization replaces
// it wholesale. The zero value means no result and is usable.
type ResultModel struct {
	binary    *image.Gray
	gray      *image.Gray
	roi       image.Rectangle
	threshold binarize.Threshold
}

// Set replaces the stored result. Empty rectangles or nil images clear it.
func (m *ResultModel) Set(binary, gray *image.Gray, roi image.Rectangle, t binarize.Threshold) {
	if m == nil {
		return
	}
	if binary == nil || roi.Empty() {
		m.Clear()
		return
	}
	m.binary, m.gray, m.roi, m.threshold = binary, gray, roi, t
}

// Clear drops the stored result.
func (m *ResultModel) Clear() {
	if m == nil {
		return
	}
	*m = ResultModel{}
}

// Has reports whether a result is held.
func (m *ResultModel) Has() bool { return m != nil && m.binary != nil }

// Binary returns the result image (nil if none).
func (m *ResultModel) Binary() *image.Gray {
	if m == nil {
		return nil
	}
	return m.binary
}

// Gray returns the grayscale crop behind the result (nil if none).
func (m *ResultModel) Gray() *image.Gray {
	if m == nil {
		return nil
	}
	return m.gray
}

// ROI returns the source rectangle of the result (may be empty).
func (m *ResultModel) ROI() image.Rectangle {
	if m == nil {
		return image.Rectangle{}
	}
	return m.roi
}

// Threshold returns the level the result was computed with.
func (m *ResultModel) Threshold() binarize.Threshold {
	if m == nil {
		return 0
	}
	return m.threshold
}
