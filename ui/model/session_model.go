package model

import (
	"image"

	"github.com/soocke/roi-binarizer/domain/binarize"
)

// SessionModel holds the state of one editing session: the loaded source
// image, its scaled display copy, the threshold and the latest result.
// It is decoupled from the UI; presenters mutate it from the UI thread only.
// The zero value is ready to use (threshold 0 until SetThreshold is called;
// NewSessionModel starts at binarize.DefaultThreshold).
type SessionModel struct {
	source    image.Image
	path      string
	display   image.Image
	scale     float64
	threshold binarize.Threshold
	Result    ResultModel
}

// NewSessionModel returns a session with the default threshold.
func NewSessionModel() *SessionModel {
	return &SessionModel{threshold: binarize.DefaultThreshold}
}

// SetSource replaces the source image and its display rendering. The previous
// result is discarded.
func (m *SessionModel) SetSource(src image.Image, path string, display image.Image, scale float64) {
	if m == nil {
		return
	}
	m.source = src
	m.path = path
	m.display = display
	m.scale = scale
	m.Result.Clear()
}

// HasSource reports whether an image is loaded.
func (m *SessionModel) HasSource() bool { return m != nil && m.source != nil }

// Source returns the loaded image (nil if none).
func (m *SessionModel) Source() image.Image {
	if m == nil {
		return nil
	}
	return m.source
}

// Path returns where the source was loaded from (empty for screen captures).
func (m *SessionModel) Path() string {
	if m == nil {
		return ""
	}
	return m.path
}

// Display returns the scaled rendering shown in the source pane.
func (m *SessionModel) Display() image.Image {
	if m == nil {
		return nil
	}
	return m.display
}

// Scale returns the display-to-source factor of the current rendering.
func (m *SessionModel) Scale() float64 {
	if m == nil {
		return 0
	}
	return m.scale
}

// SourceSize returns the source dimensions (0,0 when empty).
func (m *SessionModel) SourceSize() (int, int) {
	if !m.HasSource() {
		return 0, 0
	}
	b := m.source.Bounds()
	return b.Dx(), b.Dy()
}

// Threshold returns the current session threshold.
func (m *SessionModel) Threshold() binarize.Threshold {
	if m == nil {
		return binarize.DefaultThreshold
	}
	return m.threshold
}

// SetThreshold stores t and reports whether it changed.
func (m *SessionModel) SetThreshold(t binarize.Threshold) bool {
	if m == nil || m.threshold == t {
		return false
	}
	m.threshold = t
	return true
}
