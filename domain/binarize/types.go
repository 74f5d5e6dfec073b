package binarize

import "errors"

// Threshold is the global binarization level. A pixel turns white only when
// its luminance is strictly greater than the threshold.
type Threshold uint8

// DefaultThreshold is the level a fresh session starts with.
const DefaultThreshold Threshold = 127

// Output levels of a binary result.
const (
	Black uint8 = 0
	White uint8 = 255
)

// ErrInvalidSelection is returned when a selection maps to an empty source
// rectangle after clamping.
var ErrInvalidSelection = errors.New("selection too small or invalid")

// ClampThreshold converts an arbitrary integer (slider, flag, config) into a
// Threshold, saturating at 0 and 255.
func ClampThreshold(v int) Threshold {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return Threshold(v)
}
