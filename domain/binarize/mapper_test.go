package binarize

import (
	"errors"
	"image"
	"testing"
)

func TestScaleFactor(t *testing.T) {
	cases := []struct {
		cw, ch, iw, ih int
		want           float64
	}{
		{600, 600, 1200, 600, 0.5},
		{600, 600, 300, 200, 2},
		{280, 200, 10, 10, 20},
		{0, 600, 10, 10, 0},
		{600, 600, 0, 10, 0},
	}
	for _, c := range cases {
		if got := ScaleFactor(c.cw, c.ch, c.iw, c.ih); got != c.want {
			t.Fatalf("ScaleFactor(%d,%d,%d,%d)=%v want %v", c.cw, c.ch, c.iw, c.ih, got, c.want)
		}
	}
}

func TestNormalize_SwapsCorners(t *testing.T) {
	r := Normalize(image.Pt(50, 10), image.Pt(5, 40))
	if r != image.Rect(5, 10, 50, 40) {
		t.Fatalf("unexpected rect %v", r)
	}
	r = Normalize(image.Pt(3, 3), image.Pt(3, 3))
	if r.Min != r.Max {
		t.Fatalf("point rect should stay degenerate: %v", r)
	}
}

func TestMapSelection_ScalesAndTruncates(t *testing.T) {
	// 1200x600 image shown at half size.
	r, err := MapSelection(image.Rect(10, 21, 101, 55), 0.5, 1200, 600)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != image.Rect(20, 42, 202, 110) {
		t.Fatalf("unexpected source rect %v", r)
	}
	// Upscaled rendering: 3 display pixels per source pixel.
	r, err = MapSelection(image.Rect(4, 4, 17, 11), 3, 10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != image.Rect(1, 1, 5, 3) {
		t.Fatalf("unexpected source rect %v", r)
	}
}

func TestMapSelection_ReversedCorners(t *testing.T) {
	display := image.Rectangle{Min: image.Pt(80, 90), Max: image.Pt(10, 20)}
	r, err := MapSelection(display, 1, 100, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != image.Rect(10, 20, 80, 90) {
		t.Fatalf("expected normalized rect, got %v", r)
	}
}

// Scenario C: a rectangle dragged past the right edge is clamped, not rejected.
func TestMapSelection_ClampsOutsideBounds(t *testing.T) {
	r, err := MapSelection(image.Rect(5, 5, 500, 8), 1, 10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Max.X != 9 || r.Min.X != 5 {
		t.Fatalf("expected x clamped to width-1, got %v", r)
	}
	r, err = MapSelection(image.Rect(-40, -40, 400, 400), 1, 10, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != image.Rect(0, 0, 9, 9) {
		t.Fatalf("expected full clamp, got %v", r)
	}
}

// Scenario D: zero width or height after clamping is signalled as invalid.
func TestMapSelection_Degenerate(t *testing.T) {
	cases := []struct {
		name  string
		rect  image.Rectangle
		scale float64
	}{
		{"zero width", image.Rect(3, 3, 3, 8), 1},
		{"zero height", image.Rect(3, 3, 8, 3), 1},
		{"right of image", image.Rect(20, 0, 40, 5), 1},
		{"above left of image", image.Rect(-9, -9, -1, -1), 1},
		{"sub-pixel after downscale", image.Rect(10, 10, 11, 11), 4},
	}
	for _, c := range cases {
		if _, err := MapSelection(c.rect, c.scale, 10, 10); !errors.Is(err, ErrInvalidSelection) {
			t.Fatalf("%s: expected ErrInvalidSelection, got %v", c.name, err)
		}
	}
}

func TestMapSelection_BadInputs(t *testing.T) {
	if _, err := MapSelection(image.Rect(0, 0, 5, 5), 0, 10, 10); !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("zero scale should be invalid, got %v", err)
	}
	if _, err := MapSelection(image.Rect(0, 0, 5, 5), 1, 0, 10); !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("zero width should be invalid, got %v", err)
	}
}

// Every accepted result satisfies 0 <= x1 < x2 <= width and 0 <= y1 < y2 <= height.
func TestMapSelection_BoundsInvariant(t *testing.T) {
	const w, h = 37, 23
	scales := []float64{0.25, 0.5, 1, 1.7, 3}
	for _, s := range scales {
		for x1 := -20; x1 <= 120; x1 += 7 {
			for x2 := -20; x2 <= 120; x2 += 11 {
				for y1 := -10; y1 <= 80; y1 += 9 {
					y2 := 80 - y1
					r, err := MapSelection(image.Rectangle{Min: image.Pt(x1, y1), Max: image.Pt(x2, y2)}, s, w, h)
					if err != nil {
						continue
					}
					if r.Min.X < 0 || r.Min.X >= r.Max.X || r.Max.X > w || r.Min.Y < 0 || r.Min.Y >= r.Max.Y || r.Max.Y > h {
						t.Fatalf("invariant broken for scale=%v input=(%d,%d,%d,%d): %v", s, x1, y1, x2, y2, r)
					}
				}
			}
		}
	}
}

func TestClampThreshold(t *testing.T) {
	if ClampThreshold(-4) != 0 || ClampThreshold(300) != 255 || ClampThreshold(127) != 127 {
		t.Fatalf("unexpected clamp results")
	}
}
