package images

import (
	"image"
	"image/color"
	"testing"
)

var red = color.RGBA{R: 255, A: 255}

func TestDrawSelection_Outline(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 20, 20))
	out := DrawSelection(src, image.Rect(5, 5, 15, 12), red, 2)
	if out.RGBAAt(5, 5) != red || out.RGBAAt(14, 11) != red || out.RGBAAt(6, 8) != red {
		t.Fatalf("outline pixels not drawn")
	}
	if out.RGBAAt(10, 8) == red {
		t.Fatalf("interior must stay untouched")
	}
	if out.RGBAAt(4, 4) == red || out.RGBAAt(15, 12) == red {
		t.Fatalf("outline leaked outside the rectangle")
	}
	if src.GrayAt(5, 5).Y != 0 {
		t.Fatalf("source image must not be modified")
	}
}

func TestDrawSelection_ClampsAndReversed(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	rev := image.Rectangle{Min: image.Pt(30, 30), Max: image.Pt(2, 2)}
	out := DrawSelection(src, rev, red, 1)
	if out.RGBAAt(2, 2) != red || out.RGBAAt(9, 5) != red {
		t.Fatalf("clamped outline missing")
	}
	outside := DrawSelection(src, image.Rect(40, 40, 50, 50), red, 1)
	for i := range outside.Pix {
		if outside.Pix[i] != 0 {
			t.Fatalf("outline outside the image should draw nothing")
		}
	}
	if DrawSelection(nil, image.Rect(0, 0, 1, 1), red, 1) != nil {
		t.Fatalf("nil image should yield nil")
	}
}
