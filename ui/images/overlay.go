package images

import (
	"image"
	"image/color"
	"image/draw"
)

// DrawSelection returns a copy of img with rect outlined in col using the
// given stroke width. rect is relative to the image origin and is clamped to
// the image bounds; an outline that falls completely outside leaves the copy
// untouched.
func DrawSelection(img image.Image, rect image.Rectangle, col color.Color, width int) *image.RGBA {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	if width < 1 {
		width = 1
	}
	r := rect.Canon().Intersect(out.Bounds())
	if r.Empty() {
		return out
	}
	u := image.NewUniform(col)
	fill := func(x0, y0, x1, y1 int) {
		draw.Draw(out, image.Rect(x0, y0, x1, y1).Intersect(r), u, image.Point{}, draw.Src)
	}
	fill(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width) // top
	fill(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y) // bottom
	fill(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y) // left
	fill(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y) // right
	return out
}
