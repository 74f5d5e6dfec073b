package view

import (
	"image"

	"github.com/soocke/roi-binarizer/assets"
	"github.com/soocke/roi-binarizer/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ImagePane abstracts a label showing one image (source or result).
// It owns the Tk photo and disposes the previous one on every update.
type ImagePane interface {
	Update(img image.Image)
	Reset()
	Widget() *LabelWidget
}

type imagePane struct {
	label *LabelWidget
	photo *Img // last Tk photo image instance
}

// NewImagePane creates the label in a parent frame showing the placeholder.
// The image is anchored top-left without padding so pointer events map 1:1
// to display pixels.
func NewImagePane(parent *FrameWidget, row, col int) ImagePane {
	photo := NewPhoto(Data(placeholderPNG()))
	lbl := Label(Image(photo), Anchor("nw"), Borderwidth(0), Padx(0), Pady(0), Highlightthickness(0))
	if parent != nil {
		Grid(lbl, In(parent), Row(row), Column(col), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	} else {
		Grid(lbl, Row(row), Column(col), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	}
	return &imagePane{label: lbl, photo: photo}
}

func (v *imagePane) Widget() *LabelWidget { return v.label }

func (v *imagePane) Update(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	v.replace(images.EncodePNG(img))
}

func (v *imagePane) Reset() {
	if v.label == nil {
		return
	}
	v.replace(placeholderPNG())
}

func (v *imagePane) replace(pngBytes []byte) {
	if len(pngBytes) == 0 {
		return
	}
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.photo))
}

// placeholderPNG returns the embedded placeholder, or a blank tile when the
// asset is missing.
func placeholderPNG() []byte {
	if len(assets.PlaceholderPNG) > 0 {
		return assets.PlaceholderPNG
	}
	return images.EncodePNG(image.NewRGBA(image.Rect(0, 0, 200, 120)))
}
