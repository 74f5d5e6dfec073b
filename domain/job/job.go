// Package job runs the binarization pipeline without a UI: decode, map a
// display rectangle into source space, threshold, encode.
package job

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/roi-binarizer/domain/binarize"
	"github.com/soocke/roi-binarizer/domain/imageio"
)

// ErrBadRect reports a malformed rectangle argument.
var ErrBadRect = errors.New("rect must be x1,y1,x2,y2")

// ErrBadSize reports a malformed WIDTHxHEIGHT argument.
var ErrBadSize = errors.New("size must be WIDTHxHEIGHT")

// Options describe one headless run.
type Options struct {
	In string
	// Source replaces In when set, e.g. a screen capture.
	Source image.Image
	Out    string
	// Rect is the selection in display coordinates.
	Rect image.Rectangle
	// Scale relates display to source space. Ignored when CanvasW/H are set.
	Scale float64
	// CanvasW and CanvasH derive Scale from the source size the same way
	// the UI fits an image into its canvas.
	CanvasW, CanvasH int
	Threshold        binarize.Threshold
}

// Result summarizes a completed run.
type Result struct {
	Path      string
	SourceROI image.Rectangle
	Scale     float64
	Threshold binarize.Threshold
}

// Run executes opts. logger may be nil.
func Run(opts Options, logger *slog.Logger) (Result, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	img := opts.Source
	if img == nil {
		var err error
		if img, err = imageio.Open(opts.In); err != nil {
			return Result{}, err
		}
	}
	b := img.Bounds()
	scale := opts.Scale
	if opts.CanvasW > 0 || opts.CanvasH > 0 {
		scale = binarize.ScaleFactor(opts.CanvasW, opts.CanvasH, b.Dx(), b.Dy())
	}
	roi, err := binarize.MapSelection(opts.Rect, scale, b.Dx(), b.Dy())
	if err != nil {
		return Result{}, fmt.Errorf("map %v at scale %g onto %dx%d: %w", opts.Rect, scale, b.Dx(), b.Dy(), err)
	}
	bin, _, err := binarize.Binarize(img, roi, opts.Threshold)
	if err != nil {
		return Result{}, err
	}
	path, err := imageio.Save(bin, opts.Out)
	if err != nil {
		return Result{}, err
	}
	logger.Info("binarized", "in", sourceName(opts), "out", path, "rect", roi.String(), "scale", scale, "threshold", int(opts.Threshold))
	return Result{Path: path, SourceROI: roi, Scale: scale, Threshold: opts.Threshold}, nil
}

func sourceName(opts Options) string {
	if opts.Source != nil {
		return "<image>"
	}
	return opts.In
}

// ParseRect parses "x1,y1,x2,y2" into a normalized rectangle.
func ParseRect(s string) (image.Rectangle, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return image.Rectangle{}, fmt.Errorf("%w: %q", ErrBadRect, s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("%w: %q", ErrBadRect, s)
		}
		v[i] = n
	}
	return binarize.Normalize(image.Pt(v[0], v[1]), image.Pt(v[2], v[3])), nil
}

// ParseSize parses "WIDTHxHEIGHT" with positive dimensions.
func ParseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	wi, err1 := strconv.Atoi(w)
	hi, err2 := strconv.Atoi(h)
	if err1 != nil || err2 != nil || wi <= 0 || hi <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSize, s)
	}
	return wi, hi, nil
}
