// Package imageio decodes source images and encodes binary results.
// Format handling is delegated to the imaging package; this layer only adds
// extension defaults and error context for the UI.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
)

// DefaultExtension is appended to save paths chosen without an extension.
const DefaultExtension = ".png"

// ErrUnsupportedFormat is returned for extensions the encoder does not know.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// FileType describes one entry of a file dialog filter.
type FileType struct {
	Name       string
	Extensions []string
}

// OpenFiletypes lists the formats offered when opening a source image.
var OpenFiletypes = []FileType{
	{Name: "Image files", Extensions: []string{".png", ".jpg", ".jpeg", ".bmp", ".gif"}},
	{Name: "All files", Extensions: []string{"*"}},
}

// SaveFiletypes lists the formats offered when exporting a result.
var SaveFiletypes = []FileType{
	{Name: "PNG", Extensions: []string{".png"}},
	{Name: "JPEG", Extensions: []string{".jpg", ".jpeg"}},
	{Name: "BMP", Extensions: []string{".bmp"}},
}

// Open reads and decodes the image at path, applying EXIF orientation.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	return img, nil
}

// Decode decodes an image from r.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

// EnsureExtension appends DefaultExtension when path has none.
func EnsureExtension(path string) string {
	if path == "" || filepath.Ext(path) != "" {
		return path
	}
	return path + DefaultExtension
}

// FormatFor resolves the encoder format from the path extension.
func FormatFor(path string) (imaging.Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return f, fmt.Errorf("%w: %q", ErrUnsupportedFormat, strings.ToLower(filepath.Ext(path)))
	}
	return f, nil
}

// Save encodes img to path, picking the format from the extension.
// It returns the path actually written.
func Save(img image.Image, path string) (string, error) {
	if img == nil {
		return "", errors.New("save image: nil image")
	}
	path = EnsureExtension(path)
	if _, err := FormatFor(path); err != nil {
		return "", err
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(100)); err != nil {
		return "", fmt.Errorf("save image %q: %w", path, err)
	}
	return path, nil
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f imaging.Format) error {
	if err := imaging.Encode(w, img, f, imaging.JPEGQuality(100)); err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	return nil
}
