package imageio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func binaryPattern() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, 9, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 9; x++ {
			if (x+y)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	return img
}

func assertSamePixels(t *testing.T, want *image.Gray, got image.Image) {
	t.Helper()
	if got.Bounds().Dx() != want.Bounds().Dx() || got.Bounds().Dy() != want.Bounds().Dy() {
		t.Fatalf("size mismatch: want %v got %v", want.Bounds(), got.Bounds())
	}
	gb := got.Bounds()
	for y := 0; y < want.Bounds().Dy(); y++ {
		for x := 0; x < want.Bounds().Dx(); x++ {
			g := color.GrayModel.Convert(got.At(gb.Min.X+x, gb.Min.Y+y)).(color.Gray).Y
			if w := want.GrayAt(x, y).Y; g != w {
				t.Fatalf("pixel (%d,%d): want %d got %d", x, y, w, g)
			}
		}
	}
}

// Exported binary results survive a lossless round trip.
func TestSaveOpen_LosslessRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := binaryPattern()
	for _, name := range []string{"out.png", "out.bmp"} {
		path, err := Save(src, filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("%s: save failed: %v", name, err)
		}
		got, err := Open(path)
		if err != nil {
			t.Fatalf("%s: open failed: %v", name, err)
		}
		assertSamePixels(t, src, got)
	}
}

func TestSave_DefaultsToPNG(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(binaryPattern(), filepath.Join(dir, "result"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if filepath.Ext(path) != ".png" {
		t.Fatalf("expected .png extension, got %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("file not written: %v", err)
	}
}

func TestSave_JPEGWritesDecodableFile(t *testing.T) {
	dir := t.TempDir()
	path, err := Save(binaryPattern(), filepath.Join(dir, "result.jpg"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	img, err := Open(path)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if img.Bounds().Dx() != 9 || img.Bounds().Dy() != 5 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
}

func TestSave_UnsupportedExtension(t *testing.T) {
	_, err := Save(binaryPattern(), filepath.Join(t.TempDir(), "result.xyz"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := Save(nil, "x.png"); err == nil {
		t.Fatalf("expected error for nil image")
	}
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Open(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	bogus := filepath.Join(dir, "bogus.png")
	if err := os.WriteFile(bogus, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(bogus); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, binaryPattern(), imaging.BMP); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	img, err := Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	assertSamePixels(t, binaryPattern(), img)
}

func TestEnsureExtension(t *testing.T) {
	if EnsureExtension("a/b") != "a/b.png" || EnsureExtension("a/b.bmp") != "a/b.bmp" || EnsureExtension("") != "" {
		t.Fatalf("unexpected EnsureExtension results")
	}
}
