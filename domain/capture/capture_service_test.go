package capture

import (
	"errors"
	"image"
	"testing"
)

func TestService_GrabRecordsStats(t *testing.T) {
	var gotRect *image.Rectangle
	svc := NewServiceWith(nil, func(r *image.Rectangle) (*image.RGBA, error) {
		gotRect = r
		return image.NewRGBA(image.Rect(0, 0, 4, 3)), nil
	})
	img, err := svc.Grab()
	if err != nil || img == nil {
		t.Fatalf("grab failed: %v", err)
	}
	if gotRect != nil {
		t.Fatalf("full screen grab should pass a nil rect")
	}
	if _, err := svc.GrabRect(image.Rect(1, 1, 3, 3)); err != nil {
		t.Fatalf("grab rect failed: %v", err)
	}
	if gotRect == nil || *gotRect != image.Rect(1, 1, 3, 3) {
		t.Fatalf("unexpected rect passed to grabber: %v", gotRect)
	}
	st := svc.Stats()
	if st.Captures != 2 || st.Failures != 0 || st.Sequence != 2 {
		t.Fatalf("unexpected stats %+v", st)
	}
	if svc.Latest().Image == nil {
		t.Fatalf("latest snapshot not stored")
	}
}

func TestService_Failures(t *testing.T) {
	boom := errors.New("no display")
	svc := NewServiceWith(nil, func(*image.Rectangle) (*image.RGBA, error) { return nil, boom })
	if _, err := svc.Grab(); !errors.Is(err, boom) {
		t.Fatalf("expected grab error, got %v", err)
	}
	empty := NewServiceWith(nil, func(*image.Rectangle) (*image.RGBA, error) { return &image.RGBA{}, nil })
	if _, err := empty.Grab(); !errors.Is(err, ErrEmptyCapture) {
		t.Fatalf("expected ErrEmptyCapture, got %v", err)
	}
	if _, err := empty.GrabRect(image.Rectangle{}); !errors.Is(err, ErrEmptyCapture) {
		t.Fatalf("expected ErrEmptyCapture for empty rect, got %v", err)
	}
	st := svc.Stats()
	if st.Failures != 1 || st.LastError != "no display" || st.Captures != 0 {
		t.Fatalf("unexpected stats %+v", st)
	}
}
