package capture

import (
	"errors"
	"image"
	"log/slog"
	"time"

	"github.com/vova616/screenshot"
)

// ErrEmptyCapture is returned when the screen grab produced no pixels.
var ErrEmptyCapture = errors.New("screen capture returned an empty image")

// GrabFunc captures a region of the screen. A nil rect means the whole screen.
type GrabFunc func(rect *image.Rectangle) (*image.RGBA, error)

// Service grabs screenshots to use as source images. Use NewService to
// construct an instance.
type Service interface {
	Grab() (*image.RGBA, error)
	GrabRect(r image.Rectangle) (*image.RGBA, error)
	Latest() Snapshot
	Stats() Stats
}

type service struct {
	grab     GrabFunc
	logger   *slog.Logger
	latest   Snapshot
	captures uint64
	failures uint64
	nanos    uint64
	lastErr  string
}

// NewService constructs a capture service backed by the screenshot package.
func NewService(logger *slog.Logger) Service {
	return NewServiceWith(logger, screenGrab)
}

// NewServiceWith constructs a capture service using grab (useful for tests).
func NewServiceWith(logger *slog.Logger, grab GrabFunc) Service {
	if grab == nil {
		grab = screenGrab
	}
	return &service{grab: grab, logger: logger}
}

func screenGrab(rect *image.Rectangle) (*image.RGBA, error) {
	if rect != nil {
		return screenshot.CaptureRect(*rect)
	}
	return screenshot.CaptureScreen()
}

func (s *service) Grab() (*image.RGBA, error) { return s.capture(nil) }

func (s *service) GrabRect(r image.Rectangle) (*image.RGBA, error) {
	if r.Empty() {
		return nil, ErrEmptyCapture
	}
	return s.capture(&r)
}

func (s *service) capture(rect *image.Rectangle) (*image.RGBA, error) {
	start := time.Now()
	img, err := s.grab(rect)
	if err == nil && (img == nil || img.Bounds().Empty()) {
		err = ErrEmptyCapture
	}
	if err != nil {
		s.failures++
		s.lastErr = err.Error()
		if s.logger != nil {
			s.logger.Error("capture screen", "error", err)
		}
		return nil, err
	}
	elapsed := time.Since(start)
	s.nanos += uint64(elapsed.Nanoseconds())
	s.captures++
	s.latest = Snapshot{Image: img, CapturedAt: time.Now(), Sequence: s.captures}
	if s.logger != nil {
		s.logger.Debug("capture.stats", "captures", s.captures, "failures", s.failures, "elapsed", elapsed, "bounds", img.Bounds().String())
	}
	return img, nil
}

func (s *service) Latest() Snapshot { return s.latest }

func (s *service) Stats() Stats {
	var avg time.Duration
	if s.captures > 0 {
		avg = time.Duration(s.nanos / s.captures)
	}
	return Stats{
		Captures:   s.captures,
		Failures:   s.failures,
		AvgCapture: avg,
		LastError:  s.lastErr,
		Sequence:   s.latest.Sequence,
	}
}
