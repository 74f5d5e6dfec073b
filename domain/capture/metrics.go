package capture

import (
	"image"
	"time"
)

// Snapshot carries the most recent screen grab and metadata.
type Snapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}

// Stats summarises grab behaviour for instrumentation.
type Stats struct {
	Captures   uint64
	Failures   uint64
	AvgCapture time.Duration
	LastError  string
	Sequence   uint64
}
