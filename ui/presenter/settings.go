package presenter

import (
	"strconv"
	"strings"

	"github.com/soocke/roi-binarizer/config"
)

// Settings form field ids.
const (
	FieldCanvasWidth     = "canvasWidth"
	FieldCanvasHeight    = "canvasHeight"
	FieldResultWidth     = "resultWidth"
	FieldResultHeight    = "resultHeight"
	FieldLiveRethreshold = "liveRethreshold"
	FieldLogLevel        = "logLevel"
)

// ApplySettings merges parsed form values into a copy of cfg. Unparsable
// fields keep their previous value; the result is validated.
func ApplySettings(cfg config.Config, values map[string]string) config.Config {
	assignInt := func(id string, dst *int) {
		if i, ok := parseIntField(values[id]); ok {
			*dst = i
		}
	}
	assignInt(FieldCanvasWidth, &cfg.CanvasWidth)
	assignInt(FieldCanvasHeight, &cfg.CanvasHeight)
	assignInt(FieldResultWidth, &cfg.ResultWidth)
	assignInt(FieldResultHeight, &cfg.ResultHeight)
	if b, ok := parseBoolLoose(values[FieldLiveRethreshold]); ok {
		cfg.LiveRethreshold = b
	}
	if s := strings.TrimSpace(values[FieldLogLevel]); s != "" {
		cfg.LogLevel = s
	}
	_ = cfg.Validate()
	return cfg
}

// parsing helpers (unexported)
func parseIntField(s string) (int, bool) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return i, true
}
func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
