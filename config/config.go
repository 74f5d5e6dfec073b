package config

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the home directory.
const FileName = ".roi-binarizer.json"

// EnvPrefix prefixes environment overrides, e.g. ROIBIN_THRESHOLD=90.
const EnvPrefix = "ROIBIN"

// Config holds runtime configuration for the binarizer UI and CLI.
// Fields may be loaded from a JSON file and overridden by environment
// variables or command-line flags.
type Config struct {
	Debug    bool   `json:"debug" mapstructure:"debug"`
	LogLevel string `json:"log_level" mapstructure:"log_level"`

	// Threshold is the binarization level restored at startup.
	Threshold int `json:"threshold" mapstructure:"threshold"`
	// LiveRethreshold re-applies the slider value to the current result.
	LiveRethreshold bool `json:"live_rethreshold" mapstructure:"live_rethreshold"`

	// Display boxes for the source canvas and the result preview.
	CanvasWidth  int `json:"canvas_width" mapstructure:"canvas_width"`
	CanvasHeight int `json:"canvas_height" mapstructure:"canvas_height"`
	ResultWidth  int `json:"result_width" mapstructure:"result_width"`
	ResultHeight int `json:"result_height" mapstructure:"result_height"`

	// LastDir is the directory of the last opened or saved file.
	LastDir string `json:"last_dir" mapstructure:"last_dir"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		LogLevel:        "info",
		Threshold:       127,
		LiveRethreshold: false,
		CanvasWidth:     600,
		CanvasHeight:    600,
		ResultWidth:     280,
		ResultHeight:    200,
	}
}

const minPaneSize = 50

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.Threshold < 0 {
		c.Threshold = 0
	}
	if c.Threshold > 255 {
		c.Threshold = 255
	}
	if c.CanvasWidth < minPaneSize {
		c.CanvasWidth = 600
	}
	if c.CanvasHeight < minPaneSize {
		c.CanvasHeight = 600
	}
	if c.ResultWidth < minPaneSize {
		c.ResultWidth = 280
	}
	if c.ResultHeight < minPaneSize {
		c.ResultHeight = 200
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = "info"
	}
	return nil
}

// ParseLevel maps a level name to a slog level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DefaultPath returns $HOME/.roi-binarizer.json, or the bare file name when
// the home directory cannot be resolved.
func DefaultPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return FileName
	}
	return filepath.Join(home, FileName)
}

// NewViper returns a viper instance primed with defaults and env overrides.
func NewViper() *viper.Viper {
	v := viper.New()
	d := DefaultConfig()
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("threshold", d.Threshold)
	v.SetDefault("live_rethreshold", d.LiveRethreshold)
	v.SetDefault("canvas_width", d.CanvasWidth)
	v.SetDefault("canvas_height", d.CanvasHeight)
	v.SetDefault("result_width", d.ResultWidth)
	v.SetDefault("result_height", d.ResultHeight)
	v.SetDefault("last_dir", d.LastDir)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load attempts to read configuration from the given JSON file path. If the
// file does not exist it returns defaults (with env overrides applied). On a
// parse error it returns defaults with the error.
func Load(path string) (*Config, error) {
	return LoadWith(NewViper(), path)
}

// LoadWith reads path into v and decodes the merged settings. Flags bound to
// v beforehand take precedence over the file.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return DefaultConfig(), err
			}
		}
	}
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
