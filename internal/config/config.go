package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

const (
	DefaultSize         = 300
	DefaultMinSize      = 150
	DefaultMaxSize      = 600
	DefaultResizeBorder = 10
	DefaultTickInterval = time.Second

	minTickInterval = 100 * time.Millisecond
)

// Config is the widget configuration. Every key is optional; unset keys keep
// their defaults.
type Config struct {
	// Size is the initial window edge length in pixels.
	Size    int `yaml:"size"`
	MinSize int `yaml:"min_size"`
	MaxSize int `yaml:"max_size"`
	// ResizeBorder is the thickness of the corner resize zones.
	ResizeBorder int `yaml:"resize_border"`
	// TickInterval is the redraw period.
	TickInterval time.Duration `yaml:"tick_interval"`
	// LogLevel controls verbosity: debug, info, warn, error
	LogLevel string `yaml:"log_level"`
	// MetricsAddr enables the Prometheus endpoint when non-empty (e.g. "127.0.0.1:9464").
	MetricsAddr string `yaml:"metrics_addr,omitempty"`
	// Display overrides $DISPLAY.
	Display string `yaml:"display,omitempty"`
}

// ValidationError reports an invalid config value, optionally with the file
// position it came from.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func DefaultConfig() *Config {
	return &Config{
		Size:         DefaultSize,
		MinSize:      DefaultMinSize,
		MaxSize:      DefaultMaxSize,
		ResizeBorder: DefaultResizeBorder,
		TickInterval: DefaultTickInterval,
		LogLevel:     "info",
	}
}

// Validate checks value ranges and cross-field constraints.
func (c *Config) Validate() error {
	if c.MinSize < 1 {
		return &ValidationError{Path: "min_size", Err: fmt.Errorf("min_size must be >= 1")}
	}
	if c.MaxSize < c.MinSize {
		return &ValidationError{Path: "max_size", Err: fmt.Errorf("max_size must be >= min_size (%d)", c.MinSize)}
	}
	if c.Size < c.MinSize || c.Size > c.MaxSize {
		return &ValidationError{Path: "size", Err: fmt.Errorf("size must be between min_size (%d) and max_size (%d)", c.MinSize, c.MaxSize)}
	}
	if c.ResizeBorder < 1 {
		return &ValidationError{Path: "resize_border", Err: fmt.Errorf("resize_border must be >= 1")}
	}
	if 2*c.ResizeBorder >= c.MinSize {
		return &ValidationError{Path: "resize_border", Err: fmt.Errorf("resize_border must be less than half of min_size")}
	}
	if c.TickInterval < minTickInterval {
		return &ValidationError{Path: "tick_interval", Err: fmt.Errorf("tick_interval must be >= %s", minTickInterval)}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	return nil
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}
}
