// Package config loads noodle-timer configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/noodle-timer/noodle-go/pkg/countdown"
	"github.com/noodle-timer/noodle-go/pkg/timefmt"
)

// ErrInvalidConfig is returned when a configuration value fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the top-level configuration file structure.
type Config struct {
	Timer   TimerConfig   `yaml:"timer"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
	Alarm   AlarmConfig   `yaml:"alarm"`
}

// TimerConfig configures the countdown itself.
type TimerConfig struct {
	// Duration is the initial and reset value, as accepted by
	// countdown.ParseDuration ("180000" or "3m").
	Duration string `yaml:"duration"`

	// Interval is the tick interval.
	Interval time.Duration `yaml:"interval"`

	// Labels selects the display labels ("en", "ja").
	Labels string `yaml:"labels"`
}

// DisplayConfig configures the front end refresh.
type DisplayConfig struct {
	RenderInterval time.Duration `yaml:"render_interval"`
}

// LoggingConfig configures diagnostics and the event log.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// EventLog is the path of the CBOR event log. Empty disables it.
	EventLog string `yaml:"event_log"`
}

// AlarmConfig configures what the front end does when time is up.
type AlarmConfig struct {
	Bell    bool   `yaml:"bell"`
	Message string `yaml:"message"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Timer: TimerConfig{
			Duration: "3m",
			Interval: countdown.DefaultInterval,
			Labels:   timefmt.EnglishLabels.Name,
		},
		Display: DisplayConfig{
			RenderInterval: 100 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Alarm: AlarmConfig{
			Bell:    true,
			Message: "Time is up!",
		},
	}
}

// Load reads and validates the configuration file at path.
// Keys missing from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration data.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks every field.
func (c *Config) Validate() error {
	if _, err := c.TimerDuration(); err != nil {
		return fmt.Errorf("%w: timer.duration: %v", ErrInvalidConfig, err)
	}
	if c.Timer.Interval <= 0 {
		return fmt.Errorf("%w: timer.interval must be positive, got %v", ErrInvalidConfig, c.Timer.Interval)
	}
	if _, err := c.TimerLabels(); err != nil {
		return fmt.Errorf("%w: timer.labels: %v", ErrInvalidConfig, err)
	}
	if c.Display.RenderInterval <= 0 {
		return fmt.Errorf("%w: display.render_interval must be positive, got %v", ErrInvalidConfig, c.Display.RenderInterval)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// TimerDuration returns the parsed timer.duration.
func (c *Config) TimerDuration() (time.Duration, error) {
	return countdown.ParseDuration(c.Timer.Duration)
}

// TimerLabels returns the label set named by timer.labels.
func (c *Config) TimerLabels() (timefmt.Labels, error) {
	return timefmt.LabelsByName(c.Timer.Labels)
}

// SlogLevel returns logging.level as an slog.Level, or Info if invalid.
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLevel(c.Logging.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel parses a log level name.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
