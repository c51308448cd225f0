package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/asd-xiv/node-utils/logger"
)

// ErrInvalidConfig indicates a value in the config file could not be used.
var ErrInvalidConfig = errors.New("configuration is invalid")

type Config struct {
	Logger LoggerConfig `toml:"logger"`
	Fetch  FetchConfig  `toml:"fetch"`
}

type LoggerConfig struct {
	Namespace string `toml:"namespace"`
	Level     string `toml:"level"`
	SinceLast bool   `toml:"since_last"`
	Frames    string `toml:"frames"`
}

type FetchConfig struct {
	Timeout string            `toml:"timeout"`
	Headers map[string]string `toml:"headers"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Logger: LoggerConfig{
			Namespace: "nu",
			Level:     string(logger.DefaultLevel),
			Frames:    logger.DefaultFrames,
		},
		Fetch: FetchConfig{
			Timeout: "30s",
			Headers: map[string]string{},
		},
	}
}

// DefaultPath returns the user's config file location.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "node-utils", "config.toml"), nil
}

// Load reads the config at path on top of Default. A missing file yields
// the defaults. Unknown keys are returned so the caller can warn about them.
func Load(path string) (*Config, []string, error) {
	config := Default()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config, nil, nil
	}

	unknown, err := readTOML(path, config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, unknown, err
	}
	return config, unknown, nil
}

// Save writes config to path.
func Save(path string, config *Config) error {
	if err := writeTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Validate checks values that are stored as strings.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.Logger.Level); err != nil {
		return fmt.Errorf("%w: logger.level: %w", ErrInvalidConfig, err)
	}
	if _, ok := logger.FrameSets[c.Logger.Frames]; !ok {
		return fmt.Errorf("%w: logger.frames: unknown frame set %q", ErrInvalidConfig, c.Logger.Frames)
	}
	if _, err := c.Fetch.TimeoutDuration(); err != nil {
		return fmt.Errorf("%w: fetch.timeout: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LoggerOptions converts the logger section into logger.Options.
func (c *Config) LoggerOptions() logger.Options {
	level, err := logger.ParseLevel(c.Logger.Level)
	if err != nil {
		level = logger.DefaultLevel
	}

	opts := logger.Options{
		Namespace: c.Logger.Namespace,
		Level:     level,
		Frames:    logger.FrameSets[c.Logger.Frames],
	}
	if c.Logger.SinceLast {
		opts.Clock = logger.NewClock()
	}
	return opts
}

// TimeoutDuration parses Timeout. Empty or "0" disables the timeout.
func (f FetchConfig) TimeoutDuration() (time.Duration, error) {
	if f.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(f.Timeout)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("negative timeout %s", f.Timeout)
	}
	return d, nil
}
