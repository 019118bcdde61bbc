package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/neurlang/vocfeat/featio"
	"github.com/neurlang/vocfeat/mel"
	"github.com/neurlang/vocfeat/spectral"
	"gopkg.in/yaml.v3"
)

// Config represents the feature extraction tool configuration
type Config struct {
	Variant  string        `yaml:"variant"`
	Padding  string        `yaml:"padding"`
	Window   string        `yaml:"window"`
	Resample bool          `yaml:"resample"`
	STFT     STFTConfig    `yaml:"stft"`
	Output   OutputConfig  `yaml:"output"`
	Logging  LoggingConfig `yaml:"logging"`
}

// STFTConfig holds the framing used for plain spectrogram output.
type STFTConfig struct {
	WindowLength int    `yaml:"window_length"`
	HopLength    int    `yaml:"hop_length"`
	Spectrum     string `yaml:"spectrum"` // "magnitude" or "power"
}

type OutputConfig struct {
	Format   string `yaml:"format"` // "npy", "f16" or "png"
	Channel  int    `yaml:"channel"`
	YReverse bool   `yaml:"y_reverse"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{Resample: true}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Config{Resample: true}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Variant == "" {
		c.Variant = "r9y9"
	}
	if c.Padding == "" {
		c.Padding = "reflect"
	}
	if c.Window == "" {
		c.Window = "hann"
	}
	if c.STFT.WindowLength == 0 {
		c.STFT.WindowLength = 1024
	}
	if c.STFT.HopLength == 0 {
		c.STFT.HopLength = 256
	}
	if c.STFT.Spectrum == "" {
		c.STFT.Spectrum = "magnitude"
	}
	if c.Output.Format == "" {
		c.Output.Format = "npy"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks every enumerated field parses.
func (c *Config) Validate() error {
	if _, err := c.MelVariant(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.PadMode(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.AnalysisWindow(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.SpectrumKind(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := spectral.CheckFraming(c.STFT.WindowLength, c.STFT.HopLength); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if !slices.Contains(featio.Formats, c.Output.Format) {
		return fmt.Errorf("invalid config: unknown output format %q", c.Output.Format)
	}
	if c.Output.Channel < 0 {
		return fmt.Errorf("invalid config: channel %d", c.Output.Channel)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) MelVariant() (mel.Variant, error) {
	return mel.ParseVariant(c.Variant)
}

func (c *Config) PadMode() (spectral.PadMode, error) {
	return spectral.ParsePadMode(c.Padding)
}

func (c *Config) AnalysisWindow() (spectral.Window, error) {
	return spectral.ParseWindow(c.Window)
}

func (c *Config) SpectrumKind() (spectral.Kind, error) {
	return spectral.ParseKind(c.STFT.Spectrum)
}

// LogLevel parses Logging.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Logging.Level))); err != nil {
		return 0, err
	}
	return level, nil
}

// Logger builds a text logger on stderr at the configured level.
func (c *Config) Logger() *slog.Logger {
	level, err := c.LogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
