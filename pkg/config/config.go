// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/user/framereel/pkg/adapters/smartencoder"
	"github.com/user/framereel/pkg/orchestrator"
	"github.com/user/framereel/pkg/pipeline"
	"github.com/user/framereel/pkg/ports"
)

// ErrInvalidConfig is returned when a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultOutput is used when no output path is given.
const DefaultOutput = "demo.mp4"

// Config represents the full configuration for framereel.
type Config struct {
	// Input/Output
	ImageDir string `yaml:"image_dir"`
	Output   string `yaml:"output"`

	// Frames
	Policy string `yaml:"policy"`

	// Encoding
	FPS        int    `yaml:"fps"`
	Codec      string `yaml:"codec"`
	Encoder    string `yaml:"encoder"`
	FFmpegPath string `yaml:"ffmpeg_path"`
	Quality    int    `yaml:"quality"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
	Summary  string `yaml:"summary"`

	// Logging
	LogLevel string `yaml:"log_level"`
	Quiet    bool   `yaml:"quiet"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Output: DefaultOutput,

		Policy: string(pipeline.PolicyLargest),

		FPS:     30,
		Codec:   "mp4v",
		Encoder: string(smartencoder.ModeAuto),
		Quality: 90,

		DebugDir: "./debug",

		LogLevel: "info",
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
func LoadFromFile(fs ports.FileSystem, path string) (Config, error) {
	cfg := Defaults()

	exists, err := fs.Exists(path)
	if err != nil {
		return cfg, err
	}
	if !exists {
		return cfg, fmt.Errorf("%w: config file %s not found", ErrInvalidConfig, path)
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field and returns the first problem found,
// wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ImageDir) == "" {
		return fmt.Errorf("%w: image directory is required", ErrInvalidConfig)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if len(c.Codec) != 4 {
		return fmt.Errorf("%w: codec must be a four-character code, got %q", ErrInvalidConfig, c.Codec)
	}
	if _, err := pipeline.ParsePolicy(c.Policy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := smartencoder.ParseMode(c.Encoder); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("%w: quality must be between 1 and 100, got %d", ErrInvalidConfig, c.Quality)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error", "quiet":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Level returns the effective log level.
func (c Config) Level() ports.LogLevel {
	if c.Quiet {
		return ports.LevelQuiet
	}
	return ports.ParseLogLevel(c.LogLevel)
}

// videoExtensions are the container extensions accepted as-is.
var videoExtensions = map[string]bool{
	".mp4": true,
	".m4v": true,
	".mov": true,
	".mkv": true,
	".avi": true,
}

// NormalizeOutputPath turns user input into a usable video file path.
//
//   - empty input yields DefaultOutput
//   - a trailing separator or an existing directory yields output.mp4 inside it
//   - an unknown extension gets .mp4 appended
func NormalizeOutputPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultOutput
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, `\`) {
		return filepath.Join(path, "output.mp4")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return filepath.Join(path, "output.mp4")
	}

	if !videoExtensions[strings.ToLower(filepath.Ext(path))] {
		return path + ".mp4"
	}
	return path
}

// ToOrchestratorConfig converts Config to orchestrator.Config.
// Call Validate first.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	cfg := orchestrator.DefaultConfig()
	cfg.ImageDir = c.ImageDir
	cfg.OutputPath = NormalizeOutputPath(c.Output)
	cfg.FPS = c.FPS
	cfg.Codec = c.Codec
	cfg.Policy = pipeline.Policy(c.Policy)
	cfg.Quality = c.Quality
	return cfg
}
