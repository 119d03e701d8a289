package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Cloudy680/Color-converter/internal/color"
	"github.com/Cloudy680/Color-converter/internal/export"
	"github.com/Cloudy680/Color-converter/internal/swatch"
)

// Environment represents the application environment
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// DefaultFile is the config file looked up in the working directory when
// COLORSTUDIO_CONFIG is not set.
const DefaultFile = "colorstudio.yaml"

// Config holds all studio configuration values.
type Config struct {
	Env      Environment `yaml:"env"`
	LogLevel string      `yaml:"log_level"`

	StartColor  string `yaml:"start_color"`
	SwatchFile  string `yaml:"swatch_file"`
	MaxSwatches int    `yaml:"max_swatches"`

	Export struct {
		Width   int    `yaml:"width"`
		Height  int    `yaml:"height"`
		Format  string `yaml:"format"`
		Quality int    `yaml:"quality"`
	} `yaml:"export"`

	Server struct {
		Transport     string `yaml:"transport"`
		Host          string `yaml:"host"`
		Port          int    `yaml:"port"`
		MetricsListen string `yaml:"metrics_listen"`
	} `yaml:"server"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		Env:         Development,
		LogLevel:    "info",
		StartColor:  "#ff0000",
		SwatchFile:  defaultSwatchFile(),
		MaxSwatches: swatch.DefaultLimit,
	}
	cfg.Export.Width = export.DefaultWidth
	cfg.Export.Height = export.DefaultHeight
	cfg.Export.Format = string(export.PPM)
	cfg.Export.Quality = 95
	cfg.Server.Transport = "stdio"
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8000
	cfg.Server.MetricsListen = ":9090"
	return cfg
}

// Load builds the configuration: defaults, then the YAML file, then
// environment variables. A .env file in the working directory is loaded
// first if present.
func Load() (*Config, error) {
	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	cfg := Default()

	path := os.Getenv("COLORSTUDIO_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := cfg.loadFile(path); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Env = Environment(strings.ToLower(envOrDefault("COLORSTUDIO_ENV", string(c.Env))))
	c.LogLevel = strings.ToLower(envOrDefault("LOG_LEVEL", c.LogLevel))
	c.StartColor = envOrDefault("COLORSTUDIO_START_COLOR", c.StartColor)
	c.SwatchFile = envOrDefault("COLORSTUDIO_SWATCH_FILE", c.SwatchFile)
	c.Export.Format = envOrDefault("COLORSTUDIO_EXPORT_FORMAT", c.Export.Format)
	c.Server.Transport = envOrDefault("MCP_TRANSPORT", c.Server.Transport)
	c.Server.Host = envOrDefault("MCP_HOST", c.Server.Host)
	c.Server.MetricsListen = envOrDefault("METRICS_LISTEN", c.Server.MetricsListen)

	ints := []struct {
		key string
		dst *int
	}{
		{"COLORSTUDIO_MAX_SWATCHES", &c.MaxSwatches},
		{"COLORSTUDIO_EXPORT_WIDTH", &c.Export.Width},
		{"COLORSTUDIO_EXPORT_HEIGHT", &c.Export.Height},
		{"COLORSTUDIO_EXPORT_QUALITY", &c.Export.Quality},
		{"MCP_PORT", &c.Server.Port},
	}
	for _, v := range ints {
		s := os.Getenv(v.key)
		if s == "" {
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", v.key, s, err)
		}
		*v.dst = n
	}
	return nil
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	var errs []string

	switch c.Env {
	case Development, Production:
	default:
		errs = append(errs, fmt.Sprintf("unknown environment %q (development or production)", c.Env))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}
	if _, err := color.HexToRGB(c.StartColor); err != nil {
		errs = append(errs, "start_color: "+err.Error())
	}
	if c.MaxSwatches <= 0 {
		errs = append(errs, "max_swatches must be positive")
	}
	if c.Export.Width <= 0 || c.Export.Height <= 0 {
		errs = append(errs, fmt.Sprintf("export size %dx%d must be positive", c.Export.Width, c.Export.Height))
	}
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		errs = append(errs, "export format: "+err.Error())
	}
	if c.Export.Quality < 1 || c.Export.Quality > 100 {
		errs = append(errs, "export quality must be within 1-100")
	}
	switch c.Server.Transport {
	case "stdio", "streamable-http":
	default:
		errs = append(errs, fmt.Sprintf("unknown transport %q (stdio or streamable-http)", c.Server.Transport))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("port %d out of range", c.Server.Port))
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == Development
}

// ExportFormat returns the configured default export format.
func (c *Config) ExportFormat() export.Format {
	f, err := export.ParseFormat(c.Export.Format)
	if err != nil {
		return export.PPM
	}
	return f
}

func defaultSwatchFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "swatches.yaml"
	}
	return filepath.Join(dir, "colorstudio", "swatches.yaml")
}

// envOrDefault returns environment variable value or default
func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
