// Package config loads and validates YAML configuration for the dashboard
// CLI. Config values supply defaults; command-line flags override them.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/nanahubert30/Data-Analyst/internal/dateutil"
	"github.com/nanahubert30/Data-Analyst/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
	ErrInvalidValue   = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength     = 4096
	MaxTemplateLength = 30
	MaxEngineLength   = 10
	MaxFormatLength   = dateutil.MaxFormatLength
	MaxTimeoutLength  = 20
)

// Config holds all configuration for dashboard generation.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Template string         `yaml:"template"` // "default", "minimal", "grid" (unknown = default)
	Markdown MarkdownConfig `yaml:"markdown"`
	SVG      SVGConfig      `yaml:"svg"`
	Stamp    StampConfig    `yaml:"stamp"`
	PDF      PDFConfig      `yaml:"pdf"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Path string `yaml:"path"` // Default output file (empty = dashboard.html)
}

// MarkdownConfig defines markdown conversion options.
type MarkdownConfig struct {
	Engine string `yaml:"engine"` // "basic" (default) or "rich"
}

// SVGConfig defines SVG handling options.
type SVGConfig struct {
	Sanitize bool `yaml:"sanitize"` // Strip scripts/handlers from SVG payloads
}

// StampConfig defines the "Generated on" timestamp options.
type StampConfig struct {
	Format string `yaml:"format"` // dateutil tokens or preset (empty = YYYY-MM-DD HH:mm:ss)
}

// PDFConfig defines optional PDF export options.
type PDFConfig struct {
	Enabled bool   `yaml:"enabled"`
	Timeout string `yaml:"timeout"` // Go duration, e.g. "30s" (empty = default)
}

// Default returns a neutral configuration.
func Default() *Config {
	return &Config{}
}

// Load reads and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the invoking user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field lengths and value domains. Called automatically by
// Load, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.path", c.Output.Path, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("template", c.Template, MaxTemplateLength); err != nil {
		return err
	}
	if err := validateFieldLength("markdown.engine", c.Markdown.Engine, MaxEngineLength); err != nil {
		return err
	}
	if err := validateFieldLength("stamp.format", c.Stamp.Format, MaxFormatLength); err != nil {
		return err
	}
	if err := validateFieldLength("pdf.timeout", c.PDF.Timeout, MaxTimeoutLength); err != nil {
		return err
	}

	switch c.Markdown.Engine {
	case "", "basic", "rich":
		// valid
	default:
		return fmt.Errorf("%w: markdown.engine %q (must be basic or rich)", ErrInvalidValue, c.Markdown.Engine)
	}

	if c.Stamp.Format != "" {
		if _, err := dateutil.ResolveLayout(c.Stamp.Format); err != nil {
			return fmt.Errorf("%w: stamp.format: %v", ErrInvalidValue, err)
		}
	}

	if c.PDF.Timeout != "" {
		d, err := time.ParseDuration(c.PDF.Timeout)
		if err != nil {
			return fmt.Errorf("%w: pdf.timeout %q: %v", ErrInvalidValue, c.PDF.Timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: pdf.timeout must be positive, got %q", ErrInvalidValue, c.PDF.Timeout)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}
