package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-j2m/internal/fileutil"
	"github.com/alnah/go-j2m/internal/pipeline"
	"github.com/alnah/go-j2m/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidWorkers  = errors.New("invalid worker count")
	ErrInvalidStyle    = errors.New("invalid highlight style")
	ErrInvalidDialect  = errors.New("invalid source dialect")
)

// AppDirName is the directory under the user config dir searched for configs.
const AppDirName = "go-j2m"

// Worker bounds for batch conversion. Zero means auto.
const MaxWorkers = 8

// Field length limits.
const (
	MaxPathLength  = 4096 // PATH_MAX on Linux
	MaxTitleLength = 200  // standalone document <title>
	MaxStyleLength = 50   // chroma style names are short
)

// Source dialects accepted by render.from.
const (
	DialectAuto     = ""
	DialectWiki     = "wiki"
	DialectMarkdown = "markdown"
)

// Config holds all configuration for the j2m command.
type Config struct {
	Render  RenderConfig `yaml:"render"`
	Output  OutputConfig `yaml:"output"`
	Workers int          `yaml:"workers"` // 0 = auto from GOMAXPROCS
}

// RenderConfig mirrors the library's HTML rendering options.
type RenderConfig struct {
	LineBreaks              bool   `yaml:"lineBreaks"`
	GFM                     bool   `yaml:"gfm"`
	EscapeHTML              bool   `yaml:"escapeHTML"`
	SmartTypography         bool   `yaml:"smartTypography"`
	PreserveExtraBlankLines bool   `yaml:"preserveExtraBlankLines"`
	HighlightStyle          string `yaml:"highlightStyle"` // chroma style, empty = off
	From                    string `yaml:"from"`           // "wiki", "markdown", empty = by extension
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Standalone bool   `yaml:"standalone"` // Wrap HTML output in a full document
	Title      string `yaml:"title"`      // <title> of standalone documents (empty = file name)
}

// Validate checks ranges, enumerations and field lengths.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidWorkers, MaxWorkers, c.Workers)
	}

	if err := validateFieldLength("render.highlightStyle", c.Render.HighlightStyle, MaxStyleLength); err != nil {
		return err
	}
	if c.Render.HighlightStyle != "" && !pipeline.HighlightStyleExists(c.Render.HighlightStyle) {
		return fmt.Errorf("%w: render.highlightStyle %q", ErrInvalidStyle, c.Render.HighlightStyle)
	}

	switch strings.ToLower(c.Render.From) {
	case DialectAuto, DialectWiki, DialectMarkdown:
		// valid
	default:
		return fmt.Errorf("%w: render.from %q (must be wiki or markdown)", ErrInvalidDialect, c.Render.From)
	}

	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.title", c.Output.Title, MaxTitleLength); err != nil {
		return err
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

// DefaultConfig returns the configuration used when no file is given.
// Render defaults match the library defaults.
func DefaultConfig() *Config {
	return &Config{
		Render: RenderConfig{
			LineBreaks:      true,
			GFM:             true,
			SmartTypography: true,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML, e.g. to seed a new config file.
func Marshal(cfg *Config) ([]byte, error) {
	return yamlutil.Marshal(cfg)
}

// SearchPaths returns the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, AppDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries the current directory, then the user config directory, each with
// .yaml before .yml.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
