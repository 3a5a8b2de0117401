package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-j2m/internal/config"
)

// envPrefix prefixes every environment variable read by j2m.
const envPrefix = "J2M_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // J2M_CONFIG: config file name or path
	OutputDir      string // J2M_OUTPUT_DIR: default output directory
	HighlightStyle string // J2M_HIGHLIGHT_STYLE: chroma style
	From           string // J2M_FROM: html input dialect
	Workers        int    // J2M_WORKERS: parallel workers
}

// knownEnvVars lists valid J2M_* environment variables.
var knownEnvVars = map[string]bool{
	"J2M_CONFIG":          true,
	"J2M_OUTPUT_DIR":      true,
	"J2M_HIGHLIGHT_STYLE": true,
	"J2M_FROM":            true,
	"J2M_WORKERS":         true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed J2M_WORKERS values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:     os.Getenv("J2M_CONFIG"),
		OutputDir:      os.Getenv("J2M_OUTPUT_DIR"),
		HighlightStyle: os.Getenv("J2M_HIGHLIGHT_STYLE"),
		From:           os.Getenv("J2M_FROM"),
	}

	if workers := os.Getenv("J2M_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars prints warnings for unrecognized J2M_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero,
// giving: CLI flags > env vars > config file > defaults.
// (CLI flags are applied later via mergeFlags.)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.HighlightStyle != "" && cfg.Render.HighlightStyle == "" {
		cfg.Render.HighlightStyle = env.HighlightStyle
	}
	if env.From != "" && cfg.Render.From == "" {
		cfg.Render.From = env.From
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}
