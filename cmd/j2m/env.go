package main

import (
	"io"
	"os"

	"github.com/alnah/go-j2m/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O and the base configuration.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Config // Base config when --config is not given
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: config.DefaultConfig(),
	}
}
