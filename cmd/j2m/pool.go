package main

import (
	"runtime"

	"github.com/alnah/go-j2m/internal/config"
)

// resolvePoolSize determines the number of conversion workers.
// Priority: explicit value > GOMAXPROCS-based calculation.
// Conversions are CPU-bound regex and rendering work, so the auto size
// follows GOMAXPROCS (adjusted by automaxprocs for containers).
func resolvePoolSize(workers int) int {
	if workers > 0 {
		return min(workers, config.MaxWorkers)
	}

	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return min(n, config.MaxWorkers)
}
