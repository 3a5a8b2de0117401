package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-j2m/internal/config"
	"github.com/alnah/go-j2m/internal/fileutil"
	"github.com/alnah/go-j2m/internal/hints"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("unsupported file extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrOutputNotDirectory = errors.New("output must be a directory when converting several files")
	ErrOutputIsInput      = errors.New("output would overwrite input")
	ErrOutputCollision    = errors.New("several inputs would write the same output")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Dialect    Dialect
}

// discoverAll discovers files for every input path, in argument order.
func discoverAll(paths []string, outputDir string, cmd *command, forced Dialect) ([]FileToConvert, error) {
	var files []FileToConvert
	for _, p := range paths {
		found, err := discoverFiles(p, outputDir, cmd, forced)
		if err != nil {
			return nil, fmt.Errorf("discovering files: %w", err)
		}
		files = append(files, found...)
	}

	if len(files) > 1 && isOutputFile(outputDir, cmd) {
		return nil, fmt.Errorf("%w: %s", ErrOutputNotDirectory, outputDir)
	}

	if err := checkOutputCollisions(files); err != nil {
		return nil, err
	}

	return files, nil
}

// checkOutputCollisions rejects batches where two inputs map to one output,
// such as doc.md and doc.html under tojira.
func checkOutputCollisions(files []FileToConvert) error {
	seen := make(map[string]string, len(files))
	for _, f := range files {
		out := filepath.Clean(f.OutputPath)
		if prev, ok := seen[out]; ok {
			return fmt.Errorf("%w: %s and %s both map to %s", ErrOutputCollision, prev, f.InputPath, f.OutputPath)
		}
		seen[out] = f.InputPath
	}
	return nil
}

// discoverFiles finds all files under inputPath that cmd can convert.
// A single file is validated against the command's extensions unless a
// dialect is forced; directory walks silently skip other files, including
// the explicit-only ones.
func discoverFiles(inputPath, outputDir string, cmd *command, forced Dialect) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		dialect, ok := cmd.sourceFor(inputPath, forced)
		if !ok {
			return nil, fmt.Errorf("%w: %q for %s%s", ErrInvalidExtension, filepath.Ext(inputPath), cmd.name,
				hints.ForUnsupportedInput(cmd.extensions(), cmd.forceable()))
		}
		outPath, err := resolveOutputPath(inputPath, outputDir, "", cmd)
		if err != nil {
			return nil, err
		}
		if filepath.Clean(outPath) == filepath.Clean(inputPath) {
			return nil, fmt.Errorf("%w: %s", ErrOutputIsInput, inputPath)
		}
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath, Dialect: dialect}}, nil
	}

	extensions := cmd.walkExtensions()
	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !hasExtension(path, extensions) {
			return nil
		}
		dialect, ok := cmd.sourceFor(path, forced)
		if !ok {
			return nil
		}
		outPath, err := resolveOutputPath(path, outputDir, inputPath, cmd)
		if err != nil {
			return err
		}
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath, Dialect: dialect})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the output path for an input file.
// Relative directories below baseInputDir are preserved under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string, cmd *command) (string, error) {
	ext := cmd.outputExtension()

	if outputDir == "" {
		return fileutil.ReplaceExtension(inputPath, ext)
	}

	if isOutputFile(outputDir, cmd) {
		return outputDir, nil
	}

	base, err := fileutil.ReplaceExtension(filepath.Base(inputPath), ext)
	if err != nil {
		return "", err
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base), nil
		}
	}

	return filepath.Join(outputDir, base), nil
}

// resolveOutputDir returns the output location: flag first, then config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// isOutputFile reports whether output names a file rather than a directory.
func isOutputFile(output string, cmd *command) bool {
	return output != "" && strings.EqualFold(filepath.Ext(output), cmd.outputExtension())
}

// hasExtension reports whether path ends in one of extensions (case-insensitive).
func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
