package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-j2m/internal/config"
)

func TestResolveOutputDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		flagOutput string
		cfg        *config.Config
		want       string
	}{
		{
			name:       "flag takes precedence over config",
			flagOutput: "./out/",
			cfg:        &config.Config{Output: config.OutputConfig{DefaultDir: "./default/"}},
			want:       "./out/",
		},
		{
			name: "config fallback when no flag",
			cfg:  &config.Config{Output: config.OutputConfig{DefaultDir: "./default/"}},
			want: "./default/",
		},
		{
			name: "empty when no flag and no config",
			cfg:  &config.Config{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveOutputDir(tt.flagOutput, tt.cfg); got != tt.want {
				t.Errorf("resolveOutputDir() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tomd, _ := lookupCommand("tomd")
	html, _ := lookupCommand("html")

	tests := []struct {
		name         string
		cmd          *command
		inputPath    string
		outputDir    string
		baseInputDir string
		want         string
	}{
		{"next to input", tomd, filepath.Join("docs", "a.jira"), "", "", filepath.Join("docs", "a.md")},
		{"into output dir", tomd, filepath.Join("docs", "a.jira"), "out", "", filepath.Join("out", "a.md")},
		{"explicit output file", html, "a.md", "page.html", "", "page.html"},
		{"output file extension is case-insensitive", html, "a.md", "PAGE.HTML", "", "PAGE.HTML"},
		{
			"preserves relative dirs",
			tomd,
			filepath.Join("docs", "sub", "a.wiki"),
			"out",
			"docs",
			filepath.Join("out", "sub", "a.md"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveOutputPath(tt.inputPath, tt.outputDir, tt.baseInputDir, tt.cmd)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	html, _ := lookupCommand("html")
	tojira, _ := lookupCommand("tojira")

	t.Run("walks directory by extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a.jira", "h1. a")
		writeFile(t, dir, "b.md", "# b")
		writeFile(t, dir, "sub/c.txt", "c")
		writeFile(t, dir, "sub/d.html", "<p>d</p>")
		writeFile(t, dir, "e.png", "")

		files, err := discoverFiles(dir, "", html, DialectUnknown)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := make(map[string]Dialect)
		for _, f := range files {
			rel, _ := filepath.Rel(dir, f.InputPath)
			got[filepath.ToSlash(rel)] = f.Dialect
		}
		want := map[string]Dialect{"a.jira": DialectWiki, "b.md": DialectMarkdown}
		if len(got) != len(want) {
			t.Fatalf("discovered %v, want %v", got, want)
		}
		for k, v := range want {
			if got[k] != v {
				t.Errorf("%s dialect = %s, want %s", k, got[k], v)
			}
		}
	})

	t.Run("txt file named explicitly", func(t *testing.T) {
		t.Parallel()

		tomd, _ := lookupCommand("tomd")
		path := writeFile(t, t.TempDir(), "notes.txt", "h1. notes")

		files, err := discoverFiles(path, "", tomd, DialectUnknown)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 1 || files[0].Dialect != DialectWiki {
			t.Errorf("discoverFiles(%q) = %+v, want one wiki file", path, files)
		}
	})

	t.Run("forced dialect applies to walked files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a.jira", "")
		writeFile(t, dir, "b.md", "")

		files, err := discoverFiles(dir, "", html, DialectMarkdown)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 2 {
			t.Fatalf("discovered %d files, want 2", len(files))
		}
		for _, f := range files {
			if f.Dialect != DialectMarkdown {
				t.Errorf("%s dialect = %s, want markdown", f.InputPath, f.Dialect)
			}
		}
	})

	t.Run("single file with unsupported extension", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "page.jira", "")

		_, err := discoverFiles(path, "", tojira, DialectUnknown)
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("error = %v, want ErrInvalidExtension", err)
		}
	})

	t.Run("forced single file may not overwrite itself", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "page.html", "")

		_, err := discoverFiles(path, "", html, DialectWiki)
		if !errors.Is(err, ErrOutputIsInput) {
			t.Errorf("error = %v, want ErrOutputIsInput", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		_, err := discoverFiles(filepath.Join(t.TempDir(), "missing"), "", html, DialectUnknown)
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want os.ErrNotExist", err)
		}
	})
}

func TestDiscoverAll(t *testing.T) {
	t.Parallel()

	tomd, _ := lookupCommand("tomd")

	t.Run("collects every path", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := writeFile(t, dir, "a.jira", "")
		b := writeFile(t, dir, "b.wiki", "")

		files, err := discoverAll([]string{b, a}, "", tomd, DialectUnknown)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var inputs []string
		for _, f := range files {
			inputs = append(inputs, f.InputPath)
		}
		if len(inputs) != 2 || inputs[0] != b || inputs[1] != a {
			t.Errorf("inputs = %v, want argument order [%s %s]", inputs, b, a)
		}
	})

	t.Run("output file with several inputs", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a.jira", "")
		writeFile(t, dir, "b.jira", "")

		_, err := discoverAll([]string{dir}, "single.md", tomd, DialectUnknown)
		if !errors.Is(err, ErrOutputNotDirectory) {
			t.Errorf("error = %v, want ErrOutputNotDirectory", err)
		}
	})

	t.Run("two sources with one output name", func(t *testing.T) {
		t.Parallel()

		tojira, _ := lookupCommand("tojira")
		dir := t.TempDir()
		writeFile(t, dir, "doc.md", "# From MD\n")
		writeFile(t, dir, "doc.html", "<h1>From HTML</h1>")

		_, err := discoverAll([]string{dir}, "", tojira, DialectUnknown)
		if !errors.Is(err, ErrOutputCollision) {
			t.Errorf("error = %v, want ErrOutputCollision", err)
		}
	})

	t.Run("same file given twice", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		a := writeFile(t, dir, "a.jira", "")

		_, err := discoverAll([]string{a, a}, "", tomd, DialectUnknown)
		if !errors.Is(err, ErrOutputCollision) {
			t.Errorf("error = %v, want ErrOutputCollision", err)
		}
	})

	t.Run("same base name in different directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeFile(t, dir, "a.jira", "")
		writeFile(t, dir, filepath.Join("sub", "a.jira"), "")

		files, err := discoverAll([]string{dir}, "", tomd, DialectUnknown)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 2 {
			t.Errorf("got %d files, want 2", len(files))
		}
	})
}

func TestHasExtension(t *testing.T) {
	t.Parallel()

	exts := []string{".md", ".markdown"}
	for path, want := range map[string]bool{"a.md": true, "A.MD": true, "a.markdown": true, "a.mdx": false, "md": false} {
		if got := hasExtension(path, exts); got != want {
			t.Errorf("hasExtension(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n       int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{1, false},
		{config.MaxWorkers, false},
		{config.MaxWorkers + 1, true},
	}

	for _, tt := range tests {
		err := validateWorkers(tt.n)
		if tt.wantErr && !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) = %v, want ErrInvalidWorkerCount", tt.n, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("validateWorkers(%d) unexpected error: %v", tt.n, err)
		}
	}
}
