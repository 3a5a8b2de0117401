package main

// Notes:
// - documentConverter: we test each supported source/target pair and the
//   unsupported ones; rendering details are covered by the library tests.
// - mergeFlags: only explicitly set flags override config values.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-j2m/internal/config"
)

// ---------------------------------------------------------------------------
// Test Infrastructure
// ---------------------------------------------------------------------------

func mustConverter(t *testing.T, name string, cfg *config.Config) *documentConverter {
	t.Helper()

	cmd, ok := lookupCommand(name)
	if !ok {
		t.Fatalf("unknown command %q", name)
	}
	conv, err := newDocumentConverter(cmd, cfg)
	if err != nil {
		t.Fatalf("newDocumentConverter(%s) unexpected error: %v", name, err)
	}
	return conv
}

// ---------------------------------------------------------------------------
// TestDocumentConverter_Convert - Source/target pairs
// ---------------------------------------------------------------------------

func TestDocumentConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		command string
		doc     Document
		want    string
		wantErr error
	}{
		{
			name:    "wiki to markdown",
			command: "tomd",
			doc:     Document{Content: "* one\n** two\n", Dialect: DialectWiki},
			want:    "* one\n  * two\n",
		},
		{
			name:    "markdown to wiki",
			command: "tojira",
			doc:     Document{Content: "# Title\n**bold**\n", Dialect: DialectMarkdown},
			want:    "h1. Title\n*bold*\n",
		},
		{
			name:    "html to wiki",
			command: "tojira",
			doc:     Document{Content: "<h1>Title</h1>", Dialect: DialectHTML},
			want:    "h1. Title",
		},
		{
			name:    "wiki to html",
			command: "html",
			doc:     Document{Content: "h2. Sub\n", Dialect: DialectWiki},
			want:    "<h2>Sub</h2>\n",
		},
		{
			name:    "markdown to html",
			command: "html",
			doc:     Document{Content: "## Sub\n", Dialect: DialectMarkdown},
			want:    "<h2>Sub</h2>\n",
		},
		{
			name:    "markdown rejected by tomd",
			command: "tomd",
			doc:     Document{Content: "# x", Dialect: DialectMarkdown},
			wantErr: ErrUnsupportedConversion,
		},
		{
			name:    "html rejected by html",
			command: "html",
			doc:     Document{Content: "<p>x</p>", Dialect: DialectHTML},
			wantErr: ErrUnsupportedConversion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			conv := mustConverter(t, tt.command, config.DefaultConfig())
			got, err := conv.Convert(context.Background(), tt.doc)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Convert() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Convert() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDocumentConverter_Standalone(t *testing.T) {
	t.Parallel()

	t.Run("title from document", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.Standalone = true
		conv := mustConverter(t, "html", cfg)

		got, err := conv.Convert(context.Background(), Document{Content: "h1. x", Dialect: DialectWiki, Title: "notes"})
		if err != nil {
			t.Fatalf("Convert() unexpected error: %v", err)
		}
		if !strings.HasPrefix(got, "<!DOCTYPE html>") || !strings.Contains(got, "<title>notes</title>") {
			t.Errorf("Convert() = %q, want standalone document titled notes", got)
		}
	})

	t.Run("config title wins", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Output.Standalone = true
		cfg.Output.Title = "Handbook"
		conv := mustConverter(t, "html", cfg)

		got, err := conv.Convert(context.Background(), Document{Content: "h1. x", Dialect: DialectWiki, Title: "notes"})
		if err != nil {
			t.Fatalf("Convert() unexpected error: %v", err)
		}
		if !strings.Contains(got, "<title>Handbook</title>") {
			t.Errorf("Convert() = %q, want title Handbook", got)
		}
	})
}

func TestDocumentConverter_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	conv := mustConverter(t, "tomd", config.DefaultConfig())
	if _, err := conv.Convert(ctx, Document{Content: "h1. x", Dialect: DialectWiki}); !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - CLI flags override config
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	t.Run("unset flags keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Render.EscapeHTML = true
		cfg.Workers = 4

		mergeFlags(&convertFlags{changed: map[string]bool{}}, cfg)

		if !cfg.Render.EscapeHTML || cfg.Workers != 4 {
			t.Errorf("config changed: %+v", cfg)
		}
	})

	t.Run("set flags override", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		flags := &convertFlags{
			workers:    2,
			standalone: true,
			title:      "T",
			render: renderFlags{
				lineBreaks:         false,
				gfm:                false,
				escapeHTML:         true,
				smartTypography:    false,
				preserveBlankLines: true,
				highlightStyle:     "monokai",
			},
			changed: map[string]bool{
				"standalone": true, "line-breaks": true, "gfm": true, "escape-html": true,
				"smart": true, "preserve-blank-lines": true, "highlight": true,
			},
		}

		mergeFlags(flags, cfg)

		want := config.RenderConfig{
			EscapeHTML:              true,
			PreserveExtraBlankLines: true,
			HighlightStyle:          "monokai",
		}
		if cfg.Render != want {
			t.Errorf("Render = %+v, want %+v", cfg.Render, want)
		}
		if cfg.Workers != 2 || !cfg.Output.Standalone || cfg.Output.Title != "T" {
			t.Errorf("config = %+v", cfg)
		}
	})
}

// ---------------------------------------------------------------------------
// TestResolveForcedDialect - --from and render.from
// ---------------------------------------------------------------------------

func TestResolveForcedDialect(t *testing.T) {
	t.Parallel()

	html, _ := lookupCommand("html")
	tojira, _ := lookupCommand("tojira")

	tests := []struct {
		name       string
		cmd        *command
		flagFrom   string
		configFrom string
		want       Dialect
		wantErr    bool
	}{
		{"auto", html, "", "", DialectUnknown, false},
		{"config applies to html", html, "", "markdown", DialectMarkdown, false},
		{"flag wins over config", html, "wiki", "markdown", DialectWiki, false},
		{"config ignored by tojira", tojira, "", "wiki", DialectUnknown, false},
		{"flag on tojira", tojira, "html", "", DialectHTML, false},
		{"unsupported pair", tojira, "wiki", "", DialectUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.DefaultConfig()
			cfg.Render.From = tt.configFrom

			got, err := resolveForcedDialect(tt.cmd, tt.flagFrom, cfg)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedDialect) {
					t.Errorf("error = %v, want ErrUnsupportedDialect", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("resolveForcedDialect() = %s, want %s", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - base config fallback
// ---------------------------------------------------------------------------

func TestLoadConfig_BaseIsCopied(t *testing.T) {
	t.Parallel()

	env, _, _ := newTestEnv("")
	env.Config.Workers = 5

	cfg, err := loadConfig("", env)
	if err != nil {
		t.Fatalf("loadConfig() unexpected error: %v", err)
	}
	cfg.Workers = 1

	if env.Config.Workers != 5 {
		t.Error("loadConfig() should return a copy of the base config")
	}
}

func TestLoadConfig_NilBase(t *testing.T) {
	t.Parallel()

	env, _, _ := newTestEnv("")
	env.Config = nil

	cfg, err := loadConfig("", env)
	if err != nil {
		t.Fatalf("loadConfig() unexpected error: %v", err)
	}
	if *cfg != *config.DefaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults", cfg)
	}
}

func TestDocumentTitle(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"notes.jira":          "notes",
		"dir/release.v2.md":   "release.v2",
		"README":              "README",
		"/abs/path/page.wiki": "page",
	}
	for in, want := range tests {
		if got := documentTitle(in); got != want {
			t.Errorf("documentTitle(%q) = %q, want %q", in, got, want)
		}
	}
}
