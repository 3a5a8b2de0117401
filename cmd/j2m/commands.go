package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-j2m/internal/config"
)

// Dialect identifies the markup language of a document.
type Dialect int

// Known dialects. DialectUnknown means "choose by file extension".
const (
	DialectUnknown Dialect = iota
	DialectWiki
	DialectMarkdown
	DialectHTML
)

// String returns the name accepted by --from.
func (d Dialect) String() string {
	switch d {
	case DialectWiki:
		return "wiki"
	case DialectMarkdown:
		return "markdown"
	case DialectHTML:
		return "html"
	default:
		return "auto"
	}
}

// File extensions recognized per dialect. The first one is used for output.
var dialectExtensions = map[Dialect][]string{
	DialectWiki:     {".jira", ".wiki", ".confluence", ".txt"},
	DialectMarkdown: {".md", ".markdown"},
	DialectHTML:     {".html", ".htm"},
}

// explicitOnly lists extensions converted when named on the command line but
// skipped by directory walks, where they are usually READMEs and licenses.
var explicitOnly = map[string]bool{".txt": true}

// dialectForExtension maps a file extension to its dialect (case-insensitive).
func dialectForExtension(ext string) Dialect {
	ext = strings.ToLower(ext)
	for _, d := range []Dialect{DialectWiki, DialectMarkdown, DialectHTML} {
		for _, e := range dialectExtensions[d] {
			if e == ext {
				return d
			}
		}
	}
	return DialectUnknown
}

// parseDialect parses a --from value. Empty means auto.
func parseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case config.DialectAuto, "auto":
		return DialectUnknown, nil
	case config.DialectWiki, "jira":
		return DialectWiki, nil
	case config.DialectMarkdown, "md":
		return DialectMarkdown, nil
	case "html":
		return DialectHTML, nil
	default:
		return DialectUnknown, fmt.Errorf("%w: %q", ErrUnsupportedDialect, s)
	}
}

// command describes one conversion subcommand.
type command struct {
	name    string
	summary string
	sources []Dialect // accepted inputs; the first is the stdin default
	target  Dialect
}

var commands = []*command{
	{
		name:    "tomd",
		summary: "Convert wiki markup to Markdown",
		sources: []Dialect{DialectWiki},
		target:  DialectMarkdown,
	},
	{
		name:    "tojira",
		summary: "Convert Markdown or HTML to wiki markup",
		sources: []Dialect{DialectMarkdown, DialectHTML},
		target:  DialectWiki,
	},
	{
		name:    "html",
		summary: "Render wiki markup or Markdown as HTML",
		sources: []Dialect{DialectWiki, DialectMarkdown},
		target:  DialectHTML,
	},
}

// lookupCommand finds a conversion command by name.
func lookupCommand(name string) (*command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return nil, false
}

// accepts reports whether the command converts documents of dialect d.
func (c *command) accepts(d Dialect) bool {
	for _, s := range c.sources {
		if s == d {
			return true
		}
	}
	return false
}

// forceable reports whether --from is meaningful for the command.
func (c *command) forceable() bool {
	return len(c.sources) > 1
}

// extensions lists every input extension the command picks up.
func (c *command) extensions() []string {
	var exts []string
	for _, d := range c.sources {
		exts = append(exts, dialectExtensions[d]...)
	}
	return exts
}

// walkExtensions lists the extensions picked up inside directories.
func (c *command) walkExtensions() []string {
	var exts []string
	for _, e := range c.extensions() {
		if !explicitOnly[e] {
			exts = append(exts, e)
		}
	}
	return exts
}

// outputExtension is the extension given to converted files.
func (c *command) outputExtension() string {
	return dialectExtensions[c.target][0]
}

// sourceFor returns the dialect to read path as, honoring a forced dialect.
// The boolean is false when the file is not convertible by this command.
func (c *command) sourceFor(path string, forced Dialect) (Dialect, bool) {
	if forced != DialectUnknown {
		return forced, true
	}
	d := dialectForExtension(filepath.Ext(path))
	return d, c.accepts(d)
}
