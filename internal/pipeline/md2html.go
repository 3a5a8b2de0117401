package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2/styles"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// Sentinel errors for HTML rendering.
var (
	ErrHTMLConversion        = errors.New("HTML conversion failed")
	ErrUnknownHighlightStyle = errors.New("unknown highlight style")
)

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// ConverterOptions selects the Markdown dialect and HTML output features.
type ConverterOptions struct {
	HardWraps      bool   // single newlines render as <br>
	GFM            bool   // tables, strikethrough, autolinks, task lists
	EscapeHTML     bool   // inline and block HTML render as text
	Typographer    bool   // smart quotes, dashes and ellipses
	HighlightStyle string // chroma style for fenced code, "" disables
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
// A converter is safe for concurrent use.
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter configured by opts.
// Returns ErrUnknownHighlightStyle if opts.HighlightStyle names no chroma style.
func NewGoldmarkConverter(opts ConverterOptions) (*GoldmarkConverter, error) {
	var extensions []goldmark.Extender
	if opts.GFM {
		extensions = append(extensions, extension.GFM)
	}
	if opts.Typographer {
		extensions = append(extensions, extension.Typographer)
	}
	if opts.HighlightStyle != "" {
		if !HighlightStyleExists(opts.HighlightStyle) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownHighlightStyle, opts.HighlightStyle)
		}
		extensions = append(extensions, highlighting.NewHighlighting(
			highlighting.WithStyle(opts.HighlightStyle),
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(false), // inline styles so fragments stay self-contained
			),
		))
	}

	var rendererOpts []renderer.Option
	if opts.HardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}
	if opts.EscapeHTML {
		rendererOpts = append(rendererOpts, renderer.WithNodeRenderers(
			util.Prioritized(&rawHTMLEscaper{}, 100),
		))
	} else {
		rendererOpts = append(rendererOpts, html.WithUnsafe())
	}

	md := goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithRendererOptions(rendererOpts...),
	)
	return &GoldmarkConverter{md: md}, nil
}

// HighlightStyleExists reports whether chroma knows a style called name.
func HighlightStyleExists(name string) bool {
	return styles.Get(name) != styles.Fallback || name == styles.Fallback.Name
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}
