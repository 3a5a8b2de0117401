package j2m

import (
	"context"
	"fmt"

	"github.com/alnah/go-j2m/internal/pipeline"
	"github.com/alnah/go-j2m/internal/rewrite"
)

// Compile-time interface implementation check.
var _ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)

// Renderer renders Markdown and wiki markup to HTML fragments.
// Create with NewRenderer. A Renderer is immutable and safe for concurrent use.
type Renderer struct {
	opts          Options
	htmlConverter pipeline.HTMLConverter
}

// NewRenderer creates a Renderer starting from DefaultOptions.
// Returns ErrUnknownHighlightStyle if the highlight style does not exist.
func NewRenderer(opts ...Option) (*Renderer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newRenderer(o)
}

func newRenderer(o Options) (*Renderer, error) {
	conv, err := pipeline.NewGoldmarkConverter(pipeline.ConverterOptions{
		HardWraps:      o.LineBreaks,
		GFM:            o.GFM,
		EscapeHTML:     o.EscapeHTML,
		Typographer:    o.SmartTypography,
		HighlightStyle: o.HighlightStyle,
	})
	if err != nil {
		return nil, err
	}
	return &Renderer{opts: o, htmlConverter: conv}, nil
}

// Options returns a copy of the renderer's options.
func (r *Renderer) Options() Options {
	return r.opts
}

// MarkdownToHTML renders Markdown to an HTML fragment.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) MarkdownToHTML(ctx context.Context, markdown string) (html string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	return r.htmlConverter.ToHTML(ctx, markdown)
}

// WikiToHTML converts wiki markup to Markdown and renders it to an HTML
// fragment. Extra blank lines are preserved when the renderer enables it,
// unless an override says otherwise for this call.
func (r *Renderer) WikiToHTML(ctx context.Context, wiki string, overrides ...RenderOverride) (html string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	call := renderCall{preserveBlankLines: r.opts.PreserveExtraBlankLines}
	for _, o := range overrides {
		o(&call)
	}

	md := rewrite.ToMarkdown(wiki)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if call.preserveBlankLines {
		md = pipeline.PreserveExtraBlankLines(md)
	}
	return r.htmlConverter.ToHTML(ctx, md)
}
