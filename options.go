package j2m

// Options configures HTML rendering.
type Options struct {
	LineBreaks              bool   // single newlines render as <br>
	GFM                     bool   // GitHub-flavored Markdown extensions
	EscapeHTML              bool   // raw HTML renders as text instead of markup
	SmartTypography         bool   // curly quotes, dashes, ellipses
	PreserveExtraBlankLines bool   // keep extra blank lines in wiki input as <br>
	HighlightStyle          string // chroma style for fenced code, "" disables
}

// DefaultOptions returns the options a Renderer starts from.
func DefaultOptions() Options {
	return Options{
		LineBreaks:      true,
		GFM:             true,
		SmartTypography: true,
	}
}

// Option configures a Renderer.
type Option func(*Options)

// WithLineBreaks renders single newlines as hard line breaks.
func WithLineBreaks(on bool) Option {
	return func(o *Options) {
		o.LineBreaks = on
	}
}

// WithGFM enables tables, strikethrough, autolinks and task lists.
func WithGFM(on bool) Option {
	return func(o *Options) {
		o.GFM = on
	}
}

// WithEscapeHTML renders raw HTML as escaped text. Inline tags produced by
// ToMarkdown (<ins>, <sup>, <sub>, <br>) then appear literally.
func WithEscapeHTML(on bool) Option {
	return func(o *Options) {
		o.EscapeHTML = on
	}
}

// WithSmartTypography converts straight quotes and dashes to typographic ones.
func WithSmartTypography(on bool) Option {
	return func(o *Options) {
		o.SmartTypography = on
	}
}

// WithPreserveExtraBlankLines keeps runs of blank lines in wiki input when
// rendering it to HTML.
func WithPreserveExtraBlankLines(on bool) Option {
	return func(o *Options) {
		o.PreserveExtraBlankLines = on
	}
}

// WithHighlightStyle highlights fenced code with the named chroma style.
// An empty name disables highlighting.
func WithHighlightStyle(name string) Option {
	return func(o *Options) {
		o.HighlightStyle = name
	}
}

// WithOptions replaces every option at once.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

// RenderOverride adjusts a single WikiToHTML call without changing the
// Renderer.
type RenderOverride func(*renderCall)

// renderCall holds per-call settings.
type renderCall struct {
	preserveBlankLines bool
}

// WithPreserveBlankLines overrides PreserveExtraBlankLines for one call.
func WithPreserveBlankLines(on bool) RenderOverride {
	return func(c *renderCall) {
		c.preserveBlankLines = on
	}
}
