// Package j2m converts text between wiki markup and Markdown, and renders
// either dialect to HTML.
//
// # Quick Start
//
// The conversions are pure functions and never fail:
//
//	md := j2m.ToMarkdown("h1. Title\n\n*bold* and _italic_")
//	// "# Title\n\n**bold** and *italic*"
//
//	wiki := j2m.ToJira("## Section\n\n**bold** and *italic*")
//	// "h2. Section\n\n*bold* and _italic_"
//
// Each direction is an ordered pipeline of whole-document pattern
// substitutions. Unrecognized or malformed markup passes through as literal
// text. Conversion is not guaranteed to round-trip: color markup, code block
// attributes and {noformat} blocks are lost on the way to Markdown.
//
// # Rendering HTML
//
// A Renderer turns Markdown, or wiki markup by way of ToMarkdown, into an
// HTML fragment using Goldmark:
//
//	r, err := j2m.NewRenderer(
//	    j2m.WithEscapeHTML(true),
//	    j2m.WithHighlightStyle("monokai"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html, err := r.WikiToHTML(ctx, "h1. Title", j2m.WithPreserveBlankLines(true))
//
// Defaults: hard line breaks, GitHub-flavored Markdown and smart typography
// are on; HTML escaping, blank-line preservation and highlighting are off.
//
// The package-level MarkdownToHTML and WikiToHTML use a shared renderer that
// is created with defaults on first use. Configure merges options into it.
// The shared renderer is safe for concurrent use; Configure waits for
// in-flight renders to finish.
//
// # Importing HTML
//
// HTMLToJira converts an HTML document to Markdown with html-to-markdown and
// then to wiki markup.
package j2m
