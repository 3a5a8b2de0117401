// Package pipeline implements the HTML rendering stages shared by the
// Markdown and wiki renderers:
//   - Blank-line preservation outside fenced code
//   - Markdown to HTML conversion via Goldmark
//   - Raw HTML escaping when inline HTML is disallowed
//   - Wrapping a fragment into a standalone HTML5 document
//
// Dialect translation lives in internal/rewrite. This package only sees
// Markdown.
package pipeline
