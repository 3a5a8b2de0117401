// Package rewrite implements the two text rewrite engines that translate
// between wiki markup and Markdown.
//
// Each direction is an ordered Pipeline of Rules. A Rule is a single
// whole-document pattern substitution; rules run exactly once per call, left
// to right, and their order is load-bearing:
//
//   - wiki -> Markdown strips list markers before bold/italic normalization,
//     and normalizes emphasis before strikethrough.
//   - Markdown -> wiki recognizes tables before emphasis, and images before
//     named links so that linked images survive.
//
// Patterns use the ECMAScript flavor of github.com/dlclark/regexp2 because
// several rules rely on backreferences and lookahead, which the standard
// library engine does not support.
//
// Both pipelines are total: unmatched or malformed markup passes through as
// literal text. Fenced code is not protected from list and header rules, and
// {noformat} content is not protected from emphasis rules.
package rewrite
