package rewrite

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// fence opens and closes a Markdown code block.
const fence = "```"

// Precompiled wiki -> Markdown patterns, in pipeline order.
var (
	wikiBullet      = compileLines(`^[ \t]*(\*+)\s+`)
	wikiNumber      = compileLines(`^[ \t]*(#+)\s+`)
	wikiHeader      = compileLines(`^h([0-6])\.(.*)$`)
	wikiBold        = compile(`\*(\S.*)\*`)
	wikiItalic      = compile(`_(\S.*)_`)
	wikiMonospace   = compile(`\{\{([^}]+)\}\}`)
	wikiInsert      = compile(`\+([^+]*)\+`)
	wikiSuperscript = compile(`\^([^^]*)\^`)
	wikiSubscript   = compile(`~([^~]*)~`)
	wikiStrike      = compile(`(\s+)-(\S+.*?\S)-(\s+)`)
	wikiCode        = compileLines(`\{code(:([a-z]+))?([:|]?(title|borderStyle|borderColor|borderWidth|bgColor|titleBGColor)=.+?)*\}([\s\S]*?)\n?\{code\}`)
	wikiNoformat    = compile(`\{noformat\}`)
	wikiBareLink    = compile(`\[([^|]+?)\]`)
	wikiImage       = compile(`!(.+)!`)
	wikiNamedLink   = compile(`\[(.+?)\|(.+?)\]`)
	wikiQuote       = compileLines(`^bq\.\s+`)
	wikiColor       = compileLines(`\{color:[^}]+\}([\s\S]*?)\{color\}`)
	wikiPanel       = compileLines(`\{panel:title=([^}]*)\}\n?([\s\S]*?)\n?\{panel\}`)
	wikiTableHeader = compileLines(`^[ \t]*((?:\|\|.*?)+\|\|)[ \t]*$`)
	wikiTableCell   = compile(`\|[^|]+`)
	wikiTableIndent = compileLines(`^[ \t]*\|`)
)

var wikiToMarkdown = Pipeline{
	{Name: "unordered-list", Apply: bulletsToMarkdown},
	{Name: "ordered-list", Apply: numbersToMarkdown},
	{Name: "header", Apply: headersToMarkdown},
	{Name: "bold", Apply: func(s string) string { return replace(wikiBold, s, "**$1**") }},
	{Name: "italic", Apply: func(s string) string { return replace(wikiItalic, s, "*$1*") }},
	{Name: "monospace", Apply: func(s string) string { return replace(wikiMonospace, s, "`$1`") }},
	{Name: "insert", Apply: spanToTag(wikiInsert, "+")},
	{Name: "superscript", Apply: spanToTag(wikiSuperscript, "^")},
	{Name: "subscript", Apply: spanToTag(wikiSubscript, "~")},
	{Name: "strikethrough", Apply: func(s string) string { return replace(wikiStrike, s, "$1~~$2~~$3") }},
	{Name: "code-block", Apply: func(s string) string { return replace(wikiCode, s, fence+"$2$5\n"+fence) }},
	{Name: "noformat", Apply: func(s string) string { return replace(wikiNoformat, s, fence) }},
	{Name: "unnamed-link", Apply: func(s string) string { return replace(wikiBareLink, s, "<$1>") }},
	{Name: "image", Apply: func(s string) string { return replace(wikiImage, s, "![]($1)") }},
	{Name: "named-link", Apply: func(s string) string { return replace(wikiNamedLink, s, "[$1]($2)") }},
	{Name: "blockquote", Apply: func(s string) string { return replace(wikiQuote, s, "> ") }},
	{Name: "color", Apply: func(s string) string { return replace(wikiColor, s, "$1") }},
	{Name: "panel", Apply: func(s string) string { return replace(wikiPanel, s, "\n| $1 |\n| --- |\n| $2 |") }},
	{Name: "table-header", Apply: tableHeadersToMarkdown},
	{Name: "table-indent", Apply: func(s string) string { return replace(wikiTableIndent, s, "|") }},
}

// WikiToMarkdownRules returns a copy of the wiki -> Markdown pipeline.
func WikiToMarkdownRules() Pipeline {
	return append(Pipeline(nil), wikiToMarkdown...)
}

// ToMarkdown converts wiki markup to Markdown.
func ToMarkdown(wiki string) string {
	return wikiToMarkdown.Run(wiki)
}

func bulletsToMarkdown(doc string) string {
	return replaceFunc(wikiBullet, doc, func(m regexp2.Match) string {
		depth := len(group(m, 1))
		return strings.Repeat(" ", BulletIndent(depth)) + "* "
	})
}

func numbersToMarkdown(doc string) string {
	return replaceFunc(wikiNumber, doc, func(m regexp2.Match) string {
		depth := len(group(m, 1))
		return strings.Repeat(" ", NumberIndent(depth)) + "1. "
	})
}

// headersToMarkdown keeps everything after the dot verbatim, including the
// leading space. h0 yields no hashes.
func headersToMarkdown(doc string) string {
	return replaceFunc(wikiHeader, doc, func(m regexp2.Match) string {
		level, _ := strconv.Atoi(group(m, 1))
		return strings.Repeat("#", level) + group(m, 2)
	})
}

// spanToTag returns a rule rendering a marker-delimited span as inline HTML.
func spanToTag(re *regexp2.Regexp, marker string) func(string) string {
	tag, _ := Tag(marker)
	return func(doc string) string {
		return replace(re, doc, wrapTag(tag, "$1"))
	}
}

// tableHeadersToMarkdown turns a ||a||b|| line into a Markdown header row
// and separator, preceded by a blank line.
func tableHeadersToMarkdown(doc string) string {
	return replaceFunc(wikiTableHeader, doc, func(m regexp2.Match) string {
		header := strings.ReplaceAll(group(m, 1), "||", "|")
		return "\n" + header + "\n" + replace(wikiTableCell, header, "| --- ")
	})
}
