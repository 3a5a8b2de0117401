package rewrite

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"
)

// Precompiled Markdown -> wiki patterns, in pipeline order.
var (
	mdTable     = compileLines(`^\n((?:\|.*?)+\|)[ \t]*\n((?:\|\s*?-{3,}\s*?)+\|)[ \t]*\n((?:(?:\|.*?)+\|[ \t]*\n)*)$`)
	mdCell      = compile(`[^|]+(?=\|)`)
	mdPanelRow  = compile(`^\|(.*)[ \t]*\|`)
	mdEmphasis  = compile(`([*_]+)(\S.*?)\1`)
	mdATX       = compileLines(`^([#]+)(.*?)$`)
	mdSetext    = compileLines(`^(.*?)\n([=-]+)$`)
	mdNumber    = compileLines(`^([ \t]*)\d+\.\s+`)
	mdBullet    = compileLines(`^([ \t]*)\*\s+`)
	mdInlineTag = compile(`<(` + tagAlternation() + `)>(.*?)</\1>`)
	mdStrike    = compile(`(\s+)~~(.*?)~~(\s+)`)
	mdFence     = compile(fence + `(.+\n)?([\s\S]*?)` + fence)
	mdInline    = compile("`([^`]+)`")
	mdImage     = compile(`!\[[^\]]*\]\(([^)]+)\)`)
	mdNamedLink = compile(`\[([^\]]+)\]\(([^)]+)\)`)
	mdAutolink  = compile(`<([^>]+)>`)
	mdQuote     = compileLines(`^>`)
)

var markdownToWiki = Pipeline{
	{Name: "table", Apply: tablesToWiki},
	{Name: "emphasis", Apply: emphasisToWiki},
	{Name: "atx-header", Apply: atxHeadersToWiki},
	{Name: "setext-header", Apply: setextHeadersToWiki},
	{Name: "ordered-list", Apply: numbersToWiki},
	{Name: "unordered-list", Apply: bulletsToWiki},
	{Name: "inline-tag", Apply: inlineTagsToWiki},
	{Name: "strikethrough", Apply: func(s string) string { return replace(mdStrike, s, "$1-$2-$3") }},
	{Name: "code-block", Apply: fencesToWiki},
	{Name: "inline-code", Apply: func(s string) string { return replace(mdInline, s, "{{$1}}") }},
	{Name: "image", Apply: func(s string) string { return replace(mdImage, s, "!$1!") }},
	{Name: "named-link", Apply: func(s string) string { return replace(mdNamedLink, s, "[$1|$2]") }},
	{Name: "unnamed-link", Apply: func(s string) string { return replace(mdAutolink, s, "[$1]") }},
	{Name: "blockquote", Apply: func(s string) string { return replace(mdQuote, s, "bq.") }},
}

// MarkdownToWikiRules returns a copy of the Markdown -> wiki pipeline.
func MarkdownToWikiRules() Pipeline {
	return append(Pipeline(nil), markdownToWiki...)
}

// ToJira converts Markdown to wiki markup.
func ToJira(markdown string) string {
	return markdownToWiki.Run(markdown)
}

// tablesToWiki rewrites a pipe table that follows a blank line. A table
// whose header and separator cell counts differ is left alone. A single
// column with exactly one data row becomes a titled panel.
func tablesToWiki(doc string) string {
	return replaceFunc(mdTable, doc, func(m regexp2.Match) string {
		headers := findAll(mdCell, group(m, 1))
		separators := findAll(mdCell, group(m, 2))
		if len(headers) == 0 || len(separators) == 0 || len(headers) != len(separators) {
			return m.String()
		}

		rows := group(m, 3)
		if strings.Count(rows, "\n") == 1 && len(headers) == 1 {
			body := strings.TrimSpace(replaceFirst(mdPanelRow, rows, "$1"))
			return "{panel:title=" + strings.TrimSpace(headers[0]) + "}\n" + body + "\n{panel}\n"
		}

		return "||" + strings.Join(headers, "||") + "||\n" + rows
	})
}

// emphasisToWiki maps wrapper length 1, 2 and 3 to italic, bold and
// bold-italic. Longer wrappers are kept.
func emphasisToWiki(doc string) string {
	return replaceFunc(mdEmphasis, doc, func(m regexp2.Match) string {
		wrapper, content := group(m, 1), group(m, 2)
		switch len(wrapper) {
		case 1:
			return "_" + content + "_"
		case 2:
			return "*" + content + "*"
		case 3:
			return "_*" + content + "*_"
		default:
			return wrapper + content + wrapper
		}
	})
}

func atxHeadersToWiki(doc string) string {
	return replaceFunc(mdATX, doc, func(m regexp2.Match) string {
		return "h" + strconv.Itoa(len(group(m, 1))) + "." + group(m, 2)
	})
}

func setextHeadersToWiki(doc string) string {
	return replaceFunc(mdSetext, doc, func(m regexp2.Match) string {
		level := "2"
		if strings.HasPrefix(group(m, 2), "=") {
			level = "1"
		}
		return "h" + level + ". " + group(m, 1)
	})
}

func numbersToWiki(doc string) string {
	return replaceFunc(mdNumber, doc, func(m regexp2.Match) string {
		return strings.Repeat("#", NumberDepth(len(group(m, 1)))) + " "
	})
}

func bulletsToWiki(doc string) string {
	return replaceFunc(mdBullet, doc, func(m regexp2.Match) string {
		return strings.Repeat("*", BulletDepth(len(group(m, 1)))) + " "
	})
}

func inlineTagsToWiki(doc string) string {
	return replaceFunc(mdInlineTag, doc, func(m regexp2.Match) string {
		marker, _ := Marker(group(m, 1))
		return marker + group(m, 2) + marker
	})
}

// fencesToWiki keeps only the info string of a fence as the code language.
func fencesToWiki(doc string) string {
	return replaceFunc(mdFence, doc, func(m regexp2.Match) string {
		open := "{code}"
		if matched(m, 1) {
			open = "{code:" + strings.ReplaceAll(group(m, 1), "\n", "") + "}\n"
		}
		return open + group(m, 2) + "{code}"
	})
}
