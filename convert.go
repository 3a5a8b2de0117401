package j2m

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/alnah/go-j2m/internal/rewrite"
)

// ToMarkdown converts wiki markup to Markdown.
func ToMarkdown(wiki string) string {
	return rewrite.ToMarkdown(wiki)
}

// ToJira converts Markdown to wiki markup.
func ToJira(markdown string) string {
	return rewrite.ToJira(markdown)
}

// newHTMLImporter builds an HTML to Markdown converter emitting the subset
// ToJira understands: "*" bullets, "**" strong, "*" emphasis, backtick
// fences and pipe tables.
func newHTMLImporter() *converter.Converter {
	return converter.NewConverter(converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(
			commonmark.WithBulletListMarker("*"),
			commonmark.WithStrongDelimiter("**"),
			commonmark.WithEmDelimiter("*"),
			commonmark.WithCodeBlockFence("```"),
			commonmark.WithListEndComment(false),
		),
		strikethrough.NewStrikethroughPlugin(),
		table.NewTablePlugin(),
	))
}

// HTMLToJira converts an HTML document to wiki markup by way of Markdown.
func HTMLToJira(html string) (string, error) {
	md, err := newHTMLImporter().ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLImport, err)
	}

	// Tables are only recognized after a blank line and before a newline.
	wiki := ToJira("\n" + md + "\n")
	wiki = strings.TrimPrefix(wiki, "\n")
	return strings.TrimSuffix(wiki, "\n"), nil
}
