package pipeline

import (
	"regexp"
	"strings"
)

// Fence delimiter for Markdown code blocks.
const fence = "```"

// Precompiled regex patterns for performance.
var (
	// Runs of two or more blank lines
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// PreserveExtraBlankLines keeps vertical spacing that Markdown would
// otherwise collapse: every run of n >= 3 newlines outside fenced code
// becomes a paragraph break followed by n-2 "<br>" lines.
//
// Fenced regions are copied verbatim. An opening fence without a matching
// close is ordinary text, except that a trailing remainder starting with a
// fence is also copied verbatim.
func PreserveExtraBlankLines(md string) string {
	var b strings.Builder
	b.Grow(len(md))

	rest := md
	for {
		open := strings.Index(rest, fence)
		if open < 0 {
			break
		}
		end := strings.Index(rest[open+len(fence):], fence)
		if end < 0 {
			break
		}
		end += open + 2*len(fence)

		b.WriteString(expandBlankLines(rest[:open]))
		b.WriteString(rest[open:end])
		rest = rest[end:]
	}

	if strings.HasPrefix(rest, fence) {
		b.WriteString(rest)
	} else {
		b.WriteString(expandBlankLines(rest))
	}
	return b.String()
}

// expandBlankLines rewrites newline runs in text known to be outside fences.
func expandBlankLines(text string) string {
	return multipleBlankLines.ReplaceAllStringFunc(text, func(run string) string {
		return "\n\n" + strings.Repeat("<br>\n", len(run)-2)
	})
}
