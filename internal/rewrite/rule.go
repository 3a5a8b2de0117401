package rewrite

import (
	"strings"

	"github.com/dlclark/regexp2"
)

// Rule is a named whole-document substitution.
type Rule struct {
	Name  string
	Apply func(doc string) string
}

// Pipeline is an ordered sequence of rules.
type Pipeline []Rule

// Run applies every rule in order and returns the rewritten document.
func (p Pipeline) Run(doc string) string {
	for _, r := range p {
		doc = r.Apply(doc)
	}
	return doc
}

// Names returns the rule names in execution order.
func (p Pipeline) Names() []string {
	names := make([]string, len(p))
	for i, r := range p {
		names[i] = r.Name
	}
	return names
}

// JavaScript character sets that regexp2 narrows to ASCII.
const (
	jsSpace   = `\t\n\v\f\r \u00a0\u1680\u2000-\u200a\u2028\u2029\u202f\u205f\u3000\ufeff`
	jsLineEnd = `\n\r\u2028\u2029`
)

// compile builds a pattern with JavaScript-compatible semantics.
func compile(expr string) *regexp2.Regexp {
	return regexp2.MustCompile(jsCompatible(expr, false), regexp2.ECMAScript)
}

// compileLines is compile with ^ and $ matching at line boundaries.
func compileLines(expr string) *regexp2.Regexp {
	return regexp2.MustCompile(jsCompatible(expr, true), regexp2.ECMAScript)
}

// jsCompatible rewrites expr so that regexp2 matches what a JavaScript
// engine would: \s and \S use the Unicode whitespace set, . stops at every
// line terminator, and in multiline mode ^ and $ also split on \r, U+2028
// and U+2029. Outside multiline mode $ only matches at the end of input.
// Inside a character class only \s is widened; [\s\S] still matches
// everything.
func jsCompatible(expr string, multiline bool) string {
	var b strings.Builder
	inClass := false

	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == '\\' && i+1 < len(expr):
			i++
			switch next := expr[i]; {
			case next == 's' && inClass:
				b.WriteString(jsSpace)
			case next == 's':
				b.WriteString("[" + jsSpace + "]")
			case next == 'S' && !inClass:
				b.WriteString("[^" + jsSpace + "]")
			default:
				b.WriteByte(c)
				b.WriteByte(next)
			}
		case inClass:
			if c == ']' {
				inClass = false
			}
			b.WriteByte(c)
		case c == '[':
			inClass = true
			b.WriteByte(c)
			if i+1 < len(expr) && expr[i+1] == '^' {
				b.WriteByte('^')
				i++
			}
		case c == '.':
			b.WriteString("[^" + jsLineEnd + "]")
		case c == '^' && multiline:
			b.WriteString("(?<=^|[" + jsLineEnd + "])")
		case c == '$' && multiline:
			b.WriteString("(?=[" + jsLineEnd + "]|(?![\\s\\S]))")
		case c == '$':
			b.WriteString("(?![\\s\\S])")
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// replace substitutes every match using $N group references.
// The engine runs without a match timeout, so an error cannot occur in
// practice; the document is returned unchanged if one does.
func replace(re *regexp2.Regexp, doc, replacement string) string {
	out, err := re.Replace(doc, replacement, -1, -1)
	if err != nil {
		return doc
	}
	return out
}

// replaceFirst substitutes only the leftmost match.
func replaceFirst(re *regexp2.Regexp, doc, replacement string) string {
	out, err := re.Replace(doc, replacement, -1, 1)
	if err != nil {
		return doc
	}
	return out
}

// replaceFunc substitutes every match with the evaluator's result.
func replaceFunc(re *regexp2.Regexp, doc string, eval regexp2.MatchEvaluator) string {
	out, err := re.ReplaceFunc(doc, eval, -1, -1)
	if err != nil {
		return doc
	}
	return out
}

// findAll returns the text of every non-overlapping match.
func findAll(re *regexp2.Regexp, s string) []string {
	var out []string
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil {
		out = append(out, m.String())
		m, err = re.FindNextMatch(m)
	}
	return out
}

// group returns the text captured by group n, or "" when it did not participate.
func group(m regexp2.Match, n int) string {
	g := m.GroupByNumber(n)
	if g == nil {
		return ""
	}
	return g.String()
}

// matched reports whether group n participated in the match.
func matched(m regexp2.Match, n int) bool {
	g := m.GroupByNumber(n)
	return g != nil && len(g.Captures) > 0
}
