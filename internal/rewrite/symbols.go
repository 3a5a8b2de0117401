package rewrite

import "strings"

// symbol pairs an inline HTML tag with its wiki marker.
type symbol struct {
	tag    string
	marker string
}

// symbols is shared by both directions.
var symbols = []symbol{
	{tag: "del", marker: "-"},
	{tag: "ins", marker: "+"},
	{tag: "sup", marker: "^"},
	{tag: "sub", marker: "~"},
}

// Marker returns the wiki marker for tag and whether the tag is known.
func Marker(tag string) (string, bool) {
	for _, s := range symbols {
		if s.tag == tag {
			return s.marker, true
		}
	}
	return "", false
}

// Tag returns the HTML tag for a wiki marker and whether the marker is known.
func Tag(marker string) (string, bool) {
	for _, s := range symbols {
		if s.marker == marker {
			return s.tag, true
		}
	}
	return "", false
}

// tagAlternation returns "del|ins|sup|sub".
func tagAlternation() string {
	tags := make([]string, len(symbols))
	for i, s := range symbols {
		tags[i] = s.tag
	}
	return strings.Join(tags, "|")
}

// wrapTag renders an inline span as <tag>content</tag>.
func wrapTag(tag, content string) string {
	return "<" + tag + ">" + content + "</" + tag + ">"
}
