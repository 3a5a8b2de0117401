package rewrite

// Indentation widths per nesting level on the Markdown side.
const (
	bulletIndentWidth = 2
	numberIndentWidth = 3
)

// BulletIndent returns the leading spaces for a Markdown bullet at depth.
func BulletIndent(depth int) int {
	return bulletIndentWidth * max(0, depth-1)
}

// NumberIndent returns the leading spaces for a Markdown numbered item at depth.
func NumberIndent(depth int) int {
	return numberIndentWidth * max(0, depth-1)
}

// BulletDepth returns the wiki nesting depth for a Markdown bullet indented
// by spaces.
func BulletDepth(spaces int) int {
	return spaces/bulletIndentWidth + 1
}

// NumberDepth returns the wiki nesting depth for a Markdown numbered item
// indented by spaces.
func NumberDepth(spaces int) int {
	return spaces/numberIndentWidth + 1
}
