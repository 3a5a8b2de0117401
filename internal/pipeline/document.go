package pipeline

import (
	"fmt"
	"html"
)

// DefaultDocumentTitle is used when WrapDocument receives an empty title.
const DefaultDocumentTitle = "Document"

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>
`

// WrapDocument embeds an HTML fragment in a standalone HTML5 document.
// The title is escaped.
func WrapDocument(fragment, title string) string {
	if title == "" {
		title = DefaultDocumentTitle
	}
	return fmt.Sprintf(htmlTemplate, html.EscapeString(title), fragment)
}
