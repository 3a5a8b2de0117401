package j2m

import (
	"errors"

	"github.com/alnah/go-j2m/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrHTMLConversion        = pipeline.ErrHTMLConversion
	ErrUnknownHighlightStyle = pipeline.ErrUnknownHighlightStyle
	ErrHTMLImport            = errors.New("HTML import failed")
)
