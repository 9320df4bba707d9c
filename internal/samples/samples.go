// Package samples pulls example inputs out of puzzle descriptions.
package samples

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Extractor returns the example blocks of a description in document order.
type Extractor interface {
	Extract(r io.Reader) ([]string, error)
}

// ForFile returns the extractor for a description filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported description extension: %s", ext)
	}
}
