// Package extract provides text extractors for the document formats the
// ingestion pipeline accepts.
package extract

import (
	"fmt"
	"os"

	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
)

// Ensure PlainExtractor implements the interface.
var _ driven.TextExtractor = (*PlainExtractor)(nil)

// PlainExtractor reads plain text files as-is.
type PlainExtractor struct{}

// NewPlainExtractor creates a plain text extractor.
func NewPlainExtractor() *PlainExtractor {
	return &PlainExtractor{}
}

// Supports reports whether the extension is a plain text format.
func (e *PlainExtractor) Supports(ext string) bool {
	switch ext {
	case ".txt", ".md":
		return true
	}
	return false
}

// Extract returns the file contents.
func (e *PlainExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
