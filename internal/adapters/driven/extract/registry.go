package extract

import (
	"path/filepath"
	"strings"

	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
)

// Registry selects the extractor for a file by its extension.
type Registry struct {
	extractors []driven.TextExtractor
}

// NewRegistry creates a registry over the given extractors, consulted
// in order.
func NewRegistry(extractors ...driven.TextExtractor) *Registry {
	return &Registry{extractors: extractors}
}

// DefaultRegistry covers the formats the ingestion pipeline accepts
// out of the box: PDF and plain text.
func DefaultRegistry() *Registry {
	return NewRegistry(NewPDFExtractor(), NewPlainExtractor())
}

// For returns the extractor handling the file at path, or nil when no
// registered extractor supports its extension.
func (r *Registry) For(path string) driven.TextExtractor {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range r.extractors {
		if e.Supports(ext) {
			return e
		}
	}
	return nil
}
