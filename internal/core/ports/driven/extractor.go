package driven

import "github.com/calibra-labs/draftsman-cli/internal/core/domain"

// TextExtractor pulls plain text out of a source document file.
// File-format details (PDF structure, encodings) stay behind this port.
type TextExtractor interface {
	// Supports reports whether the extractor handles the given file
	// extension (lower case, with leading dot).
	Supports(ext string) bool

	// Extract returns the plain text content of the file at path.
	Extract(path string) (string, error)
}

// FrameLoader parses a tabular export file into a frame.
type FrameLoader interface {
	// Load reads the file at path into a frame.
	Load(path string) (*domain.Frame, error)
}
