package tabular

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.FrameLoader = (*Loader)(nil)

// Loader dispatches to a format-specific loader by file extension.
type Loader struct {
	csv  *CSVLoader
	xlsx *XLSXLoader
}

// NewLoader creates a frame loader covering all supported export formats.
func NewLoader() *Loader {
	return &Loader{
		csv:  NewCSVLoader(),
		xlsx: NewXLSXLoader(),
	}
}

// Load reads the export at path into a frame.
func (l *Loader) Load(path string) (*domain.Frame, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return l.csv.Load(path)
	case ".xlsx":
		return l.xlsx.Load(path)
	default:
		return nil, fmt.Errorf("%w: unsupported export format %q (want .csv or .xlsx)",
			domain.ErrInvalidInput, filepath.Ext(path))
	}
}
