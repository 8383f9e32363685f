// Package tabular loads exported tabular files into frames for the
// analysis agent.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
)

// Ensure CSVLoader implements the interface.
var _ driven.FrameLoader = (*CSVLoader)(nil)

// CSVLoader reads CSV exports. The first row is the header.
type CSVLoader struct{}

// NewCSVLoader creates a CSV frame loader.
func NewCSVLoader() *CSVLoader {
	return &CSVLoader{}
}

// Load reads the CSV file at path into a frame.
func (l *CSVLoader) Load(path string) (*domain.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged exports are common, keep them

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	frame := &domain.Frame{Name: filepath.Base(path)}
	if len(rows) == 0 {
		return frame, nil
	}

	frame.Columns = rows[0]
	frame.Rows = rows[1:]
	return frame, nil
}
