package tabular

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/calibra-labs/draftsman-cli/internal/core/domain"
	"github.com/calibra-labs/draftsman-cli/internal/core/ports/driven"
)

// Ensure XLSXLoader implements the interface.
var _ driven.FrameLoader = (*XLSXLoader)(nil)

// XLSXLoader reads spreadsheet exports. Only the first sheet is used;
// the first row is the header.
type XLSXLoader struct{}

// NewXLSXLoader creates a spreadsheet frame loader.
func NewXLSXLoader() *XLSXLoader {
	return &XLSXLoader{}
}

// Load reads the workbook at path into a frame.
func (l *XLSXLoader) Load(path string) (*domain.Frame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("parsing %s: workbook has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
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
