package tabular

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestXLSXLoader_Load(t *testing.T) {
	path := writeXLSX(t, [][]any{
		{"part", "qty"},
		{"bolt", 12},
		{"nut", 24},
	})

	frame, err := NewXLSXLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "export.xlsx", frame.Name)
	assert.Equal(t, []string{"part", "qty"}, frame.Columns)
	require.Len(t, frame.Rows, 2)
	assert.Equal(t, []string{"nut", "24"}, frame.Rows[1])
	assert.False(t, frame.Empty())
}

func TestXLSXLoader_LoadHeaderOnly(t *testing.T) {
	path := writeXLSX(t, [][]any{{"part", "qty"}})

	frame, err := NewXLSXLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"part", "qty"}, frame.Columns)
	assert.Empty(t, frame.Rows)
	assert.True(t, frame.Empty())
}

func TestXLSXLoader_LoadMissingFile(t *testing.T) {
	_, err := NewXLSXLoader().Load(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
