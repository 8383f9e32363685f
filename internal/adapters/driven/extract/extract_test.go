package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainExtractor_Supports(t *testing.T) {
	e := NewPlainExtractor()
	assert.True(t, e.Supports(".txt"))
	assert.True(t, e.Supports(".md"))
	assert.False(t, e.Supports(".pdf"))
	assert.False(t, e.Supports(".csv"))
}

func TestPlainExtractor_Extract(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("Bolt torque spec is 45 Nm.\n"), 0644))

	e := NewPlainExtractor()
	text, err := e.Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "Bolt torque spec is 45 Nm.\n", text)
}

func TestPlainExtractor_ExtractMissingFile(t *testing.T) {
	e := NewPlainExtractor()
	_, err := e.Extract(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestPDFExtractor_Supports(t *testing.T) {
	e := NewPDFExtractor()
	assert.True(t, e.Supports(".pdf"))
	assert.False(t, e.Supports(".txt"))
}

func TestRegistry_SelectsByExtension(t *testing.T) {
	r := DefaultRegistry()

	assert.IsType(t, &PDFExtractor{}, r.For("manual.pdf"))
	assert.IsType(t, &PDFExtractor{}, r.For("MANUAL.PDF"))
	assert.IsType(t, &PlainExtractor{}, r.For("/docs/readme.txt"))
	assert.Nil(t, r.For("export.csv"))
	assert.Nil(t, r.For("noextension"))
}
