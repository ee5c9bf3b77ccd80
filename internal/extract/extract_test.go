package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_UnsupportedFormat(t *testing.T) {
	e := NewFileExtractor()
	for _, name := range []string{"contrato.txt", "contrato.doc", "contrato", "contrato.png"} {
		_, err := e.Extract(name, []byte("conteúdo"))
		require.ErrorIs(t, err, ErrUnsupportedFormat, "file %q", name)
	}
}

func TestExtract_ExtensionCaseInsensitive(t *testing.T) {
	e := NewFileExtractor()
	// Wrong bytes for the format, but dispatch must pick the PDF path
	// and fail at parse time, not at the extension gate.
	_, err := e.Extract("CONTRATO.PDF", []byte("not a pdf"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtract_CorruptPDF(t *testing.T) {
	e := NewFileExtractor()
	_, err := e.Extract("contrato.pdf", []byte("%PDF-1.4 truncated garbage"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Erro ao extrair texto do PDF")
}

func TestExtract_CorruptDOCX(t *testing.T) {
	e := NewFileExtractor()
	_, err := e.Extract("contrato.docx", []byte("not a zip archive"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Erro ao extrair texto do arquivo")
}
