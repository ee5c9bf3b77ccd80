// Package extract pulls plain text out of uploaded contract files.
// Supported formats are PDF and DOCX; everything else is rejected
// before any parsing happens.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Error messages are user-facing and surface verbatim in API responses.
var (
	ErrUnsupportedFormat = errors.New("Formato de arquivo não suportado. Use PDF ou DOCX.")
	ErrNoText            = errors.New("Arquivo vazio ou texto não extraível.")
)

// ParseError wraps a format-level parsing failure. These are client
// errors: the upload itself is unreadable.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

// Extractor converts an uploaded file into plain text.
type Extractor interface {
	Extract(filename string, data []byte) (string, error)
}

// FileExtractor dispatches on the file extension.
type FileExtractor struct{}

func NewFileExtractor() *FileExtractor {
	return &FileExtractor{}
}

func (e *FileExtractor) Extract(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		text, err = extractPDF(data)
	case ".docx":
		text, err = extractDOCX(data)
	default:
		return "", ErrUnsupportedFormat
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Msg: fmt.Sprintf("Erro ao extrair texto do PDF: %v", err)}
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page does not invalidate the rest.
			continue
		}
		if pageText != "" {
			sb.WriteString(pageText)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

var (
	docxParagraph = regexp.MustCompile(`</w:p>`)
	docxTag       = regexp.MustCompile(`<[^>]+>`)
)

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ParseError{Msg: fmt.Sprintf("Erro ao extrair texto do arquivo: %v", err)}
	}
	defer doc.Close()

	// The library hands back raw document XML; paragraph closers become
	// newlines and the remaining tags are stripped.
	content := doc.Editable().GetContent()
	content = docxParagraph.ReplaceAllString(content, "\n")
	content = docxTag.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}
