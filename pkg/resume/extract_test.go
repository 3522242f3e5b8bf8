package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract_UnsupportedFormat(t *testing.T) {
	ex := NewDocumentExtractor()

	_, err := ex.Extract("resume.txt", []byte("plain text"))
	assert.Error(t, err)

	_, err = ex.Extract("resume", []byte("no extension"))
	assert.Error(t, err)
}

func TestExtract_CorruptPDF(t *testing.T) {
	ex := NewDocumentExtractor()

	_, err := ex.Extract("resume.pdf", []byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestExtract_CorruptDocx(t *testing.T) {
	ex := NewDocumentExtractor()

	_, err := ex.Extract("resume.docx", []byte("definitely not a zip"))
	assert.Error(t, err)
}
