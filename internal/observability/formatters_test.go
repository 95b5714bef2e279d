package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/types"
)

func TestPrintATSScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSScore(&types.ATSScore{
		Score: 72,
		KeywordMatches: types.KeywordMatches{
			Matched: []string{"python", "docker"},
			Missing: []string{"kubernetes"},
		},
		Suggestions: []string{"Add kubernetes to your skills."},
	})
	output := buf.String()

	assert.Contains(t, output, "ATS Compatibility")
	assert.Contains(t, output, "72 / 100")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "kubernetes")
	assert.Contains(t, output, "1. Add kubernetes to your skills.")
}

func TestPrintATSScore_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintATSScore(nil)
	assert.Empty(t, buf.String())
}

func TestPrintExportResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExportResult(&export.Result{Path: "out/jane-resume.pdf", Pages: 2})
	output := buf.String()

	assert.Contains(t, output, "PDF Export")
	assert.Contains(t, output, "out/jane-resume.pdf")
	assert.Contains(t, output, "Pages:    2")
}

func TestPrintDocumentSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	doc := types.StarterDocument()
	p.PrintDocumentSummary(doc)
	output := buf.String()

	assert.Contains(t, output, "Resume Document")
	assert.Contains(t, output, "John Doe")
	assert.Contains(t, output, "Experience: 2 entries")
}
