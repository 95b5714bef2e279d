// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxKeywordsToShow is the default number of keywords to display in lists
	maxKeywordsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintATSScore outputs a human-readable summary of an analysis result.
func (p *Printer) PrintATSScore(score *types.ATSScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %d / 100\n", score.Score))
	sb.WriteString("\n")

	if len(score.KeywordMatches.Matched) > 0 {
		sb.WriteString("Matched keywords:\n")
		for i, kw := range score.KeywordMatches.Matched {
			if i == maxKeywordsToShow {
				break
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", kw))
		}
	}
	if len(score.KeywordMatches.Missing) > 0 {
		sb.WriteString("Missing keywords:\n")
		for i, kw := range score.KeywordMatches.Missing {
			if i == maxKeywordsToShow {
				break
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", kw))
		}
	}

	if len(score.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for i, s := range score.Suggestions {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, s))
		}
	}

	p.printBox("ATS Compatibility", strings.TrimRight(sb.String(), "\n"))
}

// PrintExportResult outputs a summary of a completed export.
func (p *Printer) PrintExportResult(res *export.Result) {
	if res == nil {
		return
	}
	content := fmt.Sprintf("Output:   %s\nPages:    %d", res.Path, res.Pages)
	p.printBox("PDF Export", content)
}

// PrintDocumentSummary outputs a short overview of the loaded document.
func (p *Printer) PrintDocumentSummary(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:       %s\n", doc.Profile.Name))
	sb.WriteString(fmt.Sprintf("Title:      %s\n", doc.Profile.Title))
	sb.WriteString(fmt.Sprintf("Experience: %d entries\n", len(doc.Experience)))
	sb.WriteString(fmt.Sprintf("Education:  %d entries\n", len(doc.Education)))
	sb.WriteString(fmt.Sprintf("Skills:     %d", len(doc.Skills)))
	p.printBox("Resume Document", sb.String())
}
