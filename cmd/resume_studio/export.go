package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

var (
	exportResumePath string
	exportTemplate   string
	exportOutput     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a resume to a paginated A4 PDF",
	Long:  "Export renders the resume with the selected layout, rasterizes the preview in a headless browser, slices it into A4 pages and writes a PDF. Requires Chrome/Chromium.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportResumePath, "resume", "", "Path to resume document (JSON or YAML)")
	exportCmd.Flags().StringVar(&exportTemplate, "template", "", "Layout variant (Modern, Professional, Minimal, Creative, Executive)")
	exportCmd.Flags().StringVar(&exportOutput, "out", "", "Output PDF filename (default: derived from the resume owner's name)")
	_ = exportCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	doc, err := store.ReadDocumentFile(exportResumePath)
	if err != nil {
		return err
	}

	res, err := newExporter(cfg).Export(cmd.Context(), doc, types.ParseTemplate(exportTemplate), export.Options{
		Filename: exportOutput,
	})
	if err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintExportResult(res)
	return nil
}
