package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/observability"
	"github.com/jonathan/resume-studio/internal/store"
)

var (
	analyzeResumePath string
	analyzeJobPath    string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long:  "Analyze extracts repeated keywords from a job description and reports which of them appear in the resume, with a compatibility score and improvement suggestions.",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeResumePath, "resume", "", "Path to resume document (JSON or YAML)")
	analyzeCmd.Flags().StringVar(&analyzeJobPath, "job", "", "Path to job description text file")
	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	doc, err := store.ReadDocumentFile(analyzeResumePath)
	if err != nil {
		return err
	}

	jobBytes, err := os.ReadFile(analyzeJobPath)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}
	jobText := string(jobBytes)
	if strings.TrimSpace(jobText) == "" {
		return fmt.Errorf("job description file is empty")
	}

	score, err := newAnalyzer(cfg).Analyze(cmd.Context(), doc, jobText)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintDocumentSummary(doc)
	}
	printer.PrintATSScore(score)
	return nil
}
