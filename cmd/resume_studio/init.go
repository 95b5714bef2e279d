package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/types"
)

var initOutput string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter resume document",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initOutput, "out", "resume.json", "Output path (.json or .yaml)")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	if _, err := os.Stat(initOutput); err == nil {
		return fmt.Errorf("refusing to overwrite existing file: %s", initOutput)
	}
	if err := store.WriteDocumentFile(initOutput, types.StarterDocument()); err != nil {
		return err
	}
	fmt.Printf("Wrote starter resume to %s\n", initOutput)
	return nil
}
