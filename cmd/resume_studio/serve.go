package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/server"
	"github.com/jonathan/resume-studio/internal/session"
	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/suggest"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the editing-session HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	st, err := store.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open document store: %w", err)
	}
	defer st.Close()

	sess := session.New(st, newAnalyzer(cfg), suggest.Static{})
	srv := server.New(server.Config{
		Port:      cfg.Port,
		ExportDir: cfg.DataDir,
	}, sess, newExporter(cfg))

	return srv.Start()
}
