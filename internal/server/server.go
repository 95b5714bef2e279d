package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/session"
)

// Server represents the HTTP server for one editing session.
type Server struct {
	httpServer *http.Server
	session    *session.Session
	exporter   *export.Exporter
	exportDir  string
}

// Config holds server configuration.
type Config struct {
	Port      int
	ExportDir string
}

// New creates a new server instance over an existing session and exporter.
func New(cfg Config, sess *session.Session, exporter *export.Exporter) *Server {
	s := &Server{
		session:   sess,
		exporter:  exporter,
		exportDir: cfg.ExportDir,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Document endpoints
	mux.HandleFunc("GET /document", s.handleGetDocument)
	mux.HandleFunc("PUT /document", s.handleReplaceDocument)
	mux.HandleFunc("PUT /document/profile", s.handleUpdateProfile)
	mux.HandleFunc("PUT /document/skills", s.handleSetSkills)
	mux.HandleFunc("PUT /document/languages", s.handleSetLanguages)

	// Section entry endpoints
	mux.HandleFunc("POST /document/experiences", s.handleCreateExperience)
	mux.HandleFunc("PUT /document/experiences/{id}", s.handleUpdateExperience)
	mux.HandleFunc("DELETE /document/experiences/{id}", s.handleDeleteExperience)
	mux.HandleFunc("POST /document/education", s.handleCreateEducation)
	mux.HandleFunc("PUT /document/education/{id}", s.handleUpdateEducation)
	mux.HandleFunc("DELETE /document/education/{id}", s.handleDeleteEducation)
	mux.HandleFunc("POST /document/projects", s.handleCreateProject)
	mux.HandleFunc("PUT /document/projects/{id}", s.handleUpdateProject)
	mux.HandleFunc("DELETE /document/projects/{id}", s.handleDeleteProject)
	mux.HandleFunc("POST /document/certifications", s.handleCreateCertification)
	mux.HandleFunc("PUT /document/certifications/{id}", s.handleUpdateCertification)
	mux.HandleFunc("DELETE /document/certifications/{id}", s.handleDeleteCertification)

	// Template selection and preview
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("GET /template", s.handleGetTemplate)
	mux.HandleFunc("PUT /template", s.handleSetTemplate)
	mux.HandleFunc("GET /preview", s.handlePreview)

	// Analysis and export
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /score", s.handleGetScore)
	mux.HandleFunc("POST /optimize", s.handleOptimize)
	mux.HandleFunc("POST /export", s.handleExport)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // export runs a headless browser
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Handler exposes the configured handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
