package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/types"
)

// ExportRequest represents the request body for /export.
type ExportRequest struct {
	// Template overrides the session selection for this export.
	Template string `json:"template,omitempty"`
	// Filename overrides the generated owner-name-plus-timestamp name.
	Filename string `json:"filename,omitempty"`
}

// ExportResponse represents the response for /export.
type ExportResponse struct {
	Path  string `json:"path"`
	Pages int    `json:"pages"`
}

// handleExport runs the pagination and export pipeline against the current
// document and reports where the PDF was written.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}

	tpl := s.session.Template()
	if req.Template != "" {
		tpl = types.ParseTemplate(req.Template)
	}

	res, err := s.exporter.Export(r.Context(), s.session.Document(), tpl, export.Options{
		Filename: req.Filename,
		Dir:      s.exportDir,
	})
	if err != nil {
		log.Printf("Export failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, ExportResponse{Path: res.Path, Pages: res.Pages})
}
