package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-studio/internal/rendering"
	"github.com/jonathan/resume-studio/internal/types"
)

// handleGetDocument returns the current document snapshot.
func (s *Server) handleGetDocument(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}

// handleReplaceDocument swaps in a whole new document.
func (s *Server) handleReplaceDocument(w http.ResponseWriter, r *http.Request) {
	var doc types.ResumeDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.session.ReplaceDocument(&doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}

// handleUpdateProfile replaces the profile fields.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile types.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.session.UpdateProfile(profile)
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}

// handleSetSkills replaces the skill list.
func (s *Server) handleSetSkills(w http.ResponseWriter, r *http.Request) {
	var skills []string
	if err := json.NewDecoder(r.Body).Decode(&skills); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.session.SetSkills(skills)
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}

// handleSetLanguages replaces the language list.
func (s *Server) handleSetLanguages(w http.ResponseWriter, r *http.Request) {
	var langs []types.Language
	if err := json.NewDecoder(r.Body).Decode(&langs); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.session.SetLanguages(langs); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}

// handleListTemplates returns the closed set of layout variants.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.AllTemplates())
}

// handleGetTemplate returns the selected layout variant.
func (s *Server) handleGetTemplate(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"template": string(s.session.Template())})
}

// handleSetTemplate selects a layout variant. Unknown identifiers fall back
// to the default variant instead of failing.
func (s *Server) handleSetTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Template string `json:"template"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	selected := s.session.SetTemplate(types.Template(req.Template))
	s.jsonResponse(w, http.StatusOK, map[string]string{"template": string(selected)})
}

// handlePreview renders the styled HTML preview for the current document.
// The template query parameter overrides the session selection for this
// render only.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	tpl := s.session.Template()
	if q := r.URL.Query().Get("template"); q != "" {
		tpl = types.ParseTemplate(q)
	}

	html, err := rendering.Render(s.session.Document(), tpl)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Preview rendering failed")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
