package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-studio/internal/types"
)

// Section entry handlers. Create assigns the server-generated id; update
// and delete address entries by path id, and a stale id yields 404 without
// touching the document.

func (s *Server) handleCreateExperience(w http.ResponseWriter, r *http.Request) {
	var exp types.WorkExperience
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	id := s.session.AddExperience(exp)
	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	var exp types.WorkExperience
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !s.session.UpdateExperience(r.PathValue("id"), exp) {
		s.errorResponse(w, http.StatusNotFound, "Experience entry not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}

func (s *Server) handleDeleteExperience(w http.ResponseWriter, r *http.Request) {
	if !s.session.RemoveExperience(r.PathValue("id")) {
		s.errorResponse(w, http.StatusNotFound, "Experience entry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateEducation(w http.ResponseWriter, r *http.Request) {
	var edu types.Education
	if err := json.NewDecoder(r.Body).Decode(&edu); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	id := s.session.AddEducation(edu)
	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleUpdateEducation(w http.ResponseWriter, r *http.Request) {
	var edu types.Education
	if err := json.NewDecoder(r.Body).Decode(&edu); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !s.session.UpdateEducation(r.PathValue("id"), edu) {
		s.errorResponse(w, http.StatusNotFound, "Education entry not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}

func (s *Server) handleDeleteEducation(w http.ResponseWriter, r *http.Request) {
	if !s.session.RemoveEducation(r.PathValue("id")) {
		s.errorResponse(w, http.StatusNotFound, "Education entry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var p types.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	id := s.session.AddProject(p)
	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	var p types.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !s.session.UpdateProject(r.PathValue("id"), p) {
		s.errorResponse(w, http.StatusNotFound, "Project entry not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if !s.session.RemoveProject(r.PathValue("id")) {
		s.errorResponse(w, http.StatusNotFound, "Project entry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateCertification(w http.ResponseWriter, r *http.Request) {
	var c types.Certification
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	id := s.session.AddCertification(c)
	s.jsonResponse(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *Server) handleUpdateCertification(w http.ResponseWriter, r *http.Request) {
	var c types.Certification
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !s.session.UpdateCertification(r.PathValue("id"), c) {
		s.errorResponse(w, http.StatusNotFound, "Certification entry not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, s.session.Document())
}

func (s *Server) handleDeleteCertification(w http.ResponseWriter, r *http.Request) {
	if !s.session.RemoveCertification(r.PathValue("id")) {
		s.errorResponse(w, http.StatusNotFound, "Certification entry not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
