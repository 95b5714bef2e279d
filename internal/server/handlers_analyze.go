package server

import (
	"encoding/json"
	"log"
	"net/http"
)

// AnalyzeRequest represents the request body for /analyze and /optimize.
type AnalyzeRequest struct {
	JobText string `json:"job_text"`
}

// handleAnalyze scores the current document against the pasted job text.
// A failure leaves the previously held score untouched; the client keeps
// whatever it was showing.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	score, err := s.session.Analyze(r.Context(), req.JobText)
	if err != nil {
		log.Printf("Analysis failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, score)
}

// handleGetScore returns the most recent analysis result, if any.
func (s *Server) handleGetScore(w http.ResponseWriter, _ *http.Request) {
	score := s.session.LastScore()
	if score == nil {
		s.errorResponse(w, http.StatusNotFound, "No analysis has been run")
		return
	}
	s.jsonResponse(w, http.StatusOK, score)
}

// handleOptimize applies the text-suggestion provider to the profile
// summary and returns the updated document.
func (s *Server) handleOptimize(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	doc, err := s.session.ApplyOptimization(r.Context(), req.JobText)
	if err != nil {
		log.Printf("Optimization failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), userMessage(err))
		return
	}
	s.jsonResponse(w, http.StatusOK, doc)
}
