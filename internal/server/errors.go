// Package server provides the HTTP REST API for the resume studio editing
// session.
package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-studio/internal/ats"
	"github.com/jonathan/resume-studio/internal/export"
	"github.com/jonathan/resume-studio/internal/session"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Scoring and export failures map to retry-friendly statuses; the raw cause
// is logged server-side, never shown to the client.
func HTTPStatus(err error) int {
	var (
		scoringErr *ats.Error
		exportErr  *export.Error
	)
	switch {
	case errors.Is(err, session.ErrEmptyJobText):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrAnalysisInFlight):
		return http.StatusConflict
	case errors.As(err, &scoringErr), errors.As(err, &exportErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// userMessage maps an error to the generic retry-friendly message shown to
// the client.
func userMessage(err error) string {
	var exportErr *export.Error
	switch {
	case errors.Is(err, session.ErrEmptyJobText):
		return "Paste a job description before analyzing"
	case errors.Is(err, session.ErrAnalysisInFlight):
		return "An analysis is already running; try again in a moment"
	case errors.As(err, &exportErr):
		return "Export failed; please try again"
	default:
		return "Analysis failed; please try again"
	}
}
