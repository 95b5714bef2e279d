// Package session holds the single mutable resume document for one editing
// session and funnels every mutation through explicit update operations.
package session

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/jonathan/resume-studio/internal/ats"
	"github.com/jonathan/resume-studio/internal/suggest"
	"github.com/jonathan/resume-studio/internal/types"
)

// ErrAnalysisInFlight is returned when an analysis is requested while one is
// already running against the session's document.
var ErrAnalysisInFlight = errors.New("analysis already in flight")

// ErrEmptyJobText is returned when analysis is requested without job text.
// This is the caller-side precondition surfaced as a typed error rather than
// a scoring failure.
var ErrEmptyJobText = errors.New("job description text is required")

// Persister is the persistence collaborator. Load misses are reported
// through the store's absent sentinel; save failures are logged by the
// session and never surfaced to the user.
type Persister interface {
	SaveDocument(doc *types.ResumeDocument) error
	LoadDocument() (*types.ResumeDocument, error)
	SaveTemplate(tpl types.Template) error
	LoadTemplate() (types.Template, error)
}

// Session owns one ResumeDocument exclusively. The scorer and renderer only
// ever see read-only snapshots of it.
type Session struct {
	mu        sync.Mutex
	doc       *types.ResumeDocument
	template  types.Template
	lastScore *types.ATSScore
	analyzing bool

	store    Persister
	analyzer *ats.Analyzer
	provider suggest.Provider
}

// New creates a session seeded from the store. A load miss (or any load
// failure) degrades to the starter document and default template; nothing
// here is fatal.
func New(store Persister, analyzer *ats.Analyzer, provider suggest.Provider) *Session {
	s := &Session{
		store:    store,
		analyzer: analyzer,
		provider: provider,
		template: types.DefaultTemplate,
	}

	doc, err := store.LoadDocument()
	if err != nil {
		log.Printf("[SESSION] no stored document, starting fresh: %v", err)
		doc = types.StarterDocument()
	}
	s.doc = doc

	if tpl, err := store.LoadTemplate(); err == nil {
		s.template = tpl
	}

	return s
}

// persist writes the document through fire-and-forget: a failure is logged
// and dropped, and the in-memory session stays authoritative.
func (s *Session) persist() {
	if err := s.store.SaveDocument(s.doc); err != nil {
		log.Printf("[SESSION] document save failed, continuing in memory: %v", err)
	}
}

// Document returns a deep-copy snapshot of the current document.
func (s *Session) Document() *types.ResumeDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Template returns the selected layout variant.
func (s *Session) Template() types.Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.template
}

// SetTemplate selects a layout variant, normalizing unknown identifiers to
// the default, and persists the selection.
func (s *Session) SetTemplate(tpl types.Template) types.Template {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.template = types.ParseTemplate(string(tpl))
	if err := s.store.SaveTemplate(s.template); err != nil {
		log.Printf("[SESSION] template save failed, continuing in memory: %v", err)
	}
	return s.template
}

// ReplaceDocument swaps in a whole new document after structural validation.
func (s *Session) ReplaceDocument(doc *types.ResumeDocument) error {
	if doc == nil {
		return errors.New("document is required")
	}
	if err := doc.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc.Clone()
	s.persist()
	return nil
}

// UpdateProfile replaces the profile fields.
func (s *Session) UpdateProfile(p types.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Profile = p
	s.persist()
}

// SetSkills replaces the skill list; order is display order.
func (s *Session) SetSkills(skills []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Skills = append([]string(nil), skills...)
	s.persist()
}

// SetLanguages replaces the language list after proficiency validation.
func (s *Session) SetLanguages(langs []types.Language) error {
	for i := range langs {
		if err := langs[i].Validate(); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Languages = append([]types.Language(nil), langs...)
	s.persist()
	return nil
}

// LastScore returns the most recent analysis result, or nil. The score is
// ephemeral: it is replaced by the next analysis and never persisted.
func (s *Session) LastScore() *types.ATSScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastScore
}

// Analyze scores the current document against jobText. Only one analysis may
// be in flight at a time; a failure leaves the previously held score (and
// therefore the UI state) untouched.
func (s *Session) Analyze(ctx context.Context, jobText string) (*types.ATSScore, error) {
	if len(jobText) == 0 || isBlank(jobText) {
		return nil, ErrEmptyJobText
	}

	s.mu.Lock()
	if s.analyzing {
		s.mu.Unlock()
		return nil, ErrAnalysisInFlight
	}
	s.analyzing = true
	snapshot := s.doc.Clone()
	s.mu.Unlock()

	score, err := s.analyzer.Analyze(ctx, snapshot, jobText)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyzing = false
	if err != nil {
		return nil, err
	}
	s.lastScore = score
	return score, nil
}

// ApplyOptimization runs the text-suggestion provider over the profile
// summary and stores the result. Repeated application appends repeatedly; no
// deduplication is attempted.
func (s *Session) ApplyOptimization(ctx context.Context, jobText string) (*types.ResumeDocument, error) {
	s.mu.Lock()
	summary := s.doc.Profile.Summary
	s.mu.Unlock()

	improved, err := s.provider.ImproveSummary(ctx, summary, jobText)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Profile.Summary = improved
	s.persist()
	return s.doc.Clone(), nil
}

func isBlank(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return true
}
