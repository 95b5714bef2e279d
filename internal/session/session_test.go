package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/ats"
	"github.com/jonathan/resume-studio/internal/store"
	"github.com/jonathan/resume-studio/internal/suggest"
	"github.com/jonathan/resume-studio/internal/types"
)

// memPersister is an in-memory Persister with optional induced failures.
type memPersister struct {
	mu       sync.Mutex
	doc      *types.ResumeDocument
	tpl      types.Template
	hasTpl   bool
	failSave bool
	saves    int
}

func (m *memPersister) SaveDocument(doc *types.ResumeDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.failSave {
		return errors.New("disk full")
	}
	m.doc = doc.Clone()
	return nil
}

func (m *memPersister) LoadDocument() (*types.ResumeDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.doc == nil {
		return nil, store.ErrNotFound
	}
	return m.doc.Clone(), nil
}

func (m *memPersister) SaveTemplate(tpl types.Template) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSave {
		return errors.New("disk full")
	}
	m.tpl = tpl
	m.hasTpl = true
	return nil
}

func (m *memPersister) LoadTemplate() (types.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.hasTpl {
		return "", store.ErrNotFound
	}
	return m.tpl, nil
}

func newTestSession(p Persister) *Session {
	analyzer := ats.NewAnalyzer(ats.Config{Jitter: ats.NoJitter})
	return New(p, analyzer, suggest.Static{})
}

func TestNew_EmptyStoreSeedsStarter(t *testing.T) {
	s := newTestSession(&memPersister{})

	doc := s.Document()
	assert.Equal(t, "John Doe", doc.Profile.Name)
	assert.Equal(t, types.DefaultTemplate, s.Template())
}

func TestNew_RestoresStoredState(t *testing.T) {
	stored := types.StarterDocument()
	stored.Profile.Name = "Restored Person"
	p := &memPersister{doc: stored, tpl: types.TemplateExecutive, hasTpl: true}

	s := newTestSession(p)

	assert.Equal(t, "Restored Person", s.Document().Profile.Name)
	assert.Equal(t, types.TemplateExecutive, s.Template())
}

func TestDocument_ReturnsSnapshot(t *testing.T) {
	s := newTestSession(&memPersister{})

	snap := s.Document()
	snap.Profile.Name = "Mutated Copy"

	assert.NotEqual(t, "Mutated Copy", s.Document().Profile.Name)
}

func TestSetTemplate_NormalizesUnknown(t *testing.T) {
	p := &memPersister{}
	s := newTestSession(p)

	got := s.SetTemplate(types.Template("sparkly"))

	assert.Equal(t, types.DefaultTemplate, got)
	assert.Equal(t, types.DefaultTemplate, p.tpl)
}

func TestUpdateProfile_Persists(t *testing.T) {
	p := &memPersister{}
	s := newTestSession(p)

	s.UpdateProfile(types.Profile{Name: "New Name"})

	assert.Equal(t, "New Name", s.Document().Profile.Name)
	assert.Equal(t, "New Name", p.doc.Profile.Name)
}

func TestSaveFailure_SessionStaysAuthoritative(t *testing.T) {
	p := &memPersister{failSave: true}
	s := newTestSession(p)

	s.UpdateProfile(types.Profile{Name: "In Memory Only"})
	s.SetSkills([]string{"Go"})

	doc := s.Document()
	assert.Equal(t, "In Memory Only", doc.Profile.Name)
	assert.Equal(t, []string{"Go"}, doc.Skills)
	assert.Nil(t, p.doc, "failed saves must not partially persist")
}

func TestAddExperience_AssignsFreshID(t *testing.T) {
	s := newTestSession(&memPersister{})

	id := s.AddExperience(types.WorkExperience{ID: "caller-supplied", Company: "Initech"})

	require.NotEmpty(t, id)
	assert.NotEqual(t, "caller-supplied", id)

	doc := s.Document()
	last := doc.Experience[len(doc.Experience)-1]
	assert.Equal(t, id, last.ID)
	assert.Equal(t, "Initech", last.Company)
}

func TestUpdateExperience_StaleIDIsNoOp(t *testing.T) {
	s := newTestSession(&memPersister{})
	before := s.Document()

	ok := s.UpdateExperience("no-such-id", types.WorkExperience{Company: "Ghost"})

	assert.False(t, ok)
	assert.Equal(t, before, s.Document())
}

func TestUpdateExperience_KeepsID(t *testing.T) {
	s := newTestSession(&memPersister{})
	id := s.AddExperience(types.WorkExperience{Company: "Before"})

	ok := s.UpdateExperience(id, types.WorkExperience{ID: "ignored", Company: "After"})
	require.True(t, ok)

	doc := s.Document()
	last := doc.Experience[len(doc.Experience)-1]
	assert.Equal(t, id, last.ID)
	assert.Equal(t, "After", last.Company)
}

func TestRemoveExperience(t *testing.T) {
	s := newTestSession(&memPersister{})
	id := s.AddExperience(types.WorkExperience{Company: "Doomed"})
	count := len(s.Document().Experience)

	assert.True(t, s.RemoveExperience(id))
	assert.Len(t, s.Document().Experience, count-1)

	// Deleting again with the now-stale id misses.
	assert.False(t, s.RemoveExperience(id))
}

func TestSectionIDs_NeverRecycled(t *testing.T) {
	s := newTestSession(&memPersister{})

	first := s.AddProject(types.Project{Name: "one"})
	require.True(t, s.RemoveProject(first))
	second := s.AddProject(types.Project{Name: "two"})

	assert.NotEqual(t, first, second)
	assert.False(t, s.UpdateProject(first, types.Project{Name: "ghost"}))
}

func TestEducationAndCertificationMutations(t *testing.T) {
	s := newTestSession(&memPersister{})

	eduID := s.AddEducation(types.Education{Institution: "MIT"})
	require.True(t, s.UpdateEducation(eduID, types.Education{Institution: "Stanford"}))
	require.True(t, s.RemoveEducation(eduID))
	assert.False(t, s.UpdateEducation(eduID, types.Education{Institution: "Ghost U"}))

	certID := s.AddCertification(types.Certification{Name: "CKA"})
	require.True(t, s.UpdateCertification(certID, types.Certification{Name: "CKAD"}))
	require.True(t, s.RemoveCertification(certID))
}

func TestSetLanguages_RejectsInvalidProficiency(t *testing.T) {
	s := newTestSession(&memPersister{})

	err := s.SetLanguages([]types.Language{{Name: "Esperanto", Proficiency: "Legendary"}})
	require.Error(t, err)
	assert.Empty(t, s.Document().Languages)

	require.NoError(t, s.SetLanguages([]types.Language{{Name: "French", Proficiency: "Fluent"}}))
	assert.Len(t, s.Document().Languages, 1)
}

func TestReplaceDocument_ValidatesFirst(t *testing.T) {
	s := newTestSession(&memPersister{})

	bad := &types.ResumeDocument{
		Experience: []types.WorkExperience{{Company: "No ID"}},
	}
	require.Error(t, s.ReplaceDocument(bad))

	good := types.StarterDocument()
	good.Profile.Name = "Replaced"
	require.NoError(t, s.ReplaceDocument(good))
	assert.Equal(t, "Replaced", s.Document().Profile.Name)
}

func TestAnalyze_EmptyJobText(t *testing.T) {
	s := newTestSession(&memPersister{})

	_, err := s.Analyze(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyJobText)

	_, err = s.Analyze(context.Background(), "   \n\t ")
	assert.ErrorIs(t, err, ErrEmptyJobText)
}

func TestAnalyze_StoresLastScore(t *testing.T) {
	s := newTestSession(&memPersister{})
	require.Nil(t, s.LastScore())

	score, err := s.Analyze(context.Background(), "react react node.js node.js")
	require.NoError(t, err)

	assert.Equal(t, score, s.LastScore())
}

func TestAnalyze_RejectsConcurrentRun(t *testing.T) {
	p := &memPersister{}
	analyzer := ats.NewAnalyzer(ats.Config{Jitter: ats.NoJitter, Delay: 300 * time.Millisecond})
	s := New(p, analyzer, suggest.Static{})

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		_, err := s.Analyze(context.Background(), "python python")
		done <- err
	}()

	<-started
	time.Sleep(50 * time.Millisecond)

	_, err := s.Analyze(context.Background(), "python python")
	assert.ErrorIs(t, err, ErrAnalysisInFlight)

	require.NoError(t, <-done)

	// The guard clears once the first run finishes.
	_, err = s.Analyze(context.Background(), "python python")
	assert.NoError(t, err)
}

func TestAnalyze_FailureKeepsPreviousScore(t *testing.T) {
	p := &memPersister{}
	analyzer := ats.NewAnalyzer(ats.Config{Jitter: ats.NoJitter, Delay: 100 * time.Millisecond})
	s := New(p, analyzer, suggest.Static{})

	first, err := s.Analyze(context.Background(), "react react")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Analyze(ctx, "vue vue")
	require.Error(t, err)

	assert.Equal(t, first, s.LastScore())
}

func TestApplyOptimization_AppendsMarker(t *testing.T) {
	s := newTestSession(&memPersister{})
	original := s.Document().Profile.Summary

	doc, err := s.ApplyOptimization(context.Background(), "any job text")
	require.NoError(t, err)

	assert.Equal(t, original+" (Optimized)", doc.Profile.Summary)
}

func TestApplyOptimization_RepeatedApplicationAppendsAgain(t *testing.T) {
	s := newTestSession(&memPersister{})
	original := s.Document().Profile.Summary

	_, err := s.ApplyOptimization(context.Background(), "job")
	require.NoError(t, err)
	doc, err := s.ApplyOptimization(context.Background(), "job")
	require.NoError(t, err)

	assert.Equal(t, original+" (Optimized) (Optimized)", doc.Profile.Summary)
}
