package ats

import (
	"context"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/jonathan/resume-studio/internal/types"
)

// Score bounds and thresholds.
const (
	neutralScore  = 50.0
	minBaseScore  = 30.0
	maxBaseScore  = 95.0
	jitterSpread  = 5.0
	lowScoreBound = 70
	midScoreBound = 85
)

// JitterFunc produces the cosmetic score variance added to the base score.
// Implementations must return values in [-jitterSpread, +jitterSpread].
type JitterFunc func() float64

// Config controls scorer behavior.
type Config struct {
	// Jitter supplies the random variance source. Nil selects a time-seeded
	// uniform source; tests inject a fixed function for exact assertions.
	Jitter JitterFunc
	// Delay simulates analysis latency before scoring runs. Zero disables it.
	Delay time.Duration
}

// DefaultConfig returns a Config with a time-seeded jitter source.
func DefaultConfig() Config {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return Config{
		Jitter: func() float64 { return rng.Float64()*2*jitterSpread - jitterSpread },
	}
}

// NoJitter is a JitterFunc returning zero, for deterministic scoring.
func NoJitter() float64 { return 0 }

// Analyzer computes keyword-overlap compatibility scores. It is a lexical
// approximation of an applicant-tracking-system scan, not a semantic one.
type Analyzer struct {
	jitter JitterFunc
	delay  time.Duration
}

// NewAnalyzer creates an Analyzer from cfg, filling a nil jitter source from
// DefaultConfig.
func NewAnalyzer(cfg Config) *Analyzer {
	jitter := cfg.Jitter
	if jitter == nil {
		jitter = DefaultConfig().Jitter
	}
	return &Analyzer{jitter: jitter, delay: cfg.Delay}
}

// Analyze scores doc against the pasted job description text.
//
// Callers guard the empty-job-text case at the UI layer; whitespace-only
// input still resolves through the neutral-score path rather than failing.
// Analyze reads the document and never mutates it.
func (a *Analyzer) Analyze(ctx context.Context, doc *types.ResumeDocument, jobText string) (*types.ATSScore, error) {
	if doc == nil {
		return nil, &Error{Message: "document is required"}
	}

	if a.delay > 0 {
		select {
		case <-time.After(a.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	candidates := candidateKeywords(tokenize(jobText))
	corpus := buildCorpus(doc)

	matched := make([]string, 0, len(candidates))
	missing := make([]string, 0, len(candidates))
	for _, keyword := range candidates {
		if strings.Contains(corpus, keyword) {
			matched = append(matched, keyword)
		} else {
			missing = append(missing, keyword)
		}
	}

	base := neutralScore
	if len(candidates) > 0 {
		base = float64(len(matched)) / float64(len(candidates)) * 100
	}
	base = math.Min(math.Max(base, minBaseScore), maxBaseScore)
	score := int(math.Round(base + a.jitter()))

	return &types.ATSScore{
		Score: score,
		KeywordMatches: types.KeywordMatches{
			Matched: matched,
			Missing: missing,
		},
		Suggestions: buildSuggestions(matched, missing, score),
	}, nil
}
