package ats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestTokenize_StripsPunctuationAndShortWords(t *testing.T) {
	tokens := tokenize("We need Go, Python! And more python; lots of PYTHON.")

	// "We", "Go", "And", "lots" (4) survives, short words dropped
	assert.Equal(t, []string{"need", "python", "more", "python", "lots", "python"}, tokens)
}

func TestTokenize_Empty(t *testing.T) {
	assert.Empty(t, tokenize(""))
	assert.Empty(t, tokenize("   \n\t  "))
	assert.Empty(t, tokenize("a an the of to in"))
}

func TestCandidateKeywords_RepeatedOnly(t *testing.T) {
	tokens := tokenize("python developer python testing frameworks testing once")
	candidates := candidateKeywords(tokens)

	assert.Equal(t, []string{"python", "testing"}, candidates)
}

func TestCandidateKeywords_FirstOccurrenceOrder(t *testing.T) {
	// zulu repeats after alpha's first occurrence; order follows first
	// occurrence, not frequency
	tokens := []string{"alpha", "zulu", "zulu", "zulu", "alpha"}
	candidates := candidateKeywords(tokens)

	assert.Equal(t, []string{"alpha", "zulu"}, candidates)
}

func TestCandidateKeywords_CappedAtTen(t *testing.T) {
	var tokens []string
	words := []string{
		"alpha", "bravo", "charlie", "delta", "echoes", "foxtrot",
		"golfing", "hotels", "indigo", "juliet", "kilos", "limas",
	}
	for _, w := range words {
		tokens = append(tokens, w, w)
	}

	candidates := candidateKeywords(tokens)

	assert.Len(t, candidates, 10)
	assert.Equal(t, words[:10], candidates)
}

func TestBuildCorpus_IncludesSummaryBulletsAndSkills(t *testing.T) {
	doc := &types.ResumeDocument{
		Profile: types.Profile{Summary: "Seasoned Gopher"},
		Experience: []types.WorkExperience{
			{ID: "a", Description: []string{"Shipped Kafka pipelines", "Managed releases"}},
		},
		Skills: []string{"Kubernetes", "Terraform"},
	}

	corpus := buildCorpus(doc)

	assert.Contains(t, corpus, "seasoned gopher")
	assert.Contains(t, corpus, "shipped kafka pipelines")
	assert.Contains(t, corpus, "managed releases")
	assert.Contains(t, corpus, "kubernetes")
	assert.Contains(t, corpus, "terraform")
}

func TestBuildCorpus_SubstringSemantics(t *testing.T) {
	doc := &types.ResumeDocument{
		Profile: types.Profile{Summary: "Management experience"},
	}

	corpus := buildCorpus(doc)

	// "manage" must match inside "management": the scorer uses substring
	// matching, not word boundaries.
	assert.Contains(t, corpus, "manage")
}
