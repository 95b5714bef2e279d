package ats

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-studio/internal/types"
)

// minKeywordLength is the token length cutoff. Tokens this short or shorter
// are discarded, which filters most filler words without a stop-word list.
const minKeywordLength = 3

// maxCandidateKeywords caps the candidate set extracted from the job text.
const maxCandidateKeywords = 10

// tokenize lowercases the text, strips punctuation and splits on whitespace,
// keeping only tokens longer than minKeywordLength.
func tokenize(text string) []string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	var tokens []string
	for _, tok := range strings.Fields(b.String()) {
		if utf8.RuneCountInString(tok) > minKeywordLength {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// candidateKeywords returns the tokens that occur more than once, in order
// of first occurrence, capped at maxCandidateKeywords. First-occurrence
// ordering rather than frequency ordering is the documented behavior: with
// more than ten distinct repeated tokens the most frequent ones may be
// under-surfaced, and that tradeoff is kept as-is.
func candidateKeywords(tokens []string) []string {
	counts := make(map[string]int, len(tokens))
	var order []string
	for _, tok := range tokens {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	var candidates []string
	for _, tok := range order {
		if counts[tok] > 1 {
			candidates = append(candidates, tok)
			if len(candidates) == maxCandidateKeywords {
				break
			}
		}
	}
	return candidates
}

// buildCorpus concatenates the searchable resume text: the profile summary,
// every experience description bullet and every skill, lowercased. Keyword
// matching against the corpus is substring matching, so "manage" matches
// inside "management".
func buildCorpus(doc *types.ResumeDocument) string {
	var parts []string
	parts = append(parts, doc.Profile.Summary)
	for _, exp := range doc.Experience {
		parts = append(parts, exp.Description...)
	}
	parts = append(parts, doc.Skills...)
	return strings.ToLower(strings.Join(parts, " "))
}
