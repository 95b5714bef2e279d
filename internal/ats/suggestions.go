package ats

import (
	"fmt"
	"strings"
)

// minSuggestions is the floor on the suggestion list length; a filler
// suggestion is appended when the rules above it produced fewer.
const minSuggestions = 3

// maxMatchedInSuggestion bounds how many matched keywords are named in the
// prominence suggestion.
const maxMatchedInSuggestion = 3

// buildSuggestions assembles the improvement suggestions in fixed rule
// order. Given the same matched, missing and score inputs the output is
// always identical: the list must be reproducible so the UI can diff it
// across analysis runs.
func buildSuggestions(matched, missing []string, score int) []string {
	var suggestions []string

	if len(missing) > 0 {
		suggestions = append(suggestions, fmt.Sprintf(
			"Consider adding these keywords to your resume: %s.",
			strings.Join(missing, ", "),
		))
	}

	if score < lowScoreBound {
		suggestions = append(suggestions,
			"Your professional summary could be more tailored to the job description. Try highlighting specific achievements.",
			"Quantify your achievements with specific metrics and numbers to make them more impactful.",
		)
	}

	if len(matched) > 0 && score < midScoreBound {
		shown := matched
		if len(shown) > maxMatchedInSuggestion {
			shown = shown[:maxMatchedInSuggestion]
		}
		suggestions = append(suggestions, fmt.Sprintf(
			"You've included important keywords like %s, but consider making them more prominent in your summary and job descriptions.",
			strings.Join(shown, ", "),
		))
	}

	suggestions = append(suggestions,
		"Use action verbs at the beginning of your bullet points to make your achievements stand out.",
	)

	if len(suggestions) < minSuggestions {
		suggestions = append(suggestions,
			"Consider reorganizing your resume sections to put the most relevant experience first.",
		)
	}

	return suggestions
}
