package types

// KeywordMatches partitions the candidate keywords extracted from a job
// description into those found in the resume corpus and those absent.
type KeywordMatches struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// ATSScore is the result of one keyword analysis run. It is derived state:
// recomputed on every request, held by the caller, never persisted and never
// merged wholesale back into the document.
type ATSScore struct {
	Score          int            `json:"score"`
	KeywordMatches KeywordMatches `json:"keyword_matches"`
	Suggestions    []string       `json:"suggestions"`
}
