// Package suggest defines the pluggable text-suggestion provider used when
// the user applies an optimization to their resume.
package suggest

import "context"

// Provider rewrites a profile summary in light of a job description. The
// contract is deliberately coarse: the caller does not say which suggestion
// was accepted, and repeated application is expected to visibly append
// repeatedly rather than deduplicate.
type Provider interface {
	ImproveSummary(ctx context.Context, summary, jobText string) (string, error)
}

// defaultMarker is the text Static appends on every application.
const defaultMarker = " (Optimized)"

// Static is the deterministic stub provider: it appends a fixed marker to
// the summary. A real text-generation backend would implement Provider in
// its place.
type Static struct {
	// Marker overrides the appended text when non-empty.
	Marker string
}

// ImproveSummary appends the marker to the summary. It never fails.
func (s Static) ImproveSummary(_ context.Context, summary, _ string) (string, error) {
	marker := s.Marker
	if marker == "" {
		marker = defaultMarker
	}
	return summary + marker, nil
}
