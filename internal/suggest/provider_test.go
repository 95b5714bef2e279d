package suggest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_AppendsDefaultMarker(t *testing.T) {
	got, err := Static{}.ImproveSummary(context.Background(), "Seasoned engineer.", "any job")
	require.NoError(t, err)
	assert.Equal(t, "Seasoned engineer. (Optimized)", got)
}

func TestStatic_CustomMarker(t *testing.T) {
	got, err := Static{Marker: " [tuned]"}.ImproveSummary(context.Background(), "Summary", "")
	require.NoError(t, err)
	assert.Equal(t, "Summary [tuned]", got)
}
