package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/types"
)

func TestDocumentFile_JSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	doc := types.StarterDocument()
	doc.Profile.Name = "JSON Person"

	require.NoError(t, WriteDocumentFile(path, doc))

	loaded, err := ReadDocumentFile(path)
	require.NoError(t, err)
	assert.Equal(t, "JSON Person", loaded.Profile.Name)
	assert.Equal(t, doc.Skills, loaded.Skills)
}

func TestDocumentFile_YAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.yaml")
	doc := types.StarterDocument()
	doc.Profile.Name = "YAML Person"
	doc.Languages = []types.Language{{Name: "French", Proficiency: "Advanced"}}

	require.NoError(t, WriteDocumentFile(path, doc))

	loaded, err := ReadDocumentFile(path)
	require.NoError(t, err)
	assert.Equal(t, "YAML Person", loaded.Profile.Name)
	assert.Equal(t, doc.Languages, loaded.Languages)
}

func TestReadDocumentFile_SchemaRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	// Missing every required section.
	require.NoError(t, os.WriteFile(path, []byte(`{"profile": {}}`), 0o644))

	_, err := ReadDocumentFile(path)
	require.Error(t, err)

	var valErr *schemas.ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestReadDocumentFile_RejectsInvalidProficiency(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.yaml")
	content := `
profile:
  name: Casey
experience: []
education: []
skills: [Go]
languages:
  - name: Esperanto
    proficiency: Legendary
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := ReadDocumentFile(path)
	assert.Error(t, err)
}

func TestReadDocumentFile_MissingFile(t *testing.T) {
	_, err := ReadDocumentFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
