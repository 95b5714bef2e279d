package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-studio/internal/types"
)

func TestValidateDocumentJSON_AcceptsStarterDocument(t *testing.T) {
	data, err := json.Marshal(types.StarterDocument())
	require.NoError(t, err)

	assert.NoError(t, ValidateDocumentJSON(data))
}

func TestValidateDocumentJSON_MissingRequiredSections(t *testing.T) {
	err := ValidateDocumentJSON([]byte(`{"profile": {"name": "Casey"}}`))
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.NotEmpty(t, valErr.Errors)
	assert.Contains(t, valErr.Error(), "experience")
}

func TestValidateDocumentJSON_RejectsUnknownFields(t *testing.T) {
	doc := `{
		"profile": {"name": "Casey", "favorite_color": "teal"},
		"experience": [], "education": [], "skills": []
	}`

	err := ValidateDocumentJSON([]byte(doc))
	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestValidateDocumentJSON_RejectsEmptyEntryID(t *testing.T) {
	doc := `{
		"profile": {},
		"experience": [{"id": ""}],
		"education": [], "skills": []
	}`

	err := ValidateDocumentJSON([]byte(doc))
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestValidateDocumentJSON_RejectsInvalidProficiency(t *testing.T) {
	doc := `{
		"profile": {}, "experience": [], "education": [], "skills": [],
		"languages": [{"name": "Esperanto", "proficiency": "Legendary"}]
	}`

	err := ValidateDocumentJSON([]byte(doc))
	var valErr *ValidationError
	assert.ErrorAs(t, err, &valErr)
}

func TestValidateDocumentJSON_MalformedJSON(t *testing.T) {
	err := ValidateDocumentJSON([]byte(`{not json`))
	assert.Error(t, err)
}
