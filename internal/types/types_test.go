package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		in   string
		want Template
	}{
		{"Modern", TemplateModern},
		{"Professional", TemplateProfessional},
		{"Minimal", TemplateMinimal},
		{"Creative", TemplateCreative},
		{"Executive", TemplateExecutive},
		{"", DefaultTemplate},
		{"bogus", DefaultTemplate},
		{"modern", DefaultTemplate},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTemplate(tt.in), "input %q", tt.in)
	}
}

func TestTemplate_Valid(t *testing.T) {
	for _, tpl := range AllTemplates() {
		assert.True(t, tpl.Valid())
	}
	assert.False(t, Template("").Valid())
	assert.False(t, Template("brutalist").Valid())
}

func TestNewEntryID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewEntryID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestClone_Independence(t *testing.T) {
	orig := StarterDocument()
	orig.Skills = []string{"Go", "SQL"}
	require.NotEmpty(t, orig.Experience)

	clone := orig.Clone()
	clone.Profile.Name = "Changed"
	clone.Skills[0] = "Rust"
	clone.Experience[0].Description[0] = "rewritten"

	assert.NotEqual(t, "Changed", orig.Profile.Name)
	assert.Equal(t, "Go", orig.Skills[0])
	assert.NotEqual(t, "rewritten", orig.Experience[0].Description[0])
}

func TestClone_Nil(t *testing.T) {
	var doc *ResumeDocument
	assert.Nil(t, doc.Clone())
}

func TestValidate_LanguageProficiency(t *testing.T) {
	doc := &ResumeDocument{
		Languages: []Language{{Name: "Spanish", Proficiency: "Fluent"}},
	}
	assert.NoError(t, doc.Validate())

	doc.Languages[0].Proficiency = "Conversational"
	assert.Error(t, doc.Validate())
}

func TestValidate_RequiresEntryIDs(t *testing.T) {
	doc := &ResumeDocument{
		Experience: []WorkExperience{{Company: "NoID Inc"}},
	}
	assert.Error(t, doc.Validate())

	doc.Experience[0].ID = NewEntryID()
	assert.NoError(t, doc.Validate())
}

func TestStarterDocument_IsValid(t *testing.T) {
	doc := StarterDocument()
	require.NoError(t, doc.Validate())
	assert.NotEmpty(t, doc.Profile.Name)
	assert.NotEmpty(t, doc.Experience)
	assert.NotEmpty(t, doc.Education)
	assert.NotEmpty(t, doc.Skills)
}
