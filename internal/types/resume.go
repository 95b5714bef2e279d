// Package types defines the resume document model shared across the editing
// session, scorer, renderer and export pipeline.
package types

import (
	"github.com/google/uuid"
)

// Profile holds the resume header fields. All fields are free-form strings;
// empty values are rendered with neutral placeholders, never rejected.
type Profile struct {
	Name     string `json:"name" yaml:"name"`
	Title    string `json:"title" yaml:"title"`
	Email    string `json:"email" yaml:"email"`
	Phone    string `json:"phone" yaml:"phone"`
	Location string `json:"location" yaml:"location"`
	LinkedIn string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	Website  string `json:"website,omitempty" yaml:"website,omitempty"`
	Summary  string `json:"summary" yaml:"summary"`
}

// WorkExperience is a single employment entry. Dates are free-form strings;
// "Present" is a literal allowed value, not a parsed date.
type WorkExperience struct {
	ID          string   `json:"id" yaml:"id" validate:"required"`
	Company     string   `json:"company" yaml:"company"`
	Position    string   `json:"position" yaml:"position"`
	StartDate   string   `json:"start_date" yaml:"start_date"`
	EndDate     string   `json:"end_date" yaml:"end_date"`
	Location    string   `json:"location,omitempty" yaml:"location,omitempty"`
	Description []string `json:"description" yaml:"description"`
	Highlights  []string `json:"highlights,omitempty" yaml:"highlights,omitempty"`
}

// Education is a single education entry.
type Education struct {
	ID           string   `json:"id" yaml:"id" validate:"required"`
	Institution  string   `json:"institution" yaml:"institution"`
	Degree       string   `json:"degree" yaml:"degree"`
	Field        string   `json:"field" yaml:"field"`
	StartDate    string   `json:"start_date" yaml:"start_date"`
	EndDate      string   `json:"end_date" yaml:"end_date"`
	Location     string   `json:"location,omitempty" yaml:"location,omitempty"`
	GPA          string   `json:"gpa,omitempty" yaml:"gpa,omitempty"`
	Courses      []string `json:"courses,omitempty" yaml:"courses,omitempty"`
	Achievements []string `json:"achievements,omitempty" yaml:"achievements,omitempty"`
}

// Project is a single project entry.
type Project struct {
	ID           string   `json:"id" yaml:"id" validate:"required"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	URL          string   `json:"url,omitempty" yaml:"url,omitempty"`
	StartDate    string   `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty" yaml:"end_date,omitempty"`
}

// Certification is a single certification entry.
type Certification struct {
	ID         string `json:"id" yaml:"id" validate:"required"`
	Name       string `json:"name" yaml:"name"`
	Issuer     string `json:"issuer" yaml:"issuer"`
	Date       string `json:"date" yaml:"date"`
	URL        string `json:"url,omitempty" yaml:"url,omitempty"`
	Expiration string `json:"expiration,omitempty" yaml:"expiration,omitempty"`
}

// Proficiency levels for spoken languages.
const (
	ProficiencyBeginner     = "Beginner"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyAdvanced     = "Advanced"
	ProficiencyFluent       = "Fluent"
	ProficiencyNative       = "Native"
)

// Language is a spoken-language entry with a closed proficiency set.
type Language struct {
	Name        string `json:"name" yaml:"name"`
	Proficiency string `json:"proficiency" yaml:"proficiency" validate:"oneof=Beginner Intermediate Advanced Fluent Native"`
}

// ResumeDocument is the root aggregate for one editing session. The session
// owns the single instance; the scorer and renderer only read it.
type ResumeDocument struct {
	Profile        Profile          `json:"profile" yaml:"profile"`
	Experience     []WorkExperience `json:"experience" yaml:"experience" validate:"dive"`
	Education      []Education      `json:"education" yaml:"education" validate:"dive"`
	Skills         []string         `json:"skills" yaml:"skills"`
	Projects       []Project        `json:"projects,omitempty" yaml:"projects,omitempty" validate:"dive"`
	Certifications []Certification  `json:"certifications,omitempty" yaml:"certifications,omitempty" validate:"dive"`
	Languages      []Language       `json:"languages,omitempty" yaml:"languages,omitempty" validate:"dive"`
}

// NewEntryID generates a collection entry id. IDs are unique for the life of
// the document and are never recycled after deletion, so a stale id held by
// the UI can only ever miss, never alias a newer entry.
func NewEntryID() string {
	return uuid.NewString()
}

// Clone returns a deep copy of the document so callers can hand out
// snapshots without exposing the session's mutable instance.
func (d *ResumeDocument) Clone() *ResumeDocument {
	if d == nil {
		return nil
	}
	out := *d
	out.Experience = append([]WorkExperience(nil), d.Experience...)
	for i := range out.Experience {
		out.Experience[i].Description = append([]string(nil), d.Experience[i].Description...)
		out.Experience[i].Highlights = append([]string(nil), d.Experience[i].Highlights...)
	}
	out.Education = append([]Education(nil), d.Education...)
	for i := range out.Education {
		out.Education[i].Courses = append([]string(nil), d.Education[i].Courses...)
		out.Education[i].Achievements = append([]string(nil), d.Education[i].Achievements...)
	}
	out.Skills = append([]string(nil), d.Skills...)
	out.Projects = append([]Project(nil), d.Projects...)
	for i := range out.Projects {
		out.Projects[i].Technologies = append([]string(nil), d.Projects[i].Technologies...)
	}
	out.Certifications = append([]Certification(nil), d.Certifications...)
	out.Languages = append([]Language(nil), d.Languages...)
	return &out
}
