package types

import "github.com/go-playground/validator/v10"

// Validate checks structural invariants of the document: every collection
// entry carries an id and language proficiencies stay within the closed set.
// Free-form string content is deliberately not validated.
func (d *ResumeDocument) Validate() error {
	validate := validator.New()
	return validate.Struct(d)
}

// Validate validates a single experience entry.
func (e *WorkExperience) Validate() error {
	validate := validator.New()
	return validate.Struct(e)
}

// Validate validates a single education entry.
func (e *Education) Validate() error {
	validate := validator.New()
	return validate.Struct(e)
}

// Validate validates a single language entry.
func (l *Language) Validate() error {
	validate := validator.New()
	return validate.Struct(l)
}
