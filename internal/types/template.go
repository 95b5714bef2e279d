package types

// Template identifies one of the closed set of resume layout variants.
type Template string

// Known layout variants. The set is closed: dispatch is exhaustive over
// these values and anything else falls back to TemplateModern.
const (
	TemplateModern       Template = "Modern"
	TemplateProfessional Template = "Professional"
	TemplateMinimal      Template = "Minimal"
	TemplateCreative     Template = "Creative"
	TemplateExecutive    Template = "Executive"
)

// DefaultTemplate is the fallback for unknown or omitted template ids.
const DefaultTemplate = TemplateModern

// AllTemplates lists every variant in display order.
func AllTemplates() []Template {
	return []Template{
		TemplateModern,
		TemplateProfessional,
		TemplateMinimal,
		TemplateCreative,
		TemplateExecutive,
	}
}

// ParseTemplate maps a stored identifier to a Template, falling back to the
// default for unknown or empty input instead of failing.
func ParseTemplate(s string) Template {
	for _, t := range AllTemplates() {
		if string(t) == s {
			return t
		}
	}
	return DefaultTemplate
}

// Valid reports whether t is a member of the closed variant set.
func (t Template) Valid() bool {
	for _, known := range AllTemplates() {
		if t == known {
			return true
		}
	}
	return false
}
