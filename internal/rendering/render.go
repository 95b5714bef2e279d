package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// RegionID is the stable id of the rendered root node. The export pipeline
// addresses the preview through this identifier.
const RegionID = "resume-preview"

// Placeholder text substituted for empty profile fields so no template ever
// renders a blank header slot.
const (
	PlaceholderName     = "Your Name"
	PlaceholderTitle    = "Professional Title"
	PlaceholderEmail    = "Email not provided"
	PlaceholderPhone    = "Phone not provided"
	PlaceholderLocation = "Location not provided"
)

// templateFiles maps each layout variant to its embedded template file.
var templateFiles = map[types.Template]string{
	types.TemplateModern:       "templates/modern.html.tmpl",
	types.TemplateProfessional: "templates/professional.html.tmpl",
	types.TemplateMinimal:      "templates/minimal.html.tmpl",
	types.TemplateCreative:     "templates/creative.html.tmpl",
	types.TemplateExecutive:    "templates/executive.html.tmpl",
}

// viewData is the shape every layout template receives. Profile fields are
// pre-substituted with placeholders so templates stay free of fallback logic.
type viewData struct {
	RegionID string
	Name     string
	Title    string
	Email    string
	Phone    string
	Location string
	LinkedIn string
	Website  string
	Summary  string

	Experience     []types.WorkExperience
	Education      []types.Education
	Skills         []string
	Projects       []types.Project
	Certifications []types.Certification
	Languages      []types.Language
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
}

// Render produces the HTML preview for doc using the given layout variant.
// An unknown or empty template id falls back to the default variant rather
// than failing.
func Render(doc *types.ResumeDocument, tpl types.Template) (string, error) {
	if doc == nil {
		return "", &RenderError{Message: "document is required"}
	}
	if !tpl.Valid() {
		tpl = types.DefaultTemplate
	}

	name := templateFiles[tpl]
	parsed, err := template.New(strings.TrimPrefix(name, "templates/")).
		Funcs(templateFuncs).
		ParseFS(templateFS, name)
	if err != nil {
		return "", &TemplateError{
			Message: fmt.Sprintf("failed to parse layout %s", tpl),
			Cause:   err,
		}
	}

	var out strings.Builder
	if err := parsed.Execute(&out, buildViewData(doc)); err != nil {
		return "", &RenderError{
			Message: fmt.Sprintf("failed to execute layout %s", tpl),
			Cause:   err,
		}
	}
	return out.String(), nil
}

func buildViewData(doc *types.ResumeDocument) viewData {
	return viewData{
		RegionID: RegionID,
		Name:     orPlaceholder(doc.Profile.Name, PlaceholderName),
		Title:    orPlaceholder(doc.Profile.Title, PlaceholderTitle),
		Email:    orPlaceholder(doc.Profile.Email, PlaceholderEmail),
		Phone:    orPlaceholder(doc.Profile.Phone, PlaceholderPhone),
		Location: orPlaceholder(doc.Profile.Location, PlaceholderLocation),
		LinkedIn: strings.TrimSpace(doc.Profile.LinkedIn),
		Website:  strings.TrimSpace(doc.Profile.Website),
		Summary:  strings.TrimSpace(doc.Profile.Summary),

		Experience:     doc.Experience,
		Education:      doc.Education,
		Skills:         doc.Skills,
		Projects:       doc.Projects,
		Certifications: doc.Certifications,
		Languages:      doc.Languages,
	}
}

func orPlaceholder(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}
