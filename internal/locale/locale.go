// Package locale provides the static section-label tables for the supported
// output languages. This is table-driven text substitution, not translation.
package locale

// Labels holds the section headings for one output language.
type Labels struct {
	ProfessionalSummary     string
	TechnicalSkills         string
	ProfessionalExperience  string
	Education               string
	CertificationsLanguages string
	Certifications          string
	Languages               string
}

// Default is the fallback language code for unsupported codes.
const Default = "en"

var tables = map[string]Labels{
	"en": {
		ProfessionalSummary:     "Professional Summary",
		TechnicalSkills:         "Technical Skills",
		ProfessionalExperience:  "Professional Experience",
		Education:               "Education",
		CertificationsLanguages: "Certifications & Languages",
		Certifications:          "Certifications",
		Languages:               "Languages",
	},
	"es": {
		ProfessionalSummary:     "Resumen Profesional",
		TechnicalSkills:         "Habilidades Técnicas",
		ProfessionalExperience:  "Experiencia Profesional",
		Education:               "Educación",
		CertificationsLanguages: "Certificaciones e Idiomas",
		Certifications:          "Certificaciones",
		Languages:               "Idiomas",
	},
}

// ForCode returns the label table for a language code, falling back to the
// default language for unknown codes.
func ForCode(code string) Labels {
	if labels, ok := tables[code]; ok {
		return labels
	}
	return tables[Default]
}

// Supported reports whether code has a label table.
func Supported(code string) bool {
	_, ok := tables[code]
	return ok
}

// Codes returns the supported language codes in stable order.
func Codes() []string {
	return []string{"en", "es"}
}
