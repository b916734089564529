// Package rendering maps a profile record to a styled .docx CV. Rendering is
// split into two stages: BuildPlan produces the ordered, presence-gated block
// sequence, and WriteDocx maps that plan onto document formatting calls.
package rendering

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/cv-generator/internal/locale"
	"github.com/jonathan/cv-generator/internal/types"
)

// Placeholders used when the header identity fields are absent.
const (
	placeholderName  = "Your Name"
	placeholderTitle = "Professional Title"
)

// fieldSeparator joins contact and link fragments on one header line.
const fieldSeparator = "  |  "

// groupSeparator joins the certifications and languages label-groups.
const groupSeparator = "  •  "

// LineKind discriminates the body line styles within a section.
type LineKind string

const (
	// LineBody is a plain body-text paragraph.
	LineBody LineKind = "body"
	// LineSkill is a bold category label followed by the skill string.
	LineSkill LineKind = "skill"
	// LineJobHeader is "<title> | <company> | <location>".
	LineJobHeader LineKind = "job_header"
	// LineDates is a muted italic date range.
	LineDates LineKind = "dates"
	// LineBullet is an indented bullet point.
	LineBullet LineKind = "bullet"
	// LineDegree is a bold degree name.
	LineDegree LineKind = "degree"
	// LineInstitution is an italic "<institution> | <dates>" line.
	LineInstitution LineKind = "institution"
)

// Line is one rendered line of a section.
type Line struct {
	Kind LineKind
	// Label is the bold lead-in: skill category or job title.
	Label string
	// Text is the body of the line.
	Text string
	// Detail carries the trailing fragment of a job header (the location).
	Detail string
}

// Section is one named, independently omittable block of the document.
type Section struct {
	Heading string
	Lines   []Line
}

// Header is the always-rendered identity block. PhotoPath is non-empty only
// when the photo file exists, selecting the two-column layout; otherwise the
// identity block is centered at full width.
type Header struct {
	Name        string
	Title       string
	ContactLine string
	LinksLine   string
	PhotoPath   string
}

// Plan is the ordered block sequence of one rendered document. Building it is
// deterministic: the same record, labels and photo state always produce an
// identical plan.
type Plan struct {
	Header   Header
	Sections []Section
}

// BuildPlan maps a profile record to a render plan. Missing or empty fields
// omit their section entirely; no error paths exist here. The record is never
// mutated.
func BuildPlan(rec *types.ProfileRecord, labels locale.Labels, photoPath string) *Plan {
	plan := &Plan{
		Header: buildHeader(rec.Personal, photoPath),
	}

	if sec, ok := buildSummary(rec.Summary, labels); ok {
		plan.Sections = append(plan.Sections, sec)
	}
	if sec, ok := buildSkills(rec.Skills, labels); ok {
		plan.Sections = append(plan.Sections, sec)
	}
	if sec, ok := buildExperience(rec.Experience, labels); ok {
		plan.Sections = append(plan.Sections, sec)
	}
	if sec, ok := buildEducation(rec.Education, labels); ok {
		plan.Sections = append(plan.Sections, sec)
	}
	if sec, ok := buildCertificationsLanguages(rec.Certifications, rec.Languages, labels); ok {
		plan.Sections = append(plan.Sections, sec)
	}

	return plan
}

func buildHeader(personal types.Personal, photoPath string) Header {
	name := personal.Name
	if name == "" {
		name = placeholderName
	}
	title := personal.Title
	if title == "" {
		title = placeholderTitle
	}

	header := Header{
		Name:        strings.ToUpper(name),
		Title:       title,
		ContactLine: joinPresent(personal.Email, personal.Phone, personal.Location),
		LinksLine:   joinPresent(personal.GitHub, personal.LinkedIn, personal.Portfolio),
	}

	// A photo path that does not resolve to an existing file is not an
	// error: the centered layout is used instead.
	if photoPath != "" {
		if _, err := os.Stat(photoPath); err == nil {
			header.PhotoPath = photoPath
		}
	}

	return header
}

// joinPresent joins the non-empty fragments with the field separator.
func joinPresent(fragments ...string) string {
	parts := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		if fragment != "" {
			parts = append(parts, fragment)
		}
	}
	return strings.Join(parts, fieldSeparator)
}

func buildSummary(summary string, labels locale.Labels) (Section, bool) {
	if summary == "" {
		return Section{}, false
	}
	return Section{
		Heading: labels.ProfessionalSummary,
		Lines:   []Line{{Kind: LineBody, Text: summary}},
	}, true
}

func buildSkills(skills types.SkillSet, labels locale.Labels) (Section, bool) {
	if len(skills) == 0 {
		return Section{}, false
	}
	sec := Section{Heading: labels.TechnicalSkills}
	for _, category := range skills {
		sec.Lines = append(sec.Lines, Line{
			Kind:  LineSkill,
			Label: category.Category,
			Text:  category.Skills,
		})
	}
	return sec, true
}

func buildExperience(jobs []types.Job, labels locale.Labels) (Section, bool) {
	if len(jobs) == 0 {
		return Section{}, false
	}
	sec := Section{Heading: labels.ProfessionalExperience}
	for _, job := range jobs {
		sec.Lines = append(sec.Lines, Line{
			Kind:   LineJobHeader,
			Label:  job.Title,
			Text:   job.Company,
			Detail: job.Location,
		})
		sec.Lines = append(sec.Lines, Line{Kind: LineDates, Text: job.Dates})
		for _, achievement := range job.Achievements {
			sec.Lines = append(sec.Lines, Line{Kind: LineBullet, Text: achievement})
		}
	}
	return sec, true
}

func buildEducation(entries []types.Education, labels locale.Labels) (Section, bool) {
	if len(entries) == 0 {
		return Section{}, false
	}
	sec := Section{Heading: labels.Education}
	for _, entry := range entries {
		sec.Lines = append(sec.Lines, Line{Kind: LineDegree, Text: entry.Degree})
		sec.Lines = append(sec.Lines, Line{
			Kind: LineInstitution,
			Text: fmt.Sprintf("%s | %s", entry.Institution, entry.Dates),
		})
		if entry.Details != "" {
			sec.Lines = append(sec.Lines, Line{Kind: LineBullet, Text: entry.Details})
		}
	}
	return sec, true
}

func buildCertificationsLanguages(certs []string, languages []types.Language, labels locale.Labels) (Section, bool) {
	if len(certs) == 0 && len(languages) == 0 {
		return Section{}, false
	}

	parts := make([]string, 0, 2)
	if len(certs) > 0 {
		parts = append(parts, fmt.Sprintf("%s: %s", labels.Certifications, strings.Join(certs, ", ")))
	}
	if len(languages) > 0 {
		rendered := make([]string, len(languages))
		for i, lang := range languages {
			rendered[i] = fmt.Sprintf("%s (%s)", lang.Language, lang.Level)
		}
		parts = append(parts, fmt.Sprintf("%s: %s", labels.Languages, strings.Join(rendered, ", ")))
	}

	return Section{
		Heading: labels.CertificationsLanguages,
		Lines:   []Line{{Kind: LineBody, Text: strings.Join(parts, groupSeparator)}},
	}, true
}
