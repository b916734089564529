package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/cv-generator/internal/locale"
	"github.com/jonathan/cv-generator/internal/rendering"
	"github.com/jonathan/cv-generator/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rec := &types.ProfileRecord{
		Personal: types.Personal{
			Name:  "Jane Doe",
			Title: "Senior Engineer",
			Email: "jane@example.com",
		},
		Summary: "Backend engineer.",
		Skills: types.SkillSet{
			{Category: "Languages", Skills: "Go, Python"},
			{Category: "Cloud", Skills: "AWS"},
		},
		Experience:     []types.Job{{Title: "Engineer", Company: "Acme"}},
		Certifications: []string{"AWS SA"},
	}

	p.PrintProfile(rec)
	output := buf.String()

	assert.Contains(t, output, "PROFILE RECORD")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "Senior Engineer")
	assert.Contains(t, output, "Skill categories: 2")
	assert.Contains(t, output, "Languages")
	assert.Contains(t, output, "Experience entries: 1")
	assert.Contains(t, output, "Certifications: 1")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintProfile_UnnamedRecord(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.ProfileRecord{})
	assert.Contains(t, buf.String(), "(unnamed)")
}

func TestPrintPlan(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	plan := rendering.BuildPlan(&types.ProfileRecord{
		Personal: types.Personal{Name: "Jane Doe"},
		Summary:  "Engineer.",
	}, locale.ForCode("en"), "")

	p.PrintPlan(plan)
	output := buf.String()

	assert.Contains(t, output, "RENDER PLAN")
	assert.Contains(t, output, "JANE DOE")
	assert.Contains(t, output, "layout: centered")
	assert.Contains(t, output, "Professional Summary")
}

func TestPrintPlan_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	plan := rendering.BuildPlan(&types.ProfileRecord{}, locale.ForCode("en"), "")

	p.PrintPlan(plan)
	assert.Contains(t, buf.String(), "No sections (header only)")
}

func TestPrintPlan_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPlan(nil)
	assert.Empty(t, buf.String())
}
