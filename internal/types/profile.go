// Package types provides type definitions for the structured CV data consumed by the generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// ProfileRecord is the complete input record describing one person's CV content.
// Every field is optional; an empty field omits the corresponding document
// section. The record is read-only for the duration of a render.
type ProfileRecord struct {
	Personal       Personal    `json:"personal"`
	Summary        string      `json:"summary,omitempty"`
	Skills         SkillSet    `json:"skills,omitempty"`
	Experience     []Job       `json:"experience,omitempty"`
	Education      []Education `json:"education,omitempty"`
	Certifications []string    `json:"certifications,omitempty"`
	Languages      []Language  `json:"languages,omitempty"`
}

// Personal holds the identity and contact fields rendered in the header.
type Personal struct {
	Name      string `json:"name,omitempty"`
	Title     string `json:"title,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	GitHub    string `json:"github,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

// Job is a single professional experience entry.
type Job struct {
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Location     string   `json:"location,omitempty"`
	Dates        string   `json:"dates,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education is a single education entry. Details, when present, renders as
// one bullet under the institution line.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Dates       string `json:"dates,omitempty"`
	Details     string `json:"details,omitempty"`
}

// Language pairs a language name with a proficiency level.
type Language struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

// Validate lints the record using the validator. Only field formats are
// checked (e.g. email); field absence is always valid.
func (r *ProfileRecord) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
