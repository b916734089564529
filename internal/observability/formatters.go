// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-generator/internal/rendering"
	"github.com/jonathan/cv-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the loaded profile record.
func (p *Printer) PrintProfile(rec *types.ProfileRecord) {
	if rec == nil {
		return
	}

	var sb strings.Builder

	name := rec.Personal.Name
	if name == "" {
		name = "(unnamed)"
	}
	sb.WriteString(fmt.Sprintf("Name:   %s\n", name))
	if rec.Personal.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:  %s\n", rec.Personal.Title))
	}
	if rec.Personal.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:  %s\n", rec.Personal.Email))
	}
	sb.WriteString("\n")

	if rec.Summary != "" {
		sb.WriteString("Summary: present\n")
	}
	if len(rec.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skill categories: %d\n", len(rec.Skills)))
		count := min(len(rec.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", rec.Skills[i].Category))
		}
		if len(rec.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(rec.Skills)-maxItemsToShow))
		}
	}
	if len(rec.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(rec.Experience)))
	}
	if len(rec.Education) > 0 {
		sb.WriteString(fmt.Sprintf("Education entries: %d\n", len(rec.Education)))
	}
	if len(rec.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("Certifications: %d\n", len(rec.Certifications)))
	}
	if len(rec.Languages) > 0 {
		sb.WriteString(fmt.Sprintf("Languages: %d\n", len(rec.Languages)))
	}

	p.printBox("PROFILE RECORD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPlan outputs the section layout of a render plan.
func (p *Printer) PrintPlan(plan *rendering.Plan) {
	if plan == nil {
		return
	}

	var sb strings.Builder

	layout := "centered"
	if plan.Header.PhotoPath != "" {
		layout = "two-column (photo)"
	}
	sb.WriteString(fmt.Sprintf("Header: %s, layout: %s\n", plan.Header.Name, layout))

	if len(plan.Sections) == 0 {
		sb.WriteString("No sections (header only)")
	} else {
		sb.WriteString(fmt.Sprintf("Sections: %d\n", len(plan.Sections)))
		for _, sec := range plan.Sections {
			sb.WriteString(fmt.Sprintf("  • %s (%d lines)\n", sec.Heading, len(sec.Lines)))
		}
	}

	p.printBox("RENDER PLAN", strings.TrimSuffix(sb.String(), "\n"))
}
