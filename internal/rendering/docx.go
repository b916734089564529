package rendering

import (
	"io"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// Accent palette of the visual template.
const (
	colorPrimary   = "003366"
	colorSecondary = "505050"
	colorMuted     = "646464"
)

// Run sizes in half-points: name 26pt, title 13pt, section 12pt, body 11pt,
// small 10pt.
const (
	sizeName    = "52"
	sizeTitle   = "26"
	sizeSection = "24"
	sizeBody    = "22"
	sizeSmall   = "20"
)

// headerTableWidth is the two-column header width in twips (6.5in).
const headerTableWidth = 9360

// Generate renders the record's plan for the given labels and writes the
// document to outPath. The output file is only created after the plan is
// built, so a load-stage failure never leaves a partial document behind.
func Generate(plan *Plan, outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return &OutputError{Path: outPath, Cause: err}
	}

	if err := WriteDocx(plan, f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return &OutputError{Path: outPath, Cause: err}
	}
	return nil
}

// WriteDocx maps a render plan onto document formatting calls and writes the
// resulting .docx to w.
func WriteDocx(plan *Plan, w io.Writer) error {
	doc := docx.New().WithDefaultTheme()

	writeHeader(doc, plan.Header)
	for _, sec := range plan.Sections {
		writeSection(doc, sec)
	}

	if _, err := doc.WriteTo(w); err != nil {
		return &RenderError{Message: "failed to write document", Cause: err}
	}
	return nil
}

// writeHeader renders the identity block. With a photo it splits into a
// two-column table (identity left, photo right); otherwise the identity block
// is centered at full width.
func writeHeader(doc *docx.Docx, header Header) {
	if header.PhotoPath != "" {
		table := doc.AddTable(1, 2, headerTableWidth, nil)
		left := table.TableRows[0].TableCells[0]
		right := table.TableRows[0].TableCells[1]

		writeIdentity(identityWriter{cell: left}, header, "start")

		// An unreadable photo is not an error: the cell stays empty.
		photo := right.AddParagraph().Justification("end")
		_, _ = photo.AddInlineDrawingFrom(header.PhotoPath)
		return
	}

	writeIdentity(identityWriter{doc: doc}, header, "center")
}

// identityWriter abstracts where identity paragraphs land: the document body
// for the centered layout, the left table cell for the photo layout.
type identityWriter struct {
	doc  *docx.Docx
	cell *docx.WTableCell
}

func (iw identityWriter) addParagraph() *docx.Paragraph {
	if iw.cell != nil {
		return iw.cell.AddParagraph()
	}
	return iw.doc.AddParagraph()
}

func writeIdentity(iw identityWriter, header Header, justification string) {
	name := iw.addParagraph().Justification(justification)
	name.AddText(header.Name).Size(sizeName).Color(colorPrimary).Bold()

	title := iw.addParagraph().Justification(justification)
	title.AddText(header.Title).Size(sizeTitle).Color(colorSecondary)

	if header.ContactLine != "" {
		contact := iw.addParagraph().Justification(justification)
		contact.AddText(header.ContactLine).Size(sizeSmall)
	}
	if header.LinksLine != "" {
		links := iw.addParagraph().Justification(justification)
		links.AddText(header.LinksLine).Size(sizeSmall)
	}
}

// writeSection renders a section heading followed by its lines. The heading
// is bold, uppercase, accent-colored, with a thin rule beneath.
func writeSection(doc *docx.Docx, sec Section) {
	heading := doc.AddParagraph()
	heading.AddText(strings.ToUpper(sec.Heading)).
		Size(sizeSection).
		Color(colorPrimary).
		Bold().
		Underline("single")

	for _, line := range sec.Lines {
		writeLine(doc, line)
	}
}

func writeLine(doc *docx.Docx, line Line) {
	p := doc.AddParagraph()

	switch line.Kind {
	case LineSkill:
		p.AddText(line.Label + ": ").Size(sizeBody).Bold()
		p.AddText(line.Text).Size(sizeBody)
	case LineJobHeader:
		p.AddText(line.Label).Size(sizeBody).Bold()
		p.AddText(" | ").Size(sizeBody)
		p.AddText(line.Text).Size(sizeBody).Italic()
		p.AddText(" | " + line.Detail).Size(sizeBody)
	case LineDates:
		p.AddText(line.Text).Size(sizeSmall).Color(colorMuted).Italic()
	case LineBullet:
		p.AddText("• " + line.Text).Size(sizeBody)
	case LineDegree:
		p.AddText(line.Text).Size(sizeBody).Bold()
	case LineInstitution:
		p.AddText(line.Text).Size(sizeBody).Italic()
	default:
		p.AddText(line.Text).Size(sizeBody)
	}
}
