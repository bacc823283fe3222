package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/mithrel/cardstock/internal/config"
	"github.com/mithrel/cardstock/internal/transform"
	"github.com/mithrel/cardstock/pkg/models"
)

const pageMargin = 0.2 // inches

// pdfPalette is the fixed color set for one theme.
type pdfPalette struct {
	bg   [3]int
	text [3]int
	tags [3]int
}

func paletteFor(t models.Theme) pdfPalette {
	if t == models.ThemeDark {
		return pdfPalette{
			bg:   [3]int{45, 45, 48},
			text: [3]int{255, 255, 255},
			tags: [3]int{170, 170, 170},
		}
	}
	return pdfPalette{
		bg:   [3]int{255, 255, 255},
		text: [3]int{0, 0, 0},
		tags: [3]int{102, 102, 102},
	}
}

// WritePDF lays the card into a paginated document sized to the
// physical card dimensions and writes it to path. The front side forms
// page 1; a non-empty back side forms page 2 with its own extracted
// title and tags.
func WritePDF(path string, c models.Card, s config.Settings) error {
	w, h := s.Orientation.PageSize(s.Size)

	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "in",
		Size:    fpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)

	renderSide(pdf, transform.Extract(c.Front), models.SideFront, s)
	if c.HasBack() {
		renderSide(pdf, transform.Extract(c.Back), models.SideBack, s)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}
	return nil
}

// renderSide adds one page and flows a side's content onto it.
func renderSide(pdf *fpdf.Fpdf, content transform.Content, side models.Side, s config.Settings) {
	pal := paletteFor(s.Theme)
	w, h := s.Orientation.PageSize(s.Size)

	pdf.AddPage()

	// Page background; the margins stay clear of it for printing but
	// the card face itself is themed.
	pdf.SetFillColor(pal.bg[0], pal.bg[1], pal.bg[2])
	pdf.Rect(0, 0, w, h, "F")

	if s.ShowSideIndicator {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(153, 153, 153)
		pdf.CellFormat(0, lineHeight(8), side.Indicator(), "", 1, "R", false, 0, "")
	}

	pdf.SetTextColor(pal.text[0], pal.text[1], pal.text[2])

	if content.Title != models.DefaultTitle {
		pdf.SetFont("Helvetica", "B", float64(s.TitleFontSize))
		pdf.MultiCell(0, lineHeight(s.TitleFontSize), content.Title, "", "C", false)
		pdf.Ln(0.1)
	}

	for _, p := range transform.Paragraphs(content.Body) {
		writeParagraph(pdf, p, s, pal)
	}

	if content.Tags != "" {
		pdf.Ln(0.1)
		pdf.SetFont("Helvetica", "", float64(s.TagsFontSize))
		pdf.SetTextColor(pal.tags[0], pal.tags[1], pal.tags[2])
		pdf.MultiCell(0, lineHeight(s.TagsFontSize), content.Tags, "", "L", false)
	}
}

// writeParagraph emits one layout unit: a bullet line, or a run of
// styled spans followed by a paragraph break.
func writeParagraph(pdf *fpdf.Fpdf, p transform.Paragraph, s config.Settings, pal pdfPalette) {
	ht := lineHeight(s.ContentFontSize)
	pdf.SetTextColor(pal.text[0], pal.text[1], pal.text[2])

	if p.Bullet {
		pdf.SetFont("Helvetica", "", float64(s.ContentFontSize))
		pdf.MultiCell(0, ht, transform.Bullet+p.Spans[0].Text, "", "L", false)
		return
	}

	for _, span := range p.Spans {
		family, style := "Helvetica", ""
		switch span.Style {
		case transform.StyleBold:
			style = "B"
		case transform.StyleItalic:
			style = "I"
		case transform.StyleCode:
			family = "Courier"
		}
		pdf.SetFont(family, style, float64(s.ContentFontSize))
		pdf.Write(ht, span.Text)
	}
	pdf.Ln(ht)
	pdf.Ln(0.05)
}

// lineHeight converts a point size to a line height in inches with a
// little leading.
func lineHeight(points int) float64 {
	return float64(points) / 72 * 1.4
}
