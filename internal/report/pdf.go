package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

// WritePDF renders a printable calculation note: the run summary and, for
// each category with cases, its governing case followed by the case list.
func WritePDF(d *Document, author string, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(d.Project+" load combinations", false)
	pdf.SetAuthor(author, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Load combinations: %s", d.Project))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("National annex: %s", d.Annex))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", d.Generated.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("%d passes, %d combinations, %d weighted cases, %d skipped", d.Passes, d.Combinations, d.Cases(), d.Skipped))
	pdf.Ln(10)

	if d.Structure != "" || len(d.Findings) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Hierarchy notes")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		if d.Structure != "" {
			pdf.MultiCell(0, 5, d.Structure, "", "L", false)
		}
		for _, f := range d.Findings {
			pdf.MultiCell(0, 5, f, "", "L", false)
		}
		pdf.Ln(4)
	}

	for _, s := range d.Sections {
		if len(s.Cases) == 0 {
			continue
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("%s  %s", s.Code, s.Description))
		pdf.Ln(8)

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(12, 6, "#", "1", 0, "C", true, 0, "")
		pdf.CellFormat(148, 6, "Combination", "1", 0, "L", true, 0, "")
		pdf.CellFormat(30, 6, "Effect", "1", 1, "R", true, 0, "")

		pdf.SetFont("Helvetica", "", 9)
		for i, c := range s.Cases {
			fill := i == s.Governing
			pdf.CellFormat(12, 5, fmt.Sprintf("%d", i+1), "1", 0, "C", fill, 0, "")
			pdf.CellFormat(148, 5, c.Label, "1", 0, "L", fill, 0, "")
			pdf.CellFormat(30, 5, fmt.Sprintf("%.2f", c.Effect), "1", 1, "R", fill, 0, "")
		}
		if gov, ok := s.GoverningCase(); ok {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.Cell(0, 6, fmt.Sprintf("Governing: case %d, effect %.2f", s.Governing+1, gov.Effect))
			pdf.Ln(8)
		}
	}

	if err := pdf.Output(w); err != nil {
		return err
	}
	return nil
}
