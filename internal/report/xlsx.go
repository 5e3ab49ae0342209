package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// WriteXLSX saves the document as a workbook: a summary sheet followed by
// one sheet per verification category, with one factor column per action.
func WriteXLSX(d *Document, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	header := []interface{}{"Verification", "Description", "Cases", "Governing case", "Effect"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(summarySheet, 1, 1, bold); err != nil {
		return err
	}
	for i, s := range d.Sections {
		row := []interface{}{s.Code, s.Description, len(s.Cases), "", ""}
		if gov, ok := s.GoverningCase(); ok {
			row[3], row[4] = gov.Label, gov.Effect
		}
		if err := setRow(f, summarySheet, i+2, row); err != nil {
			return err
		}
	}

	for _, s := range d.Sections {
		if len(s.Cases) == 0 {
			continue
		}
		if err := writeSection(f, s, bold); err != nil {
			return fmt.Errorf("sheet %s: %w", s.Code, err)
		}
	}
	return f.SaveAs(path)
}

func writeSection(f *excelize.File, s Section, bold int) error {
	if _, err := f.NewSheet(s.Code); err != nil {
		return err
	}
	// stable action columns, in order of first appearance
	var names []string
	col := map[string]int{}
	for _, c := range s.Cases {
		for _, t := range c.Terms {
			if _, ok := col[t.Action]; !ok {
				col[t.Action] = len(names)
				names = append(names, t.Action)
			}
		}
	}

	header := []interface{}{"#", "Combination", "Effect", "Leading"}
	for _, n := range names {
		header = append(header, n)
	}
	if err := setRow(f, s.Code, 1, header); err != nil {
		return err
	}
	if err := f.SetRowStyle(s.Code, 1, 1, bold); err != nil {
		return err
	}
	for i, c := range s.Cases {
		row := make([]interface{}, 4+len(names))
		row[0], row[1], row[2], row[3] = i+1, c.Label, c.Effect, c.Predominant
		for _, t := range c.Terms {
			row[4+col[t.Action]] = t.Factor
		}
		if err := setRow(f, s.Code, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
