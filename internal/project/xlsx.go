package project

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/xuri/excelize/v2"
)

// ImportXLSX reads action loads from the first sheet of a workbook.
// Expected columns, after one header row: action name, type, load name,
// load value and an optional description. Rows sharing an action name add
// loads to the same entry; blank rows are skipped.
func ImportXLSX(r io.Reader) ([]ActionEntry, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("invalid workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s has no action rows", sheet)
	}

	var entries []ActionEntry
	index := map[string]int{}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) < 4 {
			return nil, fmt.Errorf("row %d: expected name, type, load and value", i+1)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid load value %q", i+1, row[3])
		}
		name := strings.TrimSpace(row[0])
		k, ok := index[name]
		if !ok {
			k = len(entries)
			index[name] = k
			entries = append(entries, ActionEntry{Name: name, Type: strings.TrimSpace(row[1])})
		}
		if len(row) > 4 && entries[k].Description == "" {
			entries[k].Description = strings.TrimSpace(row[4])
		}
		entries[k].Loads = append(entries[k].Loads, action.Load{Name: strings.TrimSpace(row[2]), Value: value})
	}
	return entries, nil
}

// MergeActions adds imported entries to the catalog. Loads of an entry
// naming an existing action are appended to it; its type is left alone.
// It returns how many actions were created.
func (p *Project) MergeActions(entries []ActionEntry) (int, error) {
	created := 0
	for _, e := range entries {
		a, ok := p.Catalog.ByName(e.Name)
		if !ok {
			var err error
			if a, err = p.Catalog.Add(e.Name, action.Type(e.Type)); err != nil {
				return created, fmt.Errorf("action %s: %w", e.Name, err)
			}
			a.Description = e.Description
			created++
		}
		for _, l := range e.Loads {
			if err := p.Catalog.AddLoad(a.ID, l); err != nil {
				return created, err
			}
		}
		p.invalidate()
	}
	return created, nil
}
