package project

import (
	"bytes"
	"testing"

	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestImportXLSX(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"action", "type", "load", "value", "description"},
		{"G", "permanent", "slab", 40, "Dead load"},
		{"G", "permanent", "walls", 5},
		{},
		{"T", "temperature", "gradient", -3.5},
	})
	entries, err := ImportXLSX(buf)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "Dead load", entries[0].Description)
	require.Equal(t, []action.Load{{Name: "slab", Value: 40}, {Name: "walls", Value: 5}}, entries[0].Loads)
	require.Equal(t, -3.5, entries[1].Loads[0].Value)

	p := loadDefault(t)
	_, err = p.Regenerate(nil)
	require.NoError(t, err)
	created, err := p.MergeActions(entries)
	require.NoError(t, err)
	require.Equal(t, 1, created)
	require.Nil(t, p.Results())

	g, _ := p.Catalog.ByName("G")
	require.Equal(t, 57.0+45.0, g.Characteristic())
	temp, ok := p.Catalog.ByName("T")
	require.True(t, ok)
	require.Equal(t, action.CategoryVariable, temp.Category)
}

func TestImportXLSXErrors(t *testing.T) {
	_, err := ImportXLSX(bytes.NewReader([]byte("not a workbook")))
	require.Error(t, err)

	_, err = ImportXLSX(workbook(t, [][]interface{}{{"action", "type", "load", "value"}}))
	require.Error(t, err)

	_, err = ImportXLSX(workbook(t, [][]interface{}{
		{"action", "type", "load", "value"},
		{"G", "permanent", "slab", "heavy"},
	}))
	require.Error(t, err)

	entries, err := ImportXLSX(workbook(t, [][]interface{}{
		{"action", "type", "load", "value"},
		{"X", "lava", "l", 1},
	}))
	require.NoError(t, err)
	_, err = loadDefault(t).MergeActions(entries)
	require.Error(t, err)
}
