package report

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/alexiusacademia/gocomb/internal/ponderation"
	"github.com/alexiusacademia/gocomb/internal/project"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func generated(t *testing.T) (*project.Project, *Document) {
	t.Helper()
	p, err := project.FromYAML([]byte(project.Default("office")))
	require.NoError(t, err)
	_, err = p.Regenerate(nil)
	require.NoError(t, err)
	d, err := Build(p)
	require.NoError(t, err)
	return p, d
}

func TestBuildRequiresResults(t *testing.T) {
	p := project.New("x", action.AnnexEU)
	_, err := Build(p)
	require.ErrorIs(t, err, ErrNotGenerated)
}

func TestBuildMatchesBuilder(t *testing.T) {
	p, d := generated(t)
	res := p.Results()
	require.Equal(t, res.Cases.Count(), d.Cases())
	require.Len(t, d.Sections, len(ponderation.Verifications))

	_, effect, ok := res.Cases.Governing(ponderation.ULSStructural)
	require.True(t, ok)
	str, ok := d.Section("ULS-STR")
	require.True(t, ok)
	gov, ok := str.GoverningCase()
	require.True(t, ok)
	require.InDelta(t, effect, gov.Effect, 1e-9)
	require.Equal(t, "Q", gov.Predominant)

	acc, ok := d.Section("ULS-ACC")
	require.True(t, ok)
	require.Equal(t, -1, acc.Governing)
	_, ok = acc.GoverningCase()
	require.False(t, ok)
}

func TestTables(t *testing.T) {
	p, d := generated(t)

	var buf bytes.Buffer
	Summary(&buf, d)
	require.Contains(t, buf.String(), "ULS-STR")
	require.Contains(t, buf.String(), "SLS-QP")

	buf.Reset()
	str, _ := d.Section("ULS-STR")
	Cases(&buf, str)
	require.Equal(t, 1, strings.Count(buf.String(), "GOVERNS"))

	buf.Reset()
	Actions(&buf, p.Catalog)
	require.Contains(t, buf.String(), "imposed-b")

	buf.Reset()
	Coefficients(&buf, action.AnnexFR)
	require.Contains(t, buf.String(), "groundwater")

	tree := Tree(p)
	for _, name := range []string{"design", "gravity", "variable", "climatic", "W"} {
		require.Contains(t, tree, name)
	}
	require.Less(t, strings.Index(tree, "design"), strings.Index(tree, "gravity"))
}

func TestJSON(t *testing.T) {
	_, d := generated(t)
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, d))

	var back Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, d.Cases(), back.Cases())
	require.Equal(t, "office", back.Project)
}

func TestWriteXLSX(t *testing.T) {
	_, d := generated(t)
	path := filepath.Join(t.TempDir(), "cases.xlsx")
	require.NoError(t, WriteXLSX(d, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, rows, 1+len(d.Sections))
	require.Equal(t, "Verification", rows[0][0])

	str, _ := d.Section("ULS-STR")
	rows, err = f.GetRows("ULS-STR")
	require.NoError(t, err)
	require.Len(t, rows, 1+len(str.Cases))
	require.Equal(t, []string{"#", "Combination", "Effect", "Leading"}, rows[0][:4])
	require.ElementsMatch(t, []string{"G", "Q", "S", "W"}, rows[0][4:])

	require.NotContains(t, f.GetSheetList(), "ULS-ACC")
}

func TestWritePDF(t *testing.T) {
	_, d := generated(t)
	var buf bytes.Buffer
	require.NoError(t, WritePDF(d, "tester", &buf))
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
