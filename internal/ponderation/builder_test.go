package ponderation

import (
	"testing"

	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/alexiusacademia/gocomb/internal/combination"
	"github.com/alexiusacademia/gocomb/internal/hierarchy"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func addAction(t *testing.T, c *action.Catalog, name string, typ action.Type, value float64) *action.Action {
	t.Helper()
	a, err := c.Add(name, typ)
	require.NoError(t, err)
	require.NoError(t, c.AddLoad(a.ID, action.Load{Name: name, Value: value}))
	return a
}

func addGroup(t *testing.T, h *hierarchy.Hierarchy, level int, mode hierarchy.Mode, name string, refs ...hierarchy.ElementRef) *hierarchy.Group {
	t.Helper()
	g, err := h.AddGroup(level, mode, name)
	require.NoError(t, err)
	for _, r := range refs {
		require.NoError(t, h.AddElement(level, g.ID, r))
	}
	return g
}

func TestBuilderBuildingCase(t *testing.T) {
	c := action.NewCatalog(action.AnnexEU)
	g := addAction(t, c, "G", action.TypePermanent, 50)
	q := addAction(t, c, "Q", action.TypeImposedB, 30)
	w := addAction(t, c, "W", action.TypeWind, 20)

	h := hierarchy.New(c)
	perm := addGroup(t, h, 0, hierarchy.ModeAND, "PERM", hierarchy.ActionRef(g.ID))
	vars := addGroup(t, h, 0, hierarchy.ModeOR, "VARS", hierarchy.ActionRef(q.ID), hierarchy.ActionRef(w.ID))
	h.AddLevel()
	addGroup(t, h, 1, hierarchy.ModeAND, "TOP", hierarchy.GroupRef(perm.ID), hierarchy.GroupRef(vars.ID))

	b := NewBuilder(c, DefaultFactors(action.AnnexEU), zaptest.NewLogger(t))
	stats, err := combination.Run(c, h, b, nil)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Passes)

	counts := map[Verification]int{}
	for _, v := range Verifications {
		counts[v] = len(b.Cases(v))
	}
	require.Equal(t, map[Verification]int{
		ULSEquilibrium:    8,
		ULSStructural:     8,
		ULSGeotechnical:   4,
		ULSFatigue:        3,
		ULSAccidental:     0,
		ULSSeismic:        0,
		SLSCharacteristic: 4,
		SLSFrequent:       3,
		SLSQuasiPermanent: 2,
	}, counts)
	require.Equal(t, 32, b.Count())

	gov, effect, ok := b.Governing(ULSStructural)
	require.True(t, ok)
	require.InDelta(t, 1.35*50+1.5*30+1.5*0.6*20, effect, 1e-9)
	require.Equal(t, q.ID, gov.Predominant)

	names := map[string]string{g.ID: "G", q.ID: "Q", w.ID: "W"}
	require.Equal(t, "1.35 G + 1.50 Q* + 0.90 W", gov.Label(func(id string) string { return names[id] }))

	_, _, ok = b.Governing(ULSSeismic)
	require.False(t, ok)
}

func TestBuilderAccidentalAndSeismic(t *testing.T) {
	c := action.NewCatalog(action.AnnexEU)
	g := addAction(t, c, "G", action.TypePermanent, 10)
	a := addAction(t, c, "A", action.TypeAccidental, 100)
	e := addAction(t, c, "E", action.TypeSeismic, 80)
	q := addAction(t, c, "Q", action.TypeImposedC, 5)

	h := hierarchy.New(c)
	perm := addGroup(t, h, 0, hierarchy.ModeAND, "PERM", hierarchy.ActionRef(g.ID), hierarchy.ActionRef(q.ID))
	exc := addGroup(t, h, 0, hierarchy.ModeOR, "EXC", hierarchy.ActionRef(a.ID), hierarchy.ActionRef(e.ID))
	h.AddLevel()
	addGroup(t, h, 1, hierarchy.ModeAND, "TOP", hierarchy.GroupRef(perm.ID), hierarchy.GroupRef(exc.ID))

	b := NewBuilder(c, nil, nil)
	_, err := combination.Run(c, h, b, nil)
	require.NoError(t, err)

	// {G,Q,A,E} mixes two exceptional actions, once per pass
	require.Equal(t, 4, b.Skipped())

	acc := b.Cases(ULSAccidental)
	require.Len(t, acc, 1)
	require.Equal(t, []Term{{g.ID, 1}, {a.ID, 1}, {q.ID, 0.7}}, acc[0].Terms)

	seis := b.Cases(ULSSeismic)
	require.Len(t, seis, 1)
	require.Equal(t, []Term{{g.ID, 1}, {e.ID, 1}, {q.ID, 0.6}}, seis[0].Terms)

	require.Empty(t, b.Cases(ULSStructural))
	require.Empty(t, b.Cases(SLSQuasiPermanent))
}

func TestParseVerification(t *testing.T) {
	for _, v := range Verifications {
		got, err := ParseVerification(v.String())
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.NotEmpty(t, v.Description())
	}
	_, err := ParseVerification("ULS-XYZ")
	require.Error(t, err)
}

func TestDefaultFactorsAreCopies(t *testing.T) {
	f := DefaultFactors(action.AnnexFR)
	require.Equal(t, 1.2, f[ULSStructural].Groundwater)
	f[ULSStructural] = PartialFactors{}
	require.Equal(t, 1.35, DefaultFactors(action.AnnexFR)[ULSStructural].GSup)
}
