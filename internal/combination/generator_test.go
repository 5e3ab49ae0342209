package combination

import (
	"errors"
	"testing"

	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/alexiusacademia/gocomb/internal/hierarchy"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	catalog *action.Catalog
	h       *hierarchy.Hierarchy
	ids     map[string]string
	names   map[string]string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := action.NewCatalog(action.AnnexEU)
	return &fixture{
		catalog: c,
		h:       hierarchy.New(c),
		ids:     map[string]string{},
		names:   map[string]string{},
	}
}

func (f *fixture) action(t *testing.T, name string, typ action.Type, loaded bool) string {
	t.Helper()
	a, err := f.catalog.Add(name, typ)
	require.NoError(t, err)
	if loaded {
		require.NoError(t, f.catalog.AddLoad(a.ID, action.Load{Name: name, Value: 10}))
	}
	f.ids[name] = a.ID
	f.names[a.ID] = name
	return a.ID
}

func (f *fixture) group(t *testing.T, level int, mode hierarchy.Mode, name string, elems ...string) *hierarchy.Group {
	t.Helper()
	g, err := f.h.AddGroup(level, mode, name)
	require.NoError(t, err)
	for _, e := range elems {
		var ref hierarchy.ElementRef
		if level == 0 {
			ref = hierarchy.ActionRef(f.ids[e])
		} else {
			child, _, ok := f.h.GroupByName(e)
			require.True(t, ok, e)
			ref = hierarchy.GroupRef(child.ID)
		}
		require.NoError(t, f.h.AddElement(level, g.ID, ref))
	}
	return g
}

// named renders combinations with action names, "*" marking the predominant one.
func (f *fixture) named(cs []Combination) [][]string {
	out := make([][]string, 0, len(cs))
	for _, c := range cs {
		row := make([]string, 0, len(c))
		for _, e := range c {
			n := f.names[e.Action]
			if e.Predominant {
				n += "*"
			}
			row = append(row, n)
		}
		out = append(out, row)
	}
	return out
}

func TestScenarioPermanentAndWind(t *testing.T) {
	f := newFixture(t)
	f.action(t, "P", action.TypePermanent, true)
	f.action(t, "W", action.TypeWind, true)
	g0 := f.group(t, 0, hierarchy.ModeOR, "G0", "P", "W")

	gen := NewGenerator(f.h, f.catalog, zaptest.NewLogger(t))
	pass := Pass{}

	gen.Generate(pass)
	require.Equal(t, [][]string{{"P"}, {"W"}, {"P", "W"}}, f.named(gen.Group(g0.ID)))

	require.NoError(t, f.h.ModifyMode(g0.ID, hierarchy.ModeAND))
	gen.Generate(pass)
	require.Equal(t, [][]string{{"P", "W"}}, f.named(gen.Group(g0.ID)))

	require.NoError(t, f.h.ModifyMode(g0.ID, hierarchy.ModeXOR))
	gen.Generate(pass)
	require.Equal(t, [][]string{{"P"}, {"W"}}, f.named(gen.Group(g0.ID)))
}

func TestUnloadedActionsAreSkipped(t *testing.T) {
	f := newFixture(t)
	f.action(t, "P", action.TypePermanent, true)
	f.action(t, "Q", action.TypeImposedB, false)
	f.action(t, "W", action.TypeWind, true)
	or := f.group(t, 0, hierarchy.ModeOR, "OR", "P", "Q", "W")
	and := f.group(t, 0, hierarchy.ModeAND, "AND", "Q")
	xor := f.group(t, 0, hierarchy.ModeXOR, "XOR", "Q", "W")

	gen := NewGenerator(f.h, f.catalog, nil)
	gen.Generate(Pass{})
	require.Equal(t, [][]string{{"P"}, {"W"}, {"P", "W"}}, f.named(gen.Group(or.ID)))
	require.Empty(t, gen.Group(and.ID))
	require.Equal(t, [][]string{{"W"}}, f.named(gen.Group(xor.ID)))
}

func TestUpperAndWithEmptyChildIsEmpty(t *testing.T) {
	f := newFixture(t)
	f.action(t, "G", action.TypePermanent, true)
	f.action(t, "Q", action.TypeImposedB, false)
	perm := f.group(t, 0, hierarchy.ModeAND, "PERM", "G")
	unloaded := f.group(t, 0, hierarchy.ModeAND, "UNLOADED", "Q")
	f.h.AddLevel()
	top := f.group(t, 1, hierarchy.ModeAND, "TOP", "PERM", "UNLOADED")
	or := f.group(t, 1, hierarchy.ModeOR, "EITHER", "PERM", "UNLOADED")

	gen := NewGenerator(f.h, f.catalog, nil)
	gen.Generate(Pass{})
	require.Len(t, gen.Group(perm.ID), 1)
	require.Empty(t, gen.Group(unloaded.ID))
	require.Empty(t, gen.Group(top.ID))
	require.Equal(t, [][]string{{"G"}}, f.named(gen.Group(or.ID)))
}

func TestUpperLevelLaws(t *testing.T) {
	f := newFixture(t)
	for _, n := range []string{"G", "Q", "S", "W", "T"} {
		typ := action.TypeWind
		if n == "G" {
			typ = action.TypePermanent
		}
		f.action(t, n, typ, true)
	}
	perm := f.group(t, 0, hierarchy.ModeAND, "PERM", "G")
	vars := f.group(t, 0, hierarchy.ModeOR, "VARS", "Q", "S")
	alt := f.group(t, 0, hierarchy.ModeXOR, "ALT", "W", "T")
	f.h.AddLevel()
	and := f.group(t, 1, hierarchy.ModeAND, "ALL", "PERM", "VARS", "ALT")
	xor := f.group(t, 1, hierarchy.ModeXOR, "ANY", "VARS", "ALT")

	gen := NewGenerator(f.h, f.catalog, nil)
	gen.Generate(Pass{})

	counts := []int{len(gen.Group(perm.ID)), len(gen.Group(vars.ID)), len(gen.Group(alt.ID))}
	require.Equal(t, []int{1, 3, 2}, counts)

	got := gen.Group(and.ID)
	require.Len(t, got, 1*3*2)
	for _, c := range got {
		require.True(t, c.Contains(f.ids["G"]))
		require.Contains(t, []int{3, 4}, len(c))
	}
	require.Len(t, gen.Group(xor.ID), 3+2)

	top := gen.Top()
	require.Len(t, top, 6+5)
}

func TestPredominanceFlags(t *testing.T) {
	f := newFixture(t)
	f.action(t, "G", action.TypePermanent, true)
	f.action(t, "Q", action.TypeImposedB, true)
	f.action(t, "W", action.TypeWind, true)
	f.group(t, 0, hierarchy.ModeAND, "ALL", "G", "Q", "W")

	var passes []Pass
	var tops [][][]string
	sink := SinkFunc(func(p Pass, top []Combination) error {
		passes = append(passes, p)
		tops = append(tops, f.named(top))
		return nil
	})
	stats, err := Run(f.catalog, f.h, sink, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.Equal(t, 3, stats.Passes)
	require.Equal(t, 3, stats.Forwarded)

	require.Equal(t, [][][]string{
		{{"G", "Q", "W"}},
		{{"G", "Q*", "W"}},
		{{"G", "Q", "W*"}},
	}, tops)

	for _, p := range passes {
		set := 0
		for _, on := range p.Flags(f.catalog.Actions()) {
			if on {
				set++
			}
		}
		if p.Action == f.ids["G"] {
			require.Zero(t, set)
		} else {
			require.Equal(t, 1, set)
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	f := newFixture(t)
	f.action(t, "G", action.TypePermanent, true)
	f.action(t, "Q", action.TypeImposedA, true)
	f.action(t, "S", action.TypeSnowLow, true)
	f.action(t, "W", action.TypeWind, true)
	f.group(t, 0, hierarchy.ModeAND, "PERM", "G")
	f.group(t, 0, hierarchy.ModeOR, "VARS", "Q", "S", "W")
	f.h.AddLevel()
	f.group(t, 1, hierarchy.ModeAND, "TOP", "PERM", "VARS")

	collect := func() [][]Combination {
		var out [][]Combination
		_, err := Run(f.catalog, f.h, SinkFunc(func(_ Pass, top []Combination) error {
			cp := make([]Combination, len(top))
			copy(cp, top)
			out = append(out, cp)
			return nil
		}), nil)
		require.NoError(t, err)
		return out
	}
	first, second := collect(), collect()
	require.Empty(t, cmp.Diff(first, second))
	require.Len(t, first, 4)
	require.Len(t, first[0], 7)
}

func TestRunPropagatesSinkErrors(t *testing.T) {
	f := newFixture(t)
	f.action(t, "G", action.TypePermanent, true)
	f.action(t, "Q", action.TypeImposedA, true)
	f.group(t, 0, hierarchy.ModeXOR, "G0", "G", "Q")

	boom := errors.New("boom")
	stats, err := Run(f.catalog, f.h, SinkFunc(func(Pass, []Combination) error { return boom }), nil)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, stats.Passes)
}

func TestEmptyHierarchyYieldsNothing(t *testing.T) {
	f := newFixture(t)
	f.action(t, "G", action.TypePermanent, true)
	require.NoError(t, f.h.RemoveLevelAndAbove(0, true))

	gen := NewGenerator(f.h, f.catalog, nil)
	gen.Generate(Pass{})
	require.Empty(t, gen.Top())

	stats, err := Run(f.catalog, f.h, nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Passes)
	require.Zero(t, stats.Forwarded)
}

func TestDeletedActionLeavesCombinations(t *testing.T) {
	f := newFixture(t)
	f.action(t, "P", action.TypePermanent, true)
	w := f.action(t, "W", action.TypeWind, true)
	g0 := f.group(t, 0, hierarchy.ModeOR, "G0", "P", "W")

	require.NoError(t, f.catalog.Remove(w))
	f.h.RemoveAction(w)

	gen := NewGenerator(f.h, f.catalog, nil)
	gen.Generate(Pass{})
	require.Equal(t, [][]string{{"P"}}, f.named(gen.Group(g0.ID)))
}
