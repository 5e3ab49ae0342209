package project

import (
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/alexiusacademia/gocomb/internal/hierarchy"
	"github.com/alexiusacademia/gocomb/internal/ponderation"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func loadDefault(t *testing.T) *Project {
	t.Helper()
	p, err := FromYAML([]byte(Default("office")))
	require.NoError(t, err)
	return p
}

func TestDefaultProjectRegenerates(t *testing.T) {
	p := loadDefault(t)
	require.Equal(t, "office", p.Name)
	require.Equal(t, 4, p.Catalog.Len())
	require.Equal(t, 3, p.Hierarchy.Len())

	res, err := p.Regenerate(zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, res.Structure)
	require.Empty(t, res.Findings)
	require.Equal(t, 4, res.Stats.Passes)
	require.Equal(t, 4*5, res.Stats.Forwarded)
	require.Same(t, res, p.Results())

	_, effect, ok := res.Cases.Governing(ponderation.ULSStructural)
	require.True(t, ok)
	// 1.35 G + 1.5 Q + 1.5 ψ0 W
	require.InDelta(t, 1.35*57+1.5*30+1.5*0.6*15, effect, 1e-9)
}

func TestPassInspection(t *testing.T) {
	p := loadDefault(t)
	gen, pass, err := p.Pass("W", nil)
	require.NoError(t, err)
	require.Equal(t, 3, pass.Index)

	w, _ := p.Catalog.ByName("W")
	require.True(t, pass.IsPredominant(w.ID))

	design, _, ok := p.Hierarchy.GroupByName("design")
	require.True(t, ok)
	combos := gen.Group(design.ID)
	require.Len(t, combos, 5)
	flagged := 0
	for _, c := range combos {
		if id, ok := c.Predominant(); ok {
			require.Equal(t, w.ID, id)
			flagged++
		}
	}
	require.Equal(t, 2, flagged)

	_, _, err = p.Pass("nope", nil)
	require.ErrorIs(t, err, action.ErrUnknownAction)
}

func TestYAMLRoundTrip(t *testing.T) {
	p := loadDefault(t)
	path := filepath.Join(t.TempDir(), "project.yml")
	require.NoError(t, p.Save(path))

	again, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, p.ToFile(), again.ToFile())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestFromYAMLErrors(t *testing.T) {
	cases := map[string]string{
		"bad yaml":      "name: [",
		"bad annex":     "name: x\nannex: de\n",
		"bad type":      "name: x\nactions:\n  - {name: A, type: lava}\n",
		"bad mode":      "name: x\nactions:\n  - {name: A, type: wind}\nlevels:\n  - groups:\n      - {name: g, mode: nor, elements: [A]}\n",
		"unknown elem":  "name: x\nactions:\n  - {name: A, type: wind}\nlevels:\n  - groups:\n      - {name: g, mode: or, elements: [B]}\n",
		"wrong level":   "name: x\nactions:\n  - {name: A, type: wind}\nlevels:\n  - groups:\n      - {name: g, mode: or, elements: [A]}\n  - groups:\n      - {name: h, mode: or, elements: [A]}\n",
		"dup element":   "name: x\nactions:\n  - {name: A, type: wind}\nlevels:\n  - groups:\n      - {name: g, mode: or, elements: [A, A]}\n",
		"dup action":    "name: x\nactions:\n  - {name: A, type: wind}\n  - {name: A, type: wind}\n",
		"dup group":     "name: x\nlevels:\n  - groups:\n      - {name: g, mode: or}\n      - {name: g, mode: and}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromYAML([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestDeleteActionCascades(t *testing.T) {
	p := loadDefault(t)
	_, err := p.Regenerate(nil)
	require.NoError(t, err)

	require.NoError(t, p.DeleteAction("W"))
	require.Nil(t, p.Results(), "edits discard derived results")

	climatic, _, ok := p.Hierarchy.GroupByName("climatic")
	require.True(t, ok)
	require.Len(t, climatic.Elements, 1)

	res, err := p.Regenerate(nil)
	require.NoError(t, err)
	require.Equal(t, 3, res.Stats.Passes)
	require.Equal(t, 3*3, res.Stats.Forwarded)

	require.ErrorIs(t, p.DeleteAction("W"), action.ErrUnknownAction)
}

func TestDeleteGroupCleansParents(t *testing.T) {
	p := loadDefault(t)
	require.NoError(t, p.DeleteGroup("imposed"))
	variable, _, ok := p.Hierarchy.GroupByName("variable")
	require.True(t, ok)
	require.Equal(t, []string{"climatic"}, p.ToFile().Levels[1].Groups[1].Elements)
	require.Len(t, variable.Elements, 1)
	require.ErrorIs(t, p.DeleteGroup("imposed"), hierarchy.ErrUnknownGroup)
}

func TestEditsByName(t *testing.T) {
	p := New("edit", action.AnnexFR)
	_, err := p.AddAction("G", action.TypePermanent)
	require.NoError(t, err)
	_, err = p.AddAction("Gw", action.TypeGroundwater)
	require.NoError(t, err)
	require.NoError(t, p.AddLoad("G", action.Load{Name: "g", Value: 1}))
	require.NoError(t, p.AddLoad("Gw", action.Load{Name: "gw", Value: 1}))

	_, err = p.AddGroup(0, hierarchy.ModeXOR, "base")
	require.NoError(t, err)
	require.NoError(t, p.AddElement("base", "G"))
	require.NoError(t, p.AddElement("base", "Gw"))
	require.Error(t, p.AddElement("base", "G"))

	require.Equal(t, 1, p.AddLevel())
	_, err = p.AddGroup(1, hierarchy.ModeAND, "top")
	require.NoError(t, err)
	require.NoError(t, p.AddElement("top", "base"))
	require.Error(t, p.AddElement("top", "G"), "actions only belong to level 0")

	require.NoError(t, p.SetMode("base", hierarchy.ModeAND))
	require.NoError(t, p.RenameGroup("base", "ground"))
	require.NoError(t, p.RenameAction("Gw", "water"))
	require.NoError(t, p.SetActionType("water", action.TypePermanent))
	require.ErrorIs(t, p.RemoveElement("ground", "missing"), action.ErrUnknownAction)
	require.NoError(t, p.RemoveElement("ground", "water"))

	f := p.ToFile()
	require.Equal(t, "fr", f.Annex)
	require.Equal(t, []string{"G"}, f.Levels[0].Groups[0].Elements)
	require.Equal(t, "and", f.Levels[0].Groups[0].Mode)
	require.Equal(t, []string{"ground"}, f.Levels[1].Groups[0].Elements)

	require.NoError(t, p.RemoveLevel(1, false))
	require.Equal(t, 1, p.Hierarchy.Len())

	require.NoError(t, p.SetAnnex(action.AnnexEU))
	require.Equal(t, 1.0, p.Factors[ponderation.ULSStructural].Groundwater)
}

func TestRemoveElementRejectsUnknownNames(t *testing.T) {
	p := loadDefault(t)
	_, err := p.Regenerate(nil)
	require.NoError(t, err)

	require.ErrorIs(t, p.RemoveElement("climatic", "NoSuchAction"), action.ErrUnknownAction)
	require.ErrorIs(t, p.RemoveElement("variable", "NoSuchGroup"), hierarchy.ErrUnknownGroup)
	require.ErrorIs(t, p.RemoveElement("variable", "design"), hierarchy.ErrUnknownGroup, "design is not on level 0")
	require.NotNil(t, p.Results(), "failed edits keep the results")

	require.NoError(t, p.RemoveElement("climatic", "Q"), "Q is a valid action outside the group")
	climatic, _, _ := p.Hierarchy.GroupByName("climatic")
	require.Len(t, climatic.Elements, 2)
}

func TestRemoveLoad(t *testing.T) {
	p := loadDefault(t)
	_, err := p.Regenerate(nil)
	require.NoError(t, err)

	require.Error(t, p.RemoveLoad("G", "roof"))
	require.ErrorIs(t, p.RemoveLoad("X", "finishes"), action.ErrUnknownAction)
	require.NotNil(t, p.Results())

	require.NoError(t, p.RemoveLoad("G", "finishes"))
	require.Nil(t, p.Results(), "edits discard derived results")
	g, _ := p.Catalog.ByName("G")
	require.Equal(t, 45.0, g.Characteristic())
}

func TestRegenerateReportsIncompleteHierarchy(t *testing.T) {
	p := New("empty", action.AnnexEU)
	res, err := p.Regenerate(nil)
	require.NoError(t, err)
	var empty *hierarchy.EmptyLevelError
	require.ErrorAs(t, res.Structure, &empty)
	require.Zero(t, res.Cases.Count())
}
