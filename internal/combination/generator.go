package combination

import (
	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/alexiusacademia/gocomb/internal/hierarchy"
	"go.uber.org/zap"
)

// Catalog is the part of the action catalog the generator reads.
type Catalog interface {
	Actions() []*action.Action
	Get(id string) (*action.Action, error)
}

// Pass is the predominance context of one generation pass. At most one
// action, always a variable one, is predominant.
type Pass struct {
	Index       int
	Action      string // action driving the pass
	Predominant string // empty when the driving action is not variable
}

// NewPass builds the context in which a is the candidate predominant action.
func NewPass(index int, a *action.Action) Pass {
	p := Pass{Index: index, Action: a.ID}
	if a.Category == action.CategoryVariable {
		p.Predominant = a.ID
	}
	return p
}

// IsPredominant reports the flag of an action during this pass.
func (p Pass) IsPredominant(id string) bool {
	return p.Predominant != "" && p.Predominant == id
}

// Flags returns the predominance flag of every action of the catalog.
func (p Pass) Flags(actions []*action.Action) map[string]bool {
	flags := make(map[string]bool, len(actions))
	for _, a := range actions {
		flags[a.ID] = p.IsPredominant(a.ID)
	}
	return flags
}

type span struct {
	start, count int
}

// Generator holds the temporary combinations of every group for the
// current pass. All of them live in one arena that is rebuilt by Generate.
type Generator struct {
	hierarchy *hierarchy.Hierarchy
	catalog   Catalog
	log       *zap.Logger

	arena []Combination
	spans map[string]span
}

// NewGenerator creates a generator over a hierarchy and its catalog.
func NewGenerator(h *hierarchy.Hierarchy, catalog Catalog, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		hierarchy: h,
		catalog:   catalog,
		log:       log,
		spans:     make(map[string]span),
	}
}

// Reset discards every temporary combination.
func (g *Generator) Reset() {
	for i := range g.arena {
		g.arena[i] = nil
	}
	g.arena = g.arena[:0]
	clear(g.spans)
}

// Generate clears the previous pass and regenerates every level in order.
func (g *Generator) Generate(pass Pass) {
	g.Reset()
	for lvl, l := range g.hierarchy.Levels() {
		for _, grp := range l.Groups() {
			if grp.Mode == hierarchy.ModeOR && len(grp.Elements) > hierarchy.MaxOrWidth {
				g.log.Warn("OR group too wide, skipped",
					zap.String("group", grp.Name),
					zap.Int("elements", len(grp.Elements)))
				g.store(grp.ID, nil)
				continue
			}
			var combos []Combination
			if lvl == 0 {
				combos = combineActions(grp.Mode, g.entries(grp, pass))
			} else {
				combos = combineGroups(grp.Mode, g.children(grp))
			}
			g.store(grp.ID, combos)
			g.log.Debug("group generated",
				zap.Int("pass", pass.Index),
				zap.Int("level", lvl),
				zap.String("group", grp.Name),
				zap.Stringer("mode", grp.Mode),
				zap.Int("combinations", len(combos)))
		}
	}
}

// entries returns the loaded actions of a level 0 group with their flags.
func (g *Generator) entries(grp *hierarchy.Group, pass Pass) []Entry {
	out := make([]Entry, 0, len(grp.Elements))
	for _, ref := range grp.Elements {
		a, err := g.catalog.Get(ref.ID)
		if err != nil {
			g.log.Warn("group references a missing action",
				zap.String("group", grp.Name), zap.String("action", ref.ID))
			continue
		}
		if !a.HasLoads() {
			continue
		}
		out = append(out, Entry{Action: a.ID, Predominant: pass.IsPredominant(a.ID)})
	}
	return out
}

func (g *Generator) children(grp *hierarchy.Group) [][]Combination {
	out := make([][]Combination, 0, len(grp.Elements))
	for _, ref := range grp.Elements {
		out = append(out, g.Group(ref.ID))
	}
	return out
}

func (g *Generator) store(id string, combos []Combination) {
	g.spans[id] = span{start: len(g.arena), count: len(combos)}
	g.arena = append(g.arena, combos...)
}

// Group returns the combinations of a group for the current pass.
func (g *Generator) Group(id string) []Combination {
	s, ok := g.spans[id]
	if !ok || s.count == 0 {
		return nil
	}
	return g.arena[s.start : s.start+s.count : s.start+s.count]
}

// Top returns the combinations of every top level group, de-duplicated.
func (g *Generator) Top() []Combination {
	top := g.hierarchy.Top()
	if top == nil {
		return nil
	}
	var out List
	for _, grp := range top.Groups() {
		out.AddAll(g.Group(grp.ID))
	}
	return out.Items()
}

// Size returns the number of combinations held in the arena.
func (g *Generator) Size() int {
	return len(g.arena)
}
