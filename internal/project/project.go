// Package project ties an action catalog and a group hierarchy together,
// applies edits by name and regenerates the weighted load cases.
package project

import (
	"fmt"

	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/alexiusacademia/gocomb/internal/combination"
	"github.com/alexiusacademia/gocomb/internal/hierarchy"
	"github.com/alexiusacademia/gocomb/internal/ponderation"
	"go.uber.org/zap"
)

// Project is the editable model. Every edit discards the derived results;
// Regenerate must run again before they can be trusted.
type Project struct {
	Name      string
	Catalog   *action.Catalog
	Hierarchy *hierarchy.Hierarchy
	Factors   ponderation.Factors

	results *Results
}

// Results is the output of one full regeneration.
type Results struct {
	Cases     *ponderation.Builder
	Stats     combination.Stats
	Findings  []hierarchy.Finding
	Structure error // recoverable emptiness condition, nil when the hierarchy is complete
}

// New creates an empty project with one empty level.
func New(name string, annex action.Annex) *Project {
	c := action.NewCatalog(annex)
	return &Project{
		Name:      name,
		Catalog:   c,
		Hierarchy: hierarchy.New(c),
		Factors:   ponderation.DefaultFactors(annex),
	}
}

// Results returns the last regeneration output, or nil after an edit.
func (p *Project) Results() *Results {
	return p.results
}

func (p *Project) invalidate() {
	p.results = nil
}

// Regenerate runs the driver loop over every action and weights the top
// level combinations of each pass.
func (p *Project) Regenerate(log *zap.Logger) (*Results, error) {
	if log == nil {
		log = zap.NewNop()
	}
	res := &Results{
		Findings:  p.Hierarchy.Audit(p.ActionName),
		Structure: p.Hierarchy.CheckStructure(),
	}
	for _, f := range res.Findings {
		log.Warn("hierarchy audit", zap.String("kind", string(f.Kind)), zap.Int("level", f.Level), zap.String("detail", f.Message))
	}
	if res.Structure != nil {
		log.Info("incomplete hierarchy", zap.Error(res.Structure))
	}

	res.Cases = ponderation.NewBuilder(p.Catalog, p.Factors, log)
	stats, err := combination.Run(p.Catalog, p.Hierarchy, res.Cases, log)
	if err != nil {
		return nil, fmt.Errorf("regenerate %s: %w", p.Name, err)
	}
	res.Stats = stats
	log.Info("regenerated",
		zap.String("project", p.Name),
		zap.Int("passes", stats.Passes),
		zap.Int("combinations", stats.Forwarded),
		zap.Int("cases", res.Cases.Count()))
	p.results = res
	return res, nil
}

// Pass regenerates the hierarchy once with the named action as candidate
// predominant action and returns the generator for inspection.
func (p *Project) Pass(actionName string, log *zap.Logger) (*combination.Generator, combination.Pass, error) {
	a, ok := p.Catalog.ByName(actionName)
	if !ok {
		return nil, combination.Pass{}, fmt.Errorf("%w: %s", action.ErrUnknownAction, actionName)
	}
	index := 0
	for i, other := range p.Catalog.Actions() {
		if other == a {
			index = i
		}
	}
	gen := combination.NewGenerator(p.Hierarchy, p.Catalog, log)
	pass := combination.NewPass(index, a)
	gen.Generate(pass)
	return gen, pass, nil
}

// ActionName returns the name of an action id, or the id itself.
func (p *Project) ActionName(id string) string {
	if a, err := p.Catalog.Get(id); err == nil {
		return a.Name
	}
	return id
}

// Ref resolves an element name for a group of the given level.
func (p *Project) Ref(level int, name string) (hierarchy.ElementRef, error) {
	if level == 0 {
		a, ok := p.Catalog.ByName(name)
		if !ok {
			return hierarchy.ElementRef{}, fmt.Errorf("%w: %s", action.ErrUnknownAction, name)
		}
		return hierarchy.ActionRef(a.ID), nil
	}
	g, lvl, ok := p.Hierarchy.GroupByName(name)
	if !ok || lvl != level-1 {
		return hierarchy.ElementRef{}, fmt.Errorf("%w: %s is not a group of level %d", hierarchy.ErrUnknownGroup, name, level-1)
	}
	return hierarchy.GroupRef(g.ID), nil
}

// RefName returns the display name of an element reference.
func (p *Project) RefName(ref hierarchy.ElementRef) string {
	if ref.Kind == hierarchy.KindAction {
		return p.ActionName(ref.ID)
	}
	if g, _, err := p.Hierarchy.Group(ref.ID); err == nil {
		return g.Name
	}
	return ref.ID
}

func (p *Project) group(name string) (*hierarchy.Group, int, error) {
	g, lvl, ok := p.Hierarchy.GroupByName(name)
	if !ok {
		return nil, -1, fmt.Errorf("%w: %s", hierarchy.ErrUnknownGroup, name)
	}
	return g, lvl, nil
}

func (p *Project) action(name string) (*action.Action, error) {
	a, ok := p.Catalog.ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", action.ErrUnknownAction, name)
	}
	return a, nil
}

// AddAction adds an action to the catalog.
func (p *Project) AddAction(name string, t action.Type) (*action.Action, error) {
	a, err := p.Catalog.Add(name, t)
	if err != nil {
		return nil, err
	}
	p.invalidate()
	return a, nil
}

// DeleteAction removes an action from the catalog and from every group.
func (p *Project) DeleteAction(name string) error {
	a, err := p.action(name)
	if err != nil {
		return err
	}
	if err := p.Catalog.Remove(a.ID); err != nil {
		return err
	}
	p.Hierarchy.RemoveAction(a.ID)
	p.invalidate()
	return nil
}

// RenameAction renames an action; group references follow since they hold ids.
func (p *Project) RenameAction(name, newName string) error {
	a, err := p.action(name)
	if err != nil {
		return err
	}
	if err := p.Catalog.Rename(a.ID, newName); err != nil {
		return err
	}
	p.invalidate()
	return nil
}

// SetActionType changes an action's normative type.
func (p *Project) SetActionType(name string, t action.Type) error {
	a, err := p.action(name)
	if err != nil {
		return err
	}
	if err := p.Catalog.SetType(a.ID, t); err != nil {
		return err
	}
	p.invalidate()
	return nil
}

// AddLoad attaches a load to an action.
func (p *Project) AddLoad(name string, l action.Load) error {
	a, err := p.action(name)
	if err != nil {
		return err
	}
	if err := p.Catalog.AddLoad(a.ID, l); err != nil {
		return err
	}
	p.invalidate()
	return nil
}

// RemoveLoad detaches the first load named loadName from an action.
func (p *Project) RemoveLoad(name, loadName string) error {
	a, err := p.action(name)
	if err != nil {
		return err
	}
	for i, l := range a.Loads {
		if l.Name == loadName {
			if err := p.Catalog.RemoveLoad(a.ID, i); err != nil {
				return err
			}
			p.invalidate()
			return nil
		}
	}
	return fmt.Errorf("action %s has no load %q", name, loadName)
}

// SetAnnex switches the national annex and the default partial factors.
func (p *Project) SetAnnex(annex action.Annex) error {
	if err := p.Catalog.SetAnnex(annex); err != nil {
		return err
	}
	p.Factors = ponderation.DefaultFactors(annex)
	p.invalidate()
	return nil
}

// AddLevel appends an empty level.
func (p *Project) AddLevel() int {
	p.invalidate()
	return p.Hierarchy.AddLevel()
}

// RemoveLevel deletes level and every level above it.
func (p *Project) RemoveLevel(level int, allowEmpty bool) error {
	if err := p.Hierarchy.RemoveLevelAndAbove(level, allowEmpty); err != nil {
		return err
	}
	p.invalidate()
	return nil
}

// AddGroup creates a group on a level.
func (p *Project) AddGroup(level int, mode hierarchy.Mode, name string) (*hierarchy.Group, error) {
	g, err := p.Hierarchy.AddGroup(level, mode, name)
	if err != nil {
		return nil, err
	}
	p.invalidate()
	return g, nil
}

// DeleteGroup removes a group and the references its parents hold.
func (p *Project) DeleteGroup(name string) error {
	g, lvl, err := p.group(name)
	if err != nil {
		return err
	}
	if err := p.Hierarchy.RemoveGroup(lvl, g.ID); err != nil {
		return err
	}
	p.invalidate()
	return nil
}

// SetMode changes the composition mode of a group.
func (p *Project) SetMode(name string, mode hierarchy.Mode) error {
	g, _, err := p.group(name)
	if err != nil {
		return err
	}
	if err := p.Hierarchy.ModifyMode(g.ID, mode); err != nil {
		return err
	}
	p.invalidate()
	return nil
}

// RenameGroup renames a group.
func (p *Project) RenameGroup(name, newName string) error {
	g, _, err := p.group(name)
	if err != nil {
		return err
	}
	if err := p.Hierarchy.RenameGroup(g.ID, newName); err != nil {
		return err
	}
	p.invalidate()
	return nil
}

// AddElement adds an action or a lower group, by name, to a group.
func (p *Project) AddElement(groupName, element string) error {
	g, lvl, err := p.group(groupName)
	if err != nil {
		return err
	}
	ref, err := p.Ref(lvl, element)
	if err != nil {
		return err
	}
	if err := p.Hierarchy.AddElement(lvl, g.ID, ref); err != nil {
		return err
	}
	p.invalidate()
	return nil
}

// RemoveElement removes an element, by name, from a group. The name must
// resolve to an action or a group of the level below; a valid element the
// group does not hold is ignored.
func (p *Project) RemoveElement(groupName, element string) error {
	g, lvl, err := p.group(groupName)
	if err != nil {
		return err
	}
	ref, err := p.Ref(lvl, element)
	if err != nil {
		return err
	}
	if err := p.Hierarchy.RemoveElement(lvl, g.ID, ref); err != nil {
		return err
	}
	p.invalidate()
	return nil
}
