// Package hierarchy holds the levels and groups that describe how actions
// are composed. Level 0 groups reference actions, level k groups reference
// groups of level k-1.
package hierarchy

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ElementKind tells what an element reference points to.
type ElementKind uint8

const (
	KindAction ElementKind = iota
	KindGroup
)

func (k ElementKind) String() string {
	if k == KindGroup {
		return "group"
	}
	return "action"
}

// ElementRef is a non-owning reference to an action (level 0) or to a
// group of the level below.
type ElementRef struct {
	Kind ElementKind
	ID   string
}

// ActionRef references an action by id.
func ActionRef(id string) ElementRef {
	return ElementRef{Kind: KindAction, ID: id}
}

// GroupRef references a group by id.
func GroupRef(id string) ElementRef {
	return ElementRef{Kind: KindGroup, ID: id}
}

func (r ElementRef) String() string {
	return r.Kind.String() + " " + r.ID
}

// Group composes its elements according to Mode.
type Group struct {
	ID       string
	Name     string
	Mode     Mode
	Elements []ElementRef
}

func (g *Group) indexOf(ref ElementRef) int {
	for i, e := range g.Elements {
		if e == ref {
			return i
		}
	}
	return -1
}

// Contains reports whether ref is one of the group's elements.
func (g *Group) Contains(ref ElementRef) bool {
	return g.indexOf(ref) >= 0
}

// Level owns an ordered list of groups.
type Level struct {
	groups []*Group
}

// Groups returns the groups of the level in order. The slice is shared.
func (l *Level) Groups() []*Group {
	return l.groups
}

func (l *Level) find(id string) (int, *Group) {
	for i, g := range l.groups {
		if g.ID == id {
			return i, g
		}
	}
	return -1, nil
}

// ActionSet is the view of the action catalog the hierarchy validates
// level 0 references against.
type ActionSet interface {
	Has(id string) bool
}

// Hierarchy is the ordered sequence of levels.
type Hierarchy struct {
	actions ActionSet
	levels  []*Level
}

// New creates a hierarchy with one empty level 0.
func New(actions ActionSet) *Hierarchy {
	return &Hierarchy{actions: actions, levels: []*Level{{}}}
}

// Levels returns the levels in order. The slice is shared.
func (h *Hierarchy) Levels() []*Level {
	return h.levels
}

// Len returns the number of levels.
func (h *Hierarchy) Len() int {
	return len(h.levels)
}

// Level returns level i.
func (h *Hierarchy) Level(i int) (*Level, error) {
	if i < 0 || i >= len(h.levels) {
		return nil, refErr("level", fmt.Sprintf("level %d", i), ErrUnknownLevel)
	}
	return h.levels[i], nil
}

// Top returns the last level, or nil when there is none.
func (h *Hierarchy) Top() *Level {
	if len(h.levels) == 0 {
		return nil
	}
	return h.levels[len(h.levels)-1]
}

// AddLevel appends an empty level after the last one and returns its index.
func (h *Hierarchy) AddLevel() int {
	h.levels = append(h.levels, &Level{})
	return len(h.levels) - 1
}

// AddGroup creates an empty group on a level.
func (h *Hierarchy) AddGroup(level int, mode Mode, name string) (*Group, error) {
	const op = "add group"
	name = strings.TrimSpace(name)
	l, err := h.Level(level)
	if err != nil {
		return nil, refErr(op, fmt.Sprintf("level %d", level), ErrUnknownLevel)
	}
	if !mode.Valid() {
		return nil, refErr(op, name, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode)))
	}
	if name == "" {
		return nil, refErr(op, fmt.Sprintf("level %d", level), ErrEmptyName)
	}
	if _, _, ok := h.GroupByName(name); ok {
		return nil, refErr(op, name, ErrDuplicateGroup)
	}
	g := &Group{ID: uuid.NewString(), Name: name, Mode: mode}
	l.groups = append(l.groups, g)
	return g, nil
}

// Group looks a group up by id on any level and returns it with its level.
func (h *Hierarchy) Group(id string) (*Group, int, error) {
	for i, l := range h.levels {
		if _, g := l.find(id); g != nil {
			return g, i, nil
		}
	}
	return nil, -1, refErr("group", id, ErrUnknownGroup)
}

// GroupByName looks a group up by name on any level.
func (h *Hierarchy) GroupByName(name string) (*Group, int, bool) {
	for i, l := range h.levels {
		for _, g := range l.groups {
			if g.Name == name {
				return g, i, true
			}
		}
	}
	return nil, -1, false
}

func (h *Hierarchy) groupAt(op string, level int, id string) (*Level, int, *Group, error) {
	if level < 0 || level >= len(h.levels) {
		return nil, -1, nil, refErr(op, fmt.Sprintf("level %d", level), ErrUnknownLevel)
	}
	l := h.levels[level]
	i, g := l.find(id)
	if g == nil {
		return nil, -1, nil, refErr(op, fmt.Sprintf("group %s on level %d", id, level), ErrUnknownGroup)
	}
	return l, i, g, nil
}

// checkRef validates ref for a group of the given level: an action of the
// catalog on level 0, a group of the level immediately below above it.
func (h *Hierarchy) checkRef(op string, level int, ref ElementRef) error {
	if level == 0 {
		if ref.Kind != KindAction {
			return refErr(op, ref.String(), ErrWrongKind)
		}
		if h.actions == nil || !h.actions.Has(ref.ID) {
			return refErr(op, ref.String(), ErrUnknownAction)
		}
		return nil
	}
	if ref.Kind != KindGroup {
		return refErr(op, ref.String(), ErrWrongKind)
	}
	if _, child := h.levels[level-1].find(ref.ID); child == nil {
		return refErr(op, fmt.Sprintf("%s on level %d", ref, level-1), ErrUnknownGroup)
	}
	return nil
}

// AddElement appends ref to a group. On level 0 ref must be an action of the
// catalog, above it a group of the level immediately below.
func (h *Hierarchy) AddElement(level int, groupID string, ref ElementRef) error {
	const op = "add element"
	_, _, g, err := h.groupAt(op, level, groupID)
	if err != nil {
		return err
	}
	if err := h.checkRef(op, level, ref); err != nil {
		return err
	}
	if g.Contains(ref) {
		return refErr(op, fmt.Sprintf("%s in %s", ref, g.Name), ErrDuplicateElement)
	}
	g.Elements = append(g.Elements, ref)
	return nil
}

// RemoveElement removes ref from a group. ref is checked like in AddElement;
// removing a valid element the group does not hold is a no-op.
func (h *Hierarchy) RemoveElement(level int, groupID string, ref ElementRef) error {
	const op = "remove element"
	_, _, g, err := h.groupAt(op, level, groupID)
	if err != nil {
		return err
	}
	if err := h.checkRef(op, level, ref); err != nil {
		return err
	}
	if i := g.indexOf(ref); i >= 0 {
		g.Elements = append(g.Elements[:i], g.Elements[i+1:]...)
	}
	return nil
}

// RemoveGroup deletes a group and drops every reference to it from the
// groups of the next level. Referencing groups are kept.
func (h *Hierarchy) RemoveGroup(level int, groupID string) error {
	l, i, g, err := h.groupAt("remove group", level, groupID)
	if err != nil {
		return err
	}
	l.groups = append(l.groups[:i], l.groups[i+1:]...)
	if level+1 < len(h.levels) {
		ref := GroupRef(g.ID)
		for _, parent := range h.levels[level+1].groups {
			if j := parent.indexOf(ref); j >= 0 {
				parent.Elements = append(parent.Elements[:j], parent.Elements[j+1:]...)
			}
		}
	}
	return nil
}

// RemoveLevelAndAbove deletes level and every level above it. When this
// empties the hierarchy and allowEmpty is false, an empty level 0 is recreated.
func (h *Hierarchy) RemoveLevelAndAbove(level int, allowEmpty bool) error {
	if level < 0 || level >= len(h.levels) {
		return refErr("remove level", fmt.Sprintf("level %d", level), ErrUnknownLevel)
	}
	for i := level; i < len(h.levels); i++ {
		h.levels[i] = nil
	}
	h.levels = h.levels[:level]
	if len(h.levels) == 0 && !allowEmpty {
		h.levels = append(h.levels, &Level{})
	}
	return nil
}

// ModifyMode changes the composition mode of a group.
func (h *Hierarchy) ModifyMode(groupID string, mode Mode) error {
	if !mode.Valid() {
		return refErr("modify mode", groupID, fmt.Errorf("%w: %d", ErrInvalidMode, int(mode)))
	}
	g, _, err := h.Group(groupID)
	if err != nil {
		return err
	}
	g.Mode = mode
	return nil
}

// RenameGroup renames a group in place.
func (h *Hierarchy) RenameGroup(groupID, name string) error {
	const op = "rename group"
	name = strings.TrimSpace(name)
	if name == "" {
		return refErr(op, groupID, ErrEmptyName)
	}
	g, _, err := h.Group(groupID)
	if err != nil {
		return err
	}
	if other, _, ok := h.GroupByName(name); ok && other != g {
		return refErr(op, name, ErrDuplicateGroup)
	}
	g.Name = name
	return nil
}

// RemoveAction drops every level 0 reference to an action.
func (h *Hierarchy) RemoveAction(actionID string) {
	if len(h.levels) == 0 {
		return
	}
	ref := ActionRef(actionID)
	for _, g := range h.levels[0].groups {
		if i := g.indexOf(ref); i >= 0 {
			g.Elements = append(g.Elements[:i], g.Elements[i+1:]...)
		}
	}
}

// CheckStructure reports the recoverable emptiness conditions: no level at
// all, or a level without any group.
func (h *Hierarchy) CheckStructure() error {
	if len(h.levels) == 0 {
		return ErrNoLevels
	}
	for i, l := range h.levels {
		if len(l.groups) == 0 {
			return &EmptyLevelError{Level: i}
		}
	}
	return nil
}
