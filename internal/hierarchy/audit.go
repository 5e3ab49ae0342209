package hierarchy

import "fmt"

// FindingKind classifies a configuration worth reporting to the user.
type FindingKind string

const (
	// FindingSharedAction: one action is referenced by several level 0 groups.
	FindingSharedAction FindingKind = "shared-action"
	// FindingSharedGroup: one group is referenced by several parents.
	FindingSharedGroup FindingKind = "shared-group"
	// FindingOrphanGroup: a group below the top level has no parent, so it
	// never reaches the generated combinations.
	FindingOrphanGroup FindingKind = "orphan-group"
	// FindingWideOr: an OR group too wide to enumerate.
	FindingWideOr FindingKind = "wide-or"
)

// Finding is one audit result.
type Finding struct {
	Kind    FindingKind
	Level   int
	Ref     string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("[%s] level %d: %s", f.Kind, f.Level, f.Message)
}

// Audit reports shared references, orphan groups and oversized OR groups.
// Shared references are tolerated by the model, but merging never counts
// the same action twice inside one combination, so a shared sub-group does
// not double its contribution.
func (h *Hierarchy) Audit(actionName func(id string) string) []Finding {
	if actionName == nil {
		actionName = func(id string) string { return id }
	}
	var out []Finding
	for lvl, l := range h.levels {
		owners := map[ElementRef][]string{}
		var order []ElementRef
		for _, g := range l.groups {
			if g.Mode == ModeOR && len(g.Elements) > MaxOrWidth {
				out = append(out, Finding{
					Kind:    FindingWideOr,
					Level:   lvl,
					Ref:     g.ID,
					Message: fmt.Sprintf("OR group %s has %d elements (max %d)", g.Name, len(g.Elements), MaxOrWidth),
				})
			}
			for _, e := range g.Elements {
				if _, seen := owners[e]; !seen {
					order = append(order, e)
				}
				owners[e] = append(owners[e], g.Name)
			}
		}
		for _, e := range order {
			names := owners[e]
			if len(names) < 2 {
				continue
			}
			if e.Kind == KindAction {
				out = append(out, Finding{
					Kind:    FindingSharedAction,
					Level:   lvl,
					Ref:     e.ID,
					Message: fmt.Sprintf("action %s is referenced by groups %v", actionName(e.ID), names),
				})
			} else {
				child := e.ID
				if g, _, err := h.Group(e.ID); err == nil {
					child = g.Name
				}
				out = append(out, Finding{
					Kind:    FindingSharedGroup,
					Level:   lvl,
					Ref:     e.ID,
					Message: fmt.Sprintf("group %s is referenced by groups %v", child, names),
				})
			}
		}
		if lvl+1 < len(h.levels) {
			for _, g := range l.groups {
				if _, used := h.parentOf(lvl, g.ID); !used {
					out = append(out, Finding{
						Kind:    FindingOrphanGroup,
						Level:   lvl,
						Ref:     g.ID,
						Message: fmt.Sprintf("group %s is not used by any group of level %d", g.Name, lvl+1),
					})
				}
			}
		}
	}
	return out
}

func (h *Hierarchy) parentOf(level int, groupID string) (*Group, bool) {
	ref := GroupRef(groupID)
	for _, p := range h.levels[level+1].groups {
		if p.Contains(ref) {
			return p, true
		}
	}
	return nil, false
}
