package combination

import (
	"github.com/alexiusacademia/gocomb/internal/hierarchy"
)

// Level 0 combinators receive only the elements that carry loads, in group
// order. Level > 0 combinators receive the combination lists of the child
// groups, in group order.

// combineActions applies a level 0 composition mode.
func combineActions(mode hierarchy.Mode, entries []Entry) []Combination {
	switch mode {
	case hierarchy.ModeOR:
		return orActions(entries)
	case hierarchy.ModeXOR:
		return xorActions(entries)
	case hierarchy.ModeAND:
		return andActions(entries)
	}
	return nil
}

// combineGroups applies a level > 0 composition mode.
func combineGroups(mode hierarchy.Mode, children [][]Combination) []Combination {
	switch mode {
	case hierarchy.ModeOR:
		return orGroups(children)
	case hierarchy.ModeXOR:
		return xorGroups(children)
	case hierarchy.ModeAND:
		return andGroups(children)
	}
	return nil
}

// orActions emits every non-empty subset, in increasing bitmask order.
func orActions(entries []Entry) []Combination {
	n := len(entries)
	if n == 0 || n > hierarchy.MaxOrWidth {
		return nil
	}
	var out List
	end := uint64(1) << uint(n)
	for mask := uint64(1); mask < end; mask++ {
		c := make(Combination, 0, n)
		for k := 0; k < n; k++ {
			if mask&(1<<uint(k)) != 0 {
				c = append(c, entries[k])
			}
		}
		out.Add(c)
	}
	return out.Items()
}

// xorActions emits one singleton per element.
func xorActions(entries []Entry) []Combination {
	var out List
	for _, e := range entries {
		out.Add(Combination{e})
	}
	return out.Items()
}

// andActions emits a single combination holding every element.
func andActions(entries []Entry) []Combination {
	if len(entries) == 0 {
		return nil
	}
	c := make(Combination, len(entries))
	copy(c, entries)
	return []Combination{c}
}

// xorGroups concatenates the children's lists, dropping repeats.
func xorGroups(children [][]Combination) []Combination {
	var out List
	for _, child := range children {
		out.AddAll(child)
	}
	return out.Items()
}

// andGroups is the cartesian product of the children's lists, built one
// child at a time from the first child. A child without any combination
// empties the product.
func andGroups(children [][]Combination) []Combination {
	if len(children) == 0 {
		return nil
	}
	running := append([]Combination(nil), children[0]...)
	for _, child := range children[1:] {
		running = merge(running, child)
	}
	return Unique(running)
}

// orGroups merges, for every non-empty subset of the children, the selected
// children's lists and collects the results.
func orGroups(children [][]Combination) []Combination {
	n := len(children)
	if n == 0 || n > hierarchy.MaxOrWidth {
		return nil
	}
	var out List
	selected := make([][]Combination, 0, n)
	end := uint64(1) << uint(n)
	for mask := uint64(1); mask < end; mask++ {
		selected = selected[:0]
		for k := 0; k < n; k++ {
			if mask&(1<<uint(k)) != 0 {
				selected = append(selected, children[k])
			}
		}
		out.AddAll(andGroups(selected))
	}
	return out.Items()
}

// merge is one cartesian step: the running list is repeated once per
// combination of next, and each copy is extended with that combination.
func merge(running, next []Combination) []Combination {
	out := make([]Combination, 0, len(running)*len(next))
	for _, n := range next {
		for _, r := range running {
			out = append(out, r.concat(n))
		}
	}
	return out
}
