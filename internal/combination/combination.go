// Package combination generates the admissible combinations of actions
// described by a group hierarchy.
package combination

import (
	"strings"
)

// Entry is one action of a combination with its predominance flag for the
// pass that produced it.
type Entry struct {
	Action      string
	Predominant bool
}

// Combination is an ordered set of simultaneously acting actions.
type Combination []Entry

// Equal compares length and every (action, flag) pair in order.
func (c Combination) Equal(o Combination) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}
	return true
}

// Contains reports whether the action takes part in the combination.
func (c Combination) Contains(actionID string) bool {
	for _, e := range c {
		if e.Action == actionID {
			return true
		}
	}
	return false
}

// Predominant returns the predominant action of the combination, if any.
func (c Combination) Predominant() (string, bool) {
	for _, e := range c {
		if e.Predominant {
			return e.Action, true
		}
	}
	return "", false
}

// Key is a string identity: two combinations are Equal iff their keys match.
func (c Combination) Key() string {
	var b strings.Builder
	for _, e := range c {
		b.WriteString(e.Action)
		if e.Predominant {
			b.WriteString("\x01")
		} else {
			b.WriteString("\x00")
		}
	}
	return b.String()
}

// concat returns c followed by the entries of o not already in c.
func (c Combination) concat(o Combination) Combination {
	out := make(Combination, len(c), len(c)+len(o))
	copy(out, c)
	for _, e := range o {
		if !out.Contains(e.Action) {
			out = append(out, e)
		}
	}
	return out
}

// List is an ordered, de-duplicated list of combinations.
// The zero value is ready to use.
type List struct {
	items []Combination
	seen  map[string]struct{}
}

// Add appends c unless it is empty or already present. It reports whether
// c was appended.
func (l *List) Add(c Combination) bool {
	if len(c) == 0 {
		return false
	}
	if l.seen == nil {
		l.seen = make(map[string]struct{})
	}
	k := c.Key()
	if _, ok := l.seen[k]; ok {
		return false
	}
	l.seen[k] = struct{}{}
	l.items = append(l.items, c)
	return true
}

// AddAll adds every combination of cs in order.
func (l *List) AddAll(cs []Combination) {
	for _, c := range cs {
		l.Add(c)
	}
}

// Items returns the combinations in insertion order.
func (l *List) Items() []Combination {
	return l.items
}

// Len returns the number of combinations.
func (l *List) Len() int {
	return len(l.items)
}

// Unique returns cs without empty or repeated combinations, keeping the
// first occurrence.
func Unique(cs []Combination) []Combination {
	var l List
	l.AddAll(cs)
	return l.Items()
}
