package ponderation

import (
	"fmt"
	"strings"
)

// Term is one weighted action of a load case.
type Term struct {
	Action string
	Factor float64
}

// Case is a weighted load case: the signed linear combination of actions
// a verification is carried out with.
type Case struct {
	Verification Verification
	Terms        []Term
	Predominant  string // leading variable action, empty if none
}

func (c Case) key() string {
	var b strings.Builder
	for _, t := range c.Terms {
		fmt.Fprintf(&b, "%s:%.6f;", t.Action, t.Factor)
	}
	return b.String()
}

// Effect returns Σ factor × value, with value the characteristic load
// effect of each action.
func (c Case) Effect(value func(actionID string) float64) float64 {
	var sum float64
	for _, t := range c.Terms {
		sum += t.Factor * value(t.Action)
	}
	return sum
}

// Label formats the case as "1.35 G + 1.50 Q".
func (c Case) Label(name func(actionID string) string) string {
	parts := make([]string, len(c.Terms))
	for i, t := range c.Terms {
		n := name(t.Action)
		if t.Action == c.Predominant {
			n += "*"
		}
		parts[i] = fmt.Sprintf("%.2f %s", t.Factor, n)
	}
	return strings.Join(parts, " + ")
}

type caseList struct {
	items []Case
	seen  map[string]struct{}
}

func (l *caseList) add(c Case) bool {
	if len(c.Terms) == 0 {
		return false
	}
	if l.seen == nil {
		l.seen = make(map[string]struct{})
	}
	k := c.key()
	if _, ok := l.seen[k]; ok {
		return false
	}
	l.seen[k] = struct{}{}
	l.items = append(l.items, c)
	return true
}
