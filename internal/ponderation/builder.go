// Package ponderation turns generated combinations into weighted load
// cases, one list per Eurocode verification category.
package ponderation

import (
	"math"

	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/alexiusacademia/gocomb/internal/combination"
	"go.uber.org/zap"
)

// Catalog resolves the actions referenced by combinations.
type Catalog interface {
	Get(id string) (*action.Action, error)
}

// Builder accumulates weighted load cases across generation passes.
// It implements combination.Sink.
type Builder struct {
	catalog Catalog
	factors Factors
	log     *zap.Logger

	cases   map[Verification]*caseList
	skipped int
}

// NewBuilder creates an empty builder. A nil factors map selects the EU
// recommended values.
func NewBuilder(catalog Catalog, factors Factors, log *zap.Logger) *Builder {
	if factors == nil {
		factors = DefaultFactors(action.AnnexEU)
	}
	if log == nil {
		log = zap.NewNop()
	}
	b := &Builder{catalog: catalog, factors: factors, log: log, cases: map[Verification]*caseList{}}
	for _, v := range Verifications {
		b.cases[v] = &caseList{}
	}
	return b
}

// member is one resolved entry of a combination.
type member struct {
	a           *action.Action
	predominant bool
}

type split struct {
	permanent   []member // excluding prestress
	prestress   []member
	groundwater []member
	variable    []member
	accidental  []member
	seismic     []member
	leading     string
}

func (b *Builder) split(c combination.Combination) (split, error) {
	var s split
	for _, e := range c {
		a, err := b.catalog.Get(e.Action)
		if err != nil {
			return s, err
		}
		m := member{a: a, predominant: e.Predominant}
		switch a.Category {
		case action.CategoryPermanent:
			if a.Type == action.TypePrestress {
				s.prestress = append(s.prestress, m)
			} else {
				s.permanent = append(s.permanent, m)
			}
		case action.CategoryGroundwater:
			s.groundwater = append(s.groundwater, m)
		case action.CategoryVariable:
			s.variable = append(s.variable, m)
			if e.Predominant {
				s.leading = a.ID
			}
		case action.CategoryAccidental:
			s.accidental = append(s.accidental, m)
		case action.CategorySeismic:
			s.seismic = append(s.seismic, m)
		}
	}
	return s, nil
}

// Consume weights the top level combinations of one pass.
func (b *Builder) Consume(pass combination.Pass, top []combination.Combination) error {
	for _, c := range top {
		s, err := b.split(c)
		if err != nil {
			return err
		}
		b.weigh(s)
	}
	b.log.Debug("pass weighted", zap.Int("pass", pass.Index), zap.Int("combinations", len(top)), zap.Int("cases", b.Count()))
	return nil
}

func (b *Builder) weigh(s split) {
	// accidental and seismic actions are never combined with each other
	if len(s.accidental)+len(s.seismic) > 1 {
		b.skipped++
		return
	}
	needsLeading := len(s.variable) > 0 && s.leading == ""

	switch {
	case len(s.accidental) == 1:
		if !needsLeading {
			b.emit(ULSAccidental, s, func(m member, leading bool) float64 {
				if leading {
					return m.a.Psi1
				}
				return m.a.Psi2
			})
		}
	case len(s.seismic) == 1:
		b.emit(ULSSeismic, s, func(m member, _ bool) float64 { return m.a.Psi2 })
	default:
		if !needsLeading {
			for _, v := range []Verification{ULSEquilibrium, ULSStructural, ULSGeotechnical} {
				q := b.factors[v].Q
				b.emit(v, s, func(m member, leading bool) float64 {
					if leading {
						return q
					}
					return q * m.a.Psi0
				})
			}
			b.emit(ULSFatigue, s, frequent)
			b.emit(SLSCharacteristic, s, func(m member, leading bool) float64 {
				if leading {
					return 1
				}
				return m.a.Psi0
			})
			b.emit(SLSFrequent, s, frequent)
		}
		b.emit(SLSQuasiPermanent, s, func(m member, _ bool) float64 { return m.a.Psi2 })
	}
}

func frequent(m member, leading bool) float64 {
	if leading {
		return m.a.Psi1
	}
	return m.a.Psi2
}

// emit adds the cases of one verification. Every permanent action takes
// its unfavourable or favourable factor independently, so p permanent
// actions give up to 2^p cases.
func (b *Builder) emit(v Verification, s split, variable func(m member, leading bool) float64) {
	pf := b.factors[v]
	var fixed []Term
	for _, m := range s.prestress {
		fixed = append(fixed, Term{Action: m.a.ID, Factor: pf.Prestress})
	}
	for _, m := range s.groundwater {
		fixed = append(fixed, Term{Action: m.a.ID, Factor: pf.Groundwater})
	}
	for _, m := range s.accidental {
		fixed = append(fixed, Term{Action: m.a.ID, Factor: 1})
	}
	for _, m := range s.seismic {
		fixed = append(fixed, Term{Action: m.a.ID, Factor: 1})
	}
	for _, m := range s.variable {
		if f := variable(m, m.a.ID == s.leading); f != 0 {
			fixed = append(fixed, Term{Action: m.a.ID, Factor: f})
		}
	}

	variants := 1
	if pf.GSup != pf.GInf {
		variants = 1 << uint(len(s.permanent))
	}
	for mask := 0; mask < variants; mask++ {
		terms := make([]Term, 0, len(s.permanent)+len(fixed))
		for k, m := range s.permanent {
			f := pf.GSup
			if mask&(1<<uint(k)) != 0 {
				f = pf.GInf
			}
			terms = append(terms, Term{Action: m.a.ID, Factor: f})
		}
		terms = append(terms, fixed...)
		b.cases[v].add(Case{Verification: v, Terms: terms, Predominant: s.leading})
	}
}

// Cases returns the weighted cases of a category.
func (b *Builder) Cases(v Verification) []Case {
	if l, ok := b.cases[v]; ok {
		return l.items
	}
	return nil
}

// Count returns the number of cases over every category.
func (b *Builder) Count() int {
	n := 0
	for _, l := range b.cases {
		n += len(l.items)
	}
	return n
}

// Skipped returns how many combinations mixed several accidental or
// seismic actions and were left out.
func (b *Builder) Skipped() int {
	return b.skipped
}

// Effect evaluates a case with the characteristic values of the catalog.
func (b *Builder) Effect(c Case) float64 {
	return c.Effect(func(id string) float64 {
		a, err := b.catalog.Get(id)
		if err != nil {
			return 0
		}
		return a.Characteristic()
	})
}

// Governing finds the case with the largest absolute effect in a category.
func (b *Builder) Governing(v Verification) (Case, float64, bool) {
	var gov Case
	var maxEffect float64
	found := false
	for _, c := range b.Cases(v) {
		e := b.Effect(c)
		if !found || math.Abs(e) > math.Abs(maxEffect) {
			gov, maxEffect, found = c, e, true
		}
	}
	return gov, maxEffect, found
}
