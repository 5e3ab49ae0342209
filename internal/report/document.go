// Package report renders regenerated load cases as terminal tables, JSON,
// spreadsheets and PDF documents.
package report

import (
	"errors"
	"time"

	"github.com/alexiusacademia/gocomb/internal/ponderation"
	"github.com/alexiusacademia/gocomb/internal/project"
)

// ErrNotGenerated is returned when a project has no current results.
var ErrNotGenerated = errors.New("project has not been regenerated")

// Document is the renderer independent view of one regeneration.
type Document struct {
	Project      string    `json:"project"`
	Annex        string    `json:"annex"`
	Generated    time.Time `json:"generated"`
	Passes       int       `json:"passes"`
	Combinations int       `json:"combinations"`
	Skipped      int       `json:"skipped"`
	Findings     []string  `json:"findings,omitempty"`
	Structure    string    `json:"structure,omitempty"`
	Sections     []Section `json:"verifications"`
}

// Section holds the cases of one verification category.
type Section struct {
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Cases       []CaseRow `json:"cases"`
	Governing   int       `json:"governing"` // index into Cases, -1 when empty
}

// CaseRow is one weighted load case.
type CaseRow struct {
	Label       string    `json:"label"`
	Effect      float64   `json:"effect"`
	Predominant string    `json:"predominant,omitempty"`
	Terms       []TermRow `json:"terms"`
}

type TermRow struct {
	Action string  `json:"action"`
	Factor float64 `json:"factor"`
}

// Build collects the current results of p.
func Build(p *project.Project) (*Document, error) {
	res := p.Results()
	if res == nil {
		return nil, ErrNotGenerated
	}
	d := &Document{
		Project:      p.Name,
		Annex:        string(p.Catalog.Annex()),
		Generated:    time.Now(),
		Passes:       res.Stats.Passes,
		Combinations: res.Stats.Forwarded,
		Skipped:      res.Cases.Skipped(),
	}
	for _, f := range res.Findings {
		d.Findings = append(d.Findings, f.String())
	}
	if res.Structure != nil {
		d.Structure = res.Structure.Error()
	}

	for _, v := range ponderation.Verifications {
		s := Section{Code: v.String(), Description: v.Description(), Governing: -1}
		var maxEffect float64
		for i, c := range res.Cases.Cases(v) {
			row := CaseRow{
				Label:  c.Label(p.ActionName),
				Effect: res.Cases.Effect(c),
			}
			if c.Predominant != "" {
				row.Predominant = p.ActionName(c.Predominant)
			}
			for _, t := range c.Terms {
				row.Terms = append(row.Terms, TermRow{Action: p.ActionName(t.Action), Factor: t.Factor})
			}
			if s.Governing < 0 || abs(row.Effect) > abs(maxEffect) {
				s.Governing, maxEffect = i, row.Effect
			}
			s.Cases = append(s.Cases, row)
		}
		d.Sections = append(d.Sections, s)
	}
	return d, nil
}

// Section returns the section with the given code.
func (d *Document) Section(code string) (Section, bool) {
	for _, s := range d.Sections {
		if s.Code == code {
			return s, true
		}
	}
	return Section{}, false
}

// Cases returns the total number of cases.
func (d *Document) Cases() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Cases)
	}
	return n
}

// GoverningCase returns the governing case of the section, if any.
func (s Section) GoverningCase() (CaseRow, bool) {
	if s.Governing < 0 || s.Governing >= len(s.Cases) {
		return CaseRow{}, false
	}
	return s.Cases[s.Governing], true
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
