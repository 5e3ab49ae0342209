package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/alexiusacademia/gocomb/internal/combination"
	"github.com/alexiusacademia/gocomb/internal/hierarchy"
	"github.com/alexiusacademia/gocomb/internal/project"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable(w io.Writer, title string) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	if title != "" {
		tw.SetTitle(title)
	}
	return tw
}

// Summary renders one row per verification category with its governing case.
func Summary(w io.Writer, d *Document) {
	tw := newTable(w, fmt.Sprintf("%s (annex %s)", d.Project, strings.ToUpper(d.Annex)))
	tw.AppendHeader(table.Row{"Verification", "Cases", "Governing case", "Effect"})
	for _, s := range d.Sections {
		gov, ok := s.GoverningCase()
		if !ok {
			tw.AppendRow(table.Row{s.Code, 0, "-", "-"})
			continue
		}
		tw.AppendRow(table.Row{s.Code, len(s.Cases), gov.Label, fmt.Sprintf("%.2f", gov.Effect)})
	}
	tw.AppendFooter(table.Row{"Total", d.Cases(), fmt.Sprintf("%d passes, %d combinations", d.Passes, d.Combinations), ""})
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 4, Align: text.AlignRight}})
	tw.Render()
}

// Cases renders every case of one section; the governing row is marked.
func Cases(w io.Writer, s Section) {
	tw := newTable(w, fmt.Sprintf("%s: %s", s.Code, s.Description))
	tw.AppendHeader(table.Row{"#", "Combination", "Effect", ""})
	for i, c := range s.Cases {
		marker := ""
		if i == s.Governing {
			marker = "← GOVERNS"
		}
		tw.AppendRow(table.Row{i + 1, c.Label, fmt.Sprintf("%.2f", c.Effect), marker})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{{Number: 3, Align: text.AlignRight}})
	tw.Render()
}

// Actions renders the action catalog with its coefficients.
func Actions(w io.Writer, c *action.Catalog) {
	tw := newTable(w, "Actions")
	tw.AppendHeader(table.Row{"Name", "Type", "Category", "ψ0", "ψ1", "ψ2", "Value"})
	for _, a := range c.Actions() {
		value := "-"
		if a.HasLoads() {
			value = fmt.Sprintf("%.2f", a.Characteristic())
		}
		tw.AppendRow(table.Row{a.Name, a.Type, a.Category, a.Psi0, a.Psi1, a.Psi2, value})
	}
	tw.Render()
}

// Coefficients renders the ψ table of an annex.
func Coefficients(w io.Writer, annex action.Annex) {
	tw := newTable(w, fmt.Sprintf("Combination coefficients, annex %s", strings.ToUpper(string(annex))))
	tw.AppendHeader(table.Row{"Type", "Description", "Category", "ψ0", "ψ1", "ψ2"})
	for _, row := range action.Table(annex) {
		tw.AppendRow(table.Row{row.Type, row.Description, row.Category, row.Psi0, row.Psi1, row.Psi2})
	}
	tw.Render()
}

// Combinations renders unweighted combinations. Predominant actions carry a "*".
func Combinations(w io.Writer, title string, combos []combination.Combination, name func(id string) string) {
	tw := newTable(w, title)
	tw.AppendHeader(table.Row{"#", "Actions"})
	for i, c := range combos {
		parts := make([]string, len(c))
		for k, e := range c {
			parts[k] = name(e.Action)
			if e.Predominant {
				parts[k] += "*"
			}
		}
		tw.AppendRow(table.Row{i + 1, strings.Join(parts, " + ")})
	}
	tw.Render()
}

// Tree renders the hierarchy from the top level down.
func Tree(p *project.Project) string {
	lw := list.NewWriter()
	lw.SetStyle(list.StyleConnectedRounded)
	top := p.Hierarchy.Len() - 1
	if top < 0 {
		return ""
	}
	for lvl := top; lvl >= 0; lvl-- {
		l, _ := p.Hierarchy.Level(lvl)
		for _, g := range l.Groups() {
			// lower groups are printed under their parents
			if lvl == top || !hasParent(p, lvl, g) {
				appendGroup(lw, p, lvl, g)
			}
		}
	}
	return lw.Render()
}

func appendGroup(lw list.Writer, p *project.Project, lvl int, g *hierarchy.Group) {
	lw.AppendItem(fmt.Sprintf("%s [%s] L%d", g.Name, g.Mode, lvl))
	if len(g.Elements) == 0 {
		return
	}
	lw.Indent()
	for _, ref := range g.Elements {
		if ref.Kind == hierarchy.KindAction {
			lw.AppendItem(p.RefName(ref))
			continue
		}
		child, childLvl, err := p.Hierarchy.Group(ref.ID)
		if err != nil {
			lw.AppendItem(ref.ID)
			continue
		}
		appendGroup(lw, p, childLvl, child)
	}
	lw.UnIndent()
}

func hasParent(p *project.Project, lvl int, g *hierarchy.Group) bool {
	parents, err := p.Hierarchy.Level(lvl + 1)
	if err != nil {
		return false
	}
	for _, parent := range parents.Groups() {
		if parent.Contains(hierarchy.GroupRef(g.ID)) {
			return true
		}
	}
	return false
}

// JSON writes v indented.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
