package cmd

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/alexiusacademia/gocomb/internal/diagram"
	"github.com/alexiusacademia/gocomb/internal/project"
	"github.com/alexiusacademia/gocomb/internal/report"
	"go.uber.org/zap"
)

// loadProject reads the project file and applies the --annex override.
func loadProject() (*project.Project, error) {
	p, err := project.Load(settings.File)
	if err != nil {
		return nil, err
	}
	if err := applyAnnex(p); err != nil {
		return nil, err
	}
	logger.Debug("project loaded",
		zap.String("file", settings.File),
		zap.String("annex", string(p.Catalog.Annex())),
		zap.Int("actions", p.Catalog.Len()),
		zap.Int("levels", p.Hierarchy.Len()))
	return p, nil
}

// applyAnnex switches p to the --annex override, if any.
func applyAnnex(p *project.Project) error {
	if settings.Annex == "" {
		return nil
	}
	annex, err := action.ParseAnnex(settings.Annex)
	if err != nil {
		return err
	}
	if annex == p.Catalog.Annex() {
		return nil
	}
	return p.SetAnnex(annex)
}

// generateProject loads and regenerates the project.
func generateProject() (*project.Project, *report.Document, error) {
	p, err := loadProject()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.Regenerate(logger); err != nil {
		return nil, nil, err
	}
	d, err := report.Build(p)
	if err != nil {
		return nil, nil, err
	}
	return p, d, nil
}

// editProject applies fn to the project and saves it back.
func editProject(what string, fn func(p *project.Project) error) error {
	p, err := loadProject()
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	if err := p.Save(settings.File); err != nil {
		return err
	}
	logger.Info("project saved", zap.String("file", settings.File), zap.String("edit", what))
	fmt.Printf("  %s: %s\n", settings.File, what)
	return nil
}

// sections returns every section, or only the one named by code.
func sections(d *report.Document, code string) ([]report.Section, error) {
	if code == "" {
		return d.Sections, nil
	}
	s, ok := d.Section(strings.ToUpper(code))
	if !ok {
		return nil, fmt.Errorf("unknown verification %q", code)
	}
	return []report.Section{s}, nil
}

func effectData(s report.Section) diagram.EffectData {
	data := diagram.EffectData{Verification: s.Code, Governing: s.Governing}
	for _, c := range s.Cases {
		data.Labels = append(data.Labels, c.Label)
		data.Effects = append(data.Effects, c.Effect)
	}
	return data
}

func printNotes(d *report.Document) {
	if d.Structure != "" {
		fmt.Printf("  Note: %s\n", d.Structure)
	}
	for _, f := range d.Findings {
		fmt.Printf("  Warning: %s\n", f)
	}
	if d.Skipped > 0 {
		fmt.Printf("  Skipped %d combinations mixing accidental or seismic actions\n", d.Skipped)
	}
}
