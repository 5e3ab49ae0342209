package project

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/alexiusacademia/gocomb/internal/action"
	"github.com/alexiusacademia/gocomb/internal/hierarchy"
	"gopkg.in/yaml.v3"
)

// File models a project document. Elements are referenced by name: action
// names on level 0, names of groups of the level below above it.
type File struct {
	Name    string        `yaml:"name" json:"name"`
	Annex   string        `yaml:"annex,omitempty" json:"annex,omitempty"`
	Actions []ActionEntry `yaml:"actions" json:"actions"`
	Levels  []LevelEntry  `yaml:"levels" json:"levels"`
}

type ActionEntry struct {
	Name        string        `yaml:"name" json:"name"`
	Type        string        `yaml:"type" json:"type"`
	Description string        `yaml:"description,omitempty" json:"description,omitempty"`
	Loads       []action.Load `yaml:"loads,omitempty" json:"loads,omitempty"`
}

type LevelEntry struct {
	Groups []GroupEntry `yaml:"groups" json:"groups"`
}

type GroupEntry struct {
	Name     string   `yaml:"name" json:"name"`
	Mode     string   `yaml:"mode" json:"mode"`
	Elements []string `yaml:"elements,omitempty" json:"elements,omitempty"`
}

// Load reads a project file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("project %s not found; create one with gocomb init --file %s", path, path)
		}
		return nil, err
	}
	return FromYAML(data)
}

// FromYAML parses and builds a project from raw YAML bytes.
func FromYAML(data []byte) (*Project, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid project yaml: %w", err)
	}
	return f.Build()
}

// Build validates the document and creates the catalog and hierarchy.
func (f *File) Build() (*Project, error) {
	annex, err := action.ParseAnnex(f.Annex)
	if err != nil {
		return nil, err
	}
	p := New(f.Name, annex)
	for i, ae := range f.Actions {
		a, err := p.Catalog.Add(ae.Name, action.Type(ae.Type))
		if err != nil {
			return nil, fmt.Errorf("actions[%d]: %w", i, err)
		}
		a.Description = ae.Description
		a.Loads = append(a.Loads, ae.Loads...)
	}
	for lvl, le := range f.Levels {
		if lvl > 0 {
			p.Hierarchy.AddLevel()
		}
		for _, ge := range le.Groups {
			mode, err := hierarchy.ParseMode(ge.Mode)
			if err != nil {
				return nil, fmt.Errorf("level %d group %s: %w", lvl, ge.Name, err)
			}
			g, err := p.Hierarchy.AddGroup(lvl, mode, ge.Name)
			if err != nil {
				return nil, err
			}
			for _, name := range ge.Elements {
				ref, err := p.Ref(lvl, name)
				if err != nil {
					return nil, fmt.Errorf("level %d group %s: %w", lvl, ge.Name, err)
				}
				if err := p.Hierarchy.AddElement(lvl, g.ID, ref); err != nil {
					return nil, err
				}
			}
		}
	}
	return p, nil
}

// ToFile converts a project back to its document form.
func (p *Project) ToFile() *File {
	f := &File{Name: p.Name, Annex: string(p.Catalog.Annex())}
	for _, a := range p.Catalog.Actions() {
		f.Actions = append(f.Actions, ActionEntry{
			Name:        a.Name,
			Type:        string(a.Type),
			Description: a.Description,
			Loads:       append([]action.Load(nil), a.Loads...),
		})
	}
	for _, l := range p.Hierarchy.Levels() {
		var le LevelEntry
		for _, g := range l.Groups() {
			ge := GroupEntry{Name: g.Name, Mode: strings.ToLower(g.Mode.String())}
			for _, ref := range g.Elements {
				ge.Elements = append(ge.Elements, p.RefName(ref))
			}
			le.Groups = append(le.Groups, ge)
		}
		f.Levels = append(f.Levels, le)
	}
	return f
}

// ToYAML serialises the project.
func (p *Project) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p.ToFile()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes the project to path.
func (p *Project) Save(path string) error {
	data, err := p.ToYAML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Default returns a sample project: a building with dead, imposed, snow
// and wind loads.
func Default(name string) string {
	return fmt.Sprintf(defaultTemplate, name)
}

const defaultTemplate = `name: %s
annex: eu

actions:
  - name: G
    type: permanent
    description: Self weight and finishes
    loads:
      - {name: self weight, value: 45}
      - {name: finishes, value: 12}
  - name: Q
    type: imposed-b
    description: Office floors
    loads:
      - {name: floor, value: 30}
  - name: S
    type: snow-low
    loads:
      - {name: roof snow, value: 8}
  - name: W
    type: wind
    loads:
      - {name: wind x, value: 15}

levels:
  - groups:
      - name: permanent
        mode: and
        elements: [G]
      - name: imposed
        mode: or
        elements: [Q]
      - name: climatic
        mode: xor
        elements: [S, W]
  - groups:
      - name: gravity
        mode: and
        elements: [permanent]
      - name: variable
        mode: or
        elements: [imposed, climatic]
  - groups:
      - name: design
        mode: and
        elements: [gravity, variable]
`
