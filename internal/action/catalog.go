package action

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrDuplicateName = errors.New("duplicate action name")
	ErrEmptyName     = errors.New("action name is empty")
)

// Load is a single load attached to an action. Only its presence matters to
// combination generation; Value is the characteristic load effect used when
// combinations are weighted.
type Load struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// Action is a named loading case.
type Action struct {
	ID          string
	Name        string
	Description string
	Type        Type
	Category    Category

	// Combination coefficients, re-derived whenever Type or the annex changes
	Psi0 float64
	Psi1 float64
	Psi2 float64

	Loads []Load
}

// HasLoads reports whether any load is attached to the action.
func (a *Action) HasLoads() bool {
	return len(a.Loads) > 0
}

// Characteristic returns the sum of the attached load values.
func (a *Action) Characteristic() float64 {
	var sum float64
	for _, l := range a.Loads {
		sum += l.Value
	}
	return sum
}

// Catalog owns the actions of a project in insertion order.
type Catalog struct {
	annex   Annex
	actions []*Action
}

// NewCatalog creates an empty catalog bound to an annex.
func NewCatalog(annex Annex) *Catalog {
	if annex == "" {
		annex = AnnexEU
	}
	return &Catalog{annex: annex}
}

// Annex returns the active national annex.
func (c *Catalog) Annex() Annex {
	return c.annex
}

// SetAnnex switches the annex and re-derives every action. It fails without
// changing anything if one of the existing types is not defined by the new annex.
func (c *Catalog) SetAnnex(annex Annex) error {
	rows := make([]Coefficients, len(c.actions))
	for i, a := range c.actions {
		row, err := Lookup(annex, a.Type)
		if err != nil {
			return fmt.Errorf("action %s: %w", a.Name, err)
		}
		rows[i] = row
	}
	c.annex = annex
	for i, a := range c.actions {
		a.apply(rows[i])
	}
	return nil
}

// Add creates an action of the given type.
func (c *Catalog) Add(name string, t Type) (*Action, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, ok := c.ByName(name); ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	row, err := Lookup(c.annex, t)
	if err != nil {
		return nil, err
	}
	a := &Action{ID: uuid.NewString(), Name: name}
	a.apply(row)
	c.actions = append(c.actions, a)
	return a, nil
}

func (a *Action) apply(row Coefficients) {
	a.Type = row.Type
	a.Category = row.Category
	a.Psi0 = row.Psi0
	a.Psi1 = row.Psi1
	a.Psi2 = row.Psi2
}

// Get returns the action with the given id.
func (c *Catalog) Get(id string) (*Action, error) {
	for _, a := range c.actions {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAction, id)
}

// Has reports whether id names an action of the catalog.
func (c *Catalog) Has(id string) bool {
	_, err := c.Get(id)
	return err == nil
}

// ByName returns the action with the given name.
func (c *Catalog) ByName(name string) (*Action, bool) {
	for _, a := range c.actions {
		if a.Name == name {
			return a, true
		}
	}
	return nil, false
}

// Actions returns the actions in insertion order. The slice is shared.
func (c *Catalog) Actions() []*Action {
	return c.actions
}

// Len returns the number of actions.
func (c *Catalog) Len() int {
	return len(c.actions)
}

// Rename renames an action in place.
func (c *Catalog) Rename(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	a, err := c.Get(id)
	if err != nil {
		return err
	}
	if other, ok := c.ByName(name); ok && other != a {
		return fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	a.Name = name
	return nil
}

// SetType changes the normative type and re-derives category and ψ factors.
func (c *Catalog) SetType(id string, t Type) error {
	a, err := c.Get(id)
	if err != nil {
		return err
	}
	row, err := Lookup(c.annex, t)
	if err != nil {
		return err
	}
	a.apply(row)
	return nil
}

// AddLoad attaches a load to an action.
func (c *Catalog) AddLoad(id string, l Load) error {
	a, err := c.Get(id)
	if err != nil {
		return err
	}
	a.Loads = append(a.Loads, l)
	return nil
}

// RemoveLoad detaches the load at index i.
func (c *Catalog) RemoveLoad(id string, i int) error {
	a, err := c.Get(id)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(a.Loads) {
		return fmt.Errorf("action %s has no load #%d", a.Name, i)
	}
	a.Loads = append(a.Loads[:i], a.Loads[i+1:]...)
	return nil
}

// Remove deletes an action from the catalog. Callers holding group
// references must drop them as well.
func (c *Catalog) Remove(id string) error {
	for i, a := range c.actions {
		if a.ID == id {
			c.actions = append(c.actions[:i], c.actions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownAction, id)
}
