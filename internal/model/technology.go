package model

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownTechnology is returned when a technology name is not in the catalog.
	ErrUnknownTechnology = errors.New("unknown technology")
	// ErrInvalidParameter is returned for out-of-range model inputs.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// TechnologySpec defines the parameters of one electrolyzer technology.
// Units:
// - CapexPerKW: $/kW installed
// - EfficiencyKWhPerKg: kWh of electricity per kg of H2
// - LifetimeYears: economic lifetime of the plant
// - StackDurabilityHours: operating hours before the stack must be replaced
// - StackCost: $ per stack replacement
// - StackCostByYear: optional declining replacement-cost curve, one $ value
//   per year of plant life; when set it is used by the per-year stack
//   scheduler instead of the flat StackCost.
type TechnologySpec struct {
	Name                 string
	CapexPerKW           float64
	EfficiencyKWhPerKg   float64
	LifetimeYears        int
	StackDurabilityHours int
	StackCost            float64
	StackCostByYear      []float64
}

func (t TechnologySpec) Validate() error {
	if t.Name == "" {
		return errors.New("technology name is required")
	}
	if t.CapexPerKW < 0 {
		return errors.New("CapexPerKW must be >= 0")
	}
	if t.EfficiencyKWhPerKg <= 0 {
		return errors.New("EfficiencyKWhPerKg must be > 0")
	}
	if t.LifetimeYears <= 0 {
		return errors.New("LifetimeYears must be > 0")
	}
	if t.StackDurabilityHours <= 0 {
		return errors.New("StackDurabilityHours must be > 0")
	}
	if t.StackCost < 0 {
		return errors.New("StackCost must be >= 0")
	}
	return nil
}

// Catalog is an immutable set of technology specs, keyed by name.
// It is built once and never mutated, so it is safe for concurrent reads.
type Catalog struct {
	specs map[string]TechnologySpec
}

func NewCatalog(specs ...TechnologySpec) (*Catalog, error) {
	c := &Catalog{specs: make(map[string]TechnologySpec, len(specs))}
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("technology %q invalid: %w", s.Name, err)
		}
		if _, dup := c.specs[s.Name]; dup {
			return nil, fmt.Errorf("duplicate technology %q", s.Name)
		}
		c.specs[s.Name] = s
	}
	return c, nil
}

// Lookup returns the spec for name, or ErrUnknownTechnology.
func (c *Catalog) Lookup(name string) (TechnologySpec, error) {
	spec, ok := c.specs[name]
	if !ok {
		return TechnologySpec{}, fmt.Errorf("%w: %q", ErrUnknownTechnology, name)
	}
	return spec, nil
}

// Names returns the catalog's technology names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.specs))
	for n := range c.specs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Default technology parameters. SOEC capex includes $500/kW balance of
// plant on top of the $2000/kW stack system.
var defaultCatalog = func() *Catalog {
	c, err := NewCatalog(
		TechnologySpec{
			Name:                 "PEM",
			CapexPerKW:           400,
			EfficiencyKWhPerKg:   50,
			LifetimeYears:        20,
			StackDurabilityHours: 60000,
			StackCost:            5000,
		},
		TechnologySpec{
			Name:                 "Alkaline",
			CapexPerKW:           300,
			EfficiencyKWhPerKg:   55,
			LifetimeYears:        30,
			StackDurabilityHours: 80000,
			StackCost:            4000,
		},
		TechnologySpec{
			Name:                 "SOEC",
			CapexPerKW:           2500,
			EfficiencyKWhPerKg:   37.5,
			LifetimeYears:        20,
			StackDurabilityHours: 25000,
			StackCost:            5000,
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}()

// DefaultCatalog returns the built-in technology catalog.
func DefaultCatalog() *Catalog { return defaultCatalog }
