package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hydrogen-cost/internal/model"

	"gopkg.in/yaml.v3"
)

// Scenario defaults, applied by Load when the YAML leaves them unset.
const (
	DefaultDiscountRate   = 0.1
	DefaultCapacityFactor = 0.8
	DefaultTaxCreditPerKg = 3.0
)

// Config is the on-disk scenario shape (YAML).
type Config struct {
	// Optional: load technology parameters from a separate YAML
	// (e.g. examples/technologies/*.yaml). If both TechnologyFile and
	// Technology are provided, Technology overrides TechnologyFile.
	TechnologyFile string           `yaml:"technology_file"`
	Technology     TechnologyConfig `yaml:"technology"`
	Scenario       ScenarioConfig   `yaml:"scenario"`
}

// TechnologyConfig mirrors model.TechnologySpec. When Name matches a
// catalog entry and no other fields are set, the catalog spec is used
// as-is; any non-zero field here overrides the catalog value.
type TechnologyConfig struct {
	Name                 string    `yaml:"name"`
	CapexPerKW           float64   `yaml:"capex_per_kw"`
	EfficiencyKWhPerKg   float64   `yaml:"efficiency_kwh_per_kg"`
	LifetimeYears        int       `yaml:"lifetime_years"`
	StackDurabilityHours int       `yaml:"stack_durability_hours"`
	StackCost            float64   `yaml:"stack_cost"`
	StackCostByYear      []float64 `yaml:"stack_cost_by_year"`
}

type ScenarioConfig struct {
	SystemSizeKW          float64 `yaml:"system_size_kw"`
	ElectricityCostPerMWh float64 `yaml:"electricity_cost_per_mwh"`
	StartPricePerMWh      float64 `yaml:"start_price_per_mwh"`
	EndPricePerMWh        float64 `yaml:"end_price_per_mwh"`
	DiscountRate          float64 `yaml:"discount_rate"`
	CapacityFactor        float64 `yaml:"capacity_factor"`
	OAndMCostPerKg        float64 `yaml:"o_and_m_cost_per_kg"`
	TaxCreditPerKg        float64 `yaml:"tax_credit_per_kg"`
	ApplyTaxCredit        bool    `yaml:"apply_tax_credit"`
	BalanceOfPlantCost    float64 `yaml:"balance_of_plant_cost"`

	// Financing, when present, derives the discount rate from the
	// capital structure. An explicit discount_rate takes precedence.
	Financing *FinancingConfig `yaml:"financing"`
}

// FinancingConfig holds the capital-structure terms fed to
// model.WACCFromCapitalStructure. All fields are decimals.
type FinancingConfig struct {
	DebtFraction   float64 `yaml:"debt_fraction"`
	ReturnOnEquity float64 `yaml:"return_on_equity"`
	InterestRate   float64 `yaml:"interest_rate"`
	TaxRate        float64 `yaml:"tax_rate"`
	Inflation      float64 `yaml:"inflation"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Keep configs concise: unset financial assumptions fall back to
	// the documented defaults instead of zero.
	if c.Scenario.DiscountRate == 0 {
		if f := c.Scenario.Financing; f != nil {
			c.Scenario.DiscountRate = model.WACCFromCapitalStructure(
				f.DebtFraction, f.ReturnOnEquity, f.InterestRate, f.TaxRate, f.Inflation)
		} else {
			c.Scenario.DiscountRate = DefaultDiscountRate
		}
	}
	if c.Scenario.CapacityFactor == 0 {
		c.Scenario.CapacityFactor = DefaultCapacityFactor
	}
	if c.Scenario.TaxCreditPerKg == 0 {
		c.Scenario.TaxCreditPerKg = DefaultTaxCreditPerKg
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it or
// apply defaults. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.TechnologyFile != "" {
		techPath := c.TechnologyFile
		if !filepath.IsAbs(techPath) {
			// Prefer interpreting relative paths as relative to the
			// config file directory, but fall back to the provided
			// path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), techPath)
			if _, err := os.Stat(cand); err == nil {
				techPath = cand
			}
		}
		loaded, err := loadTechnologyFile(techPath)
		if err != nil {
			return nil, err
		}
		c.Technology = MergeTechnology(loaded, c.Technology)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Technology.Name == "" {
		return errors.New("technology.name is required")
	}
	if c.Scenario.SystemSizeKW <= 0 {
		return errors.New("scenario.system_size_kw must be > 0")
	}
	spec, err := c.ResolveTechnology(model.DefaultCatalog())
	if err != nil {
		return fmt.Errorf("technology config invalid: %w", err)
	}
	sys := model.SystemConfig{
		SystemSizeKW: c.Scenario.SystemSizeKW,
		Technology:   spec,
		Economics:    c.Economics(),
	}
	return sys.Validate()
}

// ResolveTechnology produces the effective spec: the catalog entry for
// the configured name (when it exists) overlaid with any non-zero
// overrides from the config.
func (c *Config) ResolveTechnology(catalog *model.Catalog) (model.TechnologySpec, error) {
	base := model.TechnologySpec{Name: c.Technology.Name}
	if spec, err := catalog.Lookup(c.Technology.Name); err == nil {
		base = spec
	}
	spec := overlaySpec(base, c.Technology)
	if err := spec.Validate(); err != nil {
		return model.TechnologySpec{}, err
	}
	return spec, nil
}

func (c *Config) Economics() model.EconomicParameters {
	return model.EconomicParameters{
		DiscountRate:   c.Scenario.DiscountRate,
		CapacityFactor: c.Scenario.CapacityFactor,
		OAndMCostPerKg: c.Scenario.OAndMCostPerKg,
		TaxCreditPerKg: c.Scenario.TaxCreditPerKg,
		ApplyTaxCredit: c.Scenario.ApplyTaxCredit,
	}
}

type technologyFileWrapper struct {
	Technology TechnologyConfig `yaml:"technology"`
}

func loadTechnologyFile(path string) (TechnologyConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return TechnologyConfig{}, err
	}
	var w technologyFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return TechnologyConfig{}, err
	}
	return w.Technology, nil
}

// MergeTechnology overlays non-zero fields from override onto base.
// Used when loading a technology file and then applying inline
// overrides from the scenario config.
func MergeTechnology(base, override TechnologyConfig) TechnologyConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.CapexPerKW != 0 {
		out.CapexPerKW = override.CapexPerKW
	}
	if override.EfficiencyKWhPerKg != 0 {
		out.EfficiencyKWhPerKg = override.EfficiencyKWhPerKg
	}
	if override.LifetimeYears != 0 {
		out.LifetimeYears = override.LifetimeYears
	}
	if override.StackDurabilityHours != 0 {
		out.StackDurabilityHours = override.StackDurabilityHours
	}
	if override.StackCost != 0 {
		out.StackCost = override.StackCost
	}
	if len(override.StackCostByYear) != 0 {
		out.StackCostByYear = override.StackCostByYear
	}
	return out
}

func overlaySpec(base model.TechnologySpec, override TechnologyConfig) model.TechnologySpec {
	out := base
	if override.CapexPerKW != 0 {
		out.CapexPerKW = override.CapexPerKW
	}
	if override.EfficiencyKWhPerKg != 0 {
		out.EfficiencyKWhPerKg = override.EfficiencyKWhPerKg
	}
	if override.LifetimeYears != 0 {
		out.LifetimeYears = override.LifetimeYears
	}
	if override.StackDurabilityHours != 0 {
		out.StackDurabilityHours = override.StackDurabilityHours
	}
	if override.StackCost != 0 {
		out.StackCost = override.StackCost
	}
	if len(override.StackCostByYear) != 0 {
		out.StackCostByYear = override.StackCostByYear
	}
	return out
}
