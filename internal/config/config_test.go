package config

import (
	"os"
	"path/filepath"
	"testing"

	"hydrogen-cost/internal/model"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
technology:
  name: PEM
scenario:
  system_size_kw: 1000
  electricity_cost_per_mwh: 50
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultDiscountRate, cfg.Scenario.DiscountRate)
	require.Equal(t, DefaultCapacityFactor, cfg.Scenario.CapacityFactor)
	require.Equal(t, DefaultTaxCreditPerKg, cfg.Scenario.TaxCreditPerKg)
	require.False(t, cfg.Scenario.ApplyTaxCredit)
}

func TestLoadResolvesCatalogTechnology(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
technology:
  name: Alkaline
scenario:
  system_size_kw: 2000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	spec, err := cfg.ResolveTechnology(model.DefaultCatalog())
	require.NoError(t, err)
	require.Equal(t, 300.0, spec.CapexPerKW)
	require.Equal(t, 30, spec.LifetimeYears)
}

func TestLoadOverridesCatalogValues(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
technology:
  name: PEM
  capex_per_kw: 600
scenario:
  system_size_kw: 1000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	spec, err := cfg.ResolveTechnology(model.DefaultCatalog())
	require.NoError(t, err)
	require.Equal(t, 600.0, spec.CapexPerKW)
	// Untouched fields keep catalog values.
	require.Equal(t, 50.0, spec.EfficiencyKWhPerKg)
}

func TestLoadTechnologyFileIndirection(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "technologies/custom.yaml", `
technology:
  name: CustomPEM
  capex_per_kw: 450
  efficiency_kwh_per_kg: 48
  lifetime_years: 25
  stack_durability_hours: 70000
  stack_cost: 5500
`)
	path := writeFile(t, dir, "scenario.yaml", `
technology_file: technologies/custom.yaml
technology:
  stack_cost: 5200
scenario:
  system_size_kw: 1000
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "CustomPEM", cfg.Technology.Name)
	// Inline override wins over the technology file.
	require.Equal(t, 5200.0, cfg.Technology.StackCost)
	require.Equal(t, 450.0, cfg.Technology.CapexPerKW)

	spec, err := cfg.ResolveTechnology(model.DefaultCatalog())
	require.NoError(t, err)
	require.Equal(t, 25, spec.LifetimeYears)
}

func TestLoadDerivesDiscountRateFromFinancing(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
technology:
  name: PEM
scenario:
  system_size_kw: 1000
  financing:
    debt_fraction: 0.5
    return_on_equity: 0.08
    interest_rate: 0.05
    tax_rate: 0.25
    inflation: 0.02
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	want := model.WACCFromCapitalStructure(0.5, 0.08, 0.05, 0.25, 0.02)
	require.InDelta(t, want, cfg.Scenario.DiscountRate, 1e-12)
}

func TestLoadExplicitDiscountRateWinsOverFinancing(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
technology:
  name: PEM
scenario:
  system_size_kw: 1000
  discount_rate: 0.07
  financing:
    debt_fraction: 0.5
    return_on_equity: 0.08
    interest_rate: 0.05
    tax_rate: 0.25
    inflation: 0.02
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 0.07, cfg.Scenario.DiscountRate)
}

func TestLoadRejectsMissingTechnologyName(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
scenario:
  system_size_kw: 1000
`)
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "technology.name")
}

func TestLoadRejectsBadScenario(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "scenario.yaml", `
technology:
  name: PEM
scenario:
  system_size_kw: 0
`)
	_, err := Load(path)
	require.Error(t, err)

	path = writeFile(t, dir, "scenario2.yaml", `
technology:
  name: PEM
scenario:
  system_size_kw: 1000
  capacity_factor: 1.5
`)
	_, err = Load(path)
	require.Error(t, err)
}

func TestMergeTechnology(t *testing.T) {
	base := TechnologyConfig{
		Name:                 "PEM",
		CapexPerKW:           400,
		EfficiencyKWhPerKg:   50,
		LifetimeYears:        20,
		StackDurabilityHours: 60000,
		StackCost:            5000,
	}
	merged := MergeTechnology(base, TechnologyConfig{StackCost: 4500, LifetimeYears: 25})
	require.Equal(t, "PEM", merged.Name)
	require.Equal(t, 4500.0, merged.StackCost)
	require.Equal(t, 25, merged.LifetimeYears)
	require.Equal(t, 400.0, merged.CapexPerKW)
}
