package lcoh

import (
	"fmt"
	"math"

	"hydrogen-cost/internal/model"
)

// Engine computes levelized hydrogen costs against a fixed technology
// catalog. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog *model.Catalog
}

func New(catalog *model.Catalog) *Engine {
	if catalog == nil {
		catalog = model.DefaultCatalog()
	}
	return &Engine{catalog: catalog}
}

func (e *Engine) Catalog() *model.Catalog { return e.catalog }

// Inputs are the scenario inputs for a scalar LCOH calculation.
type Inputs struct {
	Technology            string
	SystemSizeKW          float64
	ElectricityCostPerMWh float64
	Economics             model.EconomicParameters
	BalanceOfPlantCost    float64

	// ExcludeCapital drops the capital component, giving an
	// operating-cost-only view instead of a fully levelized one.
	ExcludeCapital bool
}

// CostBreakdown is the derived per-kg cost decomposition. It is
// recomputed fresh on every call; nothing is cached.
type CostBreakdown struct {
	CapitalCostPerKg     float64
	ElectricityCostPerKg float64
	OAndMCostPerKg       float64

	StackExpenditure float64 // lifetime $, folded into the capital base
	AnnualHydrogenKg float64

	// LCOHPerKg is the pre-credit total, rounded to cents.
	// LCOHAfterCreditPerKg subtracts the tax credit floored at zero;
	// equal to LCOHPerKg when the credit is not applied.
	LCOHPerKg            float64
	LCOHAfterCreditPerKg float64
}

// Calculate produces the scalar LCOH breakdown for one scenario.
func (e *Engine) Calculate(in Inputs) (CostBreakdown, error) {
	spec, err := e.catalog.Lookup(in.Technology)
	if err != nil {
		return CostBreakdown{}, err
	}
	if in.SystemSizeKW <= 0 {
		return CostBreakdown{}, fmt.Errorf("%w: system size must be > 0 kW, got %g", model.ErrInvalidParameter, in.SystemSizeKW)
	}
	if err := in.Economics.Validate(); err != nil {
		return CostBreakdown{}, err
	}

	crf, err := model.CRF(in.Economics.DiscountRate, spec.LifetimeYears)
	if err != nil {
		return CostBreakdown{}, err
	}

	kg := model.AnnualHydrogenOutputKg(in.SystemSizeKW, spec.EfficiencyKWhPerKg, in.Economics.CapacityFactor)

	stackExp := model.LifetimeStackExpenditure(spec, in.Economics.CapacityFactor)
	annualCapital := model.TotalCapex(spec.CapexPerKW, in.SystemSizeKW, in.BalanceOfPlantCost, stackExp) * crf

	b := CostBreakdown{
		ElectricityCostPerKg: in.ElectricityCostPerMWh / 1000 * spec.EfficiencyKWhPerKg,
		OAndMCostPerKg:       in.Economics.OAndMCostPerKg,
		StackExpenditure:     stackExp,
		AnnualHydrogenKg:     kg,
	}
	if !in.ExcludeCapital {
		b.CapitalCostPerKg = annualCapital / kg
	}

	total := b.CapitalCostPerKg + b.ElectricityCostPerKg + b.OAndMCostPerKg
	b.LCOHPerKg = roundCents(total)
	b.LCOHAfterCreditPerKg = b.LCOHPerKg
	if in.Economics.ApplyTaxCredit {
		b.LCOHAfterCreditPerKg = roundCents(math.Max(0, total-in.Economics.TaxCreditPerKg))
	}
	return b, nil
}

func roundCents(x float64) float64 {
	return math.Round(x*100) / 100
}
