package lcoh

import (
	"fmt"
	"math"

	"hydrogen-cost/internal/model"
)

// creditCopies is how many times the credit-adjusted block is repeated
// alongside the pre-credit block. The replication weights plotted
// sample populations toward credit-adjusted values; the output shape
// is kept for compatibility with existing consumers.
const creditCopies = 3

// MatrixInputs configures a (lifetime x samples) LCOH matrix run.
type MatrixInputs struct {
	Technology         string
	SystemSizeKW       float64
	Economics          model.EconomicParameters
	StartPricePerMWh   float64
	EndPricePerMWh     float64
	Samples            int // 0 means DefaultSampleCount
	BalanceOfPlantCost float64

	// IncludeCapital adds the annualized capital component to every
	// cell; stack costs are always carried per-year in this mode.
	IncludeCapital bool
}

// MatrixResult bundles the per-year LCOH sample matrix with the
// series used to build it.
type MatrixResult struct {
	// Rows has one row per lifetime year. Each row holds the
	// pre-credit samples; when the tax credit applies the row is
	// widened with creditCopies repetitions of the credit-adjusted
	// samples (floored at zero).
	Rows [][]float64

	MeanPricePerMWh  []float64 // per-year mean electricity price
	StackCostPerKg   []float64 // per-year annualized stack cost, $/kg
	CapitalCostPerKg float64   // 0 unless IncludeCapital
	Samples          int       // pre-credit sample count per row
}

// Matrix crosses the price distribution with per-year stack costs,
// O&M, and optionally capital, producing LCOH samples per year.
func (e *Engine) Matrix(in MatrixInputs) (*MatrixResult, error) {
	spec, err := e.catalog.Lookup(in.Technology)
	if err != nil {
		return nil, err
	}
	if in.SystemSizeKW <= 0 {
		return nil, fmt.Errorf("%w: system size must be > 0 kW, got %g", model.ErrInvalidParameter, in.SystemSizeKW)
	}
	if err := in.Economics.Validate(); err != nil {
		return nil, err
	}
	n := in.Samples
	if n == 0 {
		n = DefaultSampleCount
	}

	means := MeanPriceCurve(in.StartPricePerMWh, in.EndPricePerMWh, spec.LifetimeYears)
	prices, err := PriceMatrix(means, n, spec.EfficiencyKWhPerKg)
	if err != nil {
		return nil, err
	}

	costByYear := spec.StackCostByYear
	if len(costByYear) == 0 {
		costByYear = model.FlatCostByYear(spec.StackCost, spec.LifetimeYears)
	}
	stackSeries, err := model.AnnualStackCostSeries(spec.StackDurabilityHours, spec.LifetimeYears, in.Economics.CapacityFactor, costByYear)
	if err != nil {
		return nil, err
	}

	kg := model.AnnualHydrogenOutputKg(in.SystemSizeKW, spec.EfficiencyKWhPerKg, in.Economics.CapacityFactor)
	stackPerKg := make([]float64, len(stackSeries))
	for y, c := range stackSeries {
		stackPerKg[y] = c / kg
	}

	capitalPerKg := 0.0
	if in.IncludeCapital {
		crf, err := model.CRF(in.Economics.DiscountRate, spec.LifetimeYears)
		if err != nil {
			return nil, err
		}
		capitalPerKg = (model.AnnualizedCapitalCost(spec.CapexPerKW, in.SystemSizeKW, crf) + in.BalanceOfPlantCost*crf) / kg
	}

	rows := make([][]float64, spec.LifetimeYears)
	for y := 0; y < spec.LifetimeYears; y++ {
		width := n
		if in.Economics.ApplyTaxCredit {
			width = n * (1 + creditCopies)
		}
		row := make([]float64, width)
		for i := 0; i < n; i++ {
			v := capitalPerKg + stackPerKg[y] + prices[y][i] + in.Economics.OAndMCostPerKg
			row[i] = v
			if in.Economics.ApplyTaxCredit {
				adj := math.Max(0, v-in.Economics.TaxCreditPerKg)
				for c := 0; c < creditCopies; c++ {
					row[n*(1+c)+i] = adj
				}
			}
		}
		rows[y] = row
	}

	return &MatrixResult{
		Rows:             rows,
		MeanPricePerMWh:  means,
		StackCostPerKg:   stackPerKg,
		CapitalCostPerKg: capitalPerKg,
		Samples:          n,
	}, nil
}
