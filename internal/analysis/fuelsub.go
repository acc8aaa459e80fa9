package analysis

import (
	"fmt"

	"hydrogen-cost/internal/model"
)

// DefaultHydrogenKWhPerKg is the lower-heating-value energy content of
// hydrogen used to size the substitution.
const DefaultHydrogenKWhPerKg = 33.33

// GJToKWh converts gigajoules to kilowatt-hours.
const GJToKWh = 277.778

// Fuel describes one fossil fuel consumed by an operation.
type Fuel struct {
	Name string

	// AnnualUsage is in the fuel's native unit (litres, m3, ...).
	AnnualUsage float64
	// EnergyDensityKWh is kWh per native unit.
	EnergyDensityKWh float64
	// AnnualExpense is the baseline $ spend on this fuel per year.
	AnnualExpense float64
	// ChargeRateByYear is the carbon fuel-charge rate ($ per native
	// unit), one entry per horizon year.
	ChargeRateByYear []float64
}

// SubstitutionInputs drives a multi-year comparison of the status-quo
// fuel bill against full substitution with electrolytic hydrogen.
type SubstitutionInputs struct {
	Fuels []Fuel
	Years []int // e.g. 2023..2030

	LCOHPerKg        float64
	HydrogenKWhPerKg float64 // 0 means DefaultHydrogenKWhPerKg
}

// YearCost is one horizon year of the comparison.
type YearCost struct {
	Year int

	FuelCost      float64 // baseline spend on all fuels
	FuelChargeTax float64 // carbon levy on the same usage
	HydrogenCost  float64 // cost of the energy-equivalent hydrogen

	// Savings is (FuelCost + FuelChargeTax) - HydrogenCost for this
	// year; CumulativeSavings runs from the first horizon year.
	Savings           float64
	CumulativeSavings float64
}

// FuelSubstitution computes the year-by-year cost of replacing the
// given fuels with hydrogen at the supplied LCOH. The hydrogen demand
// is the total fuel energy divided by hydrogen's energy content.
func FuelSubstitution(in SubstitutionInputs) ([]YearCost, error) {
	if len(in.Years) == 0 {
		return nil, fmt.Errorf("%w: no horizon years", model.ErrInvalidParameter)
	}
	if len(in.Fuels) == 0 {
		return nil, fmt.Errorf("%w: no fuels", model.ErrInvalidParameter)
	}
	kwhPerKg := in.HydrogenKWhPerKg
	if kwhPerKg == 0 {
		kwhPerKg = DefaultHydrogenKWhPerKg
	}
	if kwhPerKg < 0 {
		return nil, fmt.Errorf("%w: hydrogen energy content must be > 0, got %g", model.ErrInvalidParameter, kwhPerKg)
	}
	for _, f := range in.Fuels {
		if len(f.ChargeRateByYear) != len(in.Years) {
			return nil, fmt.Errorf("%w: fuel %q has %d charge rates for %d years",
				model.ErrInvalidParameter, f.Name, len(f.ChargeRateByYear), len(in.Years))
		}
	}

	baseCost := 0.0
	totalKWh := 0.0
	for _, f := range in.Fuels {
		baseCost += f.AnnualExpense
		totalKWh += f.AnnualUsage * f.EnergyDensityKWh
	}
	hydrogenKg := totalKWh / kwhPerKg
	hydrogenCost := hydrogenKg * in.LCOHPerKg

	out := make([]YearCost, len(in.Years))
	cum := 0.0
	for yi, year := range in.Years {
		tax := 0.0
		for _, f := range in.Fuels {
			tax += f.AnnualUsage * f.ChargeRateByYear[yi]
		}
		savings := baseCost + tax - hydrogenCost
		cum += savings
		out[yi] = YearCost{
			Year:              year,
			FuelCost:          baseCost,
			FuelChargeTax:     tax,
			HydrogenCost:      hydrogenCost,
			Savings:           savings,
			CumulativeSavings: cum,
		}
	}
	return out, nil
}
