package model

import (
	"fmt"
	"math"
)

// StackReplacementCount returns how many stack replacements are needed
// over the plant lifetime: total operating hours divided by stack
// durability, rounded down.
func StackReplacementCount(lifetimeYears int, capacityFactor float64, durabilityHours int) int {
	totalHours := float64(lifetimeYears) * capacityFactor * HoursPerYear
	return int(math.Floor(totalHours / float64(durabilityHours)))
}

// LifetimeStackExpenditure is the (un-annualized) total $ spent on
// stack replacements over the plant lifetime at the flat per-stack cost.
func LifetimeStackExpenditure(spec TechnologySpec, capacityFactor float64) float64 {
	n := StackReplacementCount(spec.LifetimeYears, capacityFactor, spec.StackDurabilityHours)
	return float64(n) * spec.StackCost
}

// AnnualStackCostSeries spreads replacement costs evenly across each
// replacement cycle and returns one $ value per year of plant life.
//
// costByYear supplies the replacement cost as of each year, supporting
// declining-cost scenarios; the cost at each cycle boundary year is
// used for that whole cycle. If the series is shorter than the
// lifetime, the last entry is carried forward. The final partial cycle
// is truncated so the output length is exactly lifetimeYears.
func AnnualStackCostSeries(durabilityHours, lifetimeYears int, capacityFactor float64, costByYear []float64) ([]float64, error) {
	if lifetimeYears <= 0 {
		return nil, fmt.Errorf("%w: lifetime must be > 0 years, got %d", ErrInvalidParameter, lifetimeYears)
	}
	if len(costByYear) == 0 {
		return nil, fmt.Errorf("%w: costByYear is empty", ErrInvalidParameter)
	}
	cycleYears := int(math.Floor(float64(durabilityHours) / (capacityFactor * HoursPerYear)))
	if cycleYears <= 0 {
		return nil, fmt.Errorf("%w: replacement cycle is shorter than one year (durability %dh at capacity factor %.2f)",
			ErrInvalidParameter, durabilityHours, capacityFactor)
	}

	out := make([]float64, 0, lifetimeYears)
	for start := 0; start < lifetimeYears; start += cycleYears {
		idx := start
		if idx >= len(costByYear) {
			idx = len(costByYear) - 1
		}
		annual := costByYear[idx] / float64(cycleYears)
		for y := start; y < start+cycleYears && y < lifetimeYears; y++ {
			out = append(out, annual)
		}
	}
	return out, nil
}

// FlatCostByYear expands a flat per-stack cost into a constant
// cost-by-year series for AnnualStackCostSeries.
func FlatCostByYear(stackCost float64, lifetimeYears int) []float64 {
	out := make([]float64, lifetimeYears)
	for i := range out {
		out[i] = stackCost
	}
	return out
}
