package lcoh

import (
	"fmt"
	"math"

	"hydrogen-cost/internal/model"
)

// DefaultSampleCount is the fan-out width of the price distribution.
const DefaultSampleCount = 100

// priceFloorPerMWh anchors every sampled row: year rows span
// [priceFloorPerMWh, mean+priceFloorPerMWh] $/MWh before the $/kg
// conversion.
const priceFloorPerMWh = 30

// MeanPriceCurve linearly interpolates a per-year mean electricity
// price from startPerMWh in year 0 to endPerMWh in the final year.
func MeanPriceCurve(startPerMWh, endPerMWh float64, years int) []float64 {
	out := make([]float64, years)
	for y := range out {
		if years > 1 {
			out[y] = startPerMWh + (endPerMWh-startPerMWh)*float64(y)/float64(years-1)
		} else {
			out[y] = startPerMWh
		}
	}
	return out
}

// PriceMatrix fans each year's mean price out into n deterministic
// samples, already converted to $/kg of hydrogen.
//
// Each row is built from a uniform grid over (0,1] pushed through a
// natural log and normalized back to [0,1], which packs samples toward
// the upper bound (left-skewed), then rescaled to span
// [priceFloorPerMWh, mean+priceFloorPerMWh]. This is a deterministic
// fan-out for range visualization, not a calibrated distribution.
func PriceMatrix(meansPerMWh []float64, n int, efficiencyKWhPerKg float64) ([][]float64, error) {
	if len(meansPerMWh) == 0 {
		return nil, fmt.Errorf("%w: mean price curve is empty", model.ErrInvalidParameter)
	}
	if n <= 1 {
		return nil, fmt.Errorf("%w: sample count must be > 1, got %d", model.ErrInvalidParameter, n)
	}
	if efficiencyKWhPerKg <= 0 {
		return nil, fmt.Errorf("%w: efficiency must be > 0 kWh/kg, got %g", model.ErrInvalidParameter, efficiencyKWhPerKg)
	}

	logFloor := math.Log(1 / float64(n))
	out := make([][]float64, len(meansPerMWh))
	for y, mean := range meansPerMWh {
		row := make([]float64, n)
		for i := 0; i < n; i++ {
			u := float64(i+1) / float64(n)
			w := 1 - math.Log(u)/logFloor
			pricePerMWh := priceFloorPerMWh + w*mean
			row[i] = pricePerMWh / 1000 * efficiencyKWhPerKg
		}
		out[y] = row
	}
	return out, nil
}
