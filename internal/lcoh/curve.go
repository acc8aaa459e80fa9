package lcoh

import (
	"fmt"

	"hydrogen-cost/internal/model"
)

// CurvePoint is one (electricity price, LCOH) sample of a sweep.
type CurvePoint struct {
	ElectricityCostPerMWh float64
	LCOHPerKg             float64
	LCOHAfterCreditPerKg  float64
}

// Curve sweeps the electricity price from startPerMWh to endPerMWh in
// steps evenly spaced points and evaluates the scalar LCOH at each.
// The price in the passed Inputs is ignored.
func (e *Engine) Curve(in Inputs, startPerMWh, endPerMWh float64, steps int) ([]CurvePoint, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: steps must be > 0, got %d", model.ErrInvalidParameter, steps)
	}
	points := make([]CurvePoint, 0, steps)
	for i := 0; i < steps; i++ {
		price := startPerMWh
		if steps > 1 {
			price = startPerMWh + (endPerMWh-startPerMWh)*float64(i)/float64(steps-1)
		}
		in.ElectricityCostPerMWh = price
		b, err := e.Calculate(in)
		if err != nil {
			return nil, err
		}
		points = append(points, CurvePoint{
			ElectricityCostPerMWh: price,
			LCOHPerKg:             b.LCOHPerKg,
			LCOHAfterCreditPerKg:  b.LCOHAfterCreditPerKg,
		})
	}
	return points, nil
}
