package lcoh

import (
	"testing"

	"hydrogen-cost/internal/model"

	"github.com/stretchr/testify/require"
)

func TestCurveSweep(t *testing.T) {
	in := baselineInputs()
	points, err := New(nil).Curve(in, 35, 100, 30)
	require.NoError(t, err)
	require.Len(t, points, 30)
	require.InDelta(t, 35.0, points[0].ElectricityCostPerMWh, 1e-9)
	require.InDelta(t, 100.0, points[29].ElectricityCostPerMWh, 1e-9)

	// LCOH is non-decreasing in the electricity price.
	for i := 1; i < len(points); i++ {
		require.GreaterOrEqual(t, points[i].LCOHPerKg, points[i-1].LCOHPerKg)
	}
}

func TestCurvePostCreditFloor(t *testing.T) {
	in := baselineInputs()
	in.Economics.ApplyTaxCredit = true
	in.Economics.TaxCreditPerKg = 10
	points, err := New(nil).Curve(in, 0, 100, 10)
	require.NoError(t, err)
	for _, p := range points {
		require.GreaterOrEqual(t, p.LCOHAfterCreditPerKg, 0.0)
	}
	// Cheap end is fully covered by the credit.
	require.Equal(t, 0.0, points[0].LCOHAfterCreditPerKg)
}

func TestCurveSingleStep(t *testing.T) {
	points, err := New(nil).Curve(baselineInputs(), 50, 100, 1)
	require.NoError(t, err)
	require.Len(t, points, 1)
	require.InDelta(t, 50.0, points[0].ElectricityCostPerMWh, 1e-9)
}

func TestCurveRejectsBadSteps(t *testing.T) {
	_, err := New(nil).Curve(baselineInputs(), 35, 100, 0)
	require.ErrorIs(t, err, model.ErrInvalidParameter)
}
