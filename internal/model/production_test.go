package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnnualHydrogenOutputBaseline(t *testing.T) {
	// 1 MW PEM at 80%: 1000 * 0.8 * 8760 / 50 = 140160 kg/yr.
	kg := AnnualHydrogenOutputKg(1000, 50, 0.8)
	require.InDelta(t, 140160.0, kg, 1e-9)
}

func TestAnnualHydrogenOutputLinearInSize(t *testing.T) {
	base := AnnualHydrogenOutputKg(1000, 50, 0.8)
	require.InDelta(t, 2*base, AnnualHydrogenOutputKg(2000, 50, 0.8), 1e-9)
	require.InDelta(t, base/2, AnnualHydrogenOutputKg(500, 50, 0.8), 1e-9)
}

func TestAnnualHydrogenOutputLinearInCapacityFactor(t *testing.T) {
	base := AnnualHydrogenOutputKg(1000, 50, 0.4)
	require.InDelta(t, 2*base, AnnualHydrogenOutputKg(1000, 50, 0.8), 1e-9)
}

func TestAnnualHydrogenOutputInverseInEfficiency(t *testing.T) {
	base := AnnualHydrogenOutputKg(1000, 50, 0.8)
	require.InDelta(t, base/2, AnnualHydrogenOutputKg(1000, 100, 0.8), 1e-9)
}

func TestEconomicParametersValidate(t *testing.T) {
	good := EconomicParameters{
		DiscountRate:   0.1,
		CapacityFactor: 0.8,
		OAndMCostPerKg: 1,
		TaxCreditPerKg: 3,
	}
	require.NoError(t, good.Validate())

	bad := good
	bad.CapacityFactor = 0
	require.ErrorIs(t, bad.Validate(), ErrInvalidParameter)

	bad = good
	bad.CapacityFactor = 1.2
	require.ErrorIs(t, bad.Validate(), ErrInvalidParameter)

	bad = good
	bad.OAndMCostPerKg = -0.5
	require.ErrorIs(t, bad.Validate(), ErrInvalidParameter)

	// Zero discount rate is a documented special case, not an error.
	good.DiscountRate = 0
	require.NoError(t, good.Validate())
}
