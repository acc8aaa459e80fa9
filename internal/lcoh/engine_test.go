package lcoh

import (
	"testing"

	"hydrogen-cost/internal/model"

	"github.com/stretchr/testify/require"
)

func baselineInputs() Inputs {
	return Inputs{
		Technology:            "PEM",
		SystemSizeKW:          1000,
		ElectricityCostPerMWh: 50,
		Economics: model.EconomicParameters{
			DiscountRate:   0.1,
			CapacityFactor: 0.8,
			OAndMCostPerKg: 1.0,
			TaxCreditPerKg: 3.0,
		},
	}
}

func TestCalculateBaselineRegression(t *testing.T) {
	// Pinned reference: PEM, 400 $/kW, 50 kWh/kg, 20y, wacc 10%,
	// cf 80%, 1 MW, 50 $/MWh, O&M 1 $/kg.
	// Capital base is 400000 + 2*5000 stack = 410000, CRF 0.117460,
	// over 140160 kg/yr => 0.3436 $/kg; electricity 2.50; O&M 1.00.
	b, err := New(nil).Calculate(baselineInputs())
	require.NoError(t, err)

	require.InDelta(t, 140160.0, b.AnnualHydrogenKg, 1e-6)
	require.InDelta(t, 10000.0, b.StackExpenditure, 1e-9)
	require.InDelta(t, 2.5, b.ElectricityCostPerKg, 1e-9)
	require.InDelta(t, 0.3436, b.CapitalCostPerKg, 1e-4)
	require.Equal(t, 3.84, b.LCOHPerKg)
	require.Equal(t, 3.84, b.LCOHAfterCreditPerKg) // credit not applied
}

func TestCalculateTaxCredit(t *testing.T) {
	in := baselineInputs()
	in.Economics.ApplyTaxCredit = true
	b, err := New(nil).Calculate(in)
	require.NoError(t, err)
	require.Equal(t, 3.84, b.LCOHPerKg)
	require.Equal(t, 0.84, b.LCOHAfterCreditPerKg)
}

func TestCalculateTaxCreditFloorsAtZero(t *testing.T) {
	in := baselineInputs()
	in.ElectricityCostPerMWh = 0
	in.Economics.OAndMCostPerKg = 0
	in.Economics.ApplyTaxCredit = true
	b, err := New(nil).Calculate(in)
	require.NoError(t, err)
	require.Equal(t, 0.0, b.LCOHAfterCreditPerKg)
	require.GreaterOrEqual(t, b.LCOHPerKg, 0.0)
}

func TestCalculateExcludeCapital(t *testing.T) {
	in := baselineInputs()
	in.ExcludeCapital = true
	b, err := New(nil).Calculate(in)
	require.NoError(t, err)
	require.Equal(t, 0.0, b.CapitalCostPerKg)
	require.Equal(t, 3.5, b.LCOHPerKg) // 2.50 electricity + 1.00 O&M
}

func TestCalculateBalanceOfPlant(t *testing.T) {
	in := baselineInputs()
	base, err := New(nil).Calculate(in)
	require.NoError(t, err)

	in.BalanceOfPlantCost = 100000
	withBoP, err := New(nil).Calculate(in)
	require.NoError(t, err)
	require.Greater(t, withBoP.CapitalCostPerKg, base.CapitalCostPerKg)
}

func TestCalculateUnknownTechnology(t *testing.T) {
	in := baselineInputs()
	in.Technology = "unknown"
	_, err := New(nil).Calculate(in)
	require.ErrorIs(t, err, model.ErrUnknownTechnology)
}

func TestCalculateRejectsBadInputs(t *testing.T) {
	in := baselineInputs()
	in.SystemSizeKW = 0
	_, err := New(nil).Calculate(in)
	require.ErrorIs(t, err, model.ErrInvalidParameter)

	in = baselineInputs()
	in.Economics.CapacityFactor = 1.5
	_, err = New(nil).Calculate(in)
	require.ErrorIs(t, err, model.ErrInvalidParameter)
}

func TestCalculateZeroDiscountRate(t *testing.T) {
	in := baselineInputs()
	in.Economics.DiscountRate = 0
	b, err := New(nil).Calculate(in)
	require.NoError(t, err)
	// Straight-line: 410000 / 20 = 20500 $/yr over 140160 kg.
	require.InDelta(t, 20500.0/140160.0, b.CapitalCostPerKg, 1e-9)
}

func TestCalculateNonNegativeAcrossInputs(t *testing.T) {
	engine := New(nil)
	for _, tech := range []string{"PEM", "Alkaline", "SOEC"} {
		for _, price := range []float64{0, 35, 100, 500} {
			for _, credit := range []bool{false, true} {
				in := baselineInputs()
				in.Technology = tech
				in.ElectricityCostPerMWh = price
				in.Economics.ApplyTaxCredit = credit
				b, err := engine.Calculate(in)
				require.NoError(t, err)
				require.GreaterOrEqual(t, b.LCOHAfterCreditPerKg, 0.0)
			}
		}
	}
}
