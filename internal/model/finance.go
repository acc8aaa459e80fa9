package model

import (
	"fmt"
	"math"
)

// HoursPerYear is the fixed hours-per-year convention used throughout
// the model (non-leap year).
const HoursPerYear = 8760

// CRF computes the Capital Recovery Factor for a discount rate and an
// asset lifetime in years.
//
// A zero discount rate degenerates to straight-line amortization
// (1/lifetime); this is a documented special case, not an error.
func CRF(discountRate float64, lifetimeYears int) (float64, error) {
	if lifetimeYears <= 0 {
		return 0, fmt.Errorf("%w: lifetime must be > 0 years, got %d", ErrInvalidParameter, lifetimeYears)
	}
	if discountRate == 0 {
		return 1 / float64(lifetimeYears), nil
	}
	return discountRate / (1 - math.Pow(1+discountRate, -float64(lifetimeYears))), nil
}

// AnnualizedCapitalCost converts a lump capital cost into an annual
// cost using a precomputed CRF.
func AnnualizedCapitalCost(capexPerKW, sizeKW, crf float64) float64 {
	return capexPerKW * sizeKW * crf
}

// TotalCapex is the full capital base for a system: installed cost,
// balance-of-plant equipment, and lifetime stack replacement spend.
func TotalCapex(capexPerKW, sizeKW, bopCost, stackExpenditure float64) float64 {
	return capexPerKW*sizeKW + bopCost + stackExpenditure
}

// WACCFromCapitalStructure derives a real Weighted Average Cost of
// Capital from financing terms. All inputs are decimals.
// - debtFraction: share of debt financing, 0..1
// - returnOnEquity: required nominal return on equity
// - interestRate: nominal interest rate on debt
// - taxRate: corporate tax rate (interest is tax-deductible)
// - inflation: inflation rate used to deflate to real terms
func WACCFromCapitalStructure(debtFraction, returnOnEquity, interestRate, taxRate, inflation float64) float64 {
	nominal := 1 +
		(1-debtFraction)*((1+returnOnEquity)*(1+inflation)-1) +
		debtFraction*((1+interestRate)*(1+inflation)-1)*(1-taxRate)
	return nominal/(1+inflation) - 1
}
