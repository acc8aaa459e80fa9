package model

import "fmt"

// EconomicParameters holds the scenario-level financial assumptions.
// Units:
// - DiscountRate: decimal (0 is allowed, see CRF)
// - CapacityFactor: fraction of maximum continuous output, (0, 1]
// - OAndMCostPerKg: $/kg H2
// - TaxCreditPerKg: $/kg H2, applied only when ApplyTaxCredit is set
type EconomicParameters struct {
	DiscountRate   float64
	CapacityFactor float64
	OAndMCostPerKg float64
	TaxCreditPerKg float64
	ApplyTaxCredit bool
}

func (p EconomicParameters) Validate() error {
	if p.DiscountRate < 0 {
		return fmt.Errorf("%w: discount rate must be >= 0, got %g", ErrInvalidParameter, p.DiscountRate)
	}
	if p.CapacityFactor <= 0 || p.CapacityFactor > 1 {
		return fmt.Errorf("%w: capacity factor must be in (0, 1], got %g", ErrInvalidParameter, p.CapacityFactor)
	}
	if p.OAndMCostPerKg < 0 {
		return fmt.Errorf("%w: O&M cost must be >= 0, got %g", ErrInvalidParameter, p.OAndMCostPerKg)
	}
	if p.TaxCreditPerKg < 0 {
		return fmt.Errorf("%w: tax credit must be >= 0, got %g", ErrInvalidParameter, p.TaxCreditPerKg)
	}
	return nil
}

// SystemConfig describes one electrolyzer system to be costed.
type SystemConfig struct {
	SystemSizeKW float64
	Technology   TechnologySpec
	Economics    EconomicParameters
}

func (s SystemConfig) Validate() error {
	if s.SystemSizeKW <= 0 {
		return fmt.Errorf("%w: system size must be > 0 kW, got %g", ErrInvalidParameter, s.SystemSizeKW)
	}
	if err := s.Technology.Validate(); err != nil {
		return fmt.Errorf("technology invalid: %w", err)
	}
	return s.Economics.Validate()
}
