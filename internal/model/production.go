package model

// AnnualHydrogenOutputKg converts system size, capacity factor, and
// technology efficiency into annual hydrogen production (kg/year).
func AnnualHydrogenOutputKg(sizeKW, efficiencyKWhPerKg, capacityFactor float64) float64 {
	annualEnergyKWh := sizeKW * capacityFactor * HoursPerYear
	return annualEnergyKWh / efficiencyKWhPerKg
}
