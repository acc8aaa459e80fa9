package models

// EconomicsConfig carries the scenario financial assumptions.
type EconomicsConfig struct {
	DiscountRate   float64 `json:"discount_rate"`
	CapacityFactor float64 `json:"capacity_factor"`
	OAndMCostPerKg float64 `json:"o_and_m_cost_per_kg"`
	TaxCreditPerKg float64 `json:"tax_credit_per_kg,omitempty"`
	ApplyTaxCredit bool    `json:"apply_tax_credit,omitempty"`
}

// LCOHRequest represents the request body for a scalar LCOH calculation
type LCOHRequest struct {
	Technology            string          `json:"technology" binding:"required"`
	SystemSizeKW          float64         `json:"system_size_kw" binding:"required"`
	ElectricityCostPerMWh float64         `json:"electricity_cost_per_mwh"`
	Economics             EconomicsConfig `json:"economics" binding:"required"`
	BalanceOfPlantCost    float64         `json:"balance_of_plant_cost,omitempty"`
	ExcludeCapital        bool            `json:"exclude_capital,omitempty"`
}

// CurveRequest sweeps the electricity price and returns an x/y series
type CurveRequest struct {
	Technology         string          `json:"technology" binding:"required"`
	SystemSizeKW       float64         `json:"system_size_kw" binding:"required"`
	Economics          EconomicsConfig `json:"economics" binding:"required"`
	StartPricePerMWh   float64         `json:"start_price_per_mwh" binding:"required"`
	EndPricePerMWh     float64         `json:"end_price_per_mwh" binding:"required"`
	Steps              int             `json:"steps,omitempty"` // default: 30
	BalanceOfPlantCost float64         `json:"balance_of_plant_cost,omitempty"`
	ExcludeCapital     bool            `json:"exclude_capital,omitempty"`
}

// MatrixRequest produces a (lifetime x samples) LCOH sample matrix
type MatrixRequest struct {
	Technology         string          `json:"technology" binding:"required"`
	SystemSizeKW       float64         `json:"system_size_kw" binding:"required"`
	Economics          EconomicsConfig `json:"economics" binding:"required"`
	StartPricePerMWh   float64         `json:"start_price_per_mwh" binding:"required"`
	EndPricePerMWh     float64         `json:"end_price_per_mwh" binding:"required"`
	Samples            int             `json:"samples,omitempty"` // default: 100
	IncludeCapital     bool            `json:"include_capital,omitempty"`
	BalanceOfPlantCost float64         `json:"balance_of_plant_cost,omitempty"`
}

// SteelCompareRequest compares green (DRI-EAF) and conventional
// (BF-BOF) steel production costs per ton
type SteelCompareRequest struct {
	LCOH LCOHRequest `json:"lcoh" binding:"required"`

	KgH2PerTonSteel        float64 `json:"kg_h2_per_ton_steel"`
	KWhPerTonSteel         float64 `json:"kwh_per_ton_steel"`
	ElectricityPricePerKWh float64 `json:"electricity_price_per_kwh"`
	IronOrePerTon          float64 `json:"iron_ore_per_ton"`
	LaborPerTon            float64 `json:"labor_per_ton"`

	ConventionalEnergyPerTon      float64 `json:"conventional_energy_per_ton"`
	ConventionalElectricityPerTon float64 `json:"conventional_electricity_per_ton"`

	EnergyBand float64 `json:"energy_band,omitempty"` // default: 0.1
}

// FuelRequest is one fossil fuel line in a substitution request
type FuelRequest struct {
	Name             string    `json:"name" binding:"required"`
	AnnualUsage      float64   `json:"annual_usage"`
	EnergyDensityKWh float64   `json:"energy_density_kwh"`
	AnnualExpense    float64   `json:"annual_expense"`
	ChargeRateByYear []float64 `json:"charge_rate_by_year"`
}

// FuelSubstitutionRequest compares a multi-year fuel bill against
// hydrogen substitution
type FuelSubstitutionRequest struct {
	LCOH LCOHRequest `json:"lcoh" binding:"required"`

	Fuels            []FuelRequest `json:"fuels" binding:"required"`
	Years            []int         `json:"years" binding:"required"`
	HydrogenKWhPerKg float64       `json:"hydrogen_kwh_per_kg,omitempty"` // default: 33.33
}
