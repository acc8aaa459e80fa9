package models

// BreakdownResponse is the scalar LCOH result with its components
type BreakdownResponse struct {
	Technology string `json:"technology"`

	CapitalCostPerKg     float64 `json:"capital_cost_per_kg"`
	ElectricityCostPerKg float64 `json:"electricity_cost_per_kg"`
	OAndMCostPerKg       float64 `json:"o_and_m_cost_per_kg"`
	StackExpenditure     float64 `json:"stack_expenditure"`
	AnnualHydrogenKg     float64 `json:"annual_hydrogen_kg"`

	LCOHPerKg            float64 `json:"lcoh_per_kg"`
	LCOHAfterCreditPerKg float64 `json:"lcoh_after_credit_per_kg"`
}

// CurvePoint is one (price, LCOH) sample of a sweep
type CurvePoint struct {
	ElectricityCostPerMWh float64 `json:"electricity_cost_per_mwh"`
	LCOHPerKg             float64 `json:"lcoh_per_kg"`
	LCOHAfterCreditPerKg  float64 `json:"lcoh_after_credit_per_kg"`
}

// CurveResponse is an LCOH-vs-electricity-price series
type CurveResponse struct {
	Technology string       `json:"technology"`
	Points     []CurvePoint `json:"points"`
}

// MatrixResponse is a per-year LCOH sample matrix for box plots
type MatrixResponse struct {
	Technology       string      `json:"technology"`
	Years            int         `json:"years"`
	Samples          int         `json:"samples"` // pre-credit samples per row
	Rows             [][]float64 `json:"rows"`
	MeanPricePerMWh  []float64   `json:"mean_price_per_mwh"`
	StackCostPerKg   []float64   `json:"stack_cost_per_kg"`
	CapitalCostPerKg float64     `json:"capital_cost_per_kg"`
}

// TechnologyInfo describes one catalog entry
type TechnologyInfo struct {
	Name                 string  `json:"name"`
	CapexPerKW           float64 `json:"capex_per_kw"`
	EfficiencyKWhPerKg   float64 `json:"efficiency_kwh_per_kg"`
	LifetimeYears        int     `json:"lifetime_years"`
	StackDurabilityHours int     `json:"stack_durability_hours"`
	StackCost            float64 `json:"stack_cost"`
}

// SteelCostPerTon is one route's cost breakdown per ton of steel
type SteelCostPerTon struct {
	IronOre     float64 `json:"iron_ore"`
	Labor       float64 `json:"labor"`
	Electricity float64 `json:"electricity"`
	Energy      float64 `json:"energy"`
	Total       float64 `json:"total"`
	Upper       float64 `json:"upper"`
	Lower       float64 `json:"lower"`
}

// SteelCompareResponse holds both steel routes side by side
type SteelCompareResponse struct {
	LCOHPerKg          float64         `json:"lcoh_per_kg"`
	Green              SteelCostPerTon `json:"green"`
	Conventional       SteelCostPerTon `json:"conventional"`
	GreenPremiumPerTon float64         `json:"green_premium_per_ton"`
}

// FuelYearCost is one horizon year of a substitution comparison
type FuelYearCost struct {
	Year              int     `json:"year"`
	FuelCost          float64 `json:"fuel_cost"`
	FuelChargeTax     float64 `json:"fuel_charge_tax"`
	HydrogenCost      float64 `json:"hydrogen_cost"`
	Savings           float64 `json:"savings"`
	CumulativeSavings float64 `json:"cumulative_savings"`
}

// FuelSubstitutionResponse is the multi-year comparison series
type FuelSubstitutionResponse struct {
	LCOHPerKg float64        `json:"lcoh_per_kg"`
	Years     []FuelYearCost `json:"years"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
