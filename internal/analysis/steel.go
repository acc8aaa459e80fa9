package analysis

// SteelInputs drives a per-ton cost comparison between hydrogen-based
// DRI-EAF steel and conventional BF-BOF steel. Prices are $ per ton of
// steel except where noted.
type SteelInputs struct {
	LCOHPerKg float64 // $/kg H2 from the LCOH model

	KgH2PerTonSteel        float64 // H2 demand of the DRI route
	KWhPerTonSteel         float64 // EAF electricity demand
	ElectricityPricePerKWh float64

	IronOrePerTon float64
	LaborPerTon   float64

	// Conventional (BF-BOF) route figures.
	ConventionalEnergyPerTon      float64 // coke/coal fuel cost
	ConventionalElectricityPerTon float64

	// EnergyBand is the +/- fraction applied to the energy component
	// to produce whisker bounds (0.1 = +-10%).
	EnergyBand float64
}

// SteelCostPerTon is one route's cost breakdown per ton of steel.
type SteelCostPerTon struct {
	IronOre     float64
	Labor       float64
	Electricity float64
	Energy      float64 // hydrogen for DRI-EAF, fossil fuel for BF-BOF

	// Upper and Lower bound the total, varying only the energy component.
	Upper float64
	Lower float64
}

func (c SteelCostPerTon) Total() float64 {
	return c.IronOre + c.Labor + c.Electricity + c.Energy
}

// SteelComparison holds both routes side by side.
type SteelComparison struct {
	Green        SteelCostPerTon // DRI-EAF with hydrogen
	Conventional SteelCostPerTon // BF-BOF
}

// GreenPremiumPerTon is the extra cost per ton of the green route.
func (s SteelComparison) GreenPremiumPerTon() float64 {
	return s.Green.Total() - s.Conventional.Total()
}

// CompareSteel builds the per-ton breakdowns. The hydrogen energy cost
// is the only place the LCOH model feeds in: kg of H2 per ton times
// the levelized $/kg.
func CompareSteel(in SteelInputs) SteelComparison {
	green := SteelCostPerTon{
		IronOre:     in.IronOrePerTon,
		Labor:       in.LaborPerTon,
		Electricity: in.KWhPerTonSteel * in.ElectricityPricePerKWh,
		Energy:      in.KgH2PerTonSteel * in.LCOHPerKg,
	}
	conventional := SteelCostPerTon{
		IronOre:     in.IronOrePerTon,
		Labor:       in.LaborPerTon,
		Electricity: in.ConventionalElectricityPerTon,
		Energy:      in.ConventionalEnergyPerTon,
	}
	green.Upper, green.Lower = energyBounds(green, in.EnergyBand)
	conventional.Upper, conventional.Lower = energyBounds(conventional, in.EnergyBand)
	return SteelComparison{Green: green, Conventional: conventional}
}

func energyBounds(c SteelCostPerTon, band float64) (upper, lower float64) {
	base := c.IronOre + c.Labor + c.Electricity
	return base + c.Energy*(1+band), base + c.Energy*(1-band)
}
