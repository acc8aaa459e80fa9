package main

import (
	"flag"
	"fmt"

	"hydrogen-cost/internal/lcoh"
	"hydrogen-cost/internal/model"
)

// Demo:
// - Walk the built-in technology catalog
// - Compute a scalar LCOH for each technology at shared assumptions
// - Show how the price matrix fans out for one technology
func main() {
	sizeKW := flag.Float64("size", 1000, "System size in kW")
	pricePerMWh := flag.Float64("price", 50, "Electricity cost in $/MWh")
	oAndM := flag.Float64("om", 1.0, "O&M cost in $/kg")
	credit := flag.Bool("credit", false, "Apply the $3/kg tax credit")
	flag.Parse()

	engine := lcoh.New(nil)
	econ := model.EconomicParameters{
		DiscountRate:   0.1,
		CapacityFactor: 0.8,
		OAndMCostPerKg: *oAndM,
		TaxCreditPerKg: 3.0,
		ApplyTaxCredit: *credit,
	}

	fmt.Printf("Assumptions: %.0f kW, %.0f $/MWh, cf=%.0f%%, wacc=%.0f%%\n\n",
		*sizeKW, *pricePerMWh, econ.CapacityFactor*100, econ.DiscountRate*100)
	fmt.Printf("%-10s %12s %12s %12s %10s\n", "tech", "capital/kg", "elec/kg", "kg/yr", "lcoh")

	for _, name := range engine.Catalog().Names() {
		b, err := engine.Calculate(lcoh.Inputs{
			Technology:            name,
			SystemSizeKW:          *sizeKW,
			ElectricityCostPerMWh: *pricePerMWh,
			Economics:             econ,
		})
		if err != nil {
			panic(err)
		}
		lcohStr := fmt.Sprintf("$%.2f", b.LCOHPerKg)
		if *credit {
			lcohStr = fmt.Sprintf("$%.2f", b.LCOHAfterCreditPerKg)
		}
		fmt.Printf("%-10s %12.3f %12.3f %12.0f %10s\n",
			name, b.CapitalCostPerKg, b.ElectricityCostPerKg, b.AnnualHydrogenKg, lcohStr)
	}

	// Price fan-out preview for PEM: first, middle, and last year.
	res, err := engine.Matrix(lcoh.MatrixInputs{
		Technology:       "PEM",
		SystemSizeKW:     *sizeKW,
		Economics:        econ,
		StartPricePerMWh: 35,
		EndPricePerMWh:   100,
		Samples:          10,
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("\nPEM LCOH samples ($/kg, 10-wide fan-out):\n")
	for _, y := range []int{0, len(res.Rows) / 2, len(res.Rows) - 1} {
		fmt.Printf("year %2d:", y)
		for _, v := range res.Rows[y][:res.Samples] {
			fmt.Printf(" %6.2f", v)
		}
		fmt.Println()
	}
}
