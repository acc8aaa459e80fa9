package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"hydrogen-cost/internal/analysis"
	"hydrogen-cost/internal/config"
	"hydrogen-cost/internal/lcoh"
	"hydrogen-cost/internal/model"

	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "lcoh":
		cmdLCOH(os.Args[2:])
	case "curve":
		cmdCurve(os.Args[2:])
	case "matrix":
		cmdMatrix(os.Args[2:])
	case "steel":
		cmdSteel(os.Args[2:])
	case "fuel":
		cmdFuel(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli lcoh --config examples/scenario.yaml")
	fmt.Println("  cli curve --config examples/scenario.yaml --out results/curve.csv")
	fmt.Println("  cli matrix --config examples/scenario.yaml --out results/matrix.csv")
	fmt.Println("  cli steel --config examples/scenario.yaml")
	fmt.Println("  cli fuel --config examples/scenario.yaml --fuels examples/fuels.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - lcoh prints a $/kg cost breakdown for one scenario")
	fmt.Println("  - curve sweeps electricity price and writes an x/y CSV")
	fmt.Println("  - matrix writes one row of LCOH samples per lifetime year")
}

func loadScenario(path string) (*config.Config, lcoh.Inputs) {
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	return cfg, lcoh.Inputs{
		Technology:            cfg.Technology.Name,
		SystemSizeKW:          cfg.Scenario.SystemSizeKW,
		ElectricityCostPerMWh: cfg.Scenario.ElectricityCostPerMWh,
		Economics:             cfg.Economics(),
		BalanceOfPlantCost:    cfg.Scenario.BalanceOfPlantCost,
	}
}

// engineFor builds an engine whose catalog includes the scenario's
// technology, so file-defined technologies work like built-in ones.
func engineFor(cfg *config.Config) *lcoh.Engine {
	spec, err := cfg.ResolveTechnology(model.DefaultCatalog())
	if err != nil {
		panic(err)
	}
	specs := []model.TechnologySpec{spec}
	for _, name := range model.DefaultCatalog().Names() {
		if name == spec.Name {
			continue
		}
		s, err := model.DefaultCatalog().Lookup(name)
		if err != nil {
			panic(err)
		}
		specs = append(specs, s)
	}
	catalog, err := model.NewCatalog(specs...)
	if err != nil {
		panic(err)
	}
	return lcoh.New(catalog)
}

func cmdLCOH(args []string) {
	fs := flag.NewFlagSet("lcoh", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, in := loadScenario(*cfgPath)
	b, err := engineFor(cfg).Calculate(in)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Technology          %s\n", in.Technology)
	fmt.Printf("Annual H2 output    %.0f kg/yr\n", b.AnnualHydrogenKg)
	fmt.Printf("Capital             $%.3f/kg\n", b.CapitalCostPerKg)
	fmt.Printf("Electricity         $%.3f/kg\n", b.ElectricityCostPerKg)
	fmt.Printf("O&M                 $%.3f/kg\n", b.OAndMCostPerKg)
	fmt.Printf("LCOH                $%.2f/kg\n", b.LCOHPerKg)
	if in.Economics.ApplyTaxCredit {
		fmt.Printf("LCOH after credit   $%.2f/kg\n", b.LCOHAfterCreditPerKg)
	}
}

func cmdCurve(args []string) {
	fs := flag.NewFlagSet("curve", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	outPath := fs.String("out", "results/curve.csv", "Output CSV path")
	steps := fs.Int("steps", 30, "Number of price samples")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, in := loadScenario(*cfgPath)
	points, err := engineFor(cfg).Curve(in, cfg.Scenario.StartPricePerMWh, cfg.Scenario.EndPricePerMWh, *steps)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := lcoh.WriteCurveCSV(*outPath, points); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d points to %s\n", len(points), *outPath)
}

func cmdMatrix(args []string) {
	fs := flag.NewFlagSet("matrix", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	outPath := fs.String("out", "results/matrix.csv", "Output CSV path")
	samples := fs.Int("samples", lcoh.DefaultSampleCount, "Samples per year")
	includeCapital := fs.Bool("capital", false, "Include the annualized capital component")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, in := loadScenario(*cfgPath)
	res, err := engineFor(cfg).Matrix(lcoh.MatrixInputs{
		Technology:         in.Technology,
		SystemSizeKW:       in.SystemSizeKW,
		Economics:          in.Economics,
		StartPricePerMWh:   cfg.Scenario.StartPricePerMWh,
		EndPricePerMWh:     cfg.Scenario.EndPricePerMWh,
		Samples:            *samples,
		IncludeCapital:     *includeCapital,
		BalanceOfPlantCost: in.BalanceOfPlantCost,
	})
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := lcoh.WriteMatrixCSV(*outPath, res); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d years x %d samples to %s\n", len(res.Rows), len(res.Rows[0]), *outPath)
}

func cmdSteel(args []string) {
	fs := flag.NewFlagSet("steel", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	kgH2 := fs.Float64("kg-h2-per-ton", 50, "kg of H2 per ton of steel")
	kwh := fs.Float64("kwh-per-ton", 700, "EAF electricity per ton of steel (kWh)")
	elecPrice := fs.Float64("price-per-kwh", 0.05, "Electricity price ($/kWh)")
	ironOre := fs.Float64("iron-ore", 500, "Iron ore cost per ton of steel ($)")
	labor := fs.Float64("labor", 50, "Labor cost per ton of steel ($)")
	convEnergy := fs.Float64("conventional-energy", 120, "BF-BOF fuel cost per ton ($)")
	convElec := fs.Float64("conventional-electricity", 120, "BF-BOF electricity per ton ($)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, in := loadScenario(*cfgPath)
	b, err := engineFor(cfg).Calculate(in)
	if err != nil {
		panic(err)
	}

	cmp := analysis.CompareSteel(analysis.SteelInputs{
		LCOHPerKg:                     b.LCOHAfterCreditPerKg,
		KgH2PerTonSteel:               *kgH2,
		KWhPerTonSteel:                *kwh,
		ElectricityPricePerKWh:        *elecPrice,
		IronOrePerTon:                 *ironOre,
		LaborPerTon:                   *labor,
		ConventionalEnergyPerTon:      *convEnergy,
		ConventionalElectricityPerTon: *convElec,
		EnergyBand:                    0.1,
	})

	fmt.Printf("LCOH: $%.2f/kg\n\n", b.LCOHAfterCreditPerKg)
	fmt.Printf("%-14s %10s %10s\n", "component", "green", "regular")
	fmt.Printf("%-14s %10.2f %10.2f\n", "iron ore", cmp.Green.IronOre, cmp.Conventional.IronOre)
	fmt.Printf("%-14s %10.2f %10.2f\n", "labor", cmp.Green.Labor, cmp.Conventional.Labor)
	fmt.Printf("%-14s %10.2f %10.2f\n", "electricity", cmp.Green.Electricity, cmp.Conventional.Electricity)
	fmt.Printf("%-14s %10.2f %10.2f\n", "energy", cmp.Green.Energy, cmp.Conventional.Energy)
	fmt.Printf("%-14s %10.2f %10.2f\n", "total", cmp.Green.Total(), cmp.Conventional.Total())
	fmt.Printf("\nGreen premium: $%.2f/ton\n", cmp.GreenPremiumPerTon())
}

// fuelsFile is the on-disk shape of --fuels.
type fuelsFile struct {
	Years            []int   `yaml:"years"`
	HydrogenKWhPerKg float64 `yaml:"hydrogen_kwh_per_kg"`
	Fuels            []struct {
		Name             string    `yaml:"name"`
		AnnualUsage      float64   `yaml:"annual_usage"`
		EnergyDensityKWh float64   `yaml:"energy_density_kwh"`
		AnnualExpense    float64   `yaml:"annual_expense"`
		ChargeRateByYear []float64 `yaml:"charge_rate_by_year"`
	} `yaml:"fuels"`
}

func cmdFuel(args []string) {
	fs := flag.NewFlagSet("fuel", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	fuelsPath := fs.String("fuels", "", "Path to YAML fuel usage file")
	_ = fs.Parse(args)

	if *cfgPath == "" || *fuelsPath == "" {
		fmt.Println("--config and --fuels are required")
		os.Exit(2)
	}

	raw, err := os.ReadFile(*fuelsPath)
	if err != nil {
		panic(err)
	}
	var ff fuelsFile
	if err := yaml.Unmarshal(raw, &ff); err != nil {
		panic(err)
	}

	cfg, in := loadScenario(*cfgPath)
	b, err := engineFor(cfg).Calculate(in)
	if err != nil {
		panic(err)
	}

	fuels := make([]analysis.Fuel, 0, len(ff.Fuels))
	for _, f := range ff.Fuels {
		fuels = append(fuels, analysis.Fuel{
			Name:             f.Name,
			AnnualUsage:      f.AnnualUsage,
			EnergyDensityKWh: f.EnergyDensityKWh,
			AnnualExpense:    f.AnnualExpense,
			ChargeRateByYear: f.ChargeRateByYear,
		})
	}
	years, err := analysis.FuelSubstitution(analysis.SubstitutionInputs{
		Fuels:            fuels,
		Years:            ff.Years,
		LCOHPerKg:        b.LCOHAfterCreditPerKg,
		HydrogenKWhPerKg: ff.HydrogenKWhPerKg,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("LCOH: $%.2f/kg\n\n", b.LCOHAfterCreditPerKg)
	fmt.Printf("%-6s %14s %14s %14s %14s\n", "year", "fuel", "fuel charge", "hydrogen", "cum savings")
	for _, y := range years {
		fmt.Printf("%-6d %14.0f %14.0f %14.0f %14.0f\n",
			y.Year, y.FuelCost, y.FuelChargeTax, y.HydrogenCost, y.CumulativeSavings)
	}
}
