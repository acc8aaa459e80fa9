package handlers

import (
	"net/http"

	"hydrogen-cost/internal/analysis"
	"hydrogen-cost/internal/api/models"
	"hydrogen-cost/internal/lcoh"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler serves the downstream cost-substitution endpoints.
// Both run the LCOH model first and feed its scalar output in.
type AnalysisHandler struct {
	engine *lcoh.Engine
}

func NewAnalysisHandler(engine *lcoh.Engine) *AnalysisHandler {
	if engine == nil {
		engine = lcoh.New(nil)
	}
	return &AnalysisHandler{engine: engine}
}

// CompareSteel handles POST /api/v1/steel/compare
func (h *AnalysisHandler) CompareSteel(c *gin.Context) {
	var req models.SteelCompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	b, err := h.engine.Calculate(lcohInputs(req.LCOH))
	if err != nil {
		writeModelError(c, err)
		return
	}

	band := req.EnergyBand
	if band == 0 {
		band = 0.1
	}
	cmp := analysis.CompareSteel(analysis.SteelInputs{
		LCOHPerKg:                     b.LCOHAfterCreditPerKg,
		KgH2PerTonSteel:               req.KgH2PerTonSteel,
		KWhPerTonSteel:                req.KWhPerTonSteel,
		ElectricityPricePerKWh:        req.ElectricityPricePerKWh,
		IronOrePerTon:                 req.IronOrePerTon,
		LaborPerTon:                   req.LaborPerTon,
		ConventionalEnergyPerTon:      req.ConventionalEnergyPerTon,
		ConventionalElectricityPerTon: req.ConventionalElectricityPerTon,
		EnergyBand:                    band,
	})

	c.JSON(http.StatusOK, models.SteelCompareResponse{
		LCOHPerKg:          b.LCOHAfterCreditPerKg,
		Green:              steelCost(cmp.Green),
		Conventional:       steelCost(cmp.Conventional),
		GreenPremiumPerTon: cmp.GreenPremiumPerTon(),
	})
}

// FuelSubstitution handles POST /api/v1/fuel/substitution
func (h *AnalysisHandler) FuelSubstitution(c *gin.Context) {
	var req models.FuelSubstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	b, err := h.engine.Calculate(lcohInputs(req.LCOH))
	if err != nil {
		writeModelError(c, err)
		return
	}

	fuels := make([]analysis.Fuel, 0, len(req.Fuels))
	for _, f := range req.Fuels {
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
		Years:            req.Years,
		LCOHPerKg:        b.LCOHAfterCreditPerKg,
		HydrogenKWhPerKg: req.HydrogenKWhPerKg,
	})
	if err != nil {
		writeModelError(c, err)
		return
	}

	resp := models.FuelSubstitutionResponse{
		LCOHPerKg: b.LCOHAfterCreditPerKg,
		Years:     make([]models.FuelYearCost, 0, len(years)),
	}
	for _, y := range years {
		resp.Years = append(resp.Years, models.FuelYearCost{
			Year:              y.Year,
			FuelCost:          y.FuelCost,
			FuelChargeTax:     y.FuelChargeTax,
			HydrogenCost:      y.HydrogenCost,
			Savings:           y.Savings,
			CumulativeSavings: y.CumulativeSavings,
		})
	}
	c.JSON(http.StatusOK, resp)
}

func steelCost(c analysis.SteelCostPerTon) models.SteelCostPerTon {
	return models.SteelCostPerTon{
		IronOre:     c.IronOre,
		Labor:       c.Labor,
		Electricity: c.Electricity,
		Energy:      c.Energy,
		Total:       c.Total(),
		Upper:       c.Upper,
		Lower:       c.Lower,
	}
}
