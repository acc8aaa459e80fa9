package handlers

import (
	"errors"
	"net/http"

	"hydrogen-cost/internal/api/models"
	"hydrogen-cost/internal/lcoh"
	"hydrogen-cost/internal/model"

	"github.com/gin-gonic/gin"
)

// LCOHHandler serves the scalar, curve, and matrix LCOH endpoints.
type LCOHHandler struct {
	engine *lcoh.Engine
}

// NewLCOHHandler creates an LCOH handler. A nil engine falls back to
// the default catalog.
func NewLCOHHandler(engine *lcoh.Engine) *LCOHHandler {
	if engine == nil {
		engine = lcoh.New(nil)
	}
	return &LCOHHandler{engine: engine}
}

// Calculate handles POST /api/v1/lcoh
func (h *LCOHHandler) Calculate(c *gin.Context) {
	var req models.LCOHRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	b, err := h.engine.Calculate(lcohInputs(req))
	if err != nil {
		writeModelError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.BreakdownResponse{
		Technology:           req.Technology,
		CapitalCostPerKg:     b.CapitalCostPerKg,
		ElectricityCostPerKg: b.ElectricityCostPerKg,
		OAndMCostPerKg:       b.OAndMCostPerKg,
		StackExpenditure:     b.StackExpenditure,
		AnnualHydrogenKg:     b.AnnualHydrogenKg,
		LCOHPerKg:            b.LCOHPerKg,
		LCOHAfterCreditPerKg: b.LCOHAfterCreditPerKg,
	})
}

// Curve handles POST /api/v1/lcoh/curve
func (h *LCOHHandler) Curve(c *gin.Context) {
	var req models.CurveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}
	steps := req.Steps
	if steps == 0 {
		steps = 30
	}

	in := lcoh.Inputs{
		Technology:         req.Technology,
		SystemSizeKW:       req.SystemSizeKW,
		Economics:          economics(req.Economics),
		BalanceOfPlantCost: req.BalanceOfPlantCost,
		ExcludeCapital:     req.ExcludeCapital,
	}
	points, err := h.engine.Curve(in, req.StartPricePerMWh, req.EndPricePerMWh, steps)
	if err != nil {
		writeModelError(c, err)
		return
	}

	resp := models.CurveResponse{
		Technology: req.Technology,
		Points:     make([]models.CurvePoint, 0, len(points)),
	}
	for _, p := range points {
		resp.Points = append(resp.Points, models.CurvePoint{
			ElectricityCostPerMWh: p.ElectricityCostPerMWh,
			LCOHPerKg:             p.LCOHPerKg,
			LCOHAfterCreditPerKg:  p.LCOHAfterCreditPerKg,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Matrix handles POST /api/v1/lcoh/matrix
func (h *LCOHHandler) Matrix(c *gin.Context) {
	var req models.MatrixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err)
		return
	}

	res, err := h.engine.Matrix(lcoh.MatrixInputs{
		Technology:         req.Technology,
		SystemSizeKW:       req.SystemSizeKW,
		Economics:          economics(req.Economics),
		StartPricePerMWh:   req.StartPricePerMWh,
		EndPricePerMWh:     req.EndPricePerMWh,
		Samples:            req.Samples,
		IncludeCapital:     req.IncludeCapital,
		BalanceOfPlantCost: req.BalanceOfPlantCost,
	})
	if err != nil {
		writeModelError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MatrixResponse{
		Technology:       req.Technology,
		Years:            len(res.Rows),
		Samples:          res.Samples,
		Rows:             res.Rows,
		MeanPricePerMWh:  res.MeanPricePerMWh,
		StackCostPerKg:   res.StackCostPerKg,
		CapitalCostPerKg: res.CapitalCostPerKg,
	})
}

func lcohInputs(req models.LCOHRequest) lcoh.Inputs {
	return lcoh.Inputs{
		Technology:            req.Technology,
		SystemSizeKW:          req.SystemSizeKW,
		ElectricityCostPerMWh: req.ElectricityCostPerMWh,
		Economics:             economics(req.Economics),
		BalanceOfPlantCost:    req.BalanceOfPlantCost,
		ExcludeCapital:        req.ExcludeCapital,
	}
}

func economics(e models.EconomicsConfig) model.EconomicParameters {
	return model.EconomicParameters{
		DiscountRate:   e.DiscountRate,
		CapacityFactor: e.CapacityFactor,
		OAndMCostPerKg: e.OAndMCostPerKg,
		TaxCreditPerKg: e.TaxCreditPerKg,
		ApplyTaxCredit: e.ApplyTaxCredit,
	}
}

func badRequest(c *gin.Context, code string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

// writeModelError maps the model's error taxonomy onto HTTP statuses.
func writeModelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrUnknownTechnology):
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UNKNOWN_TECHNOLOGY",
				Message: err.Error(),
			},
		})
	case errors.Is(err, model.ErrInvalidParameter):
		badRequest(c, "INVALID_PARAMETER", err)
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: err.Error(),
			},
		})
	}
}
