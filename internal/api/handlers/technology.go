package handlers

import (
	"net/http"

	"hydrogen-cost/internal/api/models"
	"hydrogen-cost/internal/model"

	"github.com/gin-gonic/gin"
)

// TechnologyHandler serves the technology catalog.
type TechnologyHandler struct {
	catalog *model.Catalog
}

func NewTechnologyHandler(catalog *model.Catalog) *TechnologyHandler {
	if catalog == nil {
		catalog = model.DefaultCatalog()
	}
	return &TechnologyHandler{catalog: catalog}
}

// ListTechnologies handles GET /api/v1/technologies
func (h *TechnologyHandler) ListTechnologies(c *gin.Context) {
	names := h.catalog.Names()
	techs := make([]models.TechnologyInfo, 0, len(names))
	for _, name := range names {
		spec, err := h.catalog.Lookup(name)
		if err != nil {
			continue
		}
		techs = append(techs, models.TechnologyInfo{
			Name:                 spec.Name,
			CapexPerKW:           spec.CapexPerKW,
			EfficiencyKWhPerKg:   spec.EfficiencyKWhPerKg,
			LifetimeYears:        spec.LifetimeYears,
			StackDurabilityHours: spec.StackDurabilityHours,
			StackCost:            spec.StackCost,
		})
	}
	c.JSON(http.StatusOK, gin.H{"technologies": techs})
}
