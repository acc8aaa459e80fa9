package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hydrogen-cost/internal/api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewLCOHHandler(nil)
	router.POST("/api/v1/lcoh", h.Calculate)
	router.POST("/api/v1/lcoh/curve", h.Curve)
	router.POST("/api/v1/lcoh/matrix", h.Matrix)
	router.GET("/api/v1/technologies", NewTechnologyHandler(nil).ListTechnologies)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func baselineRequest() models.LCOHRequest {
	return models.LCOHRequest{
		Technology:            "PEM",
		SystemSizeKW:          1000,
		ElectricityCostPerMWh: 50,
		Economics: models.EconomicsConfig{
			DiscountRate:   0.1,
			CapacityFactor: 0.8,
			OAndMCostPerKg: 1.0,
		},
	}
}

func TestCalculateEndpoint(t *testing.T) {
	router := newTestRouter()
	w := postJSON(t, router, "/api/v1/lcoh", baselineRequest())
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BreakdownResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "PEM", resp.Technology)
	require.Equal(t, 3.84, resp.LCOHPerKg)
	require.InDelta(t, 140160.0, resp.AnnualHydrogenKg, 1e-6)
}

func TestCalculateEndpointUnknownTechnology(t *testing.T) {
	router := newTestRouter()
	req := baselineRequest()
	req.Technology = "unobtainium"
	w := postJSON(t, router, "/api/v1/lcoh", req)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "UNKNOWN_TECHNOLOGY", resp.Error.Code)
}

func TestCalculateEndpointInvalidParameter(t *testing.T) {
	router := newTestRouter()
	req := baselineRequest()
	req.Economics.CapacityFactor = 1.5
	w := postJSON(t, router, "/api/v1/lcoh", req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "INVALID_PARAMETER", resp.Error.Code)
}

func TestCalculateEndpointRejectsMalformedBody(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lcoh", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCurveEndpoint(t *testing.T) {
	router := newTestRouter()
	w := postJSON(t, router, "/api/v1/lcoh/curve", models.CurveRequest{
		Technology:   "PEM",
		SystemSizeKW: 1000,
		Economics: models.EconomicsConfig{
			DiscountRate:   0.1,
			CapacityFactor: 0.8,
			OAndMCostPerKg: 1.0,
		},
		StartPricePerMWh: 35,
		EndPricePerMWh:   100,
		Steps:            10,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.CurveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Points, 10)
	require.InDelta(t, 35.0, resp.Points[0].ElectricityCostPerMWh, 1e-9)
}

func TestMatrixEndpoint(t *testing.T) {
	router := newTestRouter()
	w := postJSON(t, router, "/api/v1/lcoh/matrix", models.MatrixRequest{
		Technology:   "PEM",
		SystemSizeKW: 1000,
		Economics: models.EconomicsConfig{
			DiscountRate:   0.1,
			CapacityFactor: 0.8,
			OAndMCostPerKg: 1.0,
		},
		StartPricePerMWh: 35,
		EndPricePerMWh:   100,
		Samples:          10,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MatrixResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 20, resp.Years)
	require.Equal(t, 10, resp.Samples)
	require.Len(t, resp.Rows, 20)
}

func TestListTechnologiesEndpoint(t *testing.T) {
	router := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/technologies", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Technologies []models.TechnologyInfo `json:"technologies"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Technologies, 3)
	require.Equal(t, "Alkaline", resp.Technologies[0].Name)
}
