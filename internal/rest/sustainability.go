package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/KothuruDhansukh/ECO-MART/domain"
	"github.com/KothuruDhansukh/ECO-MART/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	SustainabilityHandler struct {
		validate *validator.Validate
		service  SustainabilityService
	}

	SustainabilityService interface {
		ScorePurchase(ctx context.Context, productID uint64, groupDelivery bool) (domain.SustainabilityResult, error)
		Baselines(ctx context.Context) (map[string]domain.Baseline, error)
	}

	ScoreRequest struct {
		ProductID     uint64 `json:"product_id" validate:"required"`
		GroupDelivery bool   `json:"group_delivery"`
	}
)

func NewSustainabilityHandler(svc SustainabilityService) *SustainabilityHandler {
	return &SustainabilityHandler{
		validate: validator.New(),
		service:  svc,
	}
}

// POST /api/v1/sustainability/score
func (h *SustainabilityHandler) Score(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.SustainabilityScoreLatency.Observe(time.Since(start).Seconds())
	}()

	var req ScoreRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	result, err := h.service.ScorePurchase(c.Request().Context(), req.ProductID, req.GroupDelivery)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// GET /api/v1/sustainability/baselines
func (h *SustainabilityHandler) Baselines(c echo.Context) error {
	baselines, err := h.service.Baselines(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(baselines))
}
