package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/KothuruDhansukh/ECO-MART/domain"
	"github.com/KothuruDhansukh/ECO-MART/internal/middleware"
	"github.com/KothuruDhansukh/ECO-MART/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	PreferenceHandler struct {
		validate *validator.Validate
		service  PreferenceService
	}

	PreferenceService interface {
		GetProfile(ctx context.Context, userID uint) (domain.UserProfile, error)
		RecordAction(ctx context.Context, userID uint, productID uint64, actionType string, eventCtx map[string]any) (domain.UserProfile, error)
		ListEvents(ctx context.Context, userID uint, limit int) ([]domain.PreferenceEvent, error)
		ResetProfile(ctx context.Context, userID uint) (domain.UserProfile, error)
	}

	// Action types outside view / add to cart / purchase are accepted and learn at the default rate.
	PreferenceEventRequest struct {
		ProductID  uint64         `json:"product_id" validate:"required"`
		ActionType string         `json:"action_type" validate:"required,max=64"`
		Context    map[string]any `json:"context"`
	}
)

func NewPreferenceHandler(svc PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		validate: validator.New(),
		service:  svc,
	}
}

// GET /api/v1/preferences
func (h *PreferenceHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	profile, err := h.service.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(profile))
}

// POST /api/v1/preferences/events
func (h *PreferenceHandler) RecordEvent(c echo.Context) error {
	start := time.Now()
	defer func() {
		metrics.PreferenceEventLatency.Observe(time.Since(start).Seconds())
	}()

	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req PreferenceEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	profile, err := h.service.RecordAction(c.Request().Context(), userID, req.ProductID, req.ActionType, req.Context)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(profile))
}

// GET /api/v1/preferences/events?limit=20
func (h *PreferenceHandler) ListEvents(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	limit := 20
	if s := c.QueryParam("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid limit"})
		}
		limit = n
	}

	events, err := h.service.ListEvents(c.Request().Context(), userID, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(events))
}

// DELETE /api/v1/preferences
func (h *PreferenceHandler) ResetProfile(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	profile, err := h.service.ResetProfile(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(profile))
}
