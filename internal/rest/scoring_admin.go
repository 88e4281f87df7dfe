package rest

import (
	"context"
	"net/http"

	"github.com/KothuruDhansukh/ECO-MART/business/scoring"
	"github.com/KothuruDhansukh/ECO-MART/domain"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	ScoringAdminHandler struct {
		validate *validator.Validate
		service  ScoringAdminService
	}

	ScoringAdminService interface {
		EffectiveTables(ctx context.Context) (scoring.Tables, error)
		UpsertEntries(ctx context.Context, entries []domain.ScoringConfigEntry) (scoring.Tables, error)
	}

	// body: { "entries": [ { "kind": "carbon_grade", "key": "A+", "value": 5 } ] }
	UpsertScoringConfigRequest struct {
		Entries []domain.ScoringConfigEntry `json:"entries" validate:"required,min=1,dive"`
	}

	scoringConfigResponse struct {
		Tables  scoring.Tables              `json:"tables"`
		Entries []domain.ScoringConfigEntry `json:"entries"`
	}
)

func NewScoringAdminHandler(svc ScoringAdminService) *ScoringAdminHandler {
	return &ScoringAdminHandler{
		validate: validator.New(),
		service:  svc,
	}
}

// GET /api/v1/admin/scoring/config
func (h *ScoringAdminHandler) GetConfig(c echo.Context) error {
	tables, err := h.service.EffectiveTables(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(scoringConfigResponse{
		Tables:  tables,
		Entries: scoring.SortedEntries(tables),
	}))
}

// PUT /api/v1/admin/scoring/config
func (h *ScoringAdminHandler) UpsertConfig(c echo.Context) error {
	var body UpsertScoringConfigRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid body: " + err.Error()})
	}
	if err := h.validate.Struct(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	tables, err := h.service.UpsertEntries(c.Request().Context(), body.Entries)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(scoringConfigResponse{
		Tables:  tables,
		Entries: scoring.SortedEntries(tables),
	}))
}
