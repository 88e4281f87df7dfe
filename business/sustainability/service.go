package sustainability

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KothuruDhansukh/ECO-MART/business/scoring"
	"github.com/KothuruDhansukh/ECO-MART/domain"
	"github.com/KothuruDhansukh/ECO-MART/pkg/logger"
	"github.com/KothuruDhansukh/ECO-MART/pkg/metrics"
	"github.com/KothuruDhansukh/ECO-MART/pkg/trace"
)

// ProductRepository is the catalog data source.
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}

// TablesLoader resolves the current lookup tables.
type TablesLoader interface {
	Load(ctx context.Context) scoring.Tables
}

type Service struct {
	productRepo ProductRepository
	tables      TablesLoader
	picker      MessagePicker
}

func NewService(productRepo ProductRepository, tables TablesLoader, picker MessagePicker) *Service {
	if picker == nil {
		picker = NewRandomPicker(time.Now().UnixNano())
	}
	return &Service{
		productRepo: productRepo,
		tables:      tables,
		picker:      picker,
	}
}

func (s *Service) ScorePurchase(ctx context.Context, productID uint64, groupDelivery bool) (domain.SustainabilityResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.SustainabilityResult{}, fmt.Errorf("context error: %w", err)
	}
	if productID == 0 {
		return domain.SustainabilityResult{}, fmt.Errorf("%w: product id is required", domain.ErrValidation)
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		logger.Error("failed to find product", "product_id", productID, "error", err)
		return domain.SustainabilityResult{}, err
	}

	catalog, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		return domain.SustainabilityResult{}, err
	}

	calc := NewCalculator(s.tables.Load(ctx), s.picker)

	result, err := calc.ComputeSustainabilityMetrics(product, catalog, groupDelivery)
	if err != nil {
		if errors.Is(err, domain.ErrConfiguration) {
			logger.Error("scoring tables do not cover product ratings",
				"product_id", productID,
				"eco_rating", product.EcoRating,
				"water_rating", product.WaterRating,
				"error", err,
			)
		}
		return domain.SustainabilityResult{}, err
	}

	framing := "negative"
	if IsPositive(result) {
		framing = "positive"
	}
	metrics.SustainabilityScoresTotal.
		WithLabelValues(framing, strconv.FormatBool(groupDelivery)).
		Inc()

	logger.Debug("sustainability_score",
		"trace_id", trace.IDFromContext(ctx),
		"product_id", productID,
		"category", product.CategoryName,
		"baseline_source", result.Baseline.Source,
		"carbon_saved", result.CarbonSaved,
		"water_saved", result.WaterSaved,
		"group_delivery", groupDelivery,
	)

	return result, nil
}

// Baselines returns the per-category baselines of the current catalog.
func (s *Service) Baselines(ctx context.Context) (map[string]domain.Baseline, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	catalog, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		return nil, err
	}

	return ComputeBaselines(catalog), nil
}
