package preference

import (
	"context"
	"errors"
	"fmt"

	"github.com/KothuruDhansukh/ECO-MART/business/scoring"
	"github.com/KothuruDhansukh/ECO-MART/business/sustainability"
	"github.com/KothuruDhansukh/ECO-MART/domain"
	"github.com/KothuruDhansukh/ECO-MART/pkg/logger"
	"github.com/KothuruDhansukh/ECO-MART/pkg/trace"

	"gorm.io/datatypes"
)

// ---- Repository interfaces ----

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID uint) (domain.UserProfile, bool, error)
	SaveProfile(ctx context.Context, profile domain.UserProfile) error
}

// ProfileCache is an optional read-through cache in front of ProfileRepository.
type ProfileCache interface {
	GetProfile(ctx context.Context, userID uint) (domain.UserProfile, bool, error)
	SetProfile(ctx context.Context, profile domain.UserProfile) error
	DeleteProfile(ctx context.Context, userID uint) error
}

type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.PreferenceEvent) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]domain.PreferenceEvent, error)
}

type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type TablesLoader interface {
	Load(ctx context.Context) scoring.Tables
}

const maxEventPage = 200

type Service struct {
	profileRepo  ProfileRepository
	cache        ProfileCache
	eventRepo    EventRepository
	productRepo  ProductRepository
	tables       TablesLoader
	minTolerance float64
	maxTolerance float64
	locks        *userLocks
}

func NewService(
	profileRepo ProfileRepository,
	cache ProfileCache,
	eventRepo EventRepository,
	productRepo ProductRepository,
	tables TablesLoader,
	minTol, maxTol float64,
) *Service {
	return &Service{
		profileRepo:  profileRepo,
		cache:        cache,
		eventRepo:    eventRepo,
		productRepo:  productRepo,
		tables:       tables,
		minTolerance: minTol,
		maxTolerance: maxTol,
		locks:        newUserLocks(),
	}
}

// GetProfile returns the stored profile or a fresh default one.
func (s *Service) GetProfile(ctx context.Context, userID uint) (domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserProfile{}, fmt.Errorf("context error: %w", err)
	}
	if userID == 0 {
		return domain.UserProfile{}, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}

	return s.loadProfile(ctx, userID)
}

// RecordAction applies one storefront action to the user's profile and persists it.
// Calls for the same user are serialized.
func (s *Service) RecordAction(
	ctx context.Context,
	userID uint,
	productID uint64,
	actionType string,
	eventCtx map[string]any,
) (domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserProfile{}, fmt.Errorf("context error: %w", err)
	}
	if userID == 0 {
		return domain.UserProfile{}, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	if productID == 0 {
		return domain.UserProfile{}, fmt.Errorf("%w: product id is required", domain.ErrValidation)
	}
	if actionType == "" {
		return domain.UserProfile{}, fmt.Errorf("%w: action type is required", domain.ErrValidation)
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		logger.Error("failed to find product", "product_id", productID, "error", err)
		return domain.UserProfile{}, err
	}

	avgPrice, err := s.categoryAvgPrice(ctx, product.CategoryName)
	if err != nil {
		return domain.UserProfile{}, err
	}

	current, err := s.loadProfile(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, err
	}

	tables := s.tables.Load(ctx)
	updater := NewUpdater(tables, s.minTolerance, s.maxTolerance)

	updated, learned, err := updater.UpdateUserWeights(current, avgPrice, product, actionType)
	if err != nil {
		return domain.UserProfile{}, err
	}

	outcome := "skipped"
	if learned {
		outcome = "learned"
		if err := s.profileRepo.SaveProfile(ctx, updated); err != nil {
			return domain.UserProfile{}, fmt.Errorf("failed to save profile: %w", err)
		}
		s.refreshCache(ctx, updated)
	}

	event := domain.PreferenceEvent{
		UserID:          userID,
		ProductID:       productID,
		ActionType:      actionType,
		Delta:           tables.Delta(actionType),
		Learned:         learned,
		ToleranceBefore: current.PriceTolerance,
		ToleranceAfter:  updated.PriceTolerance,
		WeightsAfter:    weightsJSON(updated.Weights),
		Context:         datatypes.JSONMap(eventCtx),
	}
	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		return domain.UserProfile{}, fmt.Errorf("failed to save preference event: %w", err)
	}

	logger.Debug("preference_update",
		"trace_id", trace.IDFromContext(ctx),
		"user_id", userID,
		"product_id", productID,
		"action_type", actionType,
		"avg_price", avgPrice,
		"outcome", outcome,
		"price_tolerance", updated.PriceTolerance,
	)

	PreferenceUpdatesTotal.WithLabelValues(actionLabel(actionType), outcome).Inc()
	PriceToleranceObserved.Observe(updated.PriceTolerance)

	return updated, nil
}

// ListEvents returns the user's most recent preference events, newest first.
func (s *Service) ListEvents(ctx context.Context, userID uint, limit int) ([]domain.PreferenceEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if userID == 0 {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	if limit < 0 || limit > maxEventPage {
		return nil, fmt.Errorf("%w: limit must be between 0 and %d", domain.ErrValidation, maxEventPage)
	}

	return s.eventRepo.ListByUser(ctx, userID, limit)
}

// ResetProfile replaces the user's profile with the default one.
func (s *Service) ResetProfile(ctx context.Context, userID uint) (domain.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserProfile{}, fmt.Errorf("context error: %w", err)
	}
	if userID == 0 {
		return domain.UserProfile{}, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	profile := domain.NewUserProfile(userID)
	if err := s.profileRepo.SaveProfile(ctx, profile); err != nil {
		return domain.UserProfile{}, fmt.Errorf("failed to save profile: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.DeleteProfile(ctx, userID); err != nil {
			logger.Warn("failed to evict cached profile", "user_id", userID, "error", err)
		}
	}

	logger.Info("preference profile reset", "user_id", userID)

	return profile, nil
}

func (s *Service) loadProfile(ctx context.Context, userID uint) (domain.UserProfile, error) {
	if s.cache != nil {
		p, ok, err := s.cache.GetProfile(ctx, userID)
		if err != nil {
			logger.Warn("profile cache read failed", "user_id", userID, "error", err)
		} else if ok {
			return p, nil
		}
	}

	p, ok, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if !ok {
		return domain.NewUserProfile(userID), nil
	}

	s.refreshCache(ctx, p)
	return p, nil
}

func (s *Service) refreshCache(ctx context.Context, p domain.UserProfile) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetProfile(ctx, p); err != nil {
		logger.Warn("profile cache write failed", "user_id", p.UserID, "error", err)
	}
}

// categoryAvgPrice is the mean price of the category, or of the whole catalog
// when the category has no rows.
func (s *Service) categoryAvgPrice(ctx context.Context, category string) (float64, error) {
	rows, err := s.productRepo.FindByCategory(ctx, category)
	if err != nil {
		return 0, fmt.Errorf("failed to load category %q: %w", category, err)
	}

	if len(rows) == 0 {
		rows, err = s.productRepo.FindAll(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	baseline, err := sustainability.BaselineFor(rows, category)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			logger.Warn("no catalog rows for average price", "category", category)
		}
		return 0, err
	}

	return baseline.AvgPrice, nil
}

func weightsJSON(w map[string]float64) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}
