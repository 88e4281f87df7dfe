package postgres

import (
	"context"
	"fmt"

	"github.com/KothuruDhansukh/ECO-MART/business/preference"
	"github.com/KothuruDhansukh/ECO-MART/domain"

	"gorm.io/gorm"
)

// PreferenceEventRepository appends to the preference_events log. Rows are never updated.
type PreferenceEventRepository struct {
	DB *gorm.DB
}

var _ preference.EventRepository = (*PreferenceEventRepository)(nil)

func NewPreferenceEventRepository(db *gorm.DB) *PreferenceEventRepository {
	return &PreferenceEventRepository{DB: db}
}

func (r *PreferenceEventRepository) SaveEvent(ctx context.Context, event domain.PreferenceEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to save preference event: %w", err)
	}
	return nil
}

// ListByUser returns the most recent events of a user, newest first.
func (r *PreferenceEventRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]domain.PreferenceEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = 50
	}

	var events []domain.PreferenceEvent
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list preference events: %w", err)
	}
	return events, nil
}
