package postgres

import (
	"context"
	"fmt"

	"github.com/KothuruDhansukh/ECO-MART/business/scoring"
	"github.com/KothuruDhansukh/ECO-MART/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoringConfigRepository struct {
	DB *gorm.DB
}

var _ scoring.ConfigRepository = (*ScoringConfigRepository)(nil)

func NewScoringConfigRepository(db *gorm.DB) *ScoringConfigRepository {
	return &ScoringConfigRepository{DB: db}
}

func (r *ScoringConfigRepository) ListEntries(ctx context.Context) ([]domain.ScoringConfigEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var entries []domain.ScoringConfigEntry

	err := r.DB.WithContext(ctx).Order("kind, key").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list scoring config: %w", err)
	}
	return entries, nil
}

func (r *ScoringConfigRepository) UpsertEntries(ctx context.Context, entries []domain.ScoringConfigEntry) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kind"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&entries).Error
	})
}
