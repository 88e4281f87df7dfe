package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/KothuruDhansukh/ECO-MART/business/preference"
	"github.com/KothuruDhansukh/ECO-MART/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserProfileRepository struct {
	DB *gorm.DB
}

var _ preference.ProfileRepository = (*UserProfileRepository)(nil)

func NewUserProfileRepository(db *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{DB: db}
}

func (r *UserProfileRepository) GetProfile(ctx context.Context, userID uint) (domain.UserProfile, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserProfile{}, false, fmt.Errorf("context error: %w", err)
	}

	var profile domain.UserProfile
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserProfile{}, false, nil
	}
	if err != nil {
		return domain.UserProfile{}, false, fmt.Errorf("failed to find profile: %w", err)
	}

	return profile, true, nil
}

func (r *UserProfileRepository) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"weights", "price_tolerance", "updated_at"}),
		}).
		Create(&profile).Error
}
