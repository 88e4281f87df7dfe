package domain

import (
	"time"
)

// Preference weight keys.
const (
	WeightCarbon = "carbon"
	WeightWater  = "water"
	WeightRating = "rating"
)

// WeightKeys lists the keys every profile is normalized over, in a fixed order.
var WeightKeys = []string{WeightCarbon, WeightWater, WeightRating}

const DefaultPriceTolerance = 0.2

// CREATE TABLE public.user_profiles (
//     user_id          BIGINT PRIMARY KEY,
//     weights          JSONB NOT NULL,
//     price_tolerance  NUMERIC NOT NULL DEFAULT 0.2,
//     updated_at       TIMESTAMPTZ DEFAULT NOW()
// );

type UserProfile struct {
	UserID         uint               `gorm:"column:user_id;primaryKey" json:"user_id"`
	Weights        map[string]float64 `gorm:"column:weights;type:jsonb;serializer:json" json:"weights"`
	PriceTolerance float64            `gorm:"column:price_tolerance;type:numeric" json:"price_tolerance"`
	UpdatedAt      time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// NewUserProfile returns the profile a user starts with: uniform weights, default tolerance.
func NewUserProfile(userID uint) UserProfile {
	w := make(map[string]float64, len(WeightKeys))
	for _, k := range WeightKeys {
		w[k] = 1.0 / float64(len(WeightKeys))
	}
	return UserProfile{
		UserID:         userID,
		Weights:        w,
		PriceTolerance: DefaultPriceTolerance,
	}
}

// Clone returns a copy that shares no map with p.
func (p UserProfile) Clone() UserProfile {
	out := p
	if p.Weights != nil {
		out.Weights = make(map[string]float64, len(p.Weights))
		for k, v := range p.Weights {
			out.Weights[k] = v
		}
	}
	return out
}
