package domain

import (
	"time"

	"gorm.io/datatypes"
)

type PreferenceEvent struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	UserID          uint              `gorm:"column:user_id;not null" json:"user_id"`
	ProductID       uint64            `gorm:"column:product_id;not null" json:"product_id"`
	ActionType      string            `gorm:"column:action_type;not null" json:"action_type"`
	Delta           float64           `gorm:"column:delta" json:"delta"`
	Learned         bool              `gorm:"column:learned" json:"learned"`
	ToleranceBefore float64           `gorm:"column:tolerance_before" json:"tolerance_before"`
	ToleranceAfter  float64           `gorm:"column:tolerance_after" json:"tolerance_after"`
	WeightsAfter    datatypes.JSONMap `gorm:"column:weights_after;type:jsonb" json:"weights_after"`
	Context         datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
	CreatedAt       time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PreferenceEvent) TableName() string {
	return "preference_events"
}
