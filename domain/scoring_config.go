package domain

import "time"

// Scoring config kinds.
const (
	ScoringKindCarbonGrade = "carbon_grade"
	ScoringKindWaterGrade  = "water_grade"
	ScoringKindActionDelta = "action_delta"
)

// ScoringConfigEntry is one row of a lookup table: (kind, key) -> value.
type ScoringConfigEntry struct {
	Kind      string    `gorm:"column:kind;primaryKey" json:"kind" validate:"required,oneof=carbon_grade water_grade action_delta"`
	Key       string    `gorm:"column:key;primaryKey" json:"key" validate:"required"`
	Value     float64   `gorm:"column:value;not null" json:"value" validate:"gte=0"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ScoringConfigEntry) TableName() string {
	return "scoring_config"
}
