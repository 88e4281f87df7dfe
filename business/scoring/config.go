package scoring

import (
	"context"
	"fmt"
	"math"

	"github.com/KothuruDhansukh/ECO-MART/domain"
)

const (
	// MaxGradeScore bounds every grade score; outputs double it to a 0-10 scale.
	MaxGradeScore = 5.0

	// DefaultActionDelta is the learning rate for an action missing from the delta table.
	DefaultActionDelta = 0.02
)

// Tables are the lookup tables shared by the calculator and the preference updater.
type Tables struct {
	CarbonGradeToScore map[string]float64 `json:"carbon_grade_to_score"`
	WaterGradeToScore  map[string]float64 `json:"water_grade_to_score"`
	ActionWeightDelta  map[string]float64 `json:"action_weight_delta"`
}

// Grades is the default grade domain, best first.
var Grades = []string{"A+", "A", "B+", "B", "C+", "C", "D", "E"}

var defaultGradeScores = []float64{5, 4.5, 4, 3.5, 3, 2.5, 1.5, 1}

func DefaultTables() Tables {
	carbon := make(map[string]float64, len(Grades))
	water := make(map[string]float64, len(Grades))
	for i, g := range Grades {
		carbon[g] = defaultGradeScores[i]
		water[g] = defaultGradeScores[i]
	}

	return Tables{
		CarbonGradeToScore: carbon,
		WaterGradeToScore:  water,
		ActionWeightDelta: map[string]float64{
			domain.ActionView:      0.01,
			domain.ActionAddToCart: 0.05,
			domain.ActionPurchase:  0.1,
		},
	}
}

// Validate checks scores are within [0, MaxGradeScore] and deltas within [0, 1].
func (t Tables) Validate() error {
	if len(t.CarbonGradeToScore) == 0 || len(t.WaterGradeToScore) == 0 {
		return fmt.Errorf("%w: grade tables must not be empty", domain.ErrConfiguration)
	}

	check := func(name string, table map[string]float64, limit float64) error {
		for k, v := range table {
			if k == "" {
				return fmt.Errorf("%w: %s has an empty key", domain.ErrConfiguration, name)
			}
			if math.IsNaN(v) || v < 0 || v > limit {
				return fmt.Errorf("%w: %s[%q] = %v out of [0, %v]", domain.ErrConfiguration, name, k, v, limit)
			}
		}
		return nil
	}

	if err := check("carbon_grade_to_score", t.CarbonGradeToScore, MaxGradeScore); err != nil {
		return err
	}
	if err := check("water_grade_to_score", t.WaterGradeToScore, MaxGradeScore); err != nil {
		return err
	}
	return check("action_weight_delta", t.ActionWeightDelta, 1)
}

// ConfigRepository reads and writes lookup table rows.
type ConfigRepository interface {
	ListEntries(ctx context.Context) ([]domain.ScoringConfigEntry, error)
	UpsertEntries(ctx context.Context, entries []domain.ScoringConfigEntry) error
}
