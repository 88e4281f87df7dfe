package scoring

import (
	"fmt"

	"github.com/KothuruDhansukh/ECO-MART/domain"
)

// Score returns table[grade] or a configuration error when the grade is not covered.
func Score(table map[string]float64, grade string) (float64, error) {
	v, ok := table[grade]
	if !ok {
		return 0, fmt.Errorf("%w: grade %q is not in the lookup table", domain.ErrConfiguration, grade)
	}
	return v, nil
}

// ScoreOr returns table[grade], or fallback when the grade is not covered.
func ScoreOr(table map[string]float64, grade string, fallback float64) float64 {
	if v, ok := table[grade]; ok {
		return v
	}
	return fallback
}

// Delta returns the learning rate for an action type.
func (t Tables) Delta(actionType string) float64 {
	if d, ok := t.ActionWeightDelta[actionType]; ok {
		return d
	}
	return DefaultActionDelta
}
