package preference

import (
	"fmt"
	"math"

	"github.com/KothuruDhansukh/ECO-MART/domain"
)

// normalizeWeights returns a fresh map over domain.WeightKeys that sums to 1.
// Missing keys count as 0 and unknown keys are dropped. An empty or all-zero
// map resets to uniform weights.
func normalizeWeights(in map[string]float64) (map[string]float64, error) {
	total := 0.0
	for _, k := range domain.WeightKeys {
		v := in[k]
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: weight %q must be a non-negative number, got %v", domain.ErrValidation, k, v)
		}
		total += v
	}

	out := make(map[string]float64, len(domain.WeightKeys))
	if total == 0 {
		for _, k := range domain.WeightKeys {
			out[k] = 1.0 / float64(len(domain.WeightKeys))
		}
		return out, nil
	}

	for _, k := range domain.WeightKeys {
		out[k] = in[k] / total
	}
	return out, nil
}

// WeightSum adds the profile weights over domain.WeightKeys.
func WeightSum(w map[string]float64) float64 {
	sum := 0.0
	for _, k := range domain.WeightKeys {
		sum += w[k]
	}
	return sum
}
