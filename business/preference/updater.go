// Package preference learns a per-user preference profile from storefront actions.
package preference

import (
	"fmt"
	"math"

	"github.com/KothuruDhansukh/ECO-MART/business/scoring"
	"github.com/KothuruDhansukh/ECO-MART/domain"
)

const (
	DefaultMinTolerance = 0.03
	DefaultMaxTolerance = 0.75

	addToCartWiden = 0.03
	purchaseWiden  = 0.05
	tightenStep    = 0.01
)

// Updater applies one action to a profile. It holds no per-user state.
type Updater struct {
	tables       scoring.Tables
	minTolerance float64
	maxTolerance float64
}

func NewUpdater(tables scoring.Tables, minTol, maxTol float64) *Updater {
	if minTol <= 0 && maxTol <= 0 {
		minTol, maxTol = DefaultMinTolerance, DefaultMaxTolerance
	}
	return &Updater{
		tables:       tables,
		minTolerance: minTol,
		maxTolerance: maxTol,
	}
}

// UpdateUserWeights moves the profile weights toward the product's score vector and
// then adjusts price tolerance. The input profile is not modified; the returned
// profile shares no map with it. The bool is false when the product carries no
// score at all, in which case the profile comes back unchanged.
func (u *Updater) UpdateUserWeights(
	profile domain.UserProfile,
	avgPrice float64,
	product domain.Product,
	actionType string,
) (domain.UserProfile, bool, error) {
	if product.Rating < 0 || math.IsNaN(product.Rating) {
		return profile, false, fmt.Errorf("%w: rating must be non-negative, got %v", domain.ErrValidation, product.Rating)
	}

	delta := u.tables.Delta(actionType)

	weights, err := normalizeWeights(profile.Weights)
	if err != nil {
		return profile, false, err
	}

	eco := scoring.ScoreOr(u.tables.CarbonGradeToScore, product.EcoRating, 0)
	water := scoring.ScoreOr(u.tables.WaterGradeToScore, product.WaterRating, 0)
	rating := product.Rating

	totalP := eco + water + rating
	if totalP == 0 {
		return profile, false, nil
	}

	productVector := map[string]float64{
		domain.WeightCarbon: eco / totalP,
		domain.WeightWater:  water / totalP,
		domain.WeightRating: rating / totalP,
	}

	updated := make(map[string]float64, len(domain.WeightKeys))
	for _, k := range domain.WeightKeys {
		updated[k] = (1-delta)*weights[k] + delta*productVector[k]
	}

	out := profile.Clone()
	out.Weights, err = normalizeWeights(updated)
	if err != nil {
		return profile, false, err
	}

	out, err = u.UpdatePriceTolerance(out, product.Price, avgPrice, actionType)
	if err != nil {
		return profile, false, err
	}

	return out, true, nil
}

// UpdatePriceTolerance widens the tolerance band when the user acts on a product
// priced outside it and tightens it slowly otherwise. Only add-to-cart and
// purchase adjust the band; other actions return the stored tolerance untouched.
// For recognized actions the stored value is first clamped into [min, max].
func (u *Updater) UpdatePriceTolerance(
	profile domain.UserProfile,
	productPrice float64,
	avgPrice float64,
	actionType string,
) (domain.UserProfile, error) {
	if productPrice < 0 || math.IsNaN(productPrice) {
		return profile, fmt.Errorf("%w: product price must be non-negative, got %v", domain.ErrValidation, productPrice)
	}
	if avgPrice < 0 || math.IsNaN(avgPrice) {
		return profile, fmt.Errorf("%w: average price must be non-negative, got %v", domain.ErrValidation, avgPrice)
	}

	var widen float64
	switch actionType {
	case domain.ActionAddToCart:
		widen = addToCartWiden
	case domain.ActionPurchase:
		widen = purchaseWiden
	default:
		return profile.Clone(), nil
	}

	currentTol := clamp(profile.PriceTolerance, u.minTolerance, u.maxTolerance)

	lowerBound := avgPrice * (1 - currentTol)
	upperBound := avgPrice * (1 + currentTol)
	outside := productPrice < lowerBound || productPrice > upperBound

	if outside {
		currentTol = math.Min(u.maxTolerance, currentTol+widen)
	} else {
		currentTol = math.Max(u.minTolerance, currentTol-tightenStep)
	}

	out := profile.Clone()
	out.PriceTolerance = currentTol
	return out, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
