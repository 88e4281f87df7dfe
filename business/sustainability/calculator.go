// Package sustainability scores a purchase against the footprint of its catalog category.
package sustainability

import (
	"fmt"
	"math"
	"time"

	"github.com/KothuruDhansukh/ECO-MART/business/scoring"
	"github.com/KothuruDhansukh/ECO-MART/domain"
)

const (
	// DefaultGrade is used when a product carries no eco or water rating.
	DefaultGrade = "B+"

	MaxScore = 10.0

	groupDeliveryScoreBonus  = 0.5
	groupDeliveryCarbonBonus = 0.2
	groupDeliveryWaterBonus  = 5.0
)

type Calculator struct {
	tables scoring.Tables
	picker MessagePicker
}

// NewCalculator builds a calculator. A nil picker draws from a time-seeded source.
func NewCalculator(tables scoring.Tables, picker MessagePicker) *Calculator {
	if picker == nil {
		picker = NewRandomPicker(time.Now().UnixNano())
	}
	return &Calculator{tables: tables, picker: picker}
}

// ComputeSustainabilityMetrics compares the purchased product with its category
// baseline. Neither the product nor the catalog is modified.
func (c *Calculator) ComputeSustainabilityMetrics(
	purchased domain.Product,
	catalog []domain.Product,
	groupDelivery bool,
) (domain.SustainabilityResult, error) {
	if err := ValidateProduct(purchased); err != nil {
		return domain.SustainabilityResult{}, err
	}
	for i, p := range catalog {
		if err := ValidateProduct(p); err != nil {
			return domain.SustainabilityResult{}, fmt.Errorf("catalog row %d: %w", i, err)
		}
	}

	baseline, err := BaselineFor(catalog, purchased.CategoryName)
	if err != nil {
		return domain.SustainabilityResult{}, err
	}

	carbonSaved := round2(baseline.CarbonKgCO2e - purchased.CarbonFootprintKgCO2e)
	waterSaved := round2(baseline.WaterLitres - purchased.WaterUsageLitres)

	ecoGrade, waterGrade := purchased.EcoRating, purchased.WaterRating
	if ecoGrade == "" {
		ecoGrade = DefaultGrade
	}
	if waterGrade == "" {
		waterGrade = DefaultGrade
	}

	eco, err := scoring.Score(c.tables.CarbonGradeToScore, ecoGrade)
	if err != nil {
		return domain.SustainabilityResult{}, fmt.Errorf("eco rating: %w", err)
	}
	water, err := scoring.Score(c.tables.WaterGradeToScore, waterGrade)
	if err != nil {
		return domain.SustainabilityResult{}, fmt.Errorf("water rating: %w", err)
	}

	ecoScore := math.Min(MaxScore, 2*eco)
	waterScore := math.Min(MaxScore, 2*water)

	if groupDelivery {
		ecoScore = math.Min(MaxScore, ecoScore+groupDeliveryScoreBonus)
		waterScore = math.Min(MaxScore, waterScore+groupDeliveryScoreBonus)
		carbonSaved += groupDeliveryCarbonBonus
		waterSaved += groupDeliveryWaterBonus
	}

	message := selectMessage(c.picker, carbonSaved, waterSaved)

	return domain.SustainabilityResult{
		CarbonSaved: carbonSaved,
		WaterSaved:  waterSaved,
		EcoScore:    ecoScore,
		WaterScore:  waterScore,
		Message:     message,
		Baseline:    baseline,
	}, nil
}

// ValidateProduct rejects negative or non-finite numeric fields.
func ValidateProduct(p domain.Product) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"Carbon_Footprint_kgCO2e", p.CarbonFootprintKgCO2e},
		{"Water_Usage_Litres", p.WaterUsageLitres},
		{"rating", p.Rating},
		{"price", p.Price},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v < 0 {
			return fmt.Errorf("%w: %s must be a non-negative number, got %v", domain.ErrValidation, f.name, f.v)
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
