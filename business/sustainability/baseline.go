package sustainability

import (
	"fmt"

	"github.com/KothuruDhansukh/ECO-MART/domain"
)

type accumulator struct {
	carbon, water, price float64
	n                    int
}

func (a *accumulator) add(p domain.Product) {
	a.carbon += p.CarbonFootprintKgCO2e
	a.water += p.WaterUsageLitres
	a.price += p.Price
	a.n++
}

func (a accumulator) baseline(source string) domain.Baseline {
	if a.n == 0 {
		return domain.Baseline{Source: source}
	}
	n := float64(a.n)
	return domain.Baseline{
		CarbonKgCO2e: a.carbon / n,
		WaterLitres:  a.water / n,
		AvgPrice:     a.price / n,
		Count:        a.n,
		Source:       source,
	}
}

// ComputeBaselines groups the catalog by category and averages footprint and price.
func ComputeBaselines(catalog []domain.Product) map[string]domain.Baseline {
	groups := make(map[string]*accumulator)
	for _, p := range catalog {
		acc, ok := groups[p.CategoryName]
		if !ok {
			acc = &accumulator{}
			groups[p.CategoryName] = acc
		}
		acc.add(p)
	}

	out := make(map[string]domain.Baseline, len(groups))
	for cat, acc := range groups {
		out[cat] = acc.baseline(domain.BaselineSourceCategory)
	}
	return out
}

// GlobalBaseline averages over the whole catalog.
func GlobalBaseline(catalog []domain.Product) (domain.Baseline, error) {
	if len(catalog) == 0 {
		return domain.Baseline{}, fmt.Errorf("%w: catalog is empty, no baseline can be computed", domain.ErrInvalidInput)
	}

	var acc accumulator
	for _, p := range catalog {
		acc.add(p)
	}
	return acc.baseline(domain.BaselineSourceGlobal), nil
}

// BaselineFor returns the category baseline, or the catalog-wide mean when the
// category has no members. An empty catalog is an ErrInvalidInput.
func BaselineFor(catalog []domain.Product, category string) (domain.Baseline, error) {
	if len(catalog) == 0 {
		return domain.Baseline{}, fmt.Errorf("%w: catalog is empty, no baseline can be computed", domain.ErrInvalidInput)
	}

	var acc accumulator
	for _, p := range catalog {
		if p.CategoryName == category {
			acc.add(p)
		}
	}
	if acc.n > 0 {
		return acc.baseline(domain.BaselineSourceCategory), nil
	}

	return GlobalBaseline(catalog)
}
