package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/KothuruDhansukh/ECO-MART/domain"
)

type memoryRepo struct {
	rows   map[uint64]domain.Product
	nextID uint64
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: make(map[uint64]domain.Product), nextID: 1}
}

func (m *memoryRepo) Create(ctx context.Context, product *domain.Product) error {
	product.ID = m.nextID
	m.nextID++
	m.rows[product.ID] = *product
	return nil
}

func (m *memoryRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	p, ok := m.rows[id]
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
	}
	return p, nil
}

func (m *memoryRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(m.rows))
	for id := uint64(1); id < m.nextID; id++ {
		if p, ok := m.rows[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryRepo) Update(ctx context.Context, product *domain.Product) error {
	if _, ok := m.rows[product.ID]; !ok {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, product.ID)
	}
	m.rows[product.ID] = *product
	return nil
}

func (m *memoryRepo) Delete(ctx context.Context, id uint64) error {
	delete(m.rows, id)
	return nil
}

func validProduct() domain.Product {
	return domain.Product{
		ProductName:           "Organic Tee",
		CategoryName:          "Shirts",
		CarbonFootprintKgCO2e: 2.5,
		WaterUsageLitres:      700,
		EcoRating:             "A",
		WaterRating:           "B+",
		Rating:                4.2,
		Price:                 19.99,
	}
}

func TestCreateAndGetProduct(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	p := validProduct()
	created, err := svc.CreateProduct(ctx, &p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected id to be assigned")
	}

	got, err := svc.GetProductByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ProductName != "Organic Tee" {
		t.Fatalf("product name = %q", got.ProductName)
	}

	all, err := svc.GetAllProducts(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("all = %v, err = %v", all, err)
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewService(newMemoryRepo())

	cases := []struct {
		name   string
		mutate func(p *domain.Product)
	}{
		{"missing name", func(p *domain.Product) { p.ProductName = "" }},
		{"missing category", func(p *domain.Product) { p.CategoryName = "" }},
		{"missing eco rating", func(p *domain.Product) { p.EcoRating = "" }},
		{"missing water rating", func(p *domain.Product) { p.WaterRating = "" }},
		{"negative carbon", func(p *domain.Product) { p.CarbonFootprintKgCO2e = -1 }},
		{"negative water", func(p *domain.Product) { p.WaterUsageLitres = -0.5 }},
		{"negative price", func(p *domain.Product) { p.Price = -3 }},
		{"rating above five", func(p *domain.Product) { p.Rating = 5.5 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(&p)
			if _, err := svc.CreateProduct(context.Background(), &p); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestUpdateProduct(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p := validProduct()
	if _, err := svc.CreateProduct(ctx, &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.Price = 25
	updated, err := svc.UpdateProduct(ctx, &p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Price != 25 {
		t.Fatalf("price = %v", updated.Price)
	}

	missing := validProduct()
	missing.ID = 77
	if _, err := svc.UpdateProduct(ctx, &missing); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	noID := validProduct()
	if _, err := svc.UpdateProduct(ctx, &noID); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx := context.Background()

	p := validProduct()
	if _, err := svc.CreateProduct(ctx, &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.DeleteProduct(ctx, p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetProductByID(ctx, p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.DeleteProduct(ctx, p.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if err := svc.DeleteProduct(ctx, 0); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for id 0, got %v", err)
	}
}

func TestGetAllProductsCanceled(t *testing.T) {
	svc := NewService(newMemoryRepo())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.GetAllProducts(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
