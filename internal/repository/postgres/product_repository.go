package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/KothuruDhansukh/ECO-MART/business/catalog"
	"github.com/KothuruDhansukh/ECO-MART/business/preference"
	"github.com/KothuruDhansukh/ECO-MART/business/sustainability"
	"github.com/KothuruDhansukh/ECO-MART/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

var (
	_ catalog.ProductRepository        = (*ProductRepository)(nil)
	_ sustainability.ProductRepository = (*ProductRepository)(nil)
	_ preference.ProductRepository     = (*ProductRepository)(nil)
)

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		DB: db,
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	var product domain.Product

	err := r.DB.WithContext(ctx).First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Product{}, fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
		}
		return domain.Product{}, fmt.Errorf("failed to find product: %w", err)
	}

	return product, nil
}

// FindAll returns the catalog ordered by id so baselines are computed over a stable order.
func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).Order("id").Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) FindByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var products []domain.Product
	err := r.DB.WithContext(ctx).
		Where("category_name = ?", category).
		Order("id").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products for category %q: %w", category, err)
	}

	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"product_id":              product.ProductID,
		"product_name":            product.ProductName,
		"category_name":           product.CategoryName,
		"carbon_footprint_kgco2e": product.CarbonFootprintKgCO2e,
		"water_usage_litres":      product.WaterUsageLitres,
		"eco_rating":              product.EcoRating,
		"water_rating":            product.WaterRating,
		"rating":                  product.Rating,
		"price":                   product.Price,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Product{}).Where("id = ?", product.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, product.ID)
	}

	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint64) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
	}

	return nil
}
