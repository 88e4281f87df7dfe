// Package catalog manages the eco product catalog that baselines are computed from.
package catalog

import (
	"context"
	"fmt"

	"github.com/KothuruDhansukh/ECO-MART/business/sustainability"
	"github.com/KothuruDhansukh/ECO-MART/domain"
	"github.com/KothuruDhansukh/ECO-MART/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint64) error
}

type Service struct {
	productRepo ProductRepository
}

func NewService(productRepo ProductRepository) *Service {
	return &Service{
		productRepo: productRepo,
	}
}

func (s *Service) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all products", "error", err)
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all products", "error", err)
		return nil, err
	}

	return products, nil
}

func (s *Service) GetProductByID(ctx context.Context, id uint64) (domain.Product, error) {
	if id == 0 {
		return domain.Product{}, fmt.Errorf("%w: invalid product id", domain.ErrValidation)
	}

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", "product_id", id, "error", err)
		return domain.Product{}, err
	}

	return product, nil
}

func (s *Service) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := ValidateProduct(*product); err != nil {
		logger.Warn("invalid product data", "error", err)
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("product created", "product_id", product.ID, "category", product.CategoryName)

	return product, nil
}

func (s *Service) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == 0 {
		return nil, fmt.Errorf("%w: product id is required", domain.ErrValidation)
	}

	if err := ValidateProduct(*product); err != nil {
		logger.Warn("invalid product data", "product_id", product.ID, "error", err)
		return nil, err
	}

	if _, err := s.productRepo.FindByID(ctx, product.ID); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", "product_id", product.ID, "error", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	updated, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	logger.Info("product updated", "product_id", product.ID)

	return &updated, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id uint64) error {
	if id == 0 {
		return fmt.Errorf("%w: invalid product id", domain.ErrValidation)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", "product_id", id, "error", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logger.Info("product deleted", "product_id", id)

	return nil
}

// ValidateProduct checks the fields baselines and scoring depend on.
func ValidateProduct(p domain.Product) error {
	switch {
	case p.ProductName == "":
		return fmt.Errorf("%w: product name is required", domain.ErrValidation)
	case p.CategoryName == "":
		return fmt.Errorf("%w: category name is required", domain.ErrValidation)
	case p.EcoRating == "":
		return fmt.Errorf("%w: eco rating is required", domain.ErrValidation)
	case p.WaterRating == "":
		return fmt.Errorf("%w: water rating is required", domain.ErrValidation)
	}

	if err := sustainability.ValidateProduct(p); err != nil {
		return err
	}

	if p.Rating > 5 {
		return fmt.Errorf("%w: rating must be at most 5", domain.ErrValidation)
	}

	return nil
}
