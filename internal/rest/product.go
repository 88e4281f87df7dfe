package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/KothuruDhansukh/ECO-MART/domain"
	"github.com/KothuruDhansukh/ECO-MART/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id uint64) (domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

// ProductRequest uses the catalog export field names.
type ProductRequest struct {
	ProductID             uint64  `json:"product_id"`
	ProductName           string  `json:"product_name" validate:"required"`
	CategoryName          string  `json:"category_name" validate:"required"`
	CarbonFootprintKgCO2e float64 `json:"Carbon_Footprint_kgCO2e" validate:"gte=0"`
	WaterUsageLitres      float64 `json:"Water_Usage_Litres" validate:"gte=0"`
	EcoRating             string  `json:"Eco_Rating" validate:"required"`
	WaterRating           string  `json:"Water_Rating" validate:"required"`
	Rating                float64 `json:"rating" validate:"gte=0,lte=5"`
	Price                 float64 `json:"price" validate:"gte=0"`
}

func (r ProductRequest) toDomain(id uint64) *domain.Product {
	return &domain.Product{
		ID:                    id,
		ProductID:             r.ProductID,
		ProductName:           r.ProductName,
		CategoryName:          r.CategoryName,
		CarbonFootprintKgCO2e: r.CarbonFootprintKgCO2e,
		WaterUsageLitres:      r.WaterUsageLitres,
		EcoRating:             r.EcoRating,
		WaterRating:           r.WaterRating,
		Rating:                r.Rating,
		Price:                 r.Price,
	}
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetAllProducts(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetProductByID(ctx, productID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(product))
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Warn("failed to bind product request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	created, err := h.productService.CreateProduct(ctx, req.toDomain(0))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(created))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("failed to bind product request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.productService.UpdateProduct(ctx, req.toDomain(productID))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(updated))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.productService.DeleteProduct(ctx, productID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(map[string]any{
		"product_id": productID,
	}))
}
