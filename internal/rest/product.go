package rest

import (
	"context"
	"myTimberMarket/domain"
	"myTimberMarket/pkg/logger"
	"net/http"
	"strconv"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id uint64) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService, validate *validator.Validate) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validate,
		timeout:        10 * time.Second,
	}
}

type ProductRequest struct {
	Name        string         `json:"name" validate:"required"`
	Category    string         `json:"category" validate:"required"`
	Subcategory string         `json:"subcategory"`
	Price       float64        `json:"price" validate:"gte=0"`
	Size        string         `json:"size"`
	Unit        string         `json:"unit" validate:"required"`
	Quantity    float64        `json:"quantity" validate:"gte=0"`
	IsActive    *bool          `json:"isActive"`
	IsFeatured  bool           `json:"isFeatured"`
	Attributes  map[string]any `json:"attributes"`
}

func (r ProductRequest) toProduct(id uint64) *domain.Product {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}

	product := &domain.Product{
		ID:          id,
		Name:        r.Name,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Price:       r.Price,
		Size:        r.Size,
		Unit:        r.Unit,
		Quantity:    r.Quantity,
		IsActive:    active,
		IsFeatured:  r.IsFeatured,
	}
	if r.Attributes != nil {
		product.Attributes = datatypes.JSONMap(r.Attributes)
	}
	return product
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetAllProducts(ctx)
	if err != nil {
		logger.Error("failed to find all products", "error", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all products",
		"products": products,
	})
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("invalid product id", "id", c.Param("id"), "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrInvalidProductID.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetProductByID(ctx, productID)
	if err != nil {
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find product by id",
		"product": product,
	})
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("failed to validate product request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	newProduct, err := h.productService.CreateProduct(ctx, req.toProduct(0))
	if err != nil {
		logger.Error("failed to create product", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(newProduct))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("invalid product id", "id", c.Param("id"), "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrInvalidProductID.Error()})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("failed to bind request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("failed to validate product request", "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updated, err := h.productService.UpdateProduct(ctx, req.toProduct(productID))
	if err != nil {
		logger.Error("failed to update product", "product_id", productID, "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update product",
		"product": updated,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		logger.Error("invalid product id", "id", c.Param("id"), "error", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: domain.ErrInvalidProductID.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.productService.DeleteProduct(ctx, productID); err != nil {
		logger.Error("failed to delete product", "product_id", productID, "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK("product successfully deleted"))
}
