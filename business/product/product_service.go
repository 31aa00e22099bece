package product

import (
	"context"
	"fmt"
	"myTimberMarket/domain"
	"myTimberMarket/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint64) error
}

// CacheInvalidator drops cached recommendations after a catalog write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type productService struct {
	productRepo ProductRepository
	invalidator CacheInvalidator
}

func NewProductService(productRepo ProductRepository, invalidator CacheInvalidator) *productService {
	return &productService{
		productRepo: productRepo,
		invalidator: invalidator,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all product", "error", err)
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all product", "error", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uint64) (*domain.Product, error) {
	if id == 0 {
		return nil, domain.ErrInvalidProductID
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product", "error", err)
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", "product_id", id, "error", err)
		return nil, err
	}

	return &product, nil
}

func (s *productService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when create product", "error", err)
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateProduct(product); err != nil {
		logger.Error("invalid product data", "error", err)
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.invalidate(ctx)
	logger.Info("product created successfully", "product_id", product.ID)

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating product", "error", err)
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == 0 {
		return nil, domain.ErrInvalidProductID
	}

	if err := validateProduct(product); err != nil {
		logger.Error("invalid product data", "product_id", product.ID, "error", err)
		return nil, err
	}

	// Verify product exists
	if _, err := s.productRepo.FindByID(ctx, product.ID); err != nil {
		logger.Error("product not found", "product_id", product.ID, "error", err)
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", "product_id", product.ID, "error", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.invalidate(ctx)

	// Get updated product from database
	updatedProduct, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("failed to fetch updated product", "product_id", product.ID, "error", err)
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	logger.Info("product updated successfully", "product_id", product.ID)

	return &updatedProduct, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uint64) error {
	if id == 0 {
		return domain.ErrInvalidProductID
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when deleting product", "error", err)
		return fmt.Errorf("context error: %w", err)
	}

	// Verify product exists
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		logger.Error("product not found", "product_id", id, "error", err)
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", "product_id", id, "error", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.invalidate(ctx)
	logger.Info("product deleted successfully", "product_id", id)

	return nil
}

func validateProduct(product *domain.Product) error {
	switch {
	case product.Name == "":
		return domain.ErrProductNameRequired
	case product.Category == "":
		return domain.ErrProductCategoryRequired
	case product.Unit == "":
		return domain.ErrUnitRequired
	case product.Price < 0:
		return domain.ErrInvalidPrice
	case product.Quantity < 0:
		return domain.ErrInvalidQuantity
	}
	return nil
}

// invalidate never fails the write; a stale cache expires by TTL.
func (s *productService) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.Invalidate(ctx); err != nil {
		logger.Warn("failed to invalidate recommendation cache", "error", err)
	}
}
