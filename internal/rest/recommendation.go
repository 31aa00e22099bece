package rest

import (
	"context"
	"myTimberMarket/domain"
	"myTimberMarket/pkg/logger"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendationHandler struct {
		validate *validator.Validate
		service  RecommendationService
		timeout  time.Duration
	}

	RecommendationService interface {
		SimilarProducts(ctx context.Context, productID uint64, k int) ([]domain.SimilarProduct, error)
		CartRecommendations(ctx context.Context, productIDs []uint64, k int) ([]domain.SimilarProduct, error)
		TrendingProducts(ctx context.Context, k int) ([]domain.SimilarProduct, error)
	}

	SimilarQuery struct {
		ID uint64 `param:"id" validate:"required,gt=0"`
		K  int    `query:"k" validate:"gte=0"`
	}

	TrendingQuery struct {
		K int `query:"k" validate:"gte=0"`
	}

	// CartRequest ids are passed through as sent; the service drops zero
	// and duplicate ids.
	CartRequest struct {
		ProductIDs []uint64 `json:"product_ids"`
		K          int      `json:"k" validate:"gte=0"`
	}
)

func NewRecommendationHandler(svc RecommendationService, validate *validator.Validate) *RecommendationHandler {
	return &RecommendationHandler{
		validate: validate,
		service:  svc,
		timeout:  10 * time.Second,
	}
}

// Similar handles GET /recommendations/similar/:id?k=
func (h *RecommendationHandler) Similar(c echo.Context) error {
	var q SimilarQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.SimilarProducts(ctx, q.ID, q.K)
	if err != nil {
		logger.Error("failed to get similar products", "product_id", q.ID, "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get similar products",
		"data":    recs,
	})
}

// Cart handles POST /recommendations/cart
func (h *RecommendationHandler) Cart(c echo.Context) error {
	var req CartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.CartRecommendations(ctx, req.ProductIDs, req.K)
	if err != nil {
		logger.Error("failed to get cart recommendations", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get cart recommendations",
		"data":    recs,
	})
}

// Trending handles GET /recommendations/trending?k=
func (h *RecommendationHandler) Trending(c echo.Context) error {
	var q TrendingQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.service.TrendingProducts(ctx, q.K)
	if err != nil {
		logger.Error("failed to get trending products", "error", err)
		return c.JSON(statusFor(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully get trending products",
		"data":    recs,
	})
}
