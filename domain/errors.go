package domain

import "errors"

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")

	ErrProductNameRequired     = errors.New("product name is required")
	ErrProductCategoryRequired = errors.New("product category is required")
	ErrUnitRequired            = errors.New("unit is required")
	ErrInvalidPrice            = errors.New("price cannot be negative")
	ErrInvalidQuantity         = errors.New("quantity cannot be negative")
)

// IsValidationError reports whether err is one of the product validation errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrProductNameRequired) ||
		errors.Is(err, ErrProductCategoryRequired) ||
		errors.Is(err, ErrUnitRequired) ||
		errors.Is(err, ErrInvalidPrice) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidProductID)
}
