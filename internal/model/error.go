package model

import "errors"

// Standard error codes for validation failures surfaced to the console.
const (
	ErrCodeInvalidSize        = "INVALID_SIZE"
	ErrCodeInvalidBreadType   = "INVALID_BREAD_TYPE"
	ErrCodeInvalidDrinkSize   = "INVALID_DRINK_SIZE"
	ErrCodeInvalidTopping     = "INVALID_TOPPING"
	ErrCodeExtraLimitReached  = "EXTRA_LIMIT_REACHED"
	ErrCodeEmptyOrder         = "EMPTY_ORDER"
	ErrCodeUnsupportedPayment = "UNSUPPORTED_PAYMENT"
	ErrCodeItemNotFound       = "ITEM_NOT_FOUND"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same code, so wrapped errors with
// input-specific messages still match the sentinel values below.
func (e *DomainError) Is(target error) bool {
	var other *DomainError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidSize        = NewDomainError(ErrCodeInvalidSize, "Valid sizes include: 4, 8, 12, 'Small', 'Medium', 'Large'")
	ErrInvalidBreadType   = NewDomainError(ErrCodeInvalidBreadType, "Valid bread types: 'White', 'Wheat', 'Rye', 'Wrap'")
	ErrInvalidDrinkSize   = NewDomainError(ErrCodeInvalidDrinkSize, "Valid drink sizes are 'Small', 'Medium', 'Large'")
	ErrInvalidTopping     = NewDomainError(ErrCodeInvalidTopping, "Topping not found in the catalog")
	ErrExtraLimitReached  = NewDomainError(ErrCodeExtraLimitReached, "Extra portion limit reached")
	ErrEmptyOrder         = NewDomainError(ErrCodeEmptyOrder, "Your order is empty")
	ErrUnsupportedPayment = NewDomainError(ErrCodeUnsupportedPayment, "Payment method not recognized. Payment methods accepted: Cash")
	ErrItemNotFound       = NewDomainError(ErrCodeItemNotFound, "Item not found in order")
)
