package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInternal = errors.New("internal error")

	// * Not found errors.
	ErrUserNotFound    = errors.New("user not found")
	ErrAddressNotFound = errors.New("address not found")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")

	// * Validation errors.
	ErrEmptyItemList      = errors.New("no items in order")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrInvalidReference   = errors.New("reference is empty")
	ErrBadRequest         = errors.New("error parsing request")

	// * Business errors.
	ErrInsufficientStock     = errors.New("insufficient stock")
	ErrOrderNotCancellable   = errors.New("order cannot be cancelled")
	ErrPaymentMethodInactive = errors.New("payment method is not active")

	// ErrConcurrentUpdate is returned when the database aborted the
	// transaction because of a deadlock or serialization failure; the
	// operation may be retried.
	ErrConcurrentUpdate = errors.New("concurrent update, retry")
)

// InsufficientStockError carries the numbers needed to tell the customer
// how many units are left.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Available   int32
	Requested   int32
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s (%s): available %d, requested %d",
		e.ProductID, e.ProductName, e.Available, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

func NewProductNotFoundError(productID uuid.UUID) error {
	return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
}
