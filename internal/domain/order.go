package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID              int64
	UUID            uuid.UUID
	UserID          uuid.UUID
	CustomerName    string
	CustomerEmail   string
	Status          OrderStatus
	Total           Money
	ShippingAddress AddressSnapshot
	PaymentMethod   string
	Items           []OrderItem

	CreatedAt time.Time
}

type OrderItem struct {
	ProductID   int64
	ProductUUID uuid.UUID
	ProductName string
	Quantity    int32
	UnitPrice   decimal.Decimal
}

func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt32(i.Quantity))
}

// OrderLine is one requested (product, quantity) pair of a checkout.
type OrderLine struct {
	ProductID uuid.UUID
	Quantity  int32
}

type PlaceOrderRequest struct {
	UserID        uuid.UUID
	AddressID     uuid.UUID
	Items         []OrderLine
	PaymentMethod string
}

// Validate rejects requests that must fail before any row is locked.
func (r PlaceOrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrEmptyItemList
	}

	if r.UserID == uuid.Nil {
		return fmt.Errorf("userID: %w", ErrInvalidReference)
	}

	if r.AddressID == uuid.Nil {
		return fmt.Errorf("addressID: %w", ErrInvalidReference)
	}

	for idx, item := range r.Items {
		if item.ProductID == uuid.Nil {
			return fmt.Errorf("items[%d].productID: %w", idx, ErrInvalidReference)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("items[%d]: %w", idx, ErrInvalidQuantity)
		}
	}

	return nil
}

// OrderIdentity is what PlaceOrder hands back: enough to reference the
// order and to clear the buyer's cart afterwards.
type OrderIdentity struct {
	ID     int64
	UUID   uuid.UUID
	UserID int64
	Total  Money
}
