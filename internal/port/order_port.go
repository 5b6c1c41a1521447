package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

//go:generate mockgen -source=order_port.go -destination=mock/order_port.go -package=mock
type OrderRepository interface {
	// PlaceOrder atomically creates the order, its items and the income
	// ledger entry and decrements stock. Nothing is written on error.
	PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.OrderIdentity, error)

	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID, limit *int32) ([]domain.Order, error)
	SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)

	CancelOrder(ctx context.Context, orderID, userID uuid.UUID) error
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) error

	GetReorderItems(ctx context.Context, orderID, userID uuid.UUID) ([]domain.OrderLine, error)
}
