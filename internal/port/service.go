package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type OrderService interface {
	PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.OrderIdentity, error)
	GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error)
	ListMyOrders(ctx context.Context, userID uuid.UUID, limit *int32) ([]domain.Order, error)
	SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error)
	CancelOrder(ctx context.Context, orderID, userID uuid.UUID) error
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) (domain.OrderStatus, error)
	Reorder(ctx context.Context, orderID, userID uuid.UUID) (domain.Cart, error)
	GetCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error)
}

type BillingService interface {
	CreateExpense(ctx context.Context, expense domain.Expense) (int64, error)
	ListTransactions(ctx context.Context, period domain.Period) ([]domain.LedgerEntry, error)
	MonthlySummary(ctx context.Context, period domain.Period) (domain.FinancialSummary, error)
	ListActivePaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}
