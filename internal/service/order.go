package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// businessErrors are passed to callers as is; everything else is logged
// and replaced by domain.ErrInternal.
var businessErrors = []error{
	domain.ErrUserNotFound,
	domain.ErrAddressNotFound,
	domain.ErrProductNotFound,
	domain.ErrOrderNotFound,
	domain.ErrEmptyItemList,
	domain.ErrInvalidQuantity,
	domain.ErrInvalidReference,
	domain.ErrBadRequest,
	domain.ErrInvalidOrderStatus,
	domain.ErrInsufficientStock,
	domain.ErrOrderNotCancellable,
	domain.ErrPaymentMethodInactive,
	domain.ErrConcurrentUpdate,
}

type OrderService struct {
	orders         port.OrderRepository
	carts          port.CartRepository
	paymentMethods port.PaymentMethodRepository
	logger         *zap.Logger
}

func NewOrderService(orders port.OrderRepository, carts port.CartRepository,
	paymentMethods port.PaymentMethodRepository, logger *zap.Logger) (*OrderService, error) {
	if orders == nil || carts == nil || paymentMethods == nil {
		return nil, errors.New("repository is nil")
	}
	if logger == nil {
		return nil, errors.New("logger is nil")
	}

	return &OrderService{
		orders:         orders,
		carts:          carts,
		paymentMethods: paymentMethods,
		logger:         logger,
	}, nil
}

// PlaceOrder checks the payment method, places the order and empties the
// buyer's cart. A failure to empty the cart does not fail the call: the
// order is committed at that point.
func (s *OrderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.OrderIdentity, error) {
	var identity domain.OrderIdentity

	if err := req.Validate(); err != nil {
		return identity, err
	}

	active, err := s.paymentMethods.IsActive(ctx, req.PaymentMethod)
	if err != nil {
		return identity, s.internal("Check payment method", err)
	}
	if !active {
		return identity, domain.ErrPaymentMethodInactive
	}

	identity, err = s.orders.PlaceOrder(ctx, req)
	if err != nil {
		return identity, s.translate("Place order", err)
	}

	s.logger.Info("Order placed",
		zap.Stringer("order", identity.UUID),
		zap.Stringer("user", req.UserID),
		zap.Stringer("total", identity.Total))

	if _, err := s.carts.ClearCart(ctx, identity.UserID); err != nil {
		s.logger.Error("Clear cart", zap.Stringer("order", identity.UUID), zap.Error(err))
	}

	return identity, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uuid.UUID) (domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return order, s.translate("Get order", err)
	}

	return order, nil
}

func (s *OrderService) ListMyOrders(ctx context.Context, userID uuid.UUID, limit *int32) ([]domain.Order, error) {
	orders, err := s.orders.ListOrdersByUser(ctx, userID, limit)
	if err != nil {
		return nil, s.translate("List orders for user", err)
	}

	return orders, nil
}

func (s *OrderService) SearchOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrBadRequest, err)
	}

	orders, err := s.orders.SearchOrders(ctx, filter)
	if err != nil {
		return nil, s.translate("Search orders", err)
	}

	return orders, nil
}

// CancelOrder does not put the stock back.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, userID uuid.UUID) error {
	if err := s.orders.CancelOrder(ctx, orderID, userID); err != nil {
		return s.translate("Cancel order", err)
	}

	s.logger.Info("Order cancelled", zap.Stringer("order", orderID), zap.Stringer("user", userID))

	return nil
}

// UpdateOrderStatus stores the status and returns it normalised, legacy
// labels are translated to their current names.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status domain.OrderStatus) (domain.OrderStatus, error) {
	status, err := domain.ToOrderStatus(string(status))
	if err != nil {
		return "", err
	}

	if err := s.orders.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return "", s.translate("Update order status", err)
	}

	s.logger.Info("Order status updated", zap.Stringer("order", orderID), zap.String("status", string(status)))

	return status, nil
}

// Reorder puts the items of a past order back into the owner's cart and
// returns the updated cart.
func (s *OrderService) Reorder(ctx context.Context, orderID, userID uuid.UUID) (domain.Cart, error) {
	lines, err := s.orders.GetReorderItems(ctx, orderID, userID)
	if err != nil {
		return domain.Cart{}, s.translate("Get reorder items", err)
	}

	for _, line := range lines {
		item := domain.CartItem{ProductID: line.ProductID, Quantity: line.Quantity}
		if err := s.carts.AddItem(ctx, userID, item); err != nil {
			return domain.Cart{}, s.translate("Add reorder item", err)
		}
	}

	return s.GetCart(ctx, userID)
}

func (s *OrderService) GetCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return domain.Cart{}, s.translate("Get cart", err)
	}

	return cart, nil
}

func (s *OrderService) translate(msg string, err error) error {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return err
		}
	}

	return s.internal(msg, err)
}

func (s *OrderService) internal(msg string, err error) error {
	s.logger.Error(msg, zap.Error(err))
	return domain.ErrInternal
}
