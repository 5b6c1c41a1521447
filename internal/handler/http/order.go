package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("service is nil")
	}

	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type PlaceOrderItemReq struct {
	ProductUUID uuid.UUID `json:"productUUID"`
	Quantity    int32     `json:"quantity"`
}

type PlaceOrderReq struct {
	ShippingAddressUUID uuid.UUID           `json:"shippingAddressUUID"`
	Items               []PlaceOrderItemReq `json:"items"`
	PaymentMethodName   string              `json:"paymentMethodName"`
}

type PlaceOrderResp struct {
	OrderUUID uuid.UUID       `json:"orderUUID"`
	Total     decimal.Decimal `json:"totalAmount"`
	Currency  string          `json:"currency"`
}

func (oh *OrderHandler) PlaceOrder(ctx *gin.Context) {
	var req PlaceOrderReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	identity, err := oh.service.PlaceOrder(ctx, domain.PlaceOrderRequest{
		UserID:    getUserID(ctx),
		AddressID: req.ShippingAddressUUID,
		Items: lo.Map(req.Items, func(item PlaceOrderItemReq, _ int) domain.OrderLine {
			return domain.OrderLine{ProductID: item.ProductUUID, Quantity: item.Quantity}
		}),
		PaymentMethod: req.PaymentMethodName,
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, PlaceOrderResp{
		OrderUUID: identity.UUID,
		Total:     identity.Total.Amount,
		Currency:  identity.Total.Currency.String(),
	}, http.StatusCreated)
}

type AddressResp struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type OrderItemResp struct {
	ProductUUID uuid.UUID       `json:"productUUID"`
	ProductName string          `json:"productName"`
	Quantity    int32           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

type OrderResp struct {
	OrderUUID       uuid.UUID       `json:"orderUUID"`
	CustomerUUID    uuid.UUID       `json:"customerUUID"`
	CustomerName    string          `json:"customerName,omitempty"`
	CustomerEmail   string          `json:"customerEmail,omitempty"`
	Status          string          `json:"status"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Currency        string          `json:"currency"`
	ShippingAddress AddressResp     `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethodName"`
	OrderDate       time.Time       `json:"orderDate"`
	Items           []OrderItemResp `json:"items"`
}

func mapOrderToResp(o domain.Order) OrderResp {
	return OrderResp{
		OrderUUID:     o.UUID,
		CustomerUUID:  o.UserID,
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		Status:        string(o.Status),
		TotalAmount:   o.Total.Amount,
		Currency:      o.Total.Currency.String(),
		ShippingAddress: AddressResp{
			Name:       o.ShippingAddress.Name,
			Line1:      o.ShippingAddress.Line1,
			City:       o.ShippingAddress.City,
			PostalCode: o.ShippingAddress.PostalCode,
			Country:    o.ShippingAddress.Country,
		},
		PaymentMethod: o.PaymentMethod,
		OrderDate:     o.CreatedAt,
		Items: lo.Map(o.Items, func(item domain.OrderItem, _ int) OrderItemResp {
			return OrderItemResp{
				ProductUUID: item.ProductUUID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				LineTotal:   item.LineTotal(),
			}
		}),
	}
}

func mapOrdersToResp(orders []domain.Order) []OrderResp {
	return lo.Map(orders, func(o domain.Order, _ int) OrderResp {
		return mapOrderToResp(o)
	})
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("uuid"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	order, err := oh.service.GetOrder(ctx, orderID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, mapOrderToResp(order))
}

func (oh *OrderHandler) ListMyOrders(ctx *gin.Context) {
	var limit *int32

	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n <= 0 {
			oh.handleValidationError(ctx, fmt.Errorf("limit %q is not a positive number", raw))
			return
		}
		limit = lo.ToPtr(int32(n))
	}

	orders, err := oh.service.ListMyOrders(ctx, getUserID(ctx), limit)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, mapOrdersToResp(orders))
}

// SearchOrders lists orders for staff, filtered by the query parameters
// status, user, createdAfter, createdBefore and limit.
func (oh *OrderHandler) SearchOrders(ctx *gin.Context) {
	filter, err := parseOrderFilter(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	orders, err := oh.service.SearchOrders(ctx, filter)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, mapOrdersToResp(orders))
}

func parseOrderFilter(ctx *gin.Context) (domain.OrderFilter, error) {
	var filter domain.OrderFilter

	for _, raw := range ctx.QueryArray("status") {
		status, err := domain.ToOrderStatus(raw)
		if err != nil {
			return filter, err
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	for _, raw := range ctx.QueryArray("user") {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return filter, fmt.Errorf("user %q: %w", raw, err)
		}
		filter.UserIDs = append(filter.UserIDs, userID)
	}

	after, err := parseTimeQuery(ctx, "createdAfter")
	if err != nil {
		return filter, err
	}
	before, err := parseTimeQuery(ctx, "createdBefore")
	if err != nil {
		return filter, err
	}
	if after != nil || before != nil {
		filter.CreatedAt = &domain.TimeRange{After: after, Before: before}
	}

	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return filter, fmt.Errorf("limit %q: %w", raw, err)
		}
		filter.Limit = lo.ToPtr(n)
	}

	return filter, filter.Validate()
}

func parseTimeQuery(ctx *gin.Context, key string) (*time.Time, error) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", key, raw, err)
	}

	return &t, nil
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("uuid"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	if err := oh.service.CancelOrder(ctx, orderID, getUserID(ctx)); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

type UpdateOrderStatusReq struct {
	Status string `json:"newStatus"`
}

func (oh *OrderHandler) UpdateOrderStatus(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("uuid"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	var req UpdateOrderStatusReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	status, err := oh.service.UpdateOrderStatus(ctx, orderID, domain.OrderStatus(req.Status))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, gin.H{"orderUUID": orderID, "status": status})
}

type CartItemResp struct {
	ProductUUID uuid.UUID `json:"productUUID"`
	Quantity    int32     `json:"quantity"`
}

func mapCartToResp(cart domain.Cart) []CartItemResp {
	return lo.Map(cart.Items, func(item domain.CartItem, _ int) CartItemResp {
		return CartItemResp{
			ProductUUID: item.ProductID,
			Quantity:    item.Quantity,
		}
	})
}

func (oh *OrderHandler) Reorder(ctx *gin.Context) {
	orderID, err := uuid.Parse(ctx.Param("uuid"))
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	cart, err := oh.service.Reorder(ctx, orderID, getUserID(ctx))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, mapCartToResp(cart))
}

func (oh *OrderHandler) GetCart(ctx *gin.Context) {
	cart, err := oh.service.GetCart(ctx, getUserID(ctx))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, mapCartToResp(cart))
}
