package domain

import "fmt"

type OrderStatus string

// remember to add new statuses to the validOrderStatuses map
const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatusInitial is the status every freshly placed order starts in.
const OrderStatusInitial = OrderStatusProcessing

var validOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:    {},
	OrderStatusProcessing: {},
	OrderStatusShipped:    {},
	OrderStatusCancelled:  {},
}

// labels written by the first version of the shop
var legacyOrderStatuses = map[string]OrderStatus{
	"Ausstehend":     OrderStatusPending,
	"in_Bearbeitung": OrderStatusProcessing,
	"Versendet":      OrderStatusShipped,
	"Storniert":      OrderStatusCancelled,
}

func ToOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := validOrderStatuses[status]; ok {
		return status, nil
	}

	if status, ok := legacyOrderStatuses[s]; ok {
		return status, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidOrderStatus, s)
}

// IsTerminal reports whether no user-initiated transition may leave the status.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusShipped || s == OrderStatusCancelled
}

// CanCancel reports whether the order owner may still cancel.
func (s OrderStatus) CanCancel() bool {
	_, valid := validOrderStatuses[s]
	return valid && !s.IsTerminal()
}

// CancellableStatuses lists the statuses CanCancel accepts.
func CancellableStatuses() []OrderStatus {
	var result []OrderStatus
	for status := range validOrderStatuses {
		if status.CanCancel() {
			result = append(result, status)
		}
	}
	return result
}
