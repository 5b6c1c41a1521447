package domain_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOrderStatus(t *testing.T) {
	tests := []struct {
		input     string
		want      domain.OrderStatus
		wantError string
	}{
		{input: "pending", want: domain.OrderStatusPending},
		{input: "processing", want: domain.OrderStatusProcessing},
		{input: "shipped", want: domain.OrderStatusShipped},
		{input: "cancelled", want: domain.OrderStatusCancelled},
		{input: "Ausstehend", want: domain.OrderStatusPending},
		{input: "in_Bearbeitung", want: domain.OrderStatusProcessing},
		{input: "Versendet", want: domain.OrderStatusShipped},
		{input: "Storniert", want: domain.OrderStatusCancelled},
		{input: "", wantError: `invalid order status: ""`},
		{input: "Shipped", wantError: `invalid order status: "Shipped"`},
		{input: "refunded", wantError: `invalid order status: "refunded"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := domain.ToOrderStatus(tt.input)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				require.ErrorIs(t, err, domain.ErrInvalidOrderStatus)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestOrderStatus_CanCancel(t *testing.T) {
	assert.True(t, domain.OrderStatusPending.CanCancel())
	assert.True(t, domain.OrderStatusProcessing.CanCancel())
	assert.False(t, domain.OrderStatusShipped.CanCancel())
	assert.False(t, domain.OrderStatusCancelled.CanCancel())
	assert.False(t, domain.OrderStatus("unknown").CanCancel())

	assert.ElementsMatch(t,
		[]domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusProcessing},
		domain.CancellableStatuses())
}
