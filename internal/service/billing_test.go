package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port/mock"
	"github.com/nikolayk812/storefront/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type prepareBillingMocks func(ledger *mock.MockLedgerRepository, paymentMethods *mock.MockPaymentMethodRepository)

func newBillingService(t *testing.T, prepare prepareBillingMocks) *service.BillingService {
	mockCtrl := gomock.NewController(t)

	ledger := mock.NewMockLedgerRepository(mockCtrl)
	paymentMethods := mock.NewMockPaymentMethodRepository(mockCtrl)
	if prepare != nil {
		prepare(ledger, paymentMethods)
	}

	logger, _ := zap.NewProduction()

	s, err := service.NewBillingService(ledger, paymentMethods, logger)
	require.NoError(t, err)

	return s
}

func TestBillingService_CreateExpense(t *testing.T) {
	expense := domain.Expense{Description: "Shipping boxes", Amount: decimal.RequireFromString("19.90")}

	tests := []struct {
		name      string
		expense   domain.Expense
		mock      prepareBillingMocks
		expResult int64
		expError  error
	}{
		{
			name:    "created",
			expense: expense,
			mock: func(ledger *mock.MockLedgerRepository, _ *mock.MockPaymentMethodRepository) {
				ledger.EXPECT().CreateExpense(gomock.Any(), expense).Return(int64(3), nil)
			},
			expResult: 3,
		},
		{
			name:     "no description",
			expense:  domain.Expense{Amount: decimal.NewFromInt(1)},
			expError: domain.ErrBadRequest,
		},
		{
			name:    "repository fails",
			expense: expense,
			mock: func(ledger *mock.MockLedgerRepository, _ *mock.MockPaymentMethodRepository) {
				ledger.EXPECT().CreateExpense(gomock.Any(), expense).Return(int64(0), errors.New("boom"))
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newBillingService(t, test.mock)

			result, err := s.CreateExpense(context.Background(), test.expense)

			assert.Equal(t, test.expResult, result)
			if test.expError == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, test.expError)
		})
	}
}

func TestBillingService_MonthlySummary(t *testing.T) {
	period := domain.Period{Year: 2024, Month: time.June}
	summary := domain.FinancialSummary{
		Year:          2024,
		Month:         time.June,
		TotalIncome:   decimal.NewFromInt(100),
		TotalExpenses: decimal.NewFromInt(40),
	}

	s := newBillingService(t, func(ledger *mock.MockLedgerRepository, _ *mock.MockPaymentMethodRepository) {
		ledger.EXPECT().MonthlySummary(gomock.Any(), period).Return(summary, nil)
	})

	result, err := s.MonthlySummary(context.Background(), period)
	require.NoError(t, err)
	assert.Equal(t, summary, result)

	_, err = s.MonthlySummary(context.Background(), domain.Period{Year: 2024, Month: 14})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestBillingService_ListTransactions(t *testing.T) {
	period := domain.Period{Year: 2024, Month: time.June}

	s := newBillingService(t, func(ledger *mock.MockLedgerRepository, _ *mock.MockPaymentMethodRepository) {
		ledger.EXPECT().ListTransactions(gomock.Any(), period).Return(nil, errors.New("timeout"))
	})

	_, err := s.ListTransactions(context.Background(), period)
	assert.ErrorIs(t, err, domain.ErrInternal)
}

func TestBillingService_ListActivePaymentMethods(t *testing.T) {
	methods := []domain.PaymentMethod{{ID: 1, Name: "PayPal", Enabled: true}}

	s := newBillingService(t, func(_ *mock.MockLedgerRepository, paymentMethods *mock.MockPaymentMethodRepository) {
		paymentMethods.EXPECT().ListActive(gomock.Any()).Return(methods, nil)
	})

	result, err := s.ListActivePaymentMethods(context.Background())
	require.NoError(t, err)
	assert.Equal(t, methods, result)
}
