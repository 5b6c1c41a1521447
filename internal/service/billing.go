package service

import (
	"context"
	"errors"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

type BillingService struct {
	ledger         port.LedgerRepository
	paymentMethods port.PaymentMethodRepository
	logger         *zap.Logger
}

func NewBillingService(ledger port.LedgerRepository, paymentMethods port.PaymentMethodRepository,
	logger *zap.Logger) (*BillingService, error) {
	if ledger == nil || paymentMethods == nil {
		return nil, errors.New("repository is nil")
	}
	if logger == nil {
		return nil, errors.New("logger is nil")
	}

	return &BillingService{
		ledger:         ledger,
		paymentMethods: paymentMethods,
		logger:         logger,
	}, nil
}

func (s *BillingService) CreateExpense(ctx context.Context, expense domain.Expense) (int64, error) {
	if err := expense.Validate(); err != nil {
		return 0, errors.Join(domain.ErrBadRequest, err)
	}

	id, err := s.ledger.CreateExpense(ctx, expense)
	if err != nil {
		s.logger.Error("Create expense", zap.Error(err))
		return 0, domain.ErrInternal
	}

	return id, nil
}

func (s *BillingService) ListTransactions(ctx context.Context, period domain.Period) ([]domain.LedgerEntry, error) {
	if err := period.Validate(); err != nil {
		return nil, errors.Join(domain.ErrBadRequest, err)
	}

	entries, err := s.ledger.ListTransactions(ctx, period)
	if err != nil {
		s.logger.Error("List transactions", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return entries, nil
}

func (s *BillingService) MonthlySummary(ctx context.Context, period domain.Period) (domain.FinancialSummary, error) {
	if err := period.Validate(); err != nil {
		return domain.FinancialSummary{}, errors.Join(domain.ErrBadRequest, err)
	}

	summary, err := s.ledger.MonthlySummary(ctx, period)
	if err != nil {
		s.logger.Error("Monthly summary", zap.Error(err))
		return summary, domain.ErrInternal
	}

	return summary, nil
}

func (s *BillingService) ListActivePaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.paymentMethods.ListActive(ctx)
	if err != nil {
		s.logger.Error("List active payment methods", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return methods, nil
}
