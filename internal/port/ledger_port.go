package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

//go:generate mockgen -source=ledger_port.go -destination=mock/ledger_port.go -package=mock
type LedgerRepository interface {
	CreateExpense(ctx context.Context, expense domain.Expense) (int64, error)
	ListTransactions(ctx context.Context, period domain.Period) ([]domain.LedgerEntry, error)
	MonthlySummary(ctx context.Context, period domain.Period) (domain.FinancialSummary, error)
}

type PaymentMethodRepository interface {
	ListActive(ctx context.Context) ([]domain.PaymentMethod, error)
	IsActive(ctx context.Context, name string) (bool, error)
}
