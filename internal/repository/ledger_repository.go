package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type ledgerRepository struct {
	q *db.Queries
}

func NewLedger(pool *pgxpool.Pool) port.LedgerRepository {
	return &ledgerRepository{
		q: db.New(pool),
	}
}

func (r *ledgerRepository) CreateExpense(ctx context.Context, expense domain.Expense) (int64, error) {
	if err := expense.Validate(); err != nil {
		return 0, fmt.Errorf("expense.Validate: %w", err)
	}

	id, err := r.q.InsertTransaction(ctx, db.InsertTransactionParams{
		Type:        string(domain.LedgerEntryExpense),
		Description: expense.Description,
		Amount:      expense.Amount,
	})
	if err != nil {
		return 0, fmt.Errorf("q.InsertTransaction: %w", err)
	}

	return id, nil
}

func (r *ledgerRepository) ListTransactions(ctx context.Context, period domain.Period) ([]domain.LedgerEntry, error) {
	if err := period.Validate(); err != nil {
		return nil, fmt.Errorf("period.Validate: %w", err)
	}

	from, to := period.Bounds()

	rows, err := r.q.ListTransactions(ctx, db.ListTransactionsParams{
		FromTime: from,
		ToTime:   to,
	})
	if err != nil {
		return nil, fmt.Errorf("q.ListTransactions: %w", err)
	}

	entries, err := mapTransactionsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapTransactionsToDomain: %w", err)
	}

	return entries, nil
}

func (r *ledgerRepository) MonthlySummary(ctx context.Context, period domain.Period) (domain.FinancialSummary, error) {
	var s domain.FinancialSummary

	if err := period.Validate(); err != nil {
		return s, fmt.Errorf("period.Validate: %w", err)
	}

	from, to := period.Bounds()

	row, err := r.q.GetLedgerSummary(ctx, db.GetLedgerSummaryParams{
		FromTime: from,
		ToTime:   to,
	})
	if err != nil {
		return s, fmt.Errorf("q.GetLedgerSummary: %w", err)
	}

	return domain.FinancialSummary{
		Year:          period.Year,
		Month:         period.Month,
		TotalIncome:   row.TotalIncome,
		TotalExpenses: row.TotalExpenses,
	}, nil
}

func mapTransactionToDomain(row db.Transaction) (domain.LedgerEntry, error) {
	entryType, err := domain.ToLedgerEntryType(row.Type)
	if err != nil {
		return domain.LedgerEntry{}, fmt.Errorf("domain.ToLedgerEntryType: %w", err)
	}

	return domain.LedgerEntry{
		ID:          row.ID,
		OrderID:     row.OrderID,
		Type:        entryType,
		Description: row.Description,
		Amount:      row.Amount,
		CreatedAt:   row.CreatedAt,
	}, nil
}

func mapTransactionsToDomain(rows []db.Transaction) ([]domain.LedgerEntry, error) {
	var entries []domain.LedgerEntry

	for _, row := range rows {
		entry, err := mapTransactionToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapTransactionToDomain: %w", err)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
