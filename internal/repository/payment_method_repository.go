package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/samber/lo"
)

type paymentMethodRepository struct {
	q *db.Queries
}

func NewPaymentMethod(pool *pgxpool.Pool) port.PaymentMethodRepository {
	return &paymentMethodRepository{
		q: db.New(pool),
	}
}

func (r *paymentMethodRepository) ListActive(ctx context.Context) ([]domain.PaymentMethod, error) {
	rows, err := r.q.ListActivePaymentMethods(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListActivePaymentMethods: %w", err)
	}

	return lo.Map(rows, func(row db.PaymentMethod, _ int) domain.PaymentMethod {
		return domain.PaymentMethod{
			ID:      row.ID,
			Name:    row.Name,
			Enabled: row.IsEnabled,
		}
	}), nil
}

func (r *paymentMethodRepository) IsActive(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, nil
	}

	active, err := r.q.IsPaymentMethodActive(ctx, name)
	if err != nil {
		return false, fmt.Errorf("q.IsPaymentMethodActive: %w", err)
	}

	return active, nil
}
