package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type cartRepository struct {
	dbtx db.DBTX
	q    *db.Queries
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		dbtx: pool,
		q:    db.New(pool),
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		dbtx: tx,
		q:    db.New(tx),
	}
}

func (r *cartRepository) GetCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error) {
	var c domain.Cart

	dbCartItems, err := r.q.GetCart(ctx, userID)
	if err != nil {
		return c, fmt.Errorf("q.GetCart: %w", err)
	}

	return domain.Cart{
		UserID: userID,
		Items:  mapGetCartRowsToDomain(dbCartItems),
	}, nil
}

// AddItem adds the quantity to the cart line of the product, creating the
// cart and the line when missing.
func (r *cartRepository) AddItem(ctx context.Context, userID uuid.UUID, item domain.CartItem) error {
	if item.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	_, err := withTx(ctx, r.dbtx, func(q *db.Queries) (struct{}, error) {
		var none struct{}

		internalUserID, err := q.GetUserIDByUUID(ctx, userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return none, fmt.Errorf("q.GetUserIDByUUID: %w", domain.ErrUserNotFound)
			}
			return none, fmt.Errorf("q.GetUserIDByUUID: %w", err)
		}

		cartID, err := q.UpsertCart(ctx, internalUserID)
		if err != nil {
			return none, fmt.Errorf("q.UpsertCart: %w", err)
		}

		cmdTag, err := q.AddCartItem(ctx, db.AddCartItemParams{
			CartID:      cartID,
			ProductUuid: item.ProductID,
			Quantity:    item.Quantity,
		})
		if err != nil {
			return none, fmt.Errorf("q.AddCartItem: %w", err)
		}

		if cmdTag.RowsAffected() == 0 {
			return none, fmt.Errorf("q.AddCartItem: %w", domain.NewProductNotFoundError(item.ProductID))
		}

		return none, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", mapPgError(err))
	}

	return nil
}

func (r *cartRepository) ClearCart(ctx context.Context, userID int64) (int64, error) {
	deleted, err := r.q.ClearCart(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("q.ClearCart: %w", err)
	}

	return deleted, nil
}

func mapGetCartRowToDomain(row db.GetCartRow) domain.CartItem {
	return domain.CartItem{
		ProductID: row.ProductUuid,
		Quantity:  row.Quantity,
		CreatedAt: row.CreatedAt,
	}
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) []domain.CartItem {
	var items []domain.CartItem

	for _, row := range rows {
		items = append(items, mapGetCartRowToDomain(row))
	}

	return items
}
