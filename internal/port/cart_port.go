package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

//go:generate mockgen -source=cart_port.go -destination=mock/cart_port.go -package=mock
type CartRepository interface {
	GetCart(ctx context.Context, userID uuid.UUID) (domain.Cart, error)
	AddItem(ctx context.Context, userID uuid.UUID, item domain.CartItem) error
	ClearCart(ctx context.Context, userID int64) (int64, error)
}
