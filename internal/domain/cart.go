package domain

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	UserID uuid.UUID
	Items  []CartItem
}

type CartItem struct {
	ProductID uuid.UUID
	Quantity  int32

	CreatedAt time.Time
}
