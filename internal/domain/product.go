package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID    int64
	UUID  uuid.UUID
	Name  string
	Price decimal.Decimal
	Stock int32
}
