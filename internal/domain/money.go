package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

func (m Money) String() string {
	return m.Amount.StringFixed(2) + " " + m.Currency.String()
}
