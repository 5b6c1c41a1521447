package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type LedgerEntryType string

const (
	LedgerEntryIncome  LedgerEntryType = "income"
	LedgerEntryExpense LedgerEntryType = "expense"
)

func ToLedgerEntryType(s string) (LedgerEntryType, error) {
	switch t := LedgerEntryType(s); t {
	case LedgerEntryIncome, LedgerEntryExpense:
		return t, nil
	}

	return "", fmt.Errorf("invalid ledger entry type: %q", s)
}

type LedgerEntry struct {
	ID          int64
	OrderID     *int64
	Type        LedgerEntryType
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}

type Expense struct {
	Description string
	Amount      decimal.Decimal
}

func (e Expense) Validate() error {
	if e.Description == "" {
		return errors.New("description is empty")
	}
	if !e.Amount.IsPositive() {
		return errors.New("amount must be positive")
	}
	return nil
}

type FinancialSummary struct {
	Year          int
	Month         time.Month
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
}

func (s FinancialSummary) Profit() decimal.Decimal {
	return s.TotalIncome.Sub(s.TotalExpenses)
}

// Period is a calendar month, the granularity of billing reports.
type Period struct {
	Year  int
	Month time.Month
}

func (p Period) Validate() error {
	if p.Year < 1 {
		return fmt.Errorf("year %d is not valid", p.Year)
	}
	if p.Month < time.January || p.Month > time.December {
		return fmt.Errorf("month %d is not valid", p.Month)
	}
	return nil
}

// Bounds returns [start, end) of the month in UTC.
func (p Period) Bounds() (time.Time, time.Time) {
	start := time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
