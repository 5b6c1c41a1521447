package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderFilter has AND semantics across fields, OR semantics within each field slice
type OrderFilter struct {
	UUIDs     []uuid.UUID
	UserIDs   []uuid.UUID
	Statuses  []OrderStatus
	CreatedAt *TimeRange
	Limit     *uint64
}

func (f OrderFilter) Validate() error {
	for _, status := range f.Statuses {
		if _, err := ToOrderStatus(string(status)); err != nil {
			return fmt.Errorf("statuses: %w", err)
		}
	}

	if f.CreatedAt != nil {
		if err := f.CreatedAt.Validate(); err != nil {
			return fmt.Errorf("createdAt: %w", err)
		}
	}

	if f.Limit != nil && *f.Limit == 0 {
		return errors.New("limit must be positive")
	}

	return nil
}

type TimeRange struct {
	Before *time.Time
	After  *time.Time
}

func (t TimeRange) Validate() error {
	if t.Before == nil && t.After == nil {
		return errors.New("both Before and After are nil")
	}

	if t.Before != nil && t.After != nil {
		if t.Before.Before(*t.After) {
			return fmt.Errorf("before is before After")
		}
	}

	return nil
}
