package domain

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type Address struct {
	ID         uuid.UUID
	UserID     int64
	Name       string
	Line1      string
	City       string
	PostalCode string
	Country    string
}

// AddressSnapshot is the copy of an address frozen into an order.
type AddressSnapshot struct {
	Name       string
	Line1      string
	City       string
	PostalCode string
	Country    string
}

func (a Address) Snapshot() AddressSnapshot {
	return AddressSnapshot{
		Name:       a.Name,
		Line1:      a.Line1,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func (s AddressSnapshot) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

func UnmarshalAddressSnapshot(data []byte) (AddressSnapshot, error) {
	var s AddressSnapshot
	if len(data) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return s, nil
}
