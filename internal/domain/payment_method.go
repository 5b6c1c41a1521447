package domain

type PaymentMethod struct {
	ID      int64
	Name    string
	Enabled bool
}
