package models

// GuestBalance is a guest's derived ledger position. It is computed on demand
// from transactions and payments and never stored.
type GuestBalance struct {
	// GuestName is the guest this balance belongs to
	GuestName string `json:"guest_name"`

	// TotalOwed is the sum of the guest's transaction prices
	TotalOwed float64 `json:"total_owed"`

	// TotalPaid is the sum of the guest's payments
	TotalPaid float64 `json:"total_paid"`

	// Balance is TotalOwed minus TotalPaid
	Balance float64 `json:"balance"`
}
