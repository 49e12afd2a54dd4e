package models

import (
	"time"
)

// Payment records that a guest paid an amount toward their tab
type Payment struct {
	// ID is the unique identifier for the payment
	ID string `json:"id"`

	// GuestName is the free-text name of the guest who paid
	GuestName string `json:"guest_name"`

	// Amount is the amount received
	Amount float64 `json:"amount"`

	// Date is when the payment was made
	Date time.Time `json:"date"`

	// Notes is an optional free-text annotation
	Notes string `json:"notes"`

	// CreatedAt is when the record was created
	CreatedAt time.Time `json:"created_at"`
}
