package models

import (
	"time"
)

// Transaction records that a guest consumed a drink at a price computed at
// creation time. The price is never recalculated, even if the referenced
// drink is later edited or deleted.
type Transaction struct {
	// ID is the unique identifier for the transaction
	ID string `json:"id"`

	// GuestName is the free-text name of the guest who consumed the drink
	GuestName string `json:"guest_name"`

	// DrinkID references the drink template used to price this transaction
	DrinkID string `json:"drink_id"`

	// CalculatedPrice is the price frozen at creation time
	CalculatedPrice float64 `json:"calculated_price"`

	// VolumeServed is the volume actually served, in fluid ounces
	VolumeServed float64 `json:"volume_served"`

	// MixerCost is the mixer add-on cost applied to this serving
	MixerCost float64 `json:"mixer_cost"`

	// FlatCost is the flat add-on cost applied to this serving
	FlatCost float64 `json:"flat_cost"`

	// Date is when the drink was consumed
	Date time.Time `json:"date"`

	// CreatedAt is when the record was created
	CreatedAt time.Time `json:"created_at"`
}
