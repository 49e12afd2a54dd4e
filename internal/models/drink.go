package models

import (
	"time"
)

// VolumeUnit identifies the measurement system a drink's container volume is stored in
type VolumeUnit string

const (
	// VolumeUnitMilliliter indicates the container volume is stored in milliliters
	VolumeUnitMilliliter VolumeUnit = "ml"

	// VolumeUnitFluidOunce indicates the container volume is stored in fluid ounces
	VolumeUnitFluidOunce VolumeUnit = "oz"
)

// Drink is a reusable priced template for a served drink
type Drink struct {
	// ID is the unique identifier for the drink
	ID string `json:"id"`

	// Name is the display label for the drink
	Name string `json:"name"`

	// BaseCost is the cost of the full container
	BaseCost float64 `json:"base_cost"`

	// TotalVolume is the container volume, denominated in VolumeUnit
	TotalVolume float64 `json:"total_volume"`

	// VolumeUnit is the unit TotalVolume is stored in
	VolumeUnit VolumeUnit `json:"volume_unit"`

	// VolumeServed is the default serving size in fluid ounces
	VolumeServed float64 `json:"volume_served"`

	// MixerCost is the default mixer add-on cost per serving
	MixerCost float64 `json:"mixer_cost"`

	// FlatCost is the default flat add-on cost per serving
	FlatCost float64 `json:"flat_cost"`

	// CreatedAt is when the drink was created
	CreatedAt time.Time `json:"created_at"`
}
