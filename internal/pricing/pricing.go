package pricing

import (
	"errors"
	"math"

	"github.com/barledger/bartab/internal/models"
)

// ErrInvalidDrinkVolume is returned when a drink's normalized total volume is
// zero or negative, which would make the per-milliliter price undefined
var ErrInvalidDrinkVolume = errors.New("drink total volume must be greater than zero")

// Breakdown itemizes one price calculation for client-facing transparency
type Breakdown struct {
	// BaseCost is the cost of the drink's full container
	BaseCost float64 `json:"base_cost"`

	// TotalVolume is the container volume in the drink's own unit
	TotalVolume float64 `json:"total_volume"`

	// VolumeUnit is the unit TotalVolume is expressed in
	VolumeUnit models.VolumeUnit `json:"volume_unit"`

	// VolumeServed is the serving size in fluid ounces
	VolumeServed float64 `json:"volume_served"`

	// PricePerMl is the per-milliliter cost, rounded to 4 decimal places
	PricePerMl float64 `json:"price_per_ml"`

	// AlcoholCost is PricePerMl times the served milliliters, rounded to 2 decimal places
	AlcoholCost float64 `json:"alcohol_cost"`

	// MixerCost is the mixer add-on applied to this serving
	MixerCost float64 `json:"mixer_cost"`

	// FlatCost is the flat add-on applied to this serving
	FlatCost float64 `json:"flat_cost"`

	// TotalPrice is the final price for the serving
	TotalPrice float64 `json:"total_price"`
}

// Calculate prices one serving of a drink. The container volume is normalized
// to milliliters, volumeServed is always expressed in fluid ounces regardless
// of the drink's own unit, and the total is rounded to 2 decimal places.
func Calculate(drink *models.Drink, volumeServed, mixerCost, flatCost float64) (float64, *Breakdown, error) {
	totalVolumeMl := drink.TotalVolume
	if drink.VolumeUnit == models.VolumeUnitFluidOunce {
		totalVolumeMl = OzToMl(drink.TotalVolume)
	}

	if totalVolumeMl <= 0 {
		return 0, nil, ErrInvalidDrinkVolume
	}

	volumeServedMl := OzToMl(volumeServed)
	pricePerMl := drink.BaseCost / totalVolumeMl
	alcoholCost := pricePerMl * volumeServedMl
	total := Round2(alcoholCost + mixerCost + flatCost)

	breakdown := &Breakdown{
		BaseCost:     drink.BaseCost,
		TotalVolume:  drink.TotalVolume,
		VolumeUnit:   drink.VolumeUnit,
		VolumeServed: volumeServed,
		PricePerMl:   round4(pricePerMl),
		AlcoholCost:  Round2(alcoholCost),
		MixerCost:    mixerCost,
		FlatCost:     flatCost,
		TotalPrice:   total,
	}

	return total, breakdown, nil
}

// Round2 rounds to 2 decimal places, half away from zero. All monetary
// amounts in the ledger are rounded with this.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
