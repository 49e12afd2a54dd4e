package pricing

import (
	"testing"

	"github.com/barledger/bartab/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOzToMlRoundTrip(t *testing.T) {
	values := []float64{0, 0.5, 1, 2.5, 25, 750, 1750}
	for _, v := range values {
		assert.InDelta(t, v, MlToOz(OzToMl(v)), 1e-9)
		assert.InDelta(t, v, OzToMl(MlToOz(v)), 1e-9)
	}
}

func TestOzToMl(t *testing.T) {
	assert.InDelta(t, 73.93375, OzToMl(2.5), 1e-9)
	assert.InDelta(t, 29.5735, OzToMl(1), 1e-9)
}

func TestCalculateMilliliterDrink(t *testing.T) {
	drink := &models.Drink{
		BaseCost:    84.0,
		TotalVolume: 1750,
		VolumeUnit:  models.VolumeUnitMilliliter,
	}

	total, breakdown, err := Calculate(drink, 2.5, 0.60, 0.20)
	require.NoError(t, err)

	assert.Equal(t, 4.35, total)
	assert.Equal(t, 0.048, breakdown.PricePerMl)
	assert.Equal(t, 3.55, breakdown.AlcoholCost)
	assert.Equal(t, 0.60, breakdown.MixerCost)
	assert.Equal(t, 0.20, breakdown.FlatCost)
	assert.Equal(t, 4.35, breakdown.TotalPrice)
}

func TestCalculateFluidOunceDrink(t *testing.T) {
	drink := &models.Drink{
		BaseCost:    32.0,
		TotalVolume: 25,
		VolumeUnit:  models.VolumeUnitFluidOunce,
	}

	total, breakdown, err := Calculate(drink, 2.0, 0.50, 0.25)
	require.NoError(t, err)

	assert.Equal(t, 3.31, total)
	assert.Equal(t, 0.0433, breakdown.PricePerMl)
	assert.Equal(t, 2.56, breakdown.AlcoholCost)
	assert.Equal(t, 3.31, breakdown.TotalPrice)
}

func TestCalculateIsDeterministic(t *testing.T) {
	drink := &models.Drink{
		BaseCost:    47.99,
		TotalVolume: 750,
		VolumeUnit:  models.VolumeUnitMilliliter,
	}

	first, _, err := Calculate(drink, 1.5, 0.35, 0.10)
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		total, _, err := Calculate(drink, 1.5, 0.35, 0.10)
		require.NoError(t, err)
		assert.Equal(t, first, total)
	}
}

func TestCalculateZeroVolume(t *testing.T) {
	drink := &models.Drink{
		BaseCost:    84.0,
		TotalVolume: 0,
		VolumeUnit:  models.VolumeUnitMilliliter,
	}

	_, _, err := Calculate(drink, 2.5, 0.60, 0.20)
	assert.ErrorIs(t, err, ErrInvalidDrinkVolume)
}

func TestCalculateNegativeVolume(t *testing.T) {
	drink := &models.Drink{
		BaseCost:    84.0,
		TotalVolume: -500,
		VolumeUnit:  models.VolumeUnitFluidOunce,
	}

	_, _, err := Calculate(drink, 2.5, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidDrinkVolume)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.55, Round2(3.5488))
	assert.Equal(t, 4.35, Round2(4.3488))
	assert.Equal(t, 2.56, Round2(2.5605))
	assert.Equal(t, -19.05, Round2(-19.05))
	assert.Equal(t, 0.0, Round2(0))
}
