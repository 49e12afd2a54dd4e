package drink

import "github.com/barledger/bartab/internal/models"

// SaveDrinkInput contains parameters for storing a drink
type SaveDrinkInput struct {
	Drink *models.Drink
}

// GetDrinkInput contains parameters for retrieving a drink
type GetDrinkInput struct {
	DrinkID string
}

// GetDrinkOutput contains the result of retrieving a drink
type GetDrinkOutput struct {
	Drink *models.Drink
}

// ListDrinksInput contains parameters for listing drinks
type ListDrinksInput struct{}

// ListDrinksOutput contains the result of listing drinks
type ListDrinksOutput struct {
	Drinks []*models.Drink
}

// DeleteDrinkInput contains parameters for deleting a drink
type DeleteDrinkInput struct {
	DrinkID string
}
