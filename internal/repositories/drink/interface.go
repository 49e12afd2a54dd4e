package drink

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/barledger/bartab/internal/repositories/drink Repository

import (
	"context"
)

// Repository defines the interface for drink template persistence
type Repository interface {
	// SaveDrink stores a drink, overwriting any existing record with the same ID
	SaveDrink(ctx context.Context, input *SaveDrinkInput) error

	// GetDrink retrieves a drink by ID
	GetDrink(ctx context.Context, input *GetDrinkInput) (*GetDrinkOutput, error)

	// ListDrinks retrieves all drinks ordered by creation time
	ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error)

	// DeleteDrink removes a drink by ID
	DeleteDrink(ctx context.Context, input *DeleteDrinkInput) error
}
