package drink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/barledger/bartab/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	drinkKeyPrefix = "drink:"
	drinksIndexKey = "drinks"
)

// ErrDrinkNotFound is returned when a drink is not found
var ErrDrinkNotFound = errors.New("drink not found")

// Config holds configuration for the Redis drink repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed drink repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveDrink stores a drink, overwriting any existing record with the same ID
func (r *redisRepository) SaveDrink(ctx context.Context, input *SaveDrinkInput) error {
	if input == nil || input.Drink == nil {
		return errors.New("input and drink cannot be nil")
	}

	d := input.Drink
	if d.ID == "" {
		return errors.New("drink ID cannot be empty")
	}

	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now()
	}

	drinkJSON, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal drink: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, drinkKeyPrefix+d.ID, drinkJSON, 0)
	pipe.ZAdd(ctx, drinksIndexKey, redis.Z{
		Score:  float64(d.CreatedAt.Unix()),
		Member: d.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save drink: %w", err)
	}

	return nil
}

// GetDrink retrieves a drink by ID
func (r *redisRepository) GetDrink(ctx context.Context, input *GetDrinkInput) (*GetDrinkOutput, error) {
	if input == nil || input.DrinkID == "" {
		return nil, errors.New("input and drink ID cannot be empty")
	}

	drinkJSON, err := r.client.Get(ctx, drinkKeyPrefix+input.DrinkID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDrinkNotFound
		}
		return nil, fmt.Errorf("failed to get drink: %w", err)
	}

	var d models.Drink
	if err := json.Unmarshal([]byte(drinkJSON), &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal drink: %w", err)
	}

	return &GetDrinkOutput{Drink: &d}, nil
}

// ListDrinks retrieves all drinks ordered by creation time
func (r *redisRepository) ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error) {
	drinkIDs, err := r.client.ZRange(ctx, drinksIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get drink IDs: %w", err)
	}

	if len(drinkIDs) == 0 {
		return &ListDrinksOutput{Drinks: []*models.Drink{}}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(drinkIDs))
	for _, id := range drinkIDs {
		commands = append(commands, pipe.Get(ctx, drinkKeyPrefix+id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get drinks: %w", err)
	}

	drinks := make([]*models.Drink, 0, len(drinkIDs))
	for i, cmd := range commands {
		drinkJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Drink was deleted between reading the index and fetching the record
				continue
			}
			return nil, fmt.Errorf("failed to get drink %s: %w", drinkIDs[i], err)
		}

		var d models.Drink
		if err := json.Unmarshal([]byte(drinkJSON), &d); err != nil {
			return nil, fmt.Errorf("failed to unmarshal drink %s: %w", drinkIDs[i], err)
		}

		drinks = append(drinks, &d)
	}

	return &ListDrinksOutput{Drinks: drinks}, nil
}

// DeleteDrink removes a drink by ID. Transactions referencing the drink are
// stored independently and are not touched.
func (r *redisRepository) DeleteDrink(ctx context.Context, input *DeleteDrinkInput) error {
	if input == nil || input.DrinkID == "" {
		return errors.New("input and drink ID cannot be empty")
	}

	deleted, err := r.client.Del(ctx, drinkKeyPrefix+input.DrinkID).Result()
	if err != nil {
		return fmt.Errorf("failed to delete drink: %w", err)
	}

	if deleted == 0 {
		return ErrDrinkNotFound
	}

	if err := r.client.ZRem(ctx, drinksIndexKey, input.DrinkID).Err(); err != nil {
		return fmt.Errorf("failed to remove drink from index: %w", err)
	}

	return nil
}
