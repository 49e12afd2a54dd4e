package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/barledger/bartab/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	transactionKeyPrefix    = "transaction:"
	transactionsIndexKey    = "transactions"
	guestTransactionsPrefix = "guest_transactions:"
)

// ErrTransactionNotFound is returned when a transaction is not found
var ErrTransactionNotFound = errors.New("transaction not found")

// Config holds configuration for the Redis transaction repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed transaction repository
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

// SaveTransaction stores a transaction
func (r *redisRepository) SaveTransaction(ctx context.Context, input *SaveTransactionInput) error {
	if input == nil || input.Transaction == nil {
		return errors.New("input and transaction cannot be nil")
	}

	tx := input.Transaction
	if tx.ID == "" {
		return errors.New("transaction ID cannot be empty")
	}

	txJSON, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, transactionKeyPrefix+tx.ID, txJSON, 0)

	// Index by business date for newest-first listing
	pipe.ZAdd(ctx, transactionsIndexKey, redis.Z{
		Score:  float64(tx.Date.UnixNano()),
		Member: tx.ID,
	})

	// Exact-name guest index, used by balance lookups
	pipe.ZAdd(ctx, guestTransactionsPrefix+tx.GuestName, redis.Z{
		Score:  float64(tx.Date.UnixNano()),
		Member: tx.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	return nil
}

// GetTransaction retrieves a transaction by ID
func (r *redisRepository) GetTransaction(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	if input == nil || input.TransactionID == "" {
		return nil, errors.New("input and transaction ID cannot be empty")
	}

	txJSON, err := r.client.Get(ctx, transactionKeyPrefix+input.TransactionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	var tx models.Transaction
	if err := json.Unmarshal([]byte(txJSON), &tx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
	}

	return &GetTransactionOutput{Transaction: &tx}, nil
}

// ListTransactions retrieves transactions matching the filter, newest first
func (r *redisRepository) ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input == nil {
		input = &ListTransactionsInput{}
	}

	// Newest first
	txIDs, err := r.client.ZRevRange(ctx, transactionsIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction IDs: %w", err)
	}

	records, err := r.fetchTransactions(ctx, txIDs)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.Transaction, 0, len(records))
	for _, tx := range records {
		if matchesFilter(tx, input) {
			matched = append(matched, tx)
		}
	}

	return &ListTransactionsOutput{Transactions: matched}, nil
}

// GetTransactionsForGuest retrieves all transactions for an exactly matching guest name
func (r *redisRepository) GetTransactionsForGuest(ctx context.Context, input *GetTransactionsForGuestInput) (*GetTransactionsForGuestOutput, error) {
	if input == nil || input.GuestName == "" {
		return nil, errors.New("input and guest name cannot be empty")
	}

	txIDs, err := r.client.ZRevRange(ctx, guestTransactionsPrefix+input.GuestName, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction IDs for guest: %w", err)
	}

	records, err := r.fetchTransactions(ctx, txIDs)
	if err != nil {
		return nil, err
	}

	return &GetTransactionsForGuestOutput{Transactions: records}, nil
}

// DeleteTransaction removes a transaction by ID
func (r *redisRepository) DeleteTransaction(ctx context.Context, input *DeleteTransactionInput) error {
	if input == nil || input.TransactionID == "" {
		return errors.New("input and transaction ID cannot be empty")
	}

	// Fetch first so the guest index entry can be removed too
	existing, err := r.GetTransaction(ctx, &GetTransactionInput{TransactionID: input.TransactionID})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, transactionKeyPrefix+input.TransactionID)
	pipe.ZRem(ctx, transactionsIndexKey, input.TransactionID)
	pipe.ZRem(ctx, guestTransactionsPrefix+existing.Transaction.GuestName, input.TransactionID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return nil
}

// fetchTransactions loads the given IDs in order, skipping records deleted
// between reading the index and fetching the values
func (r *redisRepository) fetchTransactions(ctx context.Context, txIDs []string) ([]*models.Transaction, error) {
	if len(txIDs) == 0 {
		return []*models.Transaction{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(txIDs))
	for _, id := range txIDs {
		commands = append(commands, pipe.Get(ctx, transactionKeyPrefix+id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	records := make([]*models.Transaction, 0, len(txIDs))
	for i, cmd := range commands {
		txJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get transaction %s: %w", txIDs[i], err)
		}

		var tx models.Transaction
		if err := json.Unmarshal([]byte(txJSON), &tx); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transaction %s: %w", txIDs[i], err)
		}

		records = append(records, &tx)
	}

	return records, nil
}

func matchesFilter(tx *models.Transaction, input *ListTransactionsInput) bool {
	if input.GuestName != "" && !strings.Contains(strings.ToLower(tx.GuestName), strings.ToLower(input.GuestName)) {
		return false
	}

	if input.DrinkID != "" && tx.DrinkID != input.DrinkID {
		return false
	}

	if input.StartDate != nil && tx.Date.Before(*input.StartDate) {
		return false
	}

	if input.EndDate != nil && tx.Date.After(*input.EndDate) {
		return false
	}

	return true
}
