package payment

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
	paymentKeyPrefix    = "payment:"
	paymentsIndexKey    = "payments"
	guestPaymentsPrefix = "guest_payments:"
)

// ErrPaymentNotFound is returned when a payment is not found
var ErrPaymentNotFound = errors.New("payment not found")

// Config holds configuration for the Redis payment repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed payment repository
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

// SavePayment stores a payment
func (r *redisRepository) SavePayment(ctx context.Context, input *SavePaymentInput) error {
	if input == nil || input.Payment == nil {
		return errors.New("input and payment cannot be nil")
	}

	p := input.Payment
	if p.ID == "" {
		return errors.New("payment ID cannot be empty")
	}

	paymentJSON, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal payment: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, paymentKeyPrefix+p.ID, paymentJSON, 0)
	pipe.ZAdd(ctx, paymentsIndexKey, redis.Z{
		Score:  float64(p.Date.UnixNano()),
		Member: p.ID,
	})
	pipe.ZAdd(ctx, guestPaymentsPrefix+p.GuestName, redis.Z{
		Score:  float64(p.Date.UnixNano()),
		Member: p.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}

	return nil
}

// GetPayment retrieves a payment by ID
func (r *redisRepository) GetPayment(ctx context.Context, input *GetPaymentInput) (*GetPaymentOutput, error) {
	if input == nil || input.PaymentID == "" {
		return nil, errors.New("input and payment ID cannot be empty")
	}

	paymentJSON, err := r.client.Get(ctx, paymentKeyPrefix+input.PaymentID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	var p models.Payment
	if err := json.Unmarshal([]byte(paymentJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payment: %w", err)
	}

	return &GetPaymentOutput{Payment: &p}, nil
}

// ListPayments retrieves payments matching the filter, newest first
func (r *redisRepository) ListPayments(ctx context.Context, input *ListPaymentsInput) (*ListPaymentsOutput, error) {
	if input == nil {
		input = &ListPaymentsInput{}
	}

	paymentIDs, err := r.client.ZRevRange(ctx, paymentsIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get payment IDs: %w", err)
	}

	records, err := r.fetchPayments(ctx, paymentIDs)
	if err != nil {
		return nil, err
	}

	if input.GuestName == "" {
		return &ListPaymentsOutput{Payments: records}, nil
	}

	needle := strings.ToLower(input.GuestName)
	matched := make([]*models.Payment, 0, len(records))
	for _, p := range records {
		if strings.Contains(strings.ToLower(p.GuestName), needle) {
			matched = append(matched, p)
		}
	}

	return &ListPaymentsOutput{Payments: matched}, nil
}

// GetPaymentsForGuest retrieves all payments for an exactly matching guest name
func (r *redisRepository) GetPaymentsForGuest(ctx context.Context, input *GetPaymentsForGuestInput) (*GetPaymentsForGuestOutput, error) {
	if input == nil || input.GuestName == "" {
		return nil, errors.New("input and guest name cannot be empty")
	}

	paymentIDs, err := r.client.ZRevRange(ctx, guestPaymentsPrefix+input.GuestName, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get payment IDs for guest: %w", err)
	}

	records, err := r.fetchPayments(ctx, paymentIDs)
	if err != nil {
		return nil, err
	}

	return &GetPaymentsForGuestOutput{Payments: records}, nil
}

// DeletePayment removes a payment by ID
func (r *redisRepository) DeletePayment(ctx context.Context, input *DeletePaymentInput) error {
	if input == nil || input.PaymentID == "" {
		return errors.New("input and payment ID cannot be empty")
	}

	// Fetch first so the guest index entry can be removed too
	existing, err := r.GetPayment(ctx, &GetPaymentInput{PaymentID: input.PaymentID})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, paymentKeyPrefix+input.PaymentID)
	pipe.ZRem(ctx, paymentsIndexKey, input.PaymentID)
	pipe.ZRem(ctx, guestPaymentsPrefix+existing.Payment.GuestName, input.PaymentID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}

	return nil
}

// fetchPayments loads the given IDs in order, skipping records deleted
// between reading the index and fetching the values
func (r *redisRepository) fetchPayments(ctx context.Context, paymentIDs []string) ([]*models.Payment, error) {
	if len(paymentIDs) == 0 {
		return []*models.Payment{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(paymentIDs))
	for _, id := range paymentIDs {
		commands = append(commands, pipe.Get(ctx, paymentKeyPrefix+id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	records := make([]*models.Payment, 0, len(paymentIDs))
	for i, cmd := range commands {
		paymentJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get payment %s: %w", paymentIDs[i], err)
		}

		var p models.Payment
		if err := json.Unmarshal([]byte(paymentJSON), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payment %s: %w", paymentIDs[i], err)
		}

		records = append(records, &p)
	}

	return records, nil
}
