package payment

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/barledger/bartab/internal/repositories/payment Repository

import (
	"context"
)

// Repository defines the interface for payment persistence
type Repository interface {
	// SavePayment stores a payment
	SavePayment(ctx context.Context, input *SavePaymentInput) error

	// GetPayment retrieves a payment by ID
	GetPayment(ctx context.Context, input *GetPaymentInput) (*GetPaymentOutput, error)

	// ListPayments retrieves payments matching the filter, newest first
	ListPayments(ctx context.Context, input *ListPaymentsInput) (*ListPaymentsOutput, error)

	// GetPaymentsForGuest retrieves all payments for an exactly matching guest name
	GetPaymentsForGuest(ctx context.Context, input *GetPaymentsForGuestInput) (*GetPaymentsForGuestOutput, error)

	// DeletePayment removes a payment by ID
	DeletePayment(ctx context.Context, input *DeletePaymentInput) error
}
