package transaction

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/barledger/bartab/internal/repositories/transaction Repository

import (
	"context"
)

// Repository defines the interface for transaction persistence
type Repository interface {
	// SaveTransaction stores a transaction
	SaveTransaction(ctx context.Context, input *SaveTransactionInput) error

	// GetTransaction retrieves a transaction by ID
	GetTransaction(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error)

	// ListTransactions retrieves transactions matching the filter, newest first
	ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error)

	// GetTransactionsForGuest retrieves all transactions for an exactly matching guest name
	GetTransactionsForGuest(ctx context.Context, input *GetTransactionsForGuestInput) (*GetTransactionsForGuestOutput, error)

	// DeleteTransaction removes a transaction by ID
	DeleteTransaction(ctx context.Context, input *DeleteTransactionInput) error
}
