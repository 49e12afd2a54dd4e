package transaction

import (
	"time"

	"github.com/barledger/bartab/internal/models"
)

// SaveTransactionInput contains parameters for storing a transaction
type SaveTransactionInput struct {
	Transaction *models.Transaction
}

// GetTransactionInput contains parameters for retrieving a transaction
type GetTransactionInput struct {
	TransactionID string
}

// GetTransactionOutput contains the result of retrieving a transaction
type GetTransactionOutput struct {
	Transaction *models.Transaction
}

// ListTransactionsInput contains the optional filters for listing
// transactions. GuestName matches as a case-insensitive substring, DrinkID
// matches exactly, and the date bounds are inclusive.
type ListTransactionsInput struct {
	GuestName string
	DrinkID   string
	StartDate *time.Time
	EndDate   *time.Time
}

// ListTransactionsOutput contains the result of listing transactions
type ListTransactionsOutput struct {
	Transactions []*models.Transaction
}

// GetTransactionsForGuestInput contains parameters for retrieving a guest's transactions
type GetTransactionsForGuestInput struct {
	GuestName string
}

// GetTransactionsForGuestOutput contains the result of retrieving a guest's transactions
type GetTransactionsForGuestOutput struct {
	Transactions []*models.Transaction
}

// DeleteTransactionInput contains parameters for deleting a transaction
type DeleteTransactionInput struct {
	TransactionID string
}
