package tab

import (
	"time"

	"github.com/barledger/bartab/internal/common/clock"
	"github.com/barledger/bartab/internal/common/uuid"
	"github.com/barledger/bartab/internal/models"
	"github.com/barledger/bartab/internal/pricing"
	drinkRepo "github.com/barledger/bartab/internal/repositories/drink"
	paymentRepo "github.com/barledger/bartab/internal/repositories/payment"
	transactionRepo "github.com/barledger/bartab/internal/repositories/transaction"
)

// Config holds configuration for the tab service
type Config struct {
	// Repository dependencies
	DrinkRepo       drinkRepo.Repository
	TransactionRepo transactionRepo.Repository
	PaymentRepo     paymentRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateDrinkInput contains parameters for creating a drink template
type CreateDrinkInput struct {
	// Name is the display label for the drink
	Name string

	// BaseCost is the cost of the full container
	BaseCost float64

	// TotalVolume is the container volume, must be positive
	TotalVolume float64

	// VolumeUnit is ml or oz, defaulting to ml when empty
	VolumeUnit models.VolumeUnit

	// VolumeServed is the default serving size in fluid ounces, defaulting to 2.0
	VolumeServed float64

	// MixerCost is the default mixer add-on per serving
	MixerCost float64

	// FlatCost is the default flat add-on per serving
	FlatCost float64
}

// CreateDrinkOutput contains the created drink
type CreateDrinkOutput struct {
	Drink *models.Drink
}

// GetDrinkInput contains parameters for retrieving a drink
type GetDrinkInput struct {
	DrinkID string
}

// GetDrinkOutput contains the retrieved drink
type GetDrinkOutput struct {
	Drink *models.Drink
}

// ListDrinksInput contains parameters for listing drinks
type ListDrinksInput struct{}

// ListDrinksOutput contains all drink templates
type ListDrinksOutput struct {
	Drinks []*models.Drink
}

// UpdateDrinkInput contains the replacement fields for a drink template.
// The drink's ID and creation time are preserved.
type UpdateDrinkInput struct {
	DrinkID      string
	Name         string
	BaseCost     float64
	TotalVolume  float64
	VolumeUnit   models.VolumeUnit
	VolumeServed float64
	MixerCost    float64
	FlatCost     float64
}

// UpdateDrinkOutput contains the updated drink
type UpdateDrinkOutput struct {
	Drink *models.Drink
}

// DeleteDrinkInput contains parameters for deleting a drink
type DeleteDrinkInput struct {
	DrinkID string
}

// DeleteDrinkOutput contains the result of deleting a drink
type DeleteDrinkOutput struct{}

// CalculatePriceInput contains parameters for pricing one serving. Every call
// supplies its own serving parameters; the drink contributes only its base
// cost, container volume and unit.
type CalculatePriceInput struct {
	DrinkID string

	// VolumeServed is the serving size in fluid ounces
	VolumeServed float64

	// MixerCost is the mixer add-on for this serving
	MixerCost float64

	// FlatCost is the flat add-on for this serving
	FlatCost float64
}

// CalculatePriceOutput contains the computed price and its breakdown
type CalculatePriceOutput struct {
	CalculatedPrice float64
	Breakdown       *pricing.Breakdown
}

// CreateTransactionInput contains parameters for recording a consumption
// event. Nil serving parameters fall back to the drink's stored defaults; a
// nil date falls back to the current time.
type CreateTransactionInput struct {
	GuestName string
	DrinkID   string

	// VolumeServed overrides the drink's default serving size, in fluid ounces
	VolumeServed *float64

	// MixerCost overrides the drink's default mixer add-on
	MixerCost *float64

	// FlatCost overrides the drink's default flat add-on
	FlatCost *float64

	// Date is when the drink was consumed
	Date *time.Time
}

// CreateTransactionOutput contains the created transaction
type CreateTransactionOutput struct {
	Transaction *models.Transaction
}

// GetTransactionInput contains parameters for retrieving a transaction
type GetTransactionInput struct {
	TransactionID string
}

// GetTransactionOutput contains the retrieved transaction
type GetTransactionOutput struct {
	Transaction *models.Transaction
}

// ListTransactionsInput contains the optional list filters. GuestName matches
// as a case-insensitive substring, DrinkID exactly, date bounds inclusively.
type ListTransactionsInput struct {
	GuestName string
	DrinkID   string
	StartDate *time.Time
	EndDate   *time.Time
}

// ListTransactionsOutput contains the matching transactions, newest first
type ListTransactionsOutput struct {
	Transactions []*models.Transaction
}

// DeleteTransactionInput contains parameters for deleting a transaction
type DeleteTransactionInput struct {
	TransactionID string
}

// DeleteTransactionOutput contains the result of deleting a transaction
type DeleteTransactionOutput struct{}

// ExportTransactionsCSVInput contains parameters for the CSV export
type ExportTransactionsCSVInput struct{}

// ExportTransactionsCSVOutput contains the rendered CSV document
type ExportTransactionsCSVOutput struct {
	CSV []byte
}

// CreatePaymentInput contains parameters for recording a payment. A nil date
// falls back to the current time.
type CreatePaymentInput struct {
	GuestName string
	Amount    float64
	Date      *time.Time
	Notes     string
}

// CreatePaymentOutput contains the created payment
type CreatePaymentOutput struct {
	Payment *models.Payment
}

// GetPaymentInput contains parameters for retrieving a payment
type GetPaymentInput struct {
	PaymentID string
}

// GetPaymentOutput contains the retrieved payment
type GetPaymentOutput struct {
	Payment *models.Payment
}

// ListPaymentsInput contains the optional list filters. GuestName matches as
// a case-insensitive substring.
type ListPaymentsInput struct {
	GuestName string
}

// ListPaymentsOutput contains the matching payments, newest first
type ListPaymentsOutput struct {
	Payments []*models.Payment
}

// DeletePaymentInput contains parameters for deleting a payment
type DeletePaymentInput struct {
	PaymentID string
}

// DeletePaymentOutput contains the result of deleting a payment
type DeletePaymentOutput struct{}

// GetGuestBalancesInput contains parameters for computing all balances
type GetGuestBalancesInput struct{}

// GetGuestBalancesOutput contains every guest's balance, largest debt first
type GetGuestBalancesOutput struct {
	Balances []*models.GuestBalance
}

// GetGuestBalanceInput contains parameters for computing one guest's balance.
// The name matches exactly, unlike the substring list filters.
type GetGuestBalanceInput struct {
	GuestName string
}

// GetGuestBalanceOutput contains the guest's balance
type GetGuestBalanceOutput struct {
	Balance *models.GuestBalance
}
