package tab

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/barledger/bartab/internal/services/tab Service

import "context"

// Service defines the interface for bar tab operations
type Service interface {
	// CreateDrink creates a new drink template
	CreateDrink(ctx context.Context, input *CreateDrinkInput) (*CreateDrinkOutput, error)

	// GetDrink retrieves a drink template by ID
	GetDrink(ctx context.Context, input *GetDrinkInput) (*GetDrinkOutput, error)

	// ListDrinks retrieves all drink templates
	ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error)

	// UpdateDrink replaces a drink template's fields
	UpdateDrink(ctx context.Context, input *UpdateDrinkInput) (*UpdateDrinkOutput, error)

	// DeleteDrink removes a drink template, leaving existing transactions untouched
	DeleteDrink(ctx context.Context, input *DeleteDrinkInput) (*DeleteDrinkOutput, error)

	// CalculatePrice prices one serving of a drink and returns an itemized breakdown
	CalculatePrice(ctx context.Context, input *CalculatePriceInput) (*CalculatePriceOutput, error)

	// CreateTransaction records a consumption event with its price frozen at creation
	CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error)

	// GetTransaction retrieves a transaction by ID
	GetTransaction(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error)

	// ListTransactions retrieves transactions matching the filter, newest first
	ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error)

	// DeleteTransaction removes a transaction by ID
	DeleteTransaction(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error)

	// ExportTransactionsCSV renders all transactions as CSV, newest first
	ExportTransactionsCSV(ctx context.Context, input *ExportTransactionsCSVInput) (*ExportTransactionsCSVOutput, error)

	// CreatePayment records a payment received from a guest
	CreatePayment(ctx context.Context, input *CreatePaymentInput) (*CreatePaymentOutput, error)

	// GetPayment retrieves a payment by ID
	GetPayment(ctx context.Context, input *GetPaymentInput) (*GetPaymentOutput, error)

	// ListPayments retrieves payments matching the filter, newest first
	ListPayments(ctx context.Context, input *ListPaymentsInput) (*ListPaymentsOutput, error)

	// DeletePayment removes a payment by ID
	DeletePayment(ctx context.Context, input *DeletePaymentInput) (*DeletePaymentOutput, error)

	// GetGuestBalances computes balances for every guest, largest debt first
	GetGuestBalances(ctx context.Context, input *GetGuestBalancesInput) (*GetGuestBalancesOutput, error)

	// GetGuestBalance computes the balance for one exactly named guest
	GetGuestBalance(ctx context.Context, input *GetGuestBalanceInput) (*GetGuestBalanceOutput, error)
}
