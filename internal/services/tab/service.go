package tab

import (
	"context"
	"errors"

	"github.com/barledger/bartab/internal/common/clock"
	"github.com/barledger/bartab/internal/common/uuid"
	"github.com/barledger/bartab/internal/ledger"
	"github.com/barledger/bartab/internal/models"
	"github.com/barledger/bartab/internal/pricing"
	drinkRepo "github.com/barledger/bartab/internal/repositories/drink"
	paymentRepo "github.com/barledger/bartab/internal/repositories/payment"
	transactionRepo "github.com/barledger/bartab/internal/repositories/transaction"
)

// defaultVolumeServed is the serving size in fluid ounces used when a drink
// is created without one
const defaultVolumeServed = 2.0

// service implements the Service interface
type service struct {
	drinkRepo       drinkRepo.Repository
	transactionRepo transactionRepo.Repository
	paymentRepo     paymentRepo.Repository
	clock           clock.Clock
	uuidGenerator   uuid.UUID
}

// New creates a new tab service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DrinkRepo == nil {
		return nil, ErrNilDrinkRepo
	}

	if cfg.TransactionRepo == nil {
		return nil, ErrNilTransactionRepo
	}

	if cfg.PaymentRepo == nil {
		return nil, ErrNilPaymentRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		drinkRepo:       cfg.DrinkRepo,
		transactionRepo: cfg.TransactionRepo,
		paymentRepo:     cfg.PaymentRepo,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
	}, nil
}

// CreateDrink creates a new drink template
func (s *service) CreateDrink(ctx context.Context, input *CreateDrinkInput) (*CreateDrinkOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	unit, err := normalizeVolumeUnit(input.VolumeUnit)
	if err != nil {
		return nil, err
	}

	// Reject volumes the pricing engine cannot divide by
	if input.TotalVolume <= 0 {
		return nil, ErrInvalidDrink
	}

	volumeServed := input.VolumeServed
	if volumeServed <= 0 {
		volumeServed = defaultVolumeServed
	}

	d := &models.Drink{
		ID:           s.uuidGenerator.NewUUID(),
		Name:         input.Name,
		BaseCost:     input.BaseCost,
		TotalVolume:  input.TotalVolume,
		VolumeUnit:   unit,
		VolumeServed: volumeServed,
		MixerCost:    input.MixerCost,
		FlatCost:     input.FlatCost,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.drinkRepo.SaveDrink(ctx, &drinkRepo.SaveDrinkInput{Drink: d}); err != nil {
		return nil, err
	}

	return &CreateDrinkOutput{Drink: d}, nil
}

// GetDrink retrieves a drink template by ID
func (s *service) GetDrink(ctx context.Context, input *GetDrinkInput) (*GetDrinkOutput, error) {
	d, err := s.fetchDrink(ctx, input.DrinkID)
	if err != nil {
		return nil, err
	}

	return &GetDrinkOutput{Drink: d}, nil
}

// ListDrinks retrieves all drink templates
func (s *service) ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error) {
	output, err := s.drinkRepo.ListDrinks(ctx, &drinkRepo.ListDrinksInput{})
	if err != nil {
		return nil, err
	}

	return &ListDrinksOutput{Drinks: output.Drinks}, nil
}

// UpdateDrink replaces a drink template's fields. Existing transactions keep
// the prices frozen at their creation.
func (s *service) UpdateDrink(ctx context.Context, input *UpdateDrinkInput) (*UpdateDrinkOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	existing, err := s.fetchDrink(ctx, input.DrinkID)
	if err != nil {
		return nil, err
	}

	unit, err := normalizeVolumeUnit(input.VolumeUnit)
	if err != nil {
		return nil, err
	}

	if input.TotalVolume <= 0 {
		return nil, ErrInvalidDrink
	}

	volumeServed := input.VolumeServed
	if volumeServed <= 0 {
		volumeServed = defaultVolumeServed
	}

	updated := &models.Drink{
		ID:           existing.ID,
		Name:         input.Name,
		BaseCost:     input.BaseCost,
		TotalVolume:  input.TotalVolume,
		VolumeUnit:   unit,
		VolumeServed: volumeServed,
		MixerCost:    input.MixerCost,
		FlatCost:     input.FlatCost,
		CreatedAt:    existing.CreatedAt,
	}

	if err := s.drinkRepo.SaveDrink(ctx, &drinkRepo.SaveDrinkInput{Drink: updated}); err != nil {
		return nil, err
	}

	return &UpdateDrinkOutput{Drink: updated}, nil
}

// DeleteDrink removes a drink template. Transactions referencing the drink
// are not cascaded; they keep their frozen prices and remain retrievable.
func (s *service) DeleteDrink(ctx context.Context, input *DeleteDrinkInput) (*DeleteDrinkOutput, error) {
	err := s.drinkRepo.DeleteDrink(ctx, &drinkRepo.DeleteDrinkInput{DrinkID: input.DrinkID})
	if err != nil {
		if errors.Is(err, drinkRepo.ErrDrinkNotFound) {
			return nil, ErrDrinkNotFound
		}
		return nil, err
	}

	return &DeleteDrinkOutput{}, nil
}

// CalculatePrice prices one serving of a drink and returns an itemized breakdown
func (s *service) CalculatePrice(ctx context.Context, input *CalculatePriceInput) (*CalculatePriceOutput, error) {
	d, err := s.fetchDrink(ctx, input.DrinkID)
	if err != nil {
		return nil, err
	}

	total, breakdown, err := pricing.Calculate(d, input.VolumeServed, input.MixerCost, input.FlatCost)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidDrinkVolume) {
			return nil, ErrInvalidDrink
		}
		return nil, err
	}

	return &CalculatePriceOutput{
		CalculatedPrice: total,
		Breakdown:       breakdown,
	}, nil
}

// CreateTransaction records a consumption event. The price is computed once,
// from the drink as it exists right now, and frozen onto the record.
func (s *service) CreateTransaction(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	d, err := s.fetchDrink(ctx, input.DrinkID)
	if err != nil {
		return nil, err
	}

	// Serving parameters fall back to the drink's stored defaults
	volumeServed := d.VolumeServed
	if input.VolumeServed != nil {
		volumeServed = *input.VolumeServed
	}

	mixerCost := d.MixerCost
	if input.MixerCost != nil {
		mixerCost = *input.MixerCost
	}

	flatCost := d.FlatCost
	if input.FlatCost != nil {
		flatCost = *input.FlatCost
	}

	price, _, err := pricing.Calculate(d, volumeServed, mixerCost, flatCost)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidDrinkVolume) {
			return nil, ErrInvalidDrink
		}
		return nil, err
	}

	now := s.clock.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	tx := &models.Transaction{
		ID:              s.uuidGenerator.NewUUID(),
		GuestName:       input.GuestName,
		DrinkID:         input.DrinkID,
		CalculatedPrice: price,
		VolumeServed:    volumeServed,
		MixerCost:       mixerCost,
		FlatCost:        flatCost,
		Date:            date,
		CreatedAt:       now,
	}

	if err := s.transactionRepo.SaveTransaction(ctx, &transactionRepo.SaveTransactionInput{Transaction: tx}); err != nil {
		return nil, err
	}

	return &CreateTransactionOutput{Transaction: tx}, nil
}

// GetTransaction retrieves a transaction by ID
func (s *service) GetTransaction(ctx context.Context, input *GetTransactionInput) (*GetTransactionOutput, error) {
	output, err := s.transactionRepo.GetTransaction(ctx, &transactionRepo.GetTransactionInput{
		TransactionID: input.TransactionID,
	})
	if err != nil {
		if errors.Is(err, transactionRepo.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	return &GetTransactionOutput{Transaction: output.Transaction}, nil
}

// ListTransactions retrieves transactions matching the filter, newest first
func (s *service) ListTransactions(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input == nil {
		input = &ListTransactionsInput{}
	}

	output, err := s.transactionRepo.ListTransactions(ctx, &transactionRepo.ListTransactionsInput{
		GuestName: input.GuestName,
		DrinkID:   input.DrinkID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if err != nil {
		return nil, err
	}

	return &ListTransactionsOutput{Transactions: output.Transactions}, nil
}

// DeleteTransaction removes a transaction by ID
func (s *service) DeleteTransaction(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	err := s.transactionRepo.DeleteTransaction(ctx, &transactionRepo.DeleteTransactionInput{
		TransactionID: input.TransactionID,
	})
	if err != nil {
		if errors.Is(err, transactionRepo.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	return &DeleteTransactionOutput{}, nil
}

// CreatePayment records a payment received from a guest
func (s *service) CreatePayment(ctx context.Context, input *CreatePaymentInput) (*CreatePaymentOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	now := s.clock.Now()
	date := now
	if input.Date != nil {
		date = *input.Date
	}

	p := &models.Payment{
		ID:        s.uuidGenerator.NewUUID(),
		GuestName: input.GuestName,
		Amount:    input.Amount,
		Date:      date,
		Notes:     input.Notes,
		CreatedAt: now,
	}

	if err := s.paymentRepo.SavePayment(ctx, &paymentRepo.SavePaymentInput{Payment: p}); err != nil {
		return nil, err
	}

	return &CreatePaymentOutput{Payment: p}, nil
}

// GetPayment retrieves a payment by ID
func (s *service) GetPayment(ctx context.Context, input *GetPaymentInput) (*GetPaymentOutput, error) {
	output, err := s.paymentRepo.GetPayment(ctx, &paymentRepo.GetPaymentInput{
		PaymentID: input.PaymentID,
	})
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	return &GetPaymentOutput{Payment: output.Payment}, nil
}

// ListPayments retrieves payments matching the filter, newest first
func (s *service) ListPayments(ctx context.Context, input *ListPaymentsInput) (*ListPaymentsOutput, error) {
	if input == nil {
		input = &ListPaymentsInput{}
	}

	output, err := s.paymentRepo.ListPayments(ctx, &paymentRepo.ListPaymentsInput{
		GuestName: input.GuestName,
	})
	if err != nil {
		return nil, err
	}

	return &ListPaymentsOutput{Payments: output.Payments}, nil
}

// DeletePayment removes a payment by ID
func (s *service) DeletePayment(ctx context.Context, input *DeletePaymentInput) (*DeletePaymentOutput, error) {
	err := s.paymentRepo.DeletePayment(ctx, &paymentRepo.DeletePaymentInput{
		PaymentID: input.PaymentID,
	})
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	return &DeletePaymentOutput{}, nil
}

// GetGuestBalances computes balances for every guest that appears in either
// the transaction or the payment history, largest debt first
func (s *service) GetGuestBalances(ctx context.Context, input *GetGuestBalancesInput) (*GetGuestBalancesOutput, error) {
	transactions, err := s.transactionRepo.ListTransactions(ctx, &transactionRepo.ListTransactionsInput{})
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.ListPayments(ctx, &paymentRepo.ListPaymentsInput{})
	if err != nil {
		return nil, err
	}

	return &GetGuestBalancesOutput{
		Balances: ledger.AggregateBalances(transactions.Transactions, payments.Payments),
	}, nil
}

// GetGuestBalance computes the balance for one guest. The name matches
// exactly; an unknown guest yields a zero-valued balance.
func (s *service) GetGuestBalance(ctx context.Context, input *GetGuestBalanceInput) (*GetGuestBalanceOutput, error) {
	transactions, err := s.transactionRepo.GetTransactionsForGuest(ctx, &transactionRepo.GetTransactionsForGuestInput{
		GuestName: input.GuestName,
	})
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.GetPaymentsForGuest(ctx, &paymentRepo.GetPaymentsForGuestInput{
		GuestName: input.GuestName,
	})
	if err != nil {
		return nil, err
	}

	return &GetGuestBalanceOutput{
		Balance: ledger.GuestBalance(input.GuestName, transactions.Transactions, payments.Payments),
	}, nil
}

// fetchDrink loads a drink, translating the repository's not-found error
func (s *service) fetchDrink(ctx context.Context, drinkID string) (*models.Drink, error) {
	output, err := s.drinkRepo.GetDrink(ctx, &drinkRepo.GetDrinkInput{DrinkID: drinkID})
	if err != nil {
		if errors.Is(err, drinkRepo.ErrDrinkNotFound) {
			return nil, ErrDrinkNotFound
		}
		return nil, err
	}

	return output.Drink, nil
}

func normalizeVolumeUnit(unit models.VolumeUnit) (models.VolumeUnit, error) {
	switch unit {
	case "":
		return models.VolumeUnitMilliliter, nil
	case models.VolumeUnitMilliliter, models.VolumeUnitFluidOunce:
		return unit, nil
	default:
		return "", ErrInvalidVolumeUnit
	}
}
