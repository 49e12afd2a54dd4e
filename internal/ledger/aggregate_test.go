package ledger

import (
	"testing"

	"github.com/barledger/bartab/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateBalancesEmpty(t *testing.T) {
	balances := AggregateBalances(nil, nil)
	assert.Empty(t, balances)
}

func TestAggregateBalancesSingleGuest(t *testing.T) {
	transactions := []*models.Transaction{
		{GuestName: "John Doe", CalculatedPrice: 4.35},
		{GuestName: "John Doe", CalculatedPrice: 2.10},
	}
	payments := []*models.Payment{
		{GuestName: "John Doe", Amount: 25.50},
	}

	balances := AggregateBalances(transactions, payments)
	require.Len(t, balances, 1)

	assert.Equal(t, "John Doe", balances[0].GuestName)
	assert.Equal(t, 6.45, balances[0].TotalOwed)
	assert.Equal(t, 25.50, balances[0].TotalPaid)
	assert.Equal(t, -19.05, balances[0].Balance)
}

func TestAggregateBalancesUnionOfGuests(t *testing.T) {
	transactions := []*models.Transaction{
		{GuestName: "Alice", CalculatedPrice: 10.00},
	}
	payments := []*models.Payment{
		{GuestName: "Bob", Amount: 5.00},
	}

	balances := AggregateBalances(transactions, payments)
	require.Len(t, balances, 2)

	// Alice owes, Bob is in credit, so Alice sorts first
	assert.Equal(t, "Alice", balances[0].GuestName)
	assert.Equal(t, 10.00, balances[0].TotalOwed)
	assert.Equal(t, 0.0, balances[0].TotalPaid)
	assert.Equal(t, 10.00, balances[0].Balance)

	assert.Equal(t, "Bob", balances[1].GuestName)
	assert.Equal(t, 0.0, balances[1].TotalOwed)
	assert.Equal(t, 5.00, balances[1].TotalPaid)
	assert.Equal(t, -5.00, balances[1].Balance)
}

func TestAggregateBalancesSortOrder(t *testing.T) {
	transactions := []*models.Transaction{
		{GuestName: "Carol", CalculatedPrice: 3.00},
		{GuestName: "Dave", CalculatedPrice: 3.00},
		{GuestName: "Erin", CalculatedPrice: 9.00},
	}

	balances := AggregateBalances(transactions, nil)
	require.Len(t, balances, 3)

	// Largest debt first, ties broken by guest name ascending
	assert.Equal(t, "Erin", balances[0].GuestName)
	assert.Equal(t, "Carol", balances[1].GuestName)
	assert.Equal(t, "Dave", balances[2].GuestName)
}

func TestAggregateBalancesRoundsEachSideIndependently(t *testing.T) {
	transactions := []*models.Transaction{
		{GuestName: "Frank", CalculatedPrice: 1.114},
		{GuestName: "Frank", CalculatedPrice: 1.114},
	}
	payments := []*models.Payment{
		{GuestName: "Frank", Amount: 2.2251},
	}

	balances := AggregateBalances(transactions, payments)
	require.Len(t, balances, 1)

	// Owed 2.23 and paid 2.23 once each side is rounded on its own
	assert.Equal(t, 2.23, balances[0].TotalOwed)
	assert.Equal(t, 2.23, balances[0].TotalPaid)
	assert.Equal(t, 0.0, balances[0].Balance)
}

func TestGuestBalance(t *testing.T) {
	transactions := []*models.Transaction{
		{GuestName: "John Doe", CalculatedPrice: 4.35},
		{GuestName: "John Doe", CalculatedPrice: 2.10},
	}
	payments := []*models.Payment{
		{GuestName: "John Doe", Amount: 25.50},
	}

	balance := GuestBalance("John Doe", transactions, payments)
	assert.Equal(t, "John Doe", balance.GuestName)
	assert.Equal(t, 6.45, balance.TotalOwed)
	assert.Equal(t, 25.50, balance.TotalPaid)
	assert.Equal(t, -19.05, balance.Balance)
}

func TestGuestBalanceUnknownGuest(t *testing.T) {
	balance := GuestBalance("Nobody", nil, nil)
	assert.Equal(t, "Nobody", balance.GuestName)
	assert.Equal(t, 0.0, balance.TotalOwed)
	assert.Equal(t, 0.0, balance.TotalPaid)
	assert.Equal(t, 0.0, balance.Balance)
}

func TestBalanceConservation(t *testing.T) {
	transactions := []*models.Transaction{
		{GuestName: "Grace", CalculatedPrice: 4.35},
	}

	before := GuestBalance("Grace", transactions, nil)
	assert.Equal(t, 4.35, before.Balance)

	// Adding a payment of p decreases the balance by p
	payments := []*models.Payment{{GuestName: "Grace", Amount: 3.00}}
	after := GuestBalance("Grace", transactions, payments)
	assert.Equal(t, 1.35, after.Balance)

	// Adding a transaction of price q increases the balance by q
	transactions = append(transactions, &models.Transaction{GuestName: "Grace", CalculatedPrice: 2.10})
	final := GuestBalance("Grace", transactions, payments)
	assert.Equal(t, 3.45, final.Balance)
}
