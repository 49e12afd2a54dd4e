package ledger

import (
	"sort"

	"github.com/barledger/bartab/internal/models"
	"github.com/barledger/bartab/internal/pricing"
)

// AggregateBalances reduces transaction and payment histories into per-guest
// balances. The guest set is the union of guest names on both sides, so a
// guest with payments but no transactions (or vice versa) still appears with
// the missing side at zero. Each side is rounded independently before
// subtracting. Results are ordered by balance descending, then guest name
// ascending.
func AggregateBalances(transactions []*models.Transaction, payments []*models.Payment) []*models.GuestBalance {
	owed := make(map[string]float64)
	for _, tx := range transactions {
		owed[tx.GuestName] += tx.CalculatedPrice
	}

	paid := make(map[string]float64)
	for _, p := range payments {
		paid[p.GuestName] += p.Amount
	}

	guests := make(map[string]struct{}, len(owed)+len(paid))
	for name := range owed {
		guests[name] = struct{}{}
	}
	for name := range paid {
		guests[name] = struct{}{}
	}

	balances := make([]*models.GuestBalance, 0, len(guests))
	for name := range guests {
		balances = append(balances, balanceFor(name, owed[name], paid[name]))
	}

	sort.Slice(balances, func(i, j int) bool {
		if balances[i].Balance != balances[j].Balance {
			return balances[i].Balance > balances[j].Balance
		}
		return balances[i].GuestName < balances[j].GuestName
	})

	return balances
}

// GuestBalance computes the balance for a single guest from records already
// scoped to that guest. An unknown guest yields a zero-valued balance.
func GuestBalance(guestName string, transactions []*models.Transaction, payments []*models.Payment) *models.GuestBalance {
	var owed, paid float64
	for _, tx := range transactions {
		owed += tx.CalculatedPrice
	}
	for _, p := range payments {
		paid += p.Amount
	}

	return balanceFor(guestName, owed, paid)
}

func balanceFor(name string, owed, paid float64) *models.GuestBalance {
	totalOwed := pricing.Round2(owed)
	totalPaid := pricing.Round2(paid)

	return &models.GuestBalance{
		GuestName: name,
		TotalOwed: totalOwed,
		TotalPaid: totalPaid,
		Balance:   pricing.Round2(totalOwed - totalPaid),
	}
}
