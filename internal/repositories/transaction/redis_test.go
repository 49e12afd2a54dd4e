package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/barledger/bartab/internal/models"
	drinkRepo "github.com/barledger/bartab/internal/repositories/drink"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 14, 20, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) saveTransaction(id, guestName, drinkID string, price float64, date time.Time) {
	err := s.repo.SaveTransaction(context.Background(), &SaveTransactionInput{
		Transaction: &models.Transaction{
			ID:              id,
			GuestName:       guestName,
			DrinkID:         drinkID,
			CalculatedPrice: price,
			VolumeServed:    2.5,
			MixerCost:       0.60,
			FlatCost:        0.20,
			Date:            date,
			CreatedAt:       date,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetTransaction() {
	s.saveTransaction("tx-1", "John Doe", "drink-1", 4.35, s.testNow)

	output, err := s.repo.GetTransaction(context.Background(), &GetTransactionInput{
		TransactionID: "tx-1",
	})
	s.Require().NoError(err)

	s.Equal("tx-1", output.Transaction.ID)
	s.Equal("John Doe", output.Transaction.GuestName)
	s.Equal("drink-1", output.Transaction.DrinkID)
	s.Equal(4.35, output.Transaction.CalculatedPrice)
	s.Equal(2.5, output.Transaction.VolumeServed)
	s.Equal(s.testNow.Unix(), output.Transaction.Date.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetTransactionNotFound() {
	_, err := s.repo.GetTransaction(context.Background(), &GetTransactionInput{
		TransactionID: "missing",
	})
	s.Require().ErrorIs(err, ErrTransactionNotFound)
}

func (s *RedisRepositoryTestSuite) TestListTransactionsNewestFirst() {
	s.saveTransaction("tx-1", "John Doe", "drink-1", 4.35, s.testNow)
	s.saveTransaction("tx-2", "Jane Doe", "drink-1", 2.10, s.testNow.Add(time.Minute))
	s.saveTransaction("tx-3", "John Doe", "drink-2", 3.31, s.testNow.Add(2*time.Minute))

	output, err := s.repo.ListTransactions(context.Background(), &ListTransactionsInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Transactions, 3)

	s.Equal("tx-3", output.Transactions[0].ID)
	s.Equal("tx-2", output.Transactions[1].ID)
	s.Equal("tx-1", output.Transactions[2].ID)
}

func (s *RedisRepositoryTestSuite) TestListTransactionsGuestNameSubstring() {
	s.saveTransaction("tx-1", "John Doe", "drink-1", 4.35, s.testNow)
	s.saveTransaction("tx-2", "Jane Smith", "drink-1", 2.10, s.testNow.Add(time.Minute))

	// Case-insensitive substring match
	output, err := s.repo.ListTransactions(context.Background(), &ListTransactionsInput{
		GuestName: "john",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Transactions, 1)
	s.Equal("tx-1", output.Transactions[0].ID)

	output, err = s.repo.ListTransactions(context.Background(), &ListTransactionsInput{
		GuestName: "DOE",
	})
	s.Require().NoError(err)
	s.Len(output.Transactions, 1)
}

func (s *RedisRepositoryTestSuite) TestListTransactionsByDrink() {
	s.saveTransaction("tx-1", "John Doe", "drink-1", 4.35, s.testNow)
	s.saveTransaction("tx-2", "John Doe", "drink-2", 2.10, s.testNow.Add(time.Minute))

	output, err := s.repo.ListTransactions(context.Background(), &ListTransactionsInput{
		DrinkID: "drink-2",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Transactions, 1)
	s.Equal("tx-2", output.Transactions[0].ID)
}

func (s *RedisRepositoryTestSuite) TestListTransactionsDateRange() {
	s.saveTransaction("tx-1", "John Doe", "drink-1", 4.35, s.testNow)
	s.saveTransaction("tx-2", "John Doe", "drink-1", 2.10, s.testNow.Add(time.Hour))
	s.saveTransaction("tx-3", "John Doe", "drink-1", 3.31, s.testNow.Add(2*time.Hour))

	start := s.testNow.Add(30 * time.Minute)
	end := s.testNow.Add(90 * time.Minute)

	output, err := s.repo.ListTransactions(context.Background(), &ListTransactionsInput{
		StartDate: &start,
		EndDate:   &end,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Transactions, 1)
	s.Equal("tx-2", output.Transactions[0].ID)

	// Bounds are inclusive
	exact := s.testNow.Add(time.Hour)
	output, err = s.repo.ListTransactions(context.Background(), &ListTransactionsInput{
		StartDate: &exact,
		EndDate:   &exact,
	})
	s.Require().NoError(err)
	s.Len(output.Transactions, 1)
}

func (s *RedisRepositoryTestSuite) TestGetTransactionsForGuestExactMatch() {
	s.saveTransaction("tx-1", "John Doe", "drink-1", 4.35, s.testNow)
	s.saveTransaction("tx-2", "John", "drink-1", 2.10, s.testNow.Add(time.Minute))

	// Exact match only, unlike the list filter
	output, err := s.repo.GetTransactionsForGuest(context.Background(), &GetTransactionsForGuestInput{
		GuestName: "John",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Transactions, 1)
	s.Equal("tx-2", output.Transactions[0].ID)
}

func (s *RedisRepositoryTestSuite) TestDeleteTransaction() {
	s.saveTransaction("tx-1", "John Doe", "drink-1", 4.35, s.testNow)
	s.saveTransaction("tx-2", "John Doe", "drink-1", 2.10, s.testNow.Add(time.Minute))

	err := s.repo.DeleteTransaction(context.Background(), &DeleteTransactionInput{
		TransactionID: "tx-1",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetTransaction(context.Background(), &GetTransactionInput{TransactionID: "tx-1"})
	s.Require().ErrorIs(err, ErrTransactionNotFound)

	output, err := s.repo.GetTransactionsForGuest(context.Background(), &GetTransactionsForGuestInput{
		GuestName: "John Doe",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Transactions, 1)
	s.Equal("tx-2", output.Transactions[0].ID)
}

func (s *RedisRepositoryTestSuite) TestDeleteTransactionNotFound() {
	err := s.repo.DeleteTransaction(context.Background(), &DeleteTransactionInput{
		TransactionID: "missing",
	})
	s.Require().ErrorIs(err, ErrTransactionNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeletingDrinkLeavesTransactionsIntact() {
	drinks, err := drinkRepo.NewRedis(&drinkRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	err = drinks.SaveDrink(context.Background(), &drinkRepo.SaveDrinkInput{
		Drink: &models.Drink{
			ID:          "drink-1",
			Name:        "House Vodka",
			BaseCost:    84.0,
			TotalVolume: 1750,
			VolumeUnit:  models.VolumeUnitMilliliter,
			CreatedAt:   s.testNow,
		},
	})
	s.Require().NoError(err)

	s.saveTransaction("tx-1", "John Doe", "drink-1", 4.35, s.testNow)

	err = drinks.DeleteDrink(context.Background(), &drinkRepo.DeleteDrinkInput{DrinkID: "drink-1"})
	s.Require().NoError(err)

	_, err = drinks.GetDrink(context.Background(), &drinkRepo.GetDrinkInput{DrinkID: "drink-1"})
	s.Require().ErrorIs(err, drinkRepo.ErrDrinkNotFound)

	// The transaction referencing the deleted drink is unchanged
	output, err := s.repo.GetTransaction(context.Background(), &GetTransactionInput{TransactionID: "tx-1"})
	s.Require().NoError(err)
	s.Equal("drink-1", output.Transaction.DrinkID)
	s.Equal(4.35, output.Transaction.CalculatedPrice)
}
