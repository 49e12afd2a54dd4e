package drink

import (
	"context"
	"testing"
	"time"

	"github.com/barledger/bartab/internal/models"
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

func (s *RedisRepositoryTestSuite) testDrink() *models.Drink {
	return &models.Drink{
		ID:           "test-drink-id",
		Name:         "House Vodka",
		BaseCost:     84.0,
		TotalVolume:  1750,
		VolumeUnit:   models.VolumeUnitMilliliter,
		VolumeServed: 2.5,
		MixerCost:    0.60,
		FlatCost:     0.20,
		CreatedAt:    s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetDrink() {
	err := s.repo.SaveDrink(context.Background(), &SaveDrinkInput{
		Drink: s.testDrink(),
	})
	s.Require().NoError(err)

	output, err := s.repo.GetDrink(context.Background(), &GetDrinkInput{
		DrinkID: "test-drink-id",
	})
	s.Require().NoError(err)

	s.Equal("test-drink-id", output.Drink.ID)
	s.Equal("House Vodka", output.Drink.Name)
	s.Equal(84.0, output.Drink.BaseCost)
	s.Equal(1750.0, output.Drink.TotalVolume)
	s.Equal(models.VolumeUnitMilliliter, output.Drink.VolumeUnit)
	s.Equal(2.5, output.Drink.VolumeServed)
	s.Equal(s.testNow.Unix(), output.Drink.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetDrinkNotFound() {
	_, err := s.repo.GetDrink(context.Background(), &GetDrinkInput{
		DrinkID: "missing",
	})
	s.Require().ErrorIs(err, ErrDrinkNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwritesExistingDrink() {
	d := s.testDrink()
	err := s.repo.SaveDrink(context.Background(), &SaveDrinkInput{Drink: d})
	s.Require().NoError(err)

	d.BaseCost = 99.0
	err = s.repo.SaveDrink(context.Background(), &SaveDrinkInput{Drink: d})
	s.Require().NoError(err)

	output, err := s.repo.GetDrink(context.Background(), &GetDrinkInput{DrinkID: d.ID})
	s.Require().NoError(err)
	s.Equal(99.0, output.Drink.BaseCost)

	list, err := s.repo.ListDrinks(context.Background(), &ListDrinksInput{})
	s.Require().NoError(err)
	s.Len(list.Drinks, 1)
}

func (s *RedisRepositoryTestSuite) TestListDrinksOrderedByCreation() {
	first := s.testDrink()
	second := s.testDrink()
	second.ID = "second-drink-id"
	second.Name = "Well Whiskey"
	second.CreatedAt = s.testNow.Add(time.Hour)

	s.Require().NoError(s.repo.SaveDrink(context.Background(), &SaveDrinkInput{Drink: first}))
	s.Require().NoError(s.repo.SaveDrink(context.Background(), &SaveDrinkInput{Drink: second}))

	output, err := s.repo.ListDrinks(context.Background(), &ListDrinksInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Drinks, 2)

	s.Equal("test-drink-id", output.Drinks[0].ID)
	s.Equal("second-drink-id", output.Drinks[1].ID)
}

func (s *RedisRepositoryTestSuite) TestListDrinksEmpty() {
	output, err := s.repo.ListDrinks(context.Background(), &ListDrinksInput{})
	s.Require().NoError(err)
	s.Empty(output.Drinks)
}

func (s *RedisRepositoryTestSuite) TestDeleteDrink() {
	s.Require().NoError(s.repo.SaveDrink(context.Background(), &SaveDrinkInput{Drink: s.testDrink()}))

	err := s.repo.DeleteDrink(context.Background(), &DeleteDrinkInput{DrinkID: "test-drink-id"})
	s.Require().NoError(err)

	_, err = s.repo.GetDrink(context.Background(), &GetDrinkInput{DrinkID: "test-drink-id"})
	s.Require().ErrorIs(err, ErrDrinkNotFound)

	output, err := s.repo.ListDrinks(context.Background(), &ListDrinksInput{})
	s.Require().NoError(err)
	s.Empty(output.Drinks)
}

func (s *RedisRepositoryTestSuite) TestDeleteDrinkNotFound() {
	err := s.repo.DeleteDrink(context.Background(), &DeleteDrinkInput{DrinkID: "missing"})
	s.Require().ErrorIs(err, ErrDrinkNotFound)
}
