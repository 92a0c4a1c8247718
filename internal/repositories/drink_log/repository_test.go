package drink_log

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/drinktracker/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() Repository
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() Repository { return NewMemory() },
	})
}

type RedisRepositoryTestSuite struct {
	RepositoryTestSuite
	mr     *miniredis.Miniredis
	client *redis.Client
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.newRepo = func() Repository {
		repo, err := NewRedis(&Config{RedisClient: s.client})
		s.Require().NoError(err)
		return repo
	}
	s.RepositoryTestSuite.SetupTest()
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestPurgeClearsIndexes() {
	s.appendDrink("d1", "f1", 0)
	s.appendDrink("d2", "f2", time.Minute)

	_, err := s.repo.PurgeDrinksForFriend(s.ctx, &PurgeDrinksForFriendInput{FriendID: "f1"})
	s.Require().NoError(err)

	s.False(s.mr.Exists("drink:d1"))
	s.False(s.mr.Exists("friend_drinks:f1"))
	order, err := s.mr.List("drink_order")
	s.Require().NoError(err)
	s.Equal([]string{"d2"}, order)
	members, err := s.mr.ZMembers("drinks_by_time")
	s.Require().NoError(err)
	s.Equal([]string{"d2"}, members)
}

func (s *RedisRepositoryTestSuite) TestStoresDrinkAsJSON() {
	s.Require().NoError(s.repo.AppendDrink(s.ctx, &AppendDrinkInput{
		Drink: &models.DrinkEvent{
			ID:                      "d1",
			FriendID:                "f1",
			DrinkType:               models.DrinkTypeShot,
			Timestamp:               s.testNow,
			AlcoholPercentAtLogTime: 40,
		},
	}))

	raw, err := s.mr.Get("drink:d1")
	s.Require().NoError(err)
	s.JSONEq(`{
		"id": "d1",
		"personId": "f1",
		"drinkType": "shot",
		"timestamp": "2025-04-05T10:00:00Z",
		"alcoholPercentAtLogTime": 40
	}`, raw)
}

func (s *RepositoryTestSuite) appendDrink(id, friendID string, offset time.Duration) {
	s.Require().NoError(s.repo.AppendDrink(s.ctx, &AppendDrinkInput{
		Drink: &models.DrinkEvent{
			ID:                      id,
			FriendID:                friendID,
			DrinkType:               models.DrinkTypeBeer,
			Timestamp:               s.testNow.Add(offset),
			AlcoholPercentAtLogTime: 4.5,
		},
	}))
}

func ids(drinks []*models.DrinkEvent) []string {
	out := make([]string, 0, len(drinks))
	for _, d := range drinks {
		out = append(out, d.ID)
	}
	return out
}

func (s *RepositoryTestSuite) TestAppendAndList() {
	s.appendDrink("d1", "f1", 0)
	s.appendDrink("d2", "f2", time.Minute)
	s.appendDrink("d3", "f1", 2*time.Minute)

	out, err := s.repo.ListDrinks(s.ctx, &ListDrinksInput{})
	s.Require().NoError(err)
	s.Equal([]string{"d1", "d2", "d3"}, ids(out.Drinks))

	first := out.Drinks[0]
	s.Equal("f1", first.FriendID)
	s.Equal(models.DrinkTypeBeer, first.DrinkType)
	s.True(s.testNow.Equal(first.Timestamp))
	s.Equal(4.5, first.AlcoholPercentAtLogTime)
}

func (s *RepositoryTestSuite) TestListEmpty() {
	out, err := s.repo.ListDrinks(s.ctx, &ListDrinksInput{})
	s.Require().NoError(err)
	s.Empty(out.Drinks)
}

func (s *RepositoryTestSuite) TestAppendRejectsInvalidInput() {
	s.Error(s.repo.AppendDrink(s.ctx, nil))
	s.Error(s.repo.AppendDrink(s.ctx, &AppendDrinkInput{}))
	s.Error(s.repo.AppendDrink(s.ctx, &AppendDrinkInput{Drink: &models.DrinkEvent{FriendID: "f1", Timestamp: s.testNow}}))
	s.Error(s.repo.AppendDrink(s.ctx, &AppendDrinkInput{Drink: &models.DrinkEvent{ID: "d1", Timestamp: s.testNow}}))
	s.Error(s.repo.AppendDrink(s.ctx, &AppendDrinkInput{Drink: &models.DrinkEvent{ID: "d1", FriendID: "f1"}}))
}

func (s *RepositoryTestSuite) TestAppendRejectsDuplicateID() {
	s.appendDrink("d1", "f1", 0)

	err := s.repo.AppendDrink(s.ctx, &AppendDrinkInput{
		Drink: &models.DrinkEvent{ID: "d1", FriendID: "f2", Timestamp: s.testNow},
	})
	s.ErrorIs(err, ErrDuplicateDrink)

	out, err := s.repo.ListDrinks(s.ctx, &ListDrinksInput{})
	s.Require().NoError(err)
	s.Len(out.Drinks, 1)
}

func (s *RepositoryTestSuite) TestGetDrinksForFriend() {
	s.appendDrink("d1", "f1", 0)
	s.appendDrink("d2", "f2", time.Minute)
	s.appendDrink("d3", "f1", 2*time.Minute)

	out, err := s.repo.GetDrinksForFriend(s.ctx, &GetDrinksForFriendInput{FriendID: "f1"})
	s.Require().NoError(err)
	s.Equal([]string{"d1", "d3"}, ids(out.Drinks))

	out, err = s.repo.GetDrinksForFriend(s.ctx, &GetDrinksForFriendInput{FriendID: "nobody"})
	s.Require().NoError(err)
	s.Empty(out.Drinks)
}

func (s *RepositoryTestSuite) TestGetDrinksSinceIsInclusive() {
	s.appendDrink("before", "f1", -time.Millisecond)
	s.appendDrink("at", "f1", 0)
	s.appendDrink("after", "f2", time.Hour)

	out, err := s.repo.GetDrinksSince(s.ctx, &GetDrinksSinceInput{Since: s.testNow})
	s.Require().NoError(err)
	s.Equal([]string{"at", "after"}, ids(out.Drinks))
}

func (s *RepositoryTestSuite) TestGetDrinksSinceSubMillisecond() {
	s.appendDrink("early", "f1", 100*time.Microsecond)
	s.appendDrink("late", "f1", 900*time.Microsecond)

	out, err := s.repo.GetDrinksSince(s.ctx, &GetDrinksSinceInput{Since: s.testNow.Add(500 * time.Microsecond)})
	s.Require().NoError(err)
	s.Equal([]string{"late"}, ids(out.Drinks))
}

func (s *RepositoryTestSuite) TestPurgeDrinksForFriend() {
	s.appendDrink("d1", "f1", 0)
	s.appendDrink("d2", "f2", time.Minute)
	s.appendDrink("d3", "f1", 2*time.Minute)
	s.appendDrink("d4", "f1", 3*time.Minute)

	out, err := s.repo.PurgeDrinksForFriend(s.ctx, &PurgeDrinksForFriendInput{FriendID: "f1"})
	s.Require().NoError(err)
	s.Equal(3, out.Purged)

	friendDrinks, err := s.repo.GetDrinksForFriend(s.ctx, &GetDrinksForFriendInput{FriendID: "f1"})
	s.Require().NoError(err)
	s.Empty(friendDrinks.Drinks)

	all, err := s.repo.ListDrinks(s.ctx, &ListDrinksInput{})
	s.Require().NoError(err)
	s.Equal([]string{"d2"}, ids(all.Drinks))

	since, err := s.repo.GetDrinksSince(s.ctx, &GetDrinksSinceInput{Since: s.testNow.Add(-time.Hour)})
	s.Require().NoError(err)
	s.Equal([]string{"d2"}, ids(since.Drinks))
}

func (s *RepositoryTestSuite) TestPurgeUnknownFriend() {
	s.appendDrink("d1", "f1", 0)

	out, err := s.repo.PurgeDrinksForFriend(s.ctx, &PurgeDrinksForFriendInput{FriendID: "nobody"})
	s.Require().NoError(err)
	s.Equal(0, out.Purged)
}

func (s *RepositoryTestSuite) TestPurgeRejectsEmptyFriendID() {
	_, err := s.repo.PurgeDrinksForFriend(s.ctx, &PurgeDrinksForFriendInput{})
	s.Error(err)
}
