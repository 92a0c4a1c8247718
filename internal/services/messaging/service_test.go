package messaging

import (
	"context"
	"sync"
	"testing"

	"github.com/KirkDiggler/drinktracker/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service Service
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	svc, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.service = svc
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestDrinkLoggedMessage() {
	for _, drinkType := range models.AllDrinkTypes {
		out, err := s.service.GetDrinkLoggedMessage(s.ctx, &GetDrinkLoggedMessageInput{
			FriendName: "Ada",
			DrinkType:  drinkType,
			TodayCount: 1,
		})
		s.Require().NoError(err)

		s.Equal(drinkType.Label()+" logged", out.Title)
		s.Contains(drinkMessages("Ada", drinkType), out.Message)
		s.Equal(ToneFunny, out.Tone)
	}
}

func (s *MessagingServiceTestSuite) TestDrinkLoggedNeutralTone() {
	out, err := s.service.GetDrinkLoggedMessage(s.ctx, &GetDrinkLoggedMessageInput{
		FriendName:    "Io",
		DrinkType:     models.DrinkTypeShot,
		TodayCount:    2,
		PreferredTone: ToneNeutral,
	})
	s.Require().NoError(err)

	s.Equal("Logged a Shot for Io.", out.Message)
	s.Equal(ToneNeutral, out.Tone)
}

func (s *MessagingServiceTestSuite) TestDrinkLoggedHeavyDay() {
	out, err := s.service.GetDrinkLoggedMessage(s.ctx, &GetDrinkLoggedMessageInput{
		FriendName: "Io",
		DrinkType:  models.DrinkTypeBeer,
		TodayCount: heavyDayThreshold,
	})
	s.Require().NoError(err)

	s.Equal(ToneEncouraging, out.Tone)
	s.Contains(out.Message, "Io")
	s.Contains(out.Message, "6")
}

func (s *MessagingServiceTestSuite) TestSeedMakesSelectionRepeatable() {
	other, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)

	input := &GetDrinkLoggedMessageInput{FriendName: "Ada", DrinkType: models.DrinkTypeBeer}
	for i := 0; i < 5; i++ {
		a, err := s.service.GetDrinkLoggedMessage(s.ctx, input)
		s.Require().NoError(err)
		b, err := other.GetDrinkLoggedMessage(s.ctx, input)
		s.Require().NoError(err)
		s.Equal(a.Message, b.Message)
	}
}

func (s *MessagingServiceTestSuite) TestFriendMessages() {
	added, err := s.service.GetFriendAddedMessage(s.ctx, &GetFriendAddedMessageInput{FriendName: "Lin"})
	s.Require().NoError(err)
	s.Contains(added.Message, "Lin")

	removed, err := s.service.GetFriendRemovedMessage(s.ctx, &GetFriendRemovedMessageInput{FriendName: "Lin", PurgedDrinks: 3})
	s.Require().NoError(err)
	s.Contains(removed.Message, "Lin")
	s.Contains(removed.Message, "3 drinks")

	sober, err := s.service.GetFriendRemovedMessage(s.ctx, &GetFriendRemovedMessageInput{FriendName: "Lin"})
	s.Require().NoError(err)
	s.NotContains(sober.Message, "drinks")
}

func (s *MessagingServiceTestSuite) TestErrorMessages() {
	seen := make(map[string]bool)
	for _, errorType := range []string{ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvariantViolation, ErrorTypeInternal} {
		out, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: errorType})
		s.Require().NoError(err)
		s.NotEmpty(out.Message)
		s.Equal(ToneFunny, out.Tone)
		s.False(seen[out.Message], "error types should not share messages")
		seen[out.Message] = true
	}
}

func (s *MessagingServiceTestSuite) TestNilInput() {
	_, err := s.service.GetDrinkLoggedMessage(s.ctx, nil)
	s.Error(err)

	_, err = s.service.GetErrorMessage(s.ctx, nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestConcurrentUse() {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: ErrorTypeNotFound})
			}
		}()
	}
	wg.Wait()
}
