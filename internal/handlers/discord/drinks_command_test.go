package discord

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/KirkDiggler/drinktracker/internal/common/clock/mocks"
	"github.com/KirkDiggler/drinktracker/internal/common/uuid"
	"github.com/KirkDiggler/drinktracker/internal/models"
	drinkConfigRepo "github.com/KirkDiggler/drinktracker/internal/repositories/drink_config"
	drinkLogRepo "github.com/KirkDiggler/drinktracker/internal/repositories/drink_log"
	friendRepo "github.com/KirkDiggler/drinktracker/internal/repositories/friend"
	"github.com/KirkDiggler/drinktracker/internal/services/messaging"
	"github.com/KirkDiggler/drinktracker/internal/services/tracker"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DrinksCommandTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	ctx       context.Context

	trackerService tracker.Service
	command        *DrinksCommand

	// Test data
	now    time.Time
	userID string
}

func (s *DrinksCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.userID = "user-1"

	loc := time.FixedZone("UTC-3", -3*60*60)
	s.now = time.Date(2025, 6, 21, 14, 32, 0, 0, loc)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	trackerService, err := tracker.New(s.ctx, &tracker.Config{
		Location:        loc,
		FriendRepo:      friendRepo.NewMemory(),
		DrinkLogRepo:    drinkLogRepo.NewMemory(),
		DrinkConfigRepo: drinkConfigRepo.NewMemory(),
		Clock:           s.mockClock,
		UUIDGenerator:   uuid.New(),
	})
	s.Require().NoError(err)
	s.trackerService = trackerService

	messagingService, err := messaging.NewService(&messaging.ServiceConfig{Seed: 7})
	s.Require().NoError(err)

	s.command, err = NewDrinksCommand(&DrinksCommandConfig{
		TrackerService:   s.trackerService,
		MessagingService: messagingService,
	})
	s.Require().NoError(err)
}

func (s *DrinksCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDrinksCommandTestSuite(t *testing.T) {
	suite.Run(t, new(DrinksCommandTestSuite))
}

func subcommand(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) discordgo.ApplicationCommandInteractionData {
	return discordgo.ApplicationCommandInteractionData{
		Name: "drinks",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{
				Name:    name,
				Type:    discordgo.ApplicationCommandOptionSubCommand,
				Options: opts,
			},
		},
	}
}

func stringOpt(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func numberOpt(name string, value float64) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionNumber,
		Value: value,
	}
}

func (s *DrinksCommandTestSuite) run(name string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *response {
	resp := s.command.run(s.ctx, s.userID, subcommand(name, opts...))
	s.Require().NotNil(resp)
	return resp
}

func (s *DrinksCommandTestSuite) friends() []*models.Friend {
	out, err := s.trackerService.ListFriends(s.ctx, &tracker.ListFriendsInput{})
	s.Require().NoError(err)
	return out.Friends
}

func (s *DrinksCommandTestSuite) drinksFor(friendID string) []*models.DrinkEvent {
	out, err := s.trackerService.GetDrinksForFriend(s.ctx, &tracker.GetDrinksForFriendInput{FriendID: friendID})
	s.Require().NoError(err)
	return out.Drinks
}

func (s *DrinksCommandTestSuite) requireError(resp *response) *discordgo.MessageEmbed {
	s.Require().Len(resp.embeds, 1)
	s.Require().Equal("Error", resp.embeds[0].Title)
	s.True(resp.ephemeral)
	return resp.embeds[0]
}

func (s *DrinksCommandTestSuite) TestCommandDefinition() {
	cmd := s.command.GetCommand()
	s.Equal("drinks", cmd.Name)

	var names []string
	for _, opt := range cmd.Options {
		s.Equal(discordgo.ApplicationCommandOptionSubCommand, opt.Type)
		names = append(names, opt.Name)
	}
	s.Equal([]string{"friends", "add-friend", "remove-friend", "select", "log", "stats", "hourly", "settings"}, names)

	logCmd := cmd.Options[4]
	s.Require().Len(logCmd.Options[0].Choices, 3)
	s.Equal("beer", logCmd.Options[0].Choices[1].Value)
}

func (s *DrinksCommandTestSuite) TestNewDrinksCommandValidatesConfig() {
	_, err := NewDrinksCommand(nil)
	s.Error(err)

	_, err = NewDrinksCommand(&DrinksCommandConfig{TrackerService: s.trackerService})
	s.Error(err)

	_, err = NewDrinksCommand(&DrinksCommandConfig{MessagingService: s.command.messagingService})
	s.Error(err)
}

func (s *DrinksCommandTestSuite) TestFriendsMarksSelection() {
	resp := s.run("friends")

	s.Require().Len(resp.embeds, 1)
	s.Equal("Friends (1)", resp.embeds[0].Title)
	s.Contains(resp.embeds[0].Description, "**Io**")
	s.Contains(resp.embeds[0].Description, "selected")
}

func (s *DrinksCommandTestSuite) TestAddAndRemoveFriend() {
	added := s.run("add-friend", stringOpt("name", "  Ada "))
	s.Require().Len(added.embeds, 1)
	s.Equal("Friend added", added.embeds[0].Title)
	s.Contains(added.embeds[0].Description, "Ada")
	s.Len(s.friends(), 2)

	removed := s.run("remove-friend", stringOpt("friend", "ada"))
	s.Require().Len(removed.embeds, 1)
	s.Equal("Friend removed", removed.embeds[0].Title)
	s.Len(s.friends(), 1)
}

func (s *DrinksCommandTestSuite) TestAddFriendRejectsBlankName() {
	s.requireError(s.run("add-friend", stringOpt("name", "   ")))
	s.requireError(s.run("add-friend"))
	s.Len(s.friends(), 1)
}

func (s *DrinksCommandTestSuite) TestRemoveLastFriendIsRefused() {
	embed := s.requireError(s.run("remove-friend", stringOpt("friend", "Io")))

	s.Contains(embed.Description, "last friend")
	s.Len(s.friends(), 1)
}

func (s *DrinksCommandTestSuite) TestRemoveFriendPurgesDrinks() {
	s.run("add-friend", stringOpt("name", "Ada"))
	s.run("log", stringOpt("type", "beer"), stringOpt("friend", "Ada"))
	ada := s.friends()[1]

	s.run("remove-friend", stringOpt("friend", ada.ID))

	s.Empty(s.drinksFor(ada.ID))
}

func (s *DrinksCommandTestSuite) TestLogUsesSelectedFriend() {
	s.run("add-friend", stringOpt("name", "Ada"))
	ada := s.friends()[1]

	selected := s.run("select", stringOpt("friend", "Ada"))
	s.True(selected.ephemeral)
	s.Contains(selected.content, "Ada")
	s.Len(selected.components, 1)

	logged := s.run("log", stringOpt("type", "beer"))
	s.Require().Len(logged.embeds, 1)
	s.Equal("Beer logged", logged.embeds[0].Title)
	s.Require().Len(logged.embeds[0].Fields, 2)
	s.Equal("1", logged.embeds[0].Fields[0].Value)
	s.Equal("4.5%", logged.embeds[0].Fields[1].Value)
	s.Equal(parseColorTag(ada.ColorTag), logged.embeds[0].Color)

	s.Len(s.drinksFor(ada.ID), 1)
}

func (s *DrinksCommandTestSuite) TestLogExplicitFriendOverridesSelection() {
	s.run("add-friend", stringOpt("name", "Ada"))
	s.run("select", stringOpt("friend", "Ada"))
	io := s.friends()[0]

	s.run("log", stringOpt("type", "shot"), stringOpt("friend", "Io"))

	drinks := s.drinksFor(io.ID)
	s.Require().Len(drinks, 1)
	s.Equal(models.DrinkTypeShot, drinks[0].DrinkType)
}

func (s *DrinksCommandTestSuite) TestLogCountsToday() {
	io := s.friends()[0]

	s.now = s.now.Add(-24 * time.Hour)
	s.run("log", stringOpt("type", "beer"))
	s.now = s.now.Add(24 * time.Hour)
	s.run("log", stringOpt("type", "beer"))
	resp := s.run("log", stringOpt("type", "standardDrink"))

	s.Equal("2", resp.embeds[0].Fields[0].Value)
	s.Len(s.drinksFor(io.ID), 3)
}

func (s *DrinksCommandTestSuite) TestLogRejectsBadInput() {
	s.requireError(s.run("log", stringOpt("type", "wine")))

	embed := s.requireError(s.run("log", stringOpt("type", "beer"), stringOpt("friend", "Nobody")))
	s.Contains(embed.Description, "Nobody")

	s.Empty(s.drinksFor(s.friends()[0].ID))
}

func (s *DrinksCommandTestSuite) TestSelectionFallsBackWhenFriendRemoved() {
	s.run("add-friend", stringOpt("name", "Ada"))
	s.run("select", stringOpt("friend", "Ada"))
	s.run("remove-friend", stringOpt("friend", "Ada"))

	s.run("log", stringOpt("type", "beer"))

	s.Len(s.drinksFor(s.friends()[0].ID), 1)
}

func (s *DrinksCommandTestSuite) TestQuickLog() {
	resp := s.command.quickLog(s.ctx, s.userID, quickLogCustomID(models.DrinkTypeShot))

	s.Require().Len(resp.embeds, 1)
	s.Equal("Shot logged", resp.embeds[0].Title)
	s.Equal("40%", resp.embeds[0].Fields[1].Value)

	drinks := s.drinksFor(s.friends()[0].ID)
	s.Require().Len(drinks, 1)
	s.Equal(models.DrinkTypeShot, drinks[0].DrinkType)
}

func (s *DrinksCommandTestSuite) TestQuickLogUnknownButton() {
	s.requireError(s.command.quickLog(s.ctx, s.userID, quickLogPrefix+"wine"))
	s.Empty(s.drinksFor(s.friends()[0].ID))
}

func (s *DrinksCommandTestSuite) TestHandlesComponent() {
	s.True(s.command.HandlesComponent(quickLogCustomID(models.DrinkTypeBeer)))
	s.False(s.command.HandlesComponent("join_game"))
}

func (s *DrinksCommandTestSuite) TestStats() {
	s.run("add-friend", stringOpt("name", "Ada"))
	s.run("log", stringOpt("type", "beer"))
	s.run("log", stringOpt("type", "shot"))
	s.run("log", stringOpt("type", "beer"), stringOpt("friend", "Ada"))

	resp := s.run("stats")

	s.Require().Len(resp.embeds, 1)
	embed := resp.embeds[0]
	s.Equal("3 drinks logged in total", embed.Description)
	s.Require().Len(embed.Fields, 2)
	s.Equal("Io: 2", embed.Fields[0].Name)
	s.Equal("Drink 0 · Beer 1 · Shot 1", embed.Fields[0].Value)
	s.Equal("Ada: 1", embed.Fields[1].Name)
}

func (s *DrinksCommandTestSuite) TestHourly() {
	empty := s.run("hourly")
	s.Equal("No drinks logged today yet.", empty.embeds[0].Description)

	s.run("log", stringOpt("type", "beer"))
	resp := s.run("hourly")

	s.Contains(resp.embeds[0].Title, "Sat Jun 21")
	s.Contains(resp.embeds[0].Description, "14:00  1")
	s.NotContains(resp.embeds[0].Description, "13:00")
}

func (s *DrinksCommandTestSuite) TestSettingsShowsCurrentWithoutOptions() {
	resp := s.run("settings")

	s.Require().Len(resp.embeds, 1)
	s.Equal("Current settings", resp.embeds[0].Title)
	s.Equal("5%", resp.embeds[0].Fields[0].Value)
	s.Equal("4.5%", resp.embeds[0].Fields[1].Value)
	s.Equal("40%", resp.embeds[0].Fields[2].Value)
}

func (s *DrinksCommandTestSuite) TestSettingsClampsAndKeepsMissingValues() {
	resp := s.run("settings", numberOpt("beer", 150), numberOpt("shot", -3))
	s.Equal("Settings updated", resp.embeds[0].Title)

	out, err := s.trackerService.CurrentConfig(s.ctx, &tracker.CurrentConfigInput{})
	s.Require().NoError(err)
	s.Equal(models.DrinkTypeConfig{StandardDrink: 5, Beer: 100, Shot: 0}, out.Config)

	s.run("settings", numberOpt("standard", math.NaN()))
	out, err = s.trackerService.CurrentConfig(s.ctx, &tracker.CurrentConfigInput{})
	s.Require().NoError(err)
	s.Equal(0.0, out.Config.StandardDrink)
	s.Equal(100.0, out.Config.Beer)
}

func (s *DrinksCommandTestSuite) TestUnknownSubcommand() {
	s.requireError(s.run("dance"))
	s.requireError(s.command.run(s.ctx, s.userID, discordgo.ApplicationCommandInteractionData{Name: "drinks"}))
}
