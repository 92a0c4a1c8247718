package tracker

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/drinktracker/internal/common/clock"
	"github.com/KirkDiggler/drinktracker/internal/common/uuid"
	"github.com/KirkDiggler/drinktracker/internal/models"
	drinkConfigRepo "github.com/KirkDiggler/drinktracker/internal/repositories/drink_config"
	drinkLogRepo "github.com/KirkDiggler/drinktracker/internal/repositories/drink_log"
	friendRepo "github.com/KirkDiggler/drinktracker/internal/repositories/friend"
)

const (
	// DefaultSeedFriendName is the friend tracked before anyone else is added
	DefaultSeedFriendName = "Io"

	// SeedFriendColor is the color tag of the seeded friend
	SeedFriendColor = "#3b82f6"
)

// DefaultPalette is cycled through when assigning color tags to new friends
var DefaultPalette = []string{"#ef4444", "#10b981", "#f59e0b", "#8b5cf6", "#ec4899", "#06b6d4"}

// Recorder receives tracker events for metrics
type Recorder interface {
	DrinkLogged(drinkType models.DrinkType)
	FriendsTracked(count int)
	CommandFailed(command, kind string)
}

// Config holds configuration for the tracker service
type Config struct {
	// Location is the time zone that defines a calendar day; defaults to time.Local
	Location *time.Location

	// SeedFriendName is the friend created when no friends are stored yet
	SeedFriendName string

	// DefaultDrinkConfig is stored when no configuration is stored yet
	DefaultDrinkConfig *models.DrinkTypeConfig

	// Palette overrides DefaultPalette
	Palette []string

	// Repository dependencies
	FriendRepo      friendRepo.Repository
	DrinkLogRepo    drinkLogRepo.Repository
	DrinkConfigRepo drinkConfigRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *slog.Logger
	Metrics       Recorder
}

// AddFriendInput contains parameters for adding a friend
type AddFriendInput struct {
	// Name is the display name; surrounding whitespace is trimmed
	Name string
}

// AddFriendOutput contains the result of adding a friend
type AddFriendOutput struct {
	Friend *models.Friend
}

// RemoveFriendInput contains parameters for removing a friend
type RemoveFriendInput struct {
	FriendID string
}

// RemoveFriendOutput contains the result of removing a friend
type RemoveFriendOutput struct {
	// Friend is the friend that was removed
	Friend *models.Friend

	// PurgedDrinks is the number of the friend's drinks that were deleted
	PurgedDrinks int
}

// LogDrinkInput contains parameters for logging a drink
type LogDrinkInput struct {
	FriendID  string
	DrinkType models.DrinkType
}

// LogDrinkOutput contains the result of logging a drink
type LogDrinkOutput struct {
	Drink *models.DrinkEvent
}

// SetConfigInput contains parameters for replacing the drink configuration
type SetConfigInput struct {
	Config models.DrinkTypeConfig
}

// SetConfigOutput contains the result of replacing the drink configuration
type SetConfigOutput struct {
	// Previous is the configuration that was replaced
	Previous models.DrinkTypeConfig

	// Config is the configuration now in effect
	Config models.DrinkTypeConfig
}

// ListFriendsInput contains parameters for listing friends
type ListFriendsInput struct{}

// ListFriendsOutput contains the result of listing friends
type ListFriendsOutput struct {
	Friends []*models.Friend
}

// GetFriendInput contains parameters for retrieving a friend
type GetFriendInput struct {
	FriendID string
}

// GetFriendOutput contains the result of retrieving a friend
type GetFriendOutput struct {
	Friend *models.Friend
}

// CurrentConfigInput contains parameters for retrieving the drink configuration
type CurrentConfigInput struct{}

// CurrentConfigOutput contains the active drink configuration
type CurrentConfigOutput struct {
	Config models.DrinkTypeConfig
}

// ListDrinksInput contains parameters for listing the drink log
type ListDrinksInput struct{}

// ListDrinksOutput contains the drink log
type ListDrinksOutput struct {
	Drinks []*models.DrinkEvent
}

// GetDrinksForFriendInput contains parameters for retrieving a friend's drinks
type GetDrinksForFriendInput struct {
	FriendID string
}

// GetDrinksForFriendOutput contains a friend's drinks
type GetDrinksForFriendOutput struct {
	Drinks []*models.DrinkEvent
}

// GetDrinksForDayInput contains parameters for retrieving a day's drinks
type GetDrinksForDayInput struct {
	// Day is any time on the day of interest; zero means today
	Day time.Time
}

// GetDrinksForDayOutput contains the drinks logged since the start of the day
type GetDrinksForDayOutput struct {
	// DayStart is local midnight of the requested day
	DayStart time.Time

	Drinks []*models.DrinkEvent
}

// GetTotalsInput contains parameters for retrieving a friend's totals
type GetTotalsInput struct {
	FriendID string
}

// GetTotalsOutput contains a friend's totals
type GetTotalsOutput struct {
	Friend *models.Friend
	Totals models.Totals
}

// GetAllTotalsInput contains parameters for retrieving every friend's totals
type GetAllTotalsInput struct{}

// GetAllTotalsOutput contains totals for every friend, in friend order
type GetAllTotalsOutput struct {
	Friends []*models.Friend
	Totals  []models.Totals
}

// GetHourlySeriesInput contains parameters for building the hourly series
type GetHourlySeriesInput struct {
	// Now picks the day to report on; zero means the current time
	Now time.Time
}

// GetHourlySeriesOutput contains the hourly series for one day
type GetHourlySeriesOutput struct {
	// DayStart is local midnight of the reported day
	DayStart time.Time

	// Buckets always has 24 entries, one per hour of the day
	Buckets []models.HourlyBucket
}
