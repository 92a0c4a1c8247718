package tracker

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/drinktracker/internal/services/tracker Service

// Service defines the commands and queries for tracking drinks
type Service interface {
	// AddFriend starts tracking a new friend
	AddFriend(ctx context.Context, input *AddFriendInput) (*AddFriendOutput, error)

	// RemoveFriend stops tracking a friend and deletes all of their drinks
	RemoveFriend(ctx context.Context, input *RemoveFriendInput) (*RemoveFriendOutput, error)

	// LogDrink records a drink for a friend at the current time
	LogDrink(ctx context.Context, input *LogDrinkInput) (*LogDrinkOutput, error)

	// SetConfig replaces the alcohol percentages for every drink type
	SetConfig(ctx context.Context, input *SetConfigInput) (*SetConfigOutput, error)

	// ListFriends returns all friends in the order they were added
	ListFriends(ctx context.Context, input *ListFriendsInput) (*ListFriendsOutput, error)

	// GetFriend returns a single friend
	GetFriend(ctx context.Context, input *GetFriendInput) (*GetFriendOutput, error)

	// CurrentConfig returns the active alcohol percentages
	CurrentConfig(ctx context.Context, input *CurrentConfigInput) (*CurrentConfigOutput, error)

	// ListDrinks returns the whole drink log in insertion order
	ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error)

	// GetDrinksForFriend returns a friend's drinks in insertion order
	GetDrinksForFriend(ctx context.Context, input *GetDrinksForFriendInput) (*GetDrinksForFriendOutput, error)

	// GetDrinksForDay returns drinks logged since local midnight of the given day
	GetDrinksForDay(ctx context.Context, input *GetDrinksForDayInput) (*GetDrinksForDayOutput, error)

	// GetTotals returns a friend's drink counts overall and by type
	GetTotals(ctx context.Context, input *GetTotalsInput) (*GetTotalsOutput, error)

	// GetAllTotals returns drink counts for every friend
	GetAllTotals(ctx context.Context, input *GetAllTotalsInput) (*GetAllTotalsOutput, error)

	// GetHourlySeries returns today's drinks bucketed by hour and friend name
	GetHourlySeries(ctx context.Context, input *GetHourlySeriesInput) (*GetHourlySeriesOutput, error)
}
