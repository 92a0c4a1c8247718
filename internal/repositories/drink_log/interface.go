package drink_log

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/drinktracker/internal/repositories/drink_log Repository

import (
	"context"
)

// Repository defines the interface for the append-only drink log
type Repository interface {
	// AppendDrink adds a drink event to the end of the log
	AppendDrink(ctx context.Context, input *AppendDrinkInput) error

	// ListDrinks retrieves every drink event in insertion order
	ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error)

	// GetDrinksForFriend retrieves all drink events for a friend in insertion order
	GetDrinksForFriend(ctx context.Context, input *GetDrinksForFriendInput) (*GetDrinksForFriendOutput, error)

	// GetDrinksSince retrieves drink events logged at or after a point in time
	GetDrinksSince(ctx context.Context, input *GetDrinksSinceInput) (*GetDrinksSinceOutput, error)

	// PurgeDrinksForFriend removes every drink event for a friend
	PurgeDrinksForFriend(ctx context.Context, input *PurgeDrinksForFriendInput) (*PurgeDrinksForFriendOutput, error)
}
