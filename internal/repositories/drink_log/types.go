package drink_log

import (
	"time"

	"github.com/KirkDiggler/drinktracker/internal/models"
)

// AppendDrinkInput contains parameters for appending a drink event
type AppendDrinkInput struct {
	Drink *models.DrinkEvent
}

// ListDrinksInput contains parameters for listing the whole log
type ListDrinksInput struct{}

// ListDrinksOutput contains the result of listing the whole log
type ListDrinksOutput struct {
	Drinks []*models.DrinkEvent
}

// GetDrinksForFriendInput contains parameters for retrieving a friend's drinks
type GetDrinksForFriendInput struct {
	FriendID string
}

// GetDrinksForFriendOutput contains the result of retrieving a friend's drinks
type GetDrinksForFriendOutput struct {
	Drinks []*models.DrinkEvent
}

// GetDrinksSinceInput contains parameters for retrieving recent drinks
type GetDrinksSinceInput struct {
	// Since is inclusive
	Since time.Time
}

// GetDrinksSinceOutput contains the result of retrieving recent drinks
type GetDrinksSinceOutput struct {
	Drinks []*models.DrinkEvent
}

// PurgeDrinksForFriendInput contains parameters for purging a friend's drinks
type PurgeDrinksForFriendInput struct {
	FriendID string
}

// PurgeDrinksForFriendOutput contains the result of purging a friend's drinks
type PurgeDrinksForFriendOutput struct {
	// Purged is the number of drink events removed
	Purged int
}
