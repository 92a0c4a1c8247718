package messaging

import (
	"github.com/KirkDiggler/drinktracker/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"
)

// Error types understood by GetErrorMessage. They match the kinds reported
// by tracker.ErrorKind.
const (
	ErrorTypeValidation         = "validation"
	ErrorTypeNotFound           = "not_found"
	ErrorTypeInvariantViolation = "invariant_violation"
	ErrorTypeInternal           = "internal"
)

// GetDrinkLoggedMessageInput contains parameters for getting a drink logged message
type GetDrinkLoggedMessageInput struct {
	// FriendName is the display name of the friend who drank
	FriendName string

	// DrinkType is the kind of drink logged
	DrinkType models.DrinkType

	// TodayCount is how many drinks the friend has logged today, this one included
	TodayCount int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetDrinkLoggedMessageOutput contains the result of getting a drink logged message
type GetDrinkLoggedMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetFriendAddedMessageInput is the input for GetFriendAddedMessage
type GetFriendAddedMessageInput struct {
	FriendName string
}

// GetFriendAddedMessageOutput is the output for GetFriendAddedMessage
type GetFriendAddedMessageOutput struct {
	Message string
}

// GetFriendRemovedMessageInput is the input for GetFriendRemovedMessage
type GetFriendRemovedMessageInput struct {
	FriendName string

	// PurgedDrinks is how many of the friend's drinks were deleted with them
	PurgedDrinks int
}

// GetFriendRemovedMessageOutput is the output for GetFriendRemovedMessage
type GetFriendRemovedMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// ErrorType is one of the ErrorType constants
	ErrorType string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed makes message selection repeatable; zero seeds from the clock
	Seed int64
}
