package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetDrinkLoggedMessage returns a message for when a friend logs a drink
	GetDrinkLoggedMessage(ctx context.Context, input *GetDrinkLoggedMessageInput) (*GetDrinkLoggedMessageOutput, error)

	// GetFriendAddedMessage returns a message for when a friend joins the tracker
	GetFriendAddedMessage(ctx context.Context, input *GetFriendAddedMessageInput) (*GetFriendAddedMessageOutput, error)

	// GetFriendRemovedMessage returns a message for when a friend is removed
	GetFriendRemovedMessage(ctx context.Context, input *GetFriendRemovedMessageInput) (*GetFriendRemovedMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
