package friend

import "github.com/KirkDiggler/drinktracker/internal/models"

// SaveFriendInput contains parameters for saving a friend
type SaveFriendInput struct {
	Friend *models.Friend
}

// GetFriendInput contains parameters for retrieving a friend
type GetFriendInput struct {
	FriendID string
}

// ListFriendsInput contains parameters for listing friends
type ListFriendsInput struct{}

// ListFriendsOutput contains the result of listing friends
type ListFriendsOutput struct {
	Friends []*models.Friend
}

// DeleteFriendInput contains parameters for deleting a friend
type DeleteFriendInput struct {
	FriendID string
}
