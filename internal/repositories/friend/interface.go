package friend

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/drinktracker/internal/repositories/friend Repository

import (
	"context"

	"github.com/KirkDiggler/drinktracker/internal/models"
)

// Repository defines the interface for friend data persistence
type Repository interface {
	// SaveFriend persists a friend, appending it to the display order if it is new
	SaveFriend(ctx context.Context, input *SaveFriendInput) error

	// GetFriend retrieves a friend by ID
	GetFriend(ctx context.Context, input *GetFriendInput) (*models.Friend, error)

	// ListFriends retrieves all friends in insertion order
	ListFriends(ctx context.Context, input *ListFriendsInput) (*ListFriendsOutput, error)

	// DeleteFriend removes a friend
	DeleteFriend(ctx context.Context, input *DeleteFriendInput) error
}
