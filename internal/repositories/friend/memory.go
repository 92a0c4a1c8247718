package friend

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/drinktracker/internal/models"
)

// memoryRepository implements the Repository interface for the lifetime of the process
type memoryRepository struct {
	mu      sync.RWMutex
	order   []string
	friends map[string]models.Friend
}

// NewMemory creates an in-memory friend repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		friends: make(map[string]models.Friend),
	}
}

// SaveFriend stores a copy of the friend
func (r *memoryRepository) SaveFriend(ctx context.Context, input *SaveFriendInput) error {
	if input == nil || input.Friend == nil {
		return errors.New("input and friend cannot be nil")
	}
	if input.Friend.ID == "" {
		return errors.New("friend ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.friends[input.Friend.ID]; !exists {
		r.order = append(r.order, input.Friend.ID)
	}
	r.friends[input.Friend.ID] = *input.Friend

	return nil
}

// GetFriend retrieves a friend by ID
func (r *memoryRepository) GetFriend(ctx context.Context, input *GetFriendInput) (*models.Friend, error) {
	if input == nil || input.FriendID == "" {
		return nil, errors.New("input and friend ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	friend, ok := r.friends[input.FriendID]
	if !ok {
		return nil, ErrFriendNotFound
	}

	return &friend, nil
}

// ListFriends retrieves all friends in insertion order
func (r *memoryRepository) ListFriends(ctx context.Context, input *ListFriendsInput) (*ListFriendsOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	friends := make([]*models.Friend, 0, len(r.order))
	for _, id := range r.order {
		friend := r.friends[id]
		friends = append(friends, &friend)
	}

	return &ListFriendsOutput{
		Friends: friends,
	}, nil
}

// DeleteFriend removes a friend
func (r *memoryRepository) DeleteFriend(ctx context.Context, input *DeleteFriendInput) error {
	if input == nil || input.FriendID == "" {
		return errors.New("input and friend ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.friends[input.FriendID]; !ok {
		return ErrFriendNotFound
	}

	delete(r.friends, input.FriendID)
	for i, id := range r.order {
		if id == input.FriendID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
