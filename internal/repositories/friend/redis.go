package friend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/drinktracker/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	friendKeyPrefix = "friend:"
	friendOrderKey  = "friend_order"
)

// ErrFriendNotFound is returned when a friend is not found
var ErrFriendNotFound = errors.New("friend not found")

// Config holds configuration for the Redis friend repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed friend repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveFriend persists a friend to Redis
func (r *redisRepository) SaveFriend(ctx context.Context, input *SaveFriendInput) error {
	if input == nil || input.Friend == nil {
		return errors.New("input and friend cannot be nil")
	}

	friend := input.Friend
	if friend.ID == "" {
		return errors.New("friend ID cannot be empty")
	}

	friendJSON, err := json.Marshal(friend)
	if err != nil {
		return fmt.Errorf("failed to marshal friend: %w", err)
	}

	friendKey := friendKeyPrefix + friend.ID
	exists, err := r.client.Exists(ctx, friendKey).Result()
	if err != nil {
		return fmt.Errorf("failed to check friend: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, friendKey, friendJSON, 0)
		// Only new friends join the display order
		if exists == 0 {
			pipe.RPush(ctx, friendOrderKey, friend.ID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save friend: %w", err)
	}

	return nil
}

// GetFriend retrieves a friend by ID from Redis
func (r *redisRepository) GetFriend(ctx context.Context, input *GetFriendInput) (*models.Friend, error) {
	if input == nil || input.FriendID == "" {
		return nil, errors.New("input and friend ID cannot be empty")
	}

	friendJSON, err := r.client.Get(ctx, friendKeyPrefix+input.FriendID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrFriendNotFound
		}
		return nil, fmt.Errorf("failed to get friend: %w", err)
	}

	var friend models.Friend
	if err := json.Unmarshal([]byte(friendJSON), &friend); err != nil {
		return nil, fmt.Errorf("failed to unmarshal friend: %w", err)
	}

	return &friend, nil
}

// ListFriends retrieves all friends from Redis in insertion order
func (r *redisRepository) ListFriends(ctx context.Context, input *ListFriendsInput) (*ListFriendsOutput, error) {
	friendIDs, err := r.client.LRange(ctx, friendOrderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get friend IDs: %w", err)
	}

	if len(friendIDs) == 0 {
		return &ListFriendsOutput{
			Friends: []*models.Friend{},
		}, nil
	}

	// Fetch every friend in one round trip, keeping the list order
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(friendIDs))
	for i, friendID := range friendIDs {
		cmds[i] = pipe.Get(ctx, friendKeyPrefix+friendID)
	}

	// redis.Nil from individual GETs is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get friends: %w", err)
	}

	friends := make([]*models.Friend, 0, len(friendIDs))
	for i, cmd := range cmds {
		friendJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get friend %s: %w", friendIDs[i], err)
		}

		var friend models.Friend
		if err := json.Unmarshal([]byte(friendJSON), &friend); err != nil {
			return nil, fmt.Errorf("failed to unmarshal friend %s: %w", friendIDs[i], err)
		}

		friends = append(friends, &friend)
	}

	return &ListFriendsOutput{
		Friends: friends,
	}, nil
}

// DeleteFriend removes a friend from Redis
func (r *redisRepository) DeleteFriend(ctx context.Context, input *DeleteFriendInput) error {
	if input == nil || input.FriendID == "" {
		return errors.New("input and friend ID cannot be empty")
	}

	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, friendKeyPrefix+input.FriendID)
		pipe.LRem(ctx, friendOrderKey, 0, input.FriendID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete friend: %w", err)
	}

	if del.Val() == 0 {
		return ErrFriendNotFound
	}

	return nil
}
