package drink_log

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/drinktracker/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	drinkKeyPrefix        = "drink:"
	drinkOrderKey         = "drink_order"
	drinksByTimeKey       = "drinks_by_time"
	friendDrinksKeyPrefix = "friend_drinks:"
)

var (
	// ErrDuplicateDrink is returned when a drink event with the same ID is already logged
	ErrDuplicateDrink = errors.New("drink already logged")
)

// Config holds configuration for the Redis drink log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed drink log
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

// AppendDrink adds a drink event to the log
func (r *redisRepository) AppendDrink(ctx context.Context, input *AppendDrinkInput) error {
	if err := validateAppend(input); err != nil {
		return err
	}

	drink := input.Drink
	drinkJSON, err := json.Marshal(drink)
	if err != nil {
		return fmt.Errorf("failed to marshal drink: %w", err)
	}

	drinkKey := drinkKeyPrefix + drink.ID
	created, err := r.client.SetNX(ctx, drinkKey, drinkJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to store drink: %w", err)
	}
	if !created {
		return ErrDuplicateDrink
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, drinkOrderKey, drink.ID)
		pipe.RPush(ctx, friendDrinksKeyPrefix+drink.FriendID, drink.ID)
		pipe.ZAdd(ctx, drinksByTimeKey, redis.Z{
			Score:  float64(drink.Timestamp.UnixMilli()),
			Member: drink.ID,
		})
		return nil
	})
	if err != nil {
		// Roll back the record so a retry is not reported as a duplicate
		r.client.Del(ctx, drinkKey)
		return fmt.Errorf("failed to index drink: %w", err)
	}

	return nil
}

// ListDrinks retrieves every drink event in insertion order
func (r *redisRepository) ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error) {
	drinkIDs, err := r.client.LRange(ctx, drinkOrderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get drink IDs: %w", err)
	}

	drinks, err := r.getDrinks(ctx, drinkIDs)
	if err != nil {
		return nil, err
	}

	return &ListDrinksOutput{
		Drinks: drinks,
	}, nil
}

// GetDrinksForFriend retrieves all drink events for a friend in insertion order
func (r *redisRepository) GetDrinksForFriend(ctx context.Context, input *GetDrinksForFriendInput) (*GetDrinksForFriendOutput, error) {
	if input == nil || input.FriendID == "" {
		return nil, errors.New("input and friend ID cannot be empty")
	}

	drinkIDs, err := r.client.LRange(ctx, friendDrinksKeyPrefix+input.FriendID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get drink IDs for friend: %w", err)
	}

	drinks, err := r.getDrinks(ctx, drinkIDs)
	if err != nil {
		return nil, err
	}

	return &GetDrinksForFriendOutput{
		Drinks: drinks,
	}, nil
}

// GetDrinksSince retrieves drink events logged at or after input.Since,
// ordered by timestamp
func (r *redisRepository) GetDrinksSince(ctx context.Context, input *GetDrinksSinceInput) (*GetDrinksSinceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	// Scores are millisecond precision; the exact bound is applied after loading
	drinkIDs, err := r.client.ZRangeByScore(ctx, drinksByTimeKey, &redis.ZRangeBy{
		Min: strconv.FormatInt(input.Since.UnixMilli(), 10),
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get drink IDs by time: %w", err)
	}

	loaded, err := r.getDrinks(ctx, drinkIDs)
	if err != nil {
		return nil, err
	}

	drinks := make([]*models.DrinkEvent, 0, len(loaded))
	for _, drink := range loaded {
		if !drink.Timestamp.Before(input.Since) {
			drinks = append(drinks, drink)
		}
	}
	sort.SliceStable(drinks, func(i, j int) bool {
		return drinks[i].Timestamp.Before(drinks[j].Timestamp)
	})

	return &GetDrinksSinceOutput{
		Drinks: drinks,
	}, nil
}

// PurgeDrinksForFriend removes every drink event for a friend in a single transaction
func (r *redisRepository) PurgeDrinksForFriend(ctx context.Context, input *PurgeDrinksForFriendInput) (*PurgeDrinksForFriendOutput, error) {
	if input == nil || input.FriendID == "" {
		return nil, errors.New("input and friend ID cannot be empty")
	}

	friendKey := friendDrinksKeyPrefix + input.FriendID
	purged := 0

	// Watch the friend's index so a concurrent append aborts the purge
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		drinkIDs, err := tx.LRange(ctx, friendKey, 0, -1).Result()
		if err != nil {
			return fmt.Errorf("failed to get drink IDs for friend: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, drinkID := range drinkIDs {
				pipe.Del(ctx, drinkKeyPrefix+drinkID)
				pipe.LRem(ctx, drinkOrderKey, 1, drinkID)
				pipe.ZRem(ctx, drinksByTimeKey, drinkID)
			}
			pipe.Del(ctx, friendKey)
			return nil
		})
		if err != nil {
			return err
		}

		purged = len(drinkIDs)
		return nil
	}, friendKey)
	if err != nil {
		return nil, fmt.Errorf("failed to purge drinks: %w", err)
	}

	return &PurgeDrinksForFriendOutput{
		Purged: purged,
	}, nil
}

// getDrinks loads drink records in the order of drinkIDs, skipping missing records
func (r *redisRepository) getDrinks(ctx context.Context, drinkIDs []string) ([]*models.DrinkEvent, error) {
	if len(drinkIDs) == 0 {
		return []*models.DrinkEvent{}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(drinkIDs))
	for i, drinkID := range drinkIDs {
		cmds[i] = pipe.Get(ctx, drinkKeyPrefix+drinkID)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get drinks: %w", err)
	}

	drinks := make([]*models.DrinkEvent, 0, len(drinkIDs))
	for i, cmd := range cmds {
		drinkJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get drink %s: %w", drinkIDs[i], err)
		}

		var drink models.DrinkEvent
		if err := json.Unmarshal([]byte(drinkJSON), &drink); err != nil {
			return nil, fmt.Errorf("failed to unmarshal drink %s: %w", drinkIDs[i], err)
		}

		drinks = append(drinks, &drink)
	}

	return drinks, nil
}
