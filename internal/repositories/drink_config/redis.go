package drink_config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/drinktracker/internal/models"
	"github.com/redis/go-redis/v9"
)

const drinkConfigKey = "drink_config"

// ErrConfigNotFound is returned when no configuration has been saved
var ErrConfigNotFound = errors.New("drink config not found")

// Config holds configuration for the Redis drink config repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed configuration store
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetConfig retrieves the active configuration from Redis
func (r *redisRepository) GetConfig(ctx context.Context) (*models.DrinkTypeConfig, error) {
	configJSON, err := r.client.Get(ctx, drinkConfigKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrConfigNotFound
		}
		return nil, fmt.Errorf("failed to get drink config: %w", err)
	}

	var cfg models.DrinkTypeConfig
	if err := json.Unmarshal([]byte(configJSON), &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal drink config: %w", err)
	}

	return &cfg, nil
}

// SaveConfig replaces the active configuration in Redis
func (r *redisRepository) SaveConfig(ctx context.Context, input *SaveConfigInput) error {
	if input == nil || input.Config == nil {
		return errors.New("input and config cannot be nil")
	}

	configJSON, err := json.Marshal(input.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal drink config: %w", err)
	}

	if err := r.client.Set(ctx, drinkConfigKey, configJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save drink config: %w", err)
	}

	return nil
}
