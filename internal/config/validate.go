package config

import (
	"fmt"
	"strings"
	_ "time/tzdata"

	"github.com/KirkDiggler/drinktracker/internal/common/logging"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if !c.Discord.Disabled && c.Discord.Token == "" {
		return fmt.Errorf("discord.token is required when the bot is enabled")
	}

	switch c.Store.Backend {
	case StoreMemory:
	case StoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr is required for the redis store")
		}
	default:
		return fmt.Errorf("store.backend must be %q or %q (got %q)", StoreMemory, StoreRedis, c.Store.Backend)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if format := strings.ToLower(c.Log.Format); format != logging.FormatText && format != logging.FormatJSON {
		return fmt.Errorf("log.format must be %q or %q (got %q)", logging.FormatText, logging.FormatJSON, c.Log.Format)
	}

	if err := c.Tracker.validate(); err != nil {
		return fmt.Errorf("tracker: %w", err)
	}

	return nil
}

func (t *TrackerConfig) validate() error {
	if _, err := t.Location(); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}

	if strings.TrimSpace(t.SeedFriendName) == "" {
		return fmt.Errorf("seed_friend_name cannot be empty")
	}

	drinks := t.DrinkConfig()
	if err := drinks.Validate(); err != nil {
		return fmt.Errorf("default percentages: %w", err)
	}

	return nil
}
