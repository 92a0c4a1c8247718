package config

import (
	"time"

	"github.com/KirkDiggler/drinktracker/internal/models"
)

// Store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config is the root application configuration.
type Config struct {
	Discord DiscordConfig `yaml:"discord"`
	Store   StoreConfig   `yaml:"store"`
	Redis   RedisConfig   `yaml:"redis"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracker TrackerConfig `yaml:"tracker"`
}

// DiscordConfig holds bot credentials.
type DiscordConfig struct {
	// Disabled runs the tracker and the ops server without connecting to Discord
	Disabled      bool   `yaml:"disabled"       env:"DISCORD_DISABLED"`
	Token         string `yaml:"token"          env:"DISCORD_TOKEN"`
	ApplicationID string `yaml:"application_id" env:"APPLICATION_ID"`
	// GuildID registers commands to one guild, which is faster during development
	GuildID string `yaml:"guild_id" env:"GUILD_ID"`
}

// StoreConfig selects where friends, drinks and settings are kept.
type StoreConfig struct {
	Backend string `yaml:"backend" env:"STORE_BACKEND" env-default:"redis"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// MetricsConfig holds the ops HTTP server settings. An empty address
// disables the server.
type MetricsConfig struct {
	Addr              string        `yaml:"addr"                env:"METRICS_ADDR"                env-default:":9090"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" env:"METRICS_READ_HEADER_TIMEOUT" env-default:"5s"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"    env:"METRICS_SHUTDOWN_TIMEOUT"    env-default:"5s"`
}

// TrackerConfig holds the tracker's day boundary and first-run defaults.
type TrackerConfig struct {
	// Timezone is an IANA name or "Local"; it decides where a day starts
	Timezone       string  `yaml:"timezone"           env:"TRACKER_TIMEZONE"           env-default:"Local"`
	SeedFriendName string  `yaml:"seed_friend_name"   env:"TRACKER_SEED_FRIEND"        env-default:"Io"`
	StandardDrink  float64 `yaml:"standard_drink_abv" env:"TRACKER_STANDARD_DRINK_ABV" env-default:"5"`
	Beer           float64 `yaml:"beer_abv"           env:"TRACKER_BEER_ABV"           env-default:"4.5"`
	Shot           float64 `yaml:"shot_abv"           env:"TRACKER_SHOT_ABV"           env-default:"40"`
}

// Location loads the configured time zone.
func (t TrackerConfig) Location() (*time.Location, error) {
	return time.LoadLocation(t.Timezone)
}

// DrinkConfig returns the percentages stored on first run.
func (t TrackerConfig) DrinkConfig() models.DrinkTypeConfig {
	return models.DrinkTypeConfig{
		StandardDrink: t.StandardDrink,
		Beer:          t.Beer,
		Shot:          t.Shot,
	}
}
