package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/drinktracker/internal/common/clock"
	"github.com/KirkDiggler/drinktracker/internal/common/logging"
	"github.com/KirkDiggler/drinktracker/internal/common/uuid"
	"github.com/KirkDiggler/drinktracker/internal/config"
	"github.com/KirkDiggler/drinktracker/internal/handlers/discord"
	"github.com/KirkDiggler/drinktracker/internal/handlers/ops"
	"github.com/KirkDiggler/drinktracker/internal/metrics"
	"github.com/KirkDiggler/drinktracker/internal/repositories/drink_config"
	"github.com/KirkDiggler/drinktracker/internal/repositories/drink_log"
	"github.com/KirkDiggler/drinktracker/internal/repositories/friend"
	"github.com/KirkDiggler/drinktracker/internal/services/messaging"
	"github.com/KirkDiggler/drinktracker/internal/services/tracker"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	// A .env file is optional
	_ = godotenv.Load()

	if err := run(); err != nil {
		log.Fatalf("drinktracker: %v", err)
	}
}

// stores holds the repositories of the configured backend
type stores struct {
	friends     friend.Repository
	drinkLog    drink_log.Repository
	drinkConfig drink_config.Repository
	ping        func(ctx context.Context) error
	close       func() error
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(&logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	slog.SetDefault(logger)

	loc, err := cfg.Tracker.Location()
	if err != nil {
		return fmt.Errorf("failed to load tracker timezone: %w", err)
	}

	st, err := openStores(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Error("failed to close store", slog.Any("error", err))
		}
	}()

	metricsManager := metrics.NewManager()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defaults := cfg.Tracker.DrinkConfig()
	trackerSvc, err := tracker.New(ctx, &tracker.Config{
		Location:           loc,
		SeedFriendName:     cfg.Tracker.SeedFriendName,
		DefaultDrinkConfig: &defaults,
		FriendRepo:         st.friends,
		DrinkLogRepo:       st.drinkLog,
		DrinkConfigRepo:    st.drinkConfig,
		Clock:              clock.New(loc),
		UUIDGenerator:      uuid.New(),
		Logger:             logger.With(slog.String("component", "tracker")),
		Metrics:            metricsManager,
	})
	cancel()
	if err != nil {
		return fmt.Errorf("failed to create tracker service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	var server *http.Server
	if cfg.Metrics.Addr != "" {
		router, err := ops.NewRouter(&ops.Config{
			Metrics: metricsManager.Handler(),
			Ready:   func() error { return st.ping(context.Background()) },
		})
		if err != nil {
			return fmt.Errorf("failed to create ops router: %w", err)
		}

		server = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           router,
			ReadHeaderTimeout: cfg.Metrics.ReadHeaderTimeout,
		}

		g.Go(func() error {
			logger.Info("ops server listening", slog.String("addr", cfg.Metrics.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("ops server: %w", err)
			}
			return nil
		})
	}

	var bot *discord.Bot
	if !cfg.Discord.Disabled {
		bot, err = discord.New(&discord.Config{
			Token:            cfg.Discord.Token,
			ApplicationID:    cfg.Discord.ApplicationID,
			GuildID:          cfg.Discord.GuildID,
			TrackerService:   trackerSvc,
			MessagingService: messagingSvc,
			Logger:           logger.With(slog.String("component", "discord")),
		})
		if err != nil {
			return fmt.Errorf("failed to create Discord bot: %w", err)
		}

		if err := bot.Start(); err != nil {
			return fmt.Errorf("failed to start Discord bot: %w", err)
		}
	} else {
		logger.Warn("discord is disabled, only the ops server is running")
	}

	// Shut down on a signal or when the ops server fails
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		if bot != nil {
			if err := bot.Stop(); err != nil {
				logger.Error("error stopping bot", slog.Any("error", err))
			}
		}

		if server != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Metrics.ShutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error("error stopping ops server", slog.Any("error", err))
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("bot has been shut down")
	return nil
}

// openStores builds the repositories for the configured backend
func openStores(cfg *config.Config, logger *slog.Logger) (*stores, error) {
	switch cfg.Store.Backend {
	case config.StoreMemory:
		logger.Warn("using in-memory store, data is lost on restart")
		return &stores{
			friends:     friend.NewMemory(),
			drinkLog:    drink_log.NewMemory(),
			drinkConfig: drink_config.NewMemory(),
			ping:        func(context.Context) error { return nil },
			close:       func() error { return nil },
		}, nil
	case config.StoreRedis:
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
	}
	logger.Info("connected to redis", slog.String("addr", cfg.Redis.Addr), slog.Int("db", cfg.Redis.DB))

	friendRepo, err := friend.NewRedis(&friend.Config{RedisClient: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create friend repository: %w", err)
	}

	drinkLogRepo, err := drink_log.NewRedis(&drink_log.Config{RedisClient: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create drink log repository: %w", err)
	}

	drinkConfigRepo, err := drink_config.NewRedis(&drink_config.Config{RedisClient: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create drink config repository: %w", err)
	}

	return &stores{
		friends:     friendRepo,
		drinkLog:    drinkLogRepo,
		drinkConfig: drinkConfigRepo,
		ping: func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
		close: redisClient.Close,
	}, nil
}
