package tracker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/drinktracker/internal/common/clock"
	"github.com/KirkDiggler/drinktracker/internal/common/uuid"
	"github.com/KirkDiggler/drinktracker/internal/models"
	drinkConfigRepo "github.com/KirkDiggler/drinktracker/internal/repositories/drink_config"
	drinkLogRepo "github.com/KirkDiggler/drinktracker/internal/repositories/drink_log"
	friendRepo "github.com/KirkDiggler/drinktracker/internal/repositories/friend"
	"github.com/KirkDiggler/drinktracker/internal/stats"
)

// service implements the Service interface.
//
// mu serializes every command and guards every query, so a reader never
// observes a removed friend whose drinks still exist or drinks whose friend
// is gone.
type service struct {
	mu sync.RWMutex

	friendRepo      friendRepo.Repository
	drinkLogRepo    drinkLogRepo.Repository
	drinkConfigRepo drinkConfigRepo.Repository

	clock         clock.Clock
	uuidGenerator uuid.UUID
	location      *time.Location
	palette       []string
	logger        *slog.Logger
	metrics       Recorder
}

// New creates a tracker service. If the stores are empty it seeds the first
// friend and the default drink configuration, so at least one friend always
// exists.
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.FriendRepo == nil {
		return nil, ErrNilFriendRepo
	}

	if cfg.DrinkLogRepo == nil {
		return nil, ErrNilDrinkLogRepo
	}

	if cfg.DrinkConfigRepo == nil {
		return nil, ErrNilDrinkConfigRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	s := &service{
		friendRepo:      cfg.FriendRepo,
		drinkLogRepo:    cfg.DrinkLogRepo,
		drinkConfigRepo: cfg.DrinkConfigRepo,
		clock:           cfg.Clock,
		uuidGenerator:   cfg.UUIDGenerator,
		location:        cfg.Location,
		palette:         cfg.Palette,
		logger:          cfg.Logger,
		metrics:         cfg.Metrics,
	}

	if s.location == nil {
		s.location = time.Local
	}
	if len(s.palette) == 0 {
		s.palette = DefaultPalette
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.metrics == nil {
		s.metrics = noopRecorder{}
	}

	if err := s.seed(ctx, cfg); err != nil {
		return nil, err
	}

	return s, nil
}

// seed stores the first friend and the default configuration when missing
func (s *service) seed(ctx context.Context, cfg *Config) error {
	friends, err := s.listFriends(ctx)
	if err != nil {
		return err
	}

	if len(friends) == 0 {
		name := strings.TrimSpace(cfg.SeedFriendName)
		if name == "" {
			name = DefaultSeedFriendName
		}

		friend := &models.Friend{
			ID:          s.uuidGenerator.NewUUID(),
			DisplayName: name,
			ColorTag:    SeedFriendColor,
		}
		if err := s.friendRepo.SaveFriend(ctx, &friendRepo.SaveFriendInput{Friend: friend}); err != nil {
			return fmt.Errorf("failed to seed friend: %w", err)
		}
		friends = append(friends, friend)

		s.logger.InfoContext(ctx, "seeded first friend",
			slog.String("friend_id", friend.ID),
			slog.String("name", friend.DisplayName))
	}
	s.metrics.FriendsTracked(len(friends))

	_, err = s.drinkConfigRepo.GetConfig(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, drinkConfigRepo.ErrConfigNotFound) {
		return fmt.Errorf("failed to get drink config: %w", err)
	}

	defaults := models.DefaultDrinkTypeConfig()
	if cfg.DefaultDrinkConfig != nil {
		defaults = *cfg.DefaultDrinkConfig
	}
	if err := defaults.Validate(); err != nil {
		return fmt.Errorf("%w: default drink config: %v", ErrValidation, err)
	}
	if err := s.drinkConfigRepo.SaveConfig(ctx, &drinkConfigRepo.SaveConfigInput{Config: &defaults}); err != nil {
		return fmt.Errorf("failed to seed drink config: %w", err)
	}

	return nil
}

// AddFriend starts tracking a new friend
func (s *service) AddFriend(ctx context.Context, input *AddFriendInput) (*AddFriendOutput, error) {
	if input == nil {
		return nil, s.fail(ctx, "add_friend", fmt.Errorf("%w: input cannot be nil", ErrValidation))
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, s.fail(ctx, "add_friend", fmt.Errorf("%w: name cannot be empty", ErrValidation))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	friends, err := s.listFriends(ctx)
	if err != nil {
		return nil, s.fail(ctx, "add_friend", err)
	}

	friend := &models.Friend{
		ID:          s.uuidGenerator.NewUUID(),
		DisplayName: name,
		ColorTag:    s.palette[len(friends)%len(s.palette)],
	}

	if err := s.friendRepo.SaveFriend(ctx, &friendRepo.SaveFriendInput{Friend: friend}); err != nil {
		return nil, s.fail(ctx, "add_friend", fmt.Errorf("failed to save friend: %w", err))
	}

	s.metrics.FriendsTracked(len(friends) + 1)
	s.logger.InfoContext(ctx, "friend added",
		slog.String("friend_id", friend.ID),
		slog.String("name", friend.DisplayName),
		slog.String("color", friend.ColorTag))

	return &AddFriendOutput{
		Friend: friend,
	}, nil
}

// RemoveFriend stops tracking a friend and deletes all of their drinks.
// The last remaining friend cannot be removed.
func (s *service) RemoveFriend(ctx context.Context, input *RemoveFriendInput) (*RemoveFriendOutput, error) {
	if input == nil || input.FriendID == "" {
		return nil, s.fail(ctx, "remove_friend", fmt.Errorf("%w: friend ID cannot be empty", ErrValidation))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	friend, err := s.getFriend(ctx, input.FriendID)
	if err != nil {
		return nil, s.fail(ctx, "remove_friend", err)
	}

	friends, err := s.listFriends(ctx)
	if err != nil {
		return nil, s.fail(ctx, "remove_friend", err)
	}

	if len(friends) <= 1 {
		return nil, s.fail(ctx, "remove_friend", fmt.Errorf("%w: cannot remove the last friend", ErrInvariantViolation))
	}

	// Drinks go first so a failed delete never leaves drinks without a friend
	purgeOutput, err := s.drinkLogRepo.PurgeDrinksForFriend(ctx, &drinkLogRepo.PurgeDrinksForFriendInput{
		FriendID: friend.ID,
	})
	if err != nil {
		return nil, s.fail(ctx, "remove_friend", fmt.Errorf("failed to purge drinks: %w", err))
	}

	err = s.friendRepo.DeleteFriend(ctx, &friendRepo.DeleteFriendInput{
		FriendID: friend.ID,
	})
	if err != nil {
		return nil, s.fail(ctx, "remove_friend", fmt.Errorf("failed to delete friend: %w", err))
	}

	s.metrics.FriendsTracked(len(friends) - 1)
	s.logger.InfoContext(ctx, "friend removed",
		slog.String("friend_id", friend.ID),
		slog.String("name", friend.DisplayName),
		slog.Int("purged_drinks", purgeOutput.Purged))

	return &RemoveFriendOutput{
		Friend:       friend,
		PurgedDrinks: purgeOutput.Purged,
	}, nil
}

// LogDrink records a drink for a friend, capturing the configured
// percentage for the drink type at this moment
func (s *service) LogDrink(ctx context.Context, input *LogDrinkInput) (*LogDrinkOutput, error) {
	if input == nil {
		return nil, s.fail(ctx, "log_drink", fmt.Errorf("%w: input cannot be nil", ErrValidation))
	}

	if !input.DrinkType.IsValid() {
		return nil, s.fail(ctx, "log_drink", fmt.Errorf("%w: unknown drink type %q", ErrValidation, input.DrinkType))
	}

	if input.FriendID == "" {
		return nil, s.fail(ctx, "log_drink", fmt.Errorf("%w: friend ID cannot be empty", ErrValidation))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	friend, err := s.getFriend(ctx, input.FriendID)
	if err != nil {
		return nil, s.fail(ctx, "log_drink", err)
	}

	cfg, err := s.currentConfig(ctx)
	if err != nil {
		return nil, s.fail(ctx, "log_drink", err)
	}

	drink := &models.DrinkEvent{
		ID:                      s.uuidGenerator.NewUUID(),
		FriendID:                friend.ID,
		DrinkType:               input.DrinkType,
		Timestamp:               s.clock.Now().In(s.location),
		AlcoholPercentAtLogTime: cfg.Percent(input.DrinkType),
	}

	if err := s.drinkLogRepo.AppendDrink(ctx, &drinkLogRepo.AppendDrinkInput{Drink: drink}); err != nil {
		return nil, s.fail(ctx, "log_drink", fmt.Errorf("failed to append drink: %w", err))
	}

	s.metrics.DrinkLogged(drink.DrinkType)
	s.logger.InfoContext(ctx, "drink logged",
		slog.String("drink_id", drink.ID),
		slog.String("friend_id", friend.ID),
		slog.String("drink_type", string(drink.DrinkType)),
		slog.Float64("alcohol_percent", drink.AlcoholPercentAtLogTime))

	return &LogDrinkOutput{
		Drink: drink,
	}, nil
}

// SetConfig replaces the alcohol percentages for every drink type.
// Logged drinks keep the percentage they were logged with.
func (s *service) SetConfig(ctx context.Context, input *SetConfigInput) (*SetConfigOutput, error) {
	if input == nil {
		return nil, s.fail(ctx, "set_config", fmt.Errorf("%w: input cannot be nil", ErrValidation))
	}

	if err := input.Config.Validate(); err != nil {
		return nil, s.fail(ctx, "set_config", fmt.Errorf("%w: %v", ErrValidation, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, err := s.currentConfig(ctx)
	if err != nil {
		return nil, s.fail(ctx, "set_config", err)
	}

	next := input.Config
	if err := s.drinkConfigRepo.SaveConfig(ctx, &drinkConfigRepo.SaveConfigInput{Config: &next}); err != nil {
		return nil, s.fail(ctx, "set_config", fmt.Errorf("failed to save drink config: %w", err))
	}

	s.logger.InfoContext(ctx, "drink config updated",
		slog.Float64("standard_drink", next.StandardDrink),
		slog.Float64("beer", next.Beer),
		slog.Float64("shot", next.Shot))

	return &SetConfigOutput{
		Previous: *previous,
		Config:   next,
	}, nil
}

// ListFriends returns all friends in the order they were added
func (s *service) ListFriends(ctx context.Context, input *ListFriendsInput) (*ListFriendsOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	friends, err := s.listFriends(ctx)
	if err != nil {
		return nil, err
	}

	return &ListFriendsOutput{
		Friends: friends,
	}, nil
}

// GetFriend returns a single friend
func (s *service) GetFriend(ctx context.Context, input *GetFriendInput) (*GetFriendOutput, error) {
	if input == nil || input.FriendID == "" {
		return nil, fmt.Errorf("%w: friend ID cannot be empty", ErrValidation)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	friend, err := s.getFriend(ctx, input.FriendID)
	if err != nil {
		return nil, err
	}

	return &GetFriendOutput{
		Friend: friend,
	}, nil
}

// CurrentConfig returns the active alcohol percentages
func (s *service) CurrentConfig(ctx context.Context, input *CurrentConfigInput) (*CurrentConfigOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cfg, err := s.currentConfig(ctx)
	if err != nil {
		return nil, err
	}

	return &CurrentConfigOutput{
		Config: *cfg,
	}, nil
}

// ListDrinks returns the whole drink log in insertion order
func (s *service) ListDrinks(ctx context.Context, input *ListDrinksInput) (*ListDrinksOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	drinks, err := s.listDrinks(ctx)
	if err != nil {
		return nil, err
	}

	return &ListDrinksOutput{
		Drinks: drinks,
	}, nil
}

// GetDrinksForFriend returns a friend's drinks in insertion order. A friend
// that no longer exists has no drinks.
func (s *service) GetDrinksForFriend(ctx context.Context, input *GetDrinksForFriendInput) (*GetDrinksForFriendOutput, error) {
	if input == nil || input.FriendID == "" {
		return nil, fmt.Errorf("%w: friend ID cannot be empty", ErrValidation)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	output, err := s.drinkLogRepo.GetDrinksForFriend(ctx, &drinkLogRepo.GetDrinksForFriendInput{
		FriendID: input.FriendID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get drinks for friend: %w", err)
	}

	return &GetDrinksForFriendOutput{
		Drinks: output.Drinks,
	}, nil
}

// GetDrinksForDay returns drinks logged at or after local midnight of input.Day
func (s *service) GetDrinksForDay(ctx context.Context, input *GetDrinksForDayInput) (*GetDrinksForDayOutput, error) {
	day := time.Time{}
	if input != nil {
		day = input.Day
	}

	dayStart := stats.StartOfDay(s.localTime(day))

	s.mu.RLock()
	defer s.mu.RUnlock()

	drinks, err := s.drinksSince(ctx, dayStart)
	if err != nil {
		return nil, err
	}

	return &GetDrinksForDayOutput{
		DayStart: dayStart,
		Drinks:   drinks,
	}, nil
}

// GetTotals returns a friend's drink counts overall and by type
func (s *service) GetTotals(ctx context.Context, input *GetTotalsInput) (*GetTotalsOutput, error) {
	if input == nil || input.FriendID == "" {
		return nil, fmt.Errorf("%w: friend ID cannot be empty", ErrValidation)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	friend, err := s.getFriend(ctx, input.FriendID)
	if err != nil {
		return nil, err
	}

	drinks, err := s.listDrinks(ctx)
	if err != nil {
		return nil, err
	}

	return &GetTotalsOutput{
		Friend: friend,
		Totals: stats.ComputeTotals(drinks, friend.ID),
	}, nil
}

// GetAllTotals returns drink counts for every friend in friend order
func (s *service) GetAllTotals(ctx context.Context, input *GetAllTotalsInput) (*GetAllTotalsOutput, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	friends, err := s.listFriends(ctx)
	if err != nil {
		return nil, err
	}

	drinks, err := s.listDrinks(ctx)
	if err != nil {
		return nil, err
	}

	return &GetAllTotalsOutput{
		Friends: friends,
		Totals:  stats.ComputeAllTotals(drinks, friends),
	}, nil
}

// GetHourlySeries returns the drinks of input.Now's local day bucketed by hour
func (s *service) GetHourlySeries(ctx context.Context, input *GetHourlySeriesInput) (*GetHourlySeriesOutput, error) {
	now := time.Time{}
	if input != nil {
		now = input.Now
	}

	now = s.localTime(now)
	dayStart := stats.StartOfDay(now)

	s.mu.RLock()
	defer s.mu.RUnlock()

	friends, err := s.listFriends(ctx)
	if err != nil {
		return nil, err
	}

	drinks, err := s.drinksSince(ctx, dayStart)
	if err != nil {
		return nil, err
	}

	return &GetHourlySeriesOutput{
		DayStart: dayStart,
		Buckets:  stats.ComputeHourlySeries(drinks, friends, now),
	}, nil
}

// localTime moves t into the tracker's location, using the clock when t is zero
func (s *service) localTime(t time.Time) time.Time {
	if t.IsZero() {
		t = s.clock.Now()
	}
	return t.In(s.location)
}

func (s *service) getFriend(ctx context.Context, friendID string) (*models.Friend, error) {
	friend, err := s.friendRepo.GetFriend(ctx, &friendRepo.GetFriendInput{
		FriendID: friendID,
	})
	if err != nil {
		if errors.Is(err, friendRepo.ErrFriendNotFound) {
			return nil, fmt.Errorf("%w: friend %s", ErrNotFound, friendID)
		}
		return nil, fmt.Errorf("failed to get friend: %w", err)
	}
	return friend, nil
}

func (s *service) listFriends(ctx context.Context) ([]*models.Friend, error) {
	output, err := s.friendRepo.ListFriends(ctx, &friendRepo.ListFriendsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}
	return output.Friends, nil
}

func (s *service) listDrinks(ctx context.Context) ([]*models.DrinkEvent, error) {
	output, err := s.drinkLogRepo.ListDrinks(ctx, &drinkLogRepo.ListDrinksInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list drinks: %w", err)
	}
	return output.Drinks, nil
}

func (s *service) drinksSince(ctx context.Context, since time.Time) ([]*models.DrinkEvent, error) {
	output, err := s.drinkLogRepo.GetDrinksSince(ctx, &drinkLogRepo.GetDrinksSinceInput{
		Since: since,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get drinks since %s: %w", since.Format(time.RFC3339), err)
	}
	return output.Drinks, nil
}

func (s *service) currentConfig(ctx context.Context) (*models.DrinkTypeConfig, error) {
	cfg, err := s.drinkConfigRepo.GetConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get drink config: %w", err)
	}
	return cfg, nil
}

// fail records a failed command and returns err unchanged
func (s *service) fail(ctx context.Context, command string, err error) error {
	kind := ErrorKind(err)
	s.metrics.CommandFailed(command, kind)

	level := slog.LevelWarn
	if kind == "internal" {
		level = slog.LevelError
	}
	s.logger.Log(ctx, level, "command failed",
		slog.String("command", command),
		slog.String("kind", kind),
		slog.Any("error", err))

	return err
}

type noopRecorder struct{}

func (noopRecorder) DrinkLogged(models.DrinkType) {}

func (noopRecorder) FriendsTracked(int) {}

func (noopRecorder) CommandFailed(string, string) {}
