package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/drinktracker/internal/models"
	"github.com/KirkDiggler/drinktracker/internal/services/messaging"
	"github.com/KirkDiggler/drinktracker/internal/services/tracker"
	"github.com/bwmarrin/discordgo"
)

// DrinksCommand handles the /drinks command and the quick-log buttons
type DrinksCommand struct {
	BaseCommand
	trackerService   tracker.Service
	messagingService messaging.Service
	selection        *Selection
	logger           *slog.Logger
}

// DrinksCommandConfig holds the dependencies of DrinksCommand
type DrinksCommandConfig struct {
	TrackerService   tracker.Service
	MessagingService messaging.Service

	// Selection defaults to an empty selection
	Selection *Selection

	Logger *slog.Logger
}

// NewDrinksCommand creates a new drinks command handler
func NewDrinksCommand(cfg *DrinksCommandConfig) (*DrinksCommand, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.TrackerService == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	selection := cfg.Selection
	if selection == nil {
		selection = NewSelection()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	friendOption := func(description string, required bool) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "friend",
			Description: description,
			Required:    required,
		}
	}

	percentOption := func(name, description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        name,
			Description: description,
		}
	}

	drinkChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(models.AllDrinkTypes))
	for _, t := range models.AllDrinkTypes {
		drinkChoices = append(drinkChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  t.Label(),
			Value: string(t),
		})
	}

	return &DrinksCommand{
		BaseCommand: BaseCommand{
			Name:        "drinks",
			Description: "Track what everyone is drinking today",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "friends",
					Description: "List the friends being tracked",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "add-friend",
					Description: "Start tracking a friend",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Display name",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "remove-friend",
					Description: "Stop tracking a friend and delete their drinks",
					Options: []*discordgo.ApplicationCommandOption{
						friendOption("Name of the friend to remove", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "select",
					Description: "Choose who the quick-log buttons log for",
					Options: []*discordgo.ApplicationCommandOption{
						friendOption("Name of the friend to select", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "log",
					Description: "Log a drink",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "type",
							Description: "What was drunk",
							Required:    true,
							Choices:     drinkChoices,
						},
						friendOption("Who drank it; defaults to your selected friend", false),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show drink totals for every friend",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "hourly",
					Description: "Show today's drinks hour by hour",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "settings",
					Description: "Show or change the alcohol percentage of each drink type",
					Options: []*discordgo.ApplicationCommandOption{
						percentOption("standard", "Standard drink ABV %"),
						percentOption("beer", "Beer ABV %"),
						percentOption("shot", "Shot ABV %"),
					},
				},
			},
		},
		trackerService:   cfg.TrackerService,
		messagingService: cfg.MessagingService,
		selection:        selection,
		logger:           logger,
	}, nil
}

// Handle processes a Discord interaction for the drinks command
func (c *DrinksCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	userID, _ := interactionUser(i)
	resp := c.run(context.Background(), userID, data)

	return s.InteractionRespond(i.Interaction, resp.interactionResponse(discordgo.InteractionResponseChannelMessageWithSource))
}

// HandlesComponent reports whether customID is a quick-log button
func (c *DrinksCommand) HandlesComponent(customID string) bool {
	return strings.HasPrefix(customID, quickLogPrefix)
}

// HandleComponent logs a drink for the clicking user's selected friend
func (c *DrinksCommand) HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID, _ := interactionUser(i)
	resp := c.quickLog(context.Background(), userID, i.MessageComponentData().CustomID)

	return s.InteractionRespond(i.Interaction, resp.interactionResponse(discordgo.InteractionResponseChannelMessageWithSource))
}

// run dispatches a subcommand and turns any error into a user-facing response
func (c *DrinksCommand) run(ctx context.Context, userID string, data discordgo.ApplicationCommandInteractionData) *response {
	if len(data.Options) == 0 {
		return c.errorResponse(ctx, "drinks", fmt.Errorf("%w: missing subcommand", tracker.ErrValidation))
	}

	sub := data.Options[0]
	opts := subcommandOptions(sub)

	var resp *response
	var err error

	switch sub.Name {
	case "friends":
		resp, err = c.handleFriends(ctx, userID)
	case "add-friend":
		resp, err = c.handleAddFriend(ctx, opts)
	case "remove-friend":
		resp, err = c.handleRemoveFriend(ctx, opts)
	case "select":
		resp, err = c.handleSelect(ctx, userID, opts)
	case "log":
		resp, err = c.handleLog(ctx, userID, opts)
	case "stats":
		resp, err = c.handleStats(ctx)
	case "hourly":
		resp, err = c.handleHourly(ctx)
	case "settings":
		resp, err = c.handleSettings(ctx, opts)
	default:
		err = fmt.Errorf("%w: unknown subcommand %q", tracker.ErrValidation, sub.Name)
	}

	if err != nil {
		return c.errorResponse(ctx, sub.Name, err)
	}
	return resp
}

// quickLog handles a quick-log button click
func (c *DrinksCommand) quickLog(ctx context.Context, userID, customID string) *response {
	drinkType, ok := parseQuickLogCustomID(customID)
	if !ok {
		return c.errorResponse(ctx, "quick-log", fmt.Errorf("%w: unknown button %q", tracker.ErrValidation, customID))
	}

	friend, err := c.selectedFriend(ctx, userID)
	if err != nil {
		return c.errorResponse(ctx, "quick-log", err)
	}

	resp, err := c.logFor(ctx, friend, drinkType)
	if err != nil {
		return c.errorResponse(ctx, "quick-log", err)
	}
	return resp
}

func (c *DrinksCommand) handleFriends(ctx context.Context, userID string) (*response, error) {
	friends, err := c.listFriends(ctx)
	if err != nil {
		return nil, err
	}

	return &response{
		embeds: []*discordgo.MessageEmbed{
			renderFriends(friends, c.selection.Current(userID, friends)),
		},
	}, nil
}

func (c *DrinksCommand) handleAddFriend(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*response, error) {
	name, err := stringOption(opts, "name")
	if err != nil {
		return nil, err
	}

	added, err := c.trackerService.AddFriend(ctx, &tracker.AddFriendInput{Name: name})
	if err != nil {
		return nil, err
	}

	msg, err := c.messagingService.GetFriendAddedMessage(ctx, &messaging.GetFriendAddedMessageInput{
		FriendName: added.Friend.DisplayName,
	})
	if err != nil {
		return nil, err
	}

	return &response{
		embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Friend added",
				Description: msg.Message,
				Color:       parseColorTag(added.Friend.ColorTag),
			},
		},
	}, nil
}

func (c *DrinksCommand) handleRemoveFriend(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*response, error) {
	friend, err := c.friendOption(ctx, opts)
	if err != nil {
		return nil, err
	}

	removed, err := c.trackerService.RemoveFriend(ctx, &tracker.RemoveFriendInput{FriendID: friend.ID})
	if err != nil {
		return nil, err
	}

	msg, err := c.messagingService.GetFriendRemovedMessage(ctx, &messaging.GetFriendRemovedMessageInput{
		FriendName:   removed.Friend.DisplayName,
		PurgedDrinks: removed.PurgedDrinks,
	})
	if err != nil {
		return nil, err
	}

	return &response{
		embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Friend removed",
				Description: msg.Message,
				Color:       parseColorTag(removed.Friend.ColorTag),
			},
		},
	}, nil
}

func (c *DrinksCommand) handleSelect(ctx context.Context, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*response, error) {
	friend, err := c.friendOption(ctx, opts)
	if err != nil {
		return nil, err
	}

	c.selection.Select(userID, friend.ID)

	return &response{
		content:    fmt.Sprintf("Quick-log buttons now log for **%s**.", friend.DisplayName),
		components: renderQuickLogButtons(),
		ephemeral:  true,
	}, nil
}

func (c *DrinksCommand) handleLog(ctx context.Context, userID string, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*response, error) {
	tag, err := stringOption(opts, "type")
	if err != nil {
		return nil, err
	}

	drinkType, ok := models.ParseDrinkType(tag)
	if !ok {
		return nil, fmt.Errorf("%w: unknown drink type %q", tracker.ErrValidation, tag)
	}

	var friend *models.Friend
	if _, given := opts["friend"]; given {
		friend, err = c.friendOption(ctx, opts)
	} else {
		friend, err = c.selectedFriend(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	return c.logFor(ctx, friend, drinkType)
}

// logFor logs a drink and renders it with today's running count
func (c *DrinksCommand) logFor(ctx context.Context, friend *models.Friend, drinkType models.DrinkType) (*response, error) {
	logged, err := c.trackerService.LogDrink(ctx, &tracker.LogDrinkInput{
		FriendID:  friend.ID,
		DrinkType: drinkType,
	})
	if err != nil {
		return nil, err
	}

	today, err := c.trackerService.GetDrinksForDay(ctx, &tracker.GetDrinksForDayInput{})
	if err != nil {
		return nil, err
	}

	count := 0
	for _, d := range today.Drinks {
		if d.FriendID == friend.ID {
			count++
		}
	}

	msg, err := c.messagingService.GetDrinkLoggedMessage(ctx, &messaging.GetDrinkLoggedMessageInput{
		FriendName: friend.DisplayName,
		DrinkType:  logged.Drink.DrinkType,
		TodayCount: count,
	})
	if err != nil {
		return nil, err
	}

	return &response{
		embeds: []*discordgo.MessageEmbed{
			{
				Title:       msg.Title,
				Description: msg.Message,
				Color:       parseColorTag(friend.ColorTag),
				Fields: []*discordgo.MessageEmbedField{
					{
						Name:   "Today",
						Value:  fmt.Sprintf("%d", count),
						Inline: true,
					},
					{
						Name:   "ABV",
						Value:  fmt.Sprintf("%g%%", logged.Drink.AlcoholPercentAtLogTime),
						Inline: true,
					},
				},
			},
		},
		components: renderQuickLogButtons(),
	}, nil
}

func (c *DrinksCommand) handleStats(ctx context.Context) (*response, error) {
	out, err := c.trackerService.GetAllTotals(ctx, &tracker.GetAllTotalsInput{})
	if err != nil {
		return nil, err
	}

	return &response{
		embeds: []*discordgo.MessageEmbed{
			renderTotals(out.Friends, out.Totals),
		},
	}, nil
}

func (c *DrinksCommand) handleHourly(ctx context.Context) (*response, error) {
	out, err := c.trackerService.GetHourlySeries(ctx, &tracker.GetHourlySeriesInput{})
	if err != nil {
		return nil, err
	}

	return &response{
		embeds: []*discordgo.MessageEmbed{
			renderHourly(out.DayStart, out.Buckets),
		},
	}, nil
}

// handleSettings replaces the percentages given and keeps the rest. With no
// options it shows the current settings.
func (c *DrinksCommand) handleSettings(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*response, error) {
	current, err := c.trackerService.CurrentConfig(ctx, &tracker.CurrentConfigInput{})
	if err != nil {
		return nil, err
	}

	if len(opts) == 0 {
		return &response{
			embeds: []*discordgo.MessageEmbed{
				renderConfig("Current settings", current.Config),
			},
		}, nil
	}

	next := current.Config
	targets := map[string]*float64{
		"standard": &next.StandardDrink,
		"beer":     &next.Beer,
		"shot":     &next.Shot,
	}
	for name, target := range targets {
		if opt, ok := opts[name]; ok && opt.Type == discordgo.ApplicationCommandOptionNumber {
			*target = ClampPercent(opt.FloatValue())
		}
	}

	out, err := c.trackerService.SetConfig(ctx, &tracker.SetConfigInput{Config: next})
	if err != nil {
		return nil, err
	}

	return &response{
		embeds: []*discordgo.MessageEmbed{
			renderConfig("Settings updated", out.Config),
		},
	}, nil
}

// errorResponse logs err and renders a friendly message for its kind
func (c *DrinksCommand) errorResponse(ctx context.Context, subcommand string, err error) *response {
	kind := tracker.ErrorKind(err)

	level := slog.LevelWarn
	if kind == messaging.ErrorTypeInternal {
		level = slog.LevelError
	}
	c.logger.Log(ctx, level, "drinks command failed",
		slog.String("subcommand", subcommand),
		slog.String("kind", kind),
		slog.Any("error", err))

	msg, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{ErrorType: kind})
	if msgErr != nil {
		return renderError("Something went wrong! Try again later.")
	}

	description := msg.Message
	if kind != messaging.ErrorTypeInternal {
		description += "\n\n*" + err.Error() + "*"
	}
	return renderError(description)
}

func (c *DrinksCommand) listFriends(ctx context.Context) ([]*models.Friend, error) {
	out, err := c.trackerService.ListFriends(ctx, &tracker.ListFriendsInput{})
	if err != nil {
		return nil, err
	}
	return out.Friends, nil
}

// selectedFriend returns the user's selected friend, falling back to the first
func (c *DrinksCommand) selectedFriend(ctx context.Context, userID string) (*models.Friend, error) {
	friends, err := c.listFriends(ctx)
	if err != nil {
		return nil, err
	}

	friend := c.selection.Current(userID, friends)
	if friend == nil {
		return nil, fmt.Errorf("%w: no friends are being tracked", tracker.ErrNotFound)
	}
	return friend, nil
}

// friendOption resolves the "friend" option by ID, then by display name
// ignoring case. Duplicate names resolve to the friend added first.
func (c *DrinksCommand) friendOption(ctx context.Context, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*models.Friend, error) {
	ref, err := stringOption(opts, "friend")
	if err != nil {
		return nil, err
	}

	friends, err := c.listFriends(ctx)
	if err != nil {
		return nil, err
	}

	for _, f := range friends {
		if f.ID == ref {
			return f, nil
		}
	}
	for _, f := range friends {
		if strings.EqualFold(f.DisplayName, ref) {
			return f, nil
		}
	}

	return nil, fmt.Errorf("%w: no friend named %q", tracker.ErrNotFound, ref)
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) (string, error) {
	opt, ok := opts[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return "", fmt.Errorf("%w: %s is required", tracker.ErrValidation, name)
	}
	return strings.TrimSpace(opt.StringValue()), nil
}
