package discord

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/drinktracker/internal/services/messaging"
	"github.com/KirkDiggler/drinktracker/internal/services/tracker"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	components []ComponentHandler
	commandIDs map[string]string // Maps command name to command ID
	logger     *slog.Logger
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	TrackerService   tracker.Service
	MessagingService messaging.Service
	Logger           *slog.Logger
}

// New creates a new Discord bot. Handlers are wired here so no interaction
// can arrive before they are in place.
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.TrackerService == nil {
		return nil, errors.New("tracker service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		logger:     logger,
		config:     cfg,
	}

	drinksCmd, err := NewDrinksCommand(&DrinksCommandConfig{
		TrackerService:   cfg.TrackerService,
		MessagingService: cfg.MessagingService,
		Logger:           logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create drinks command: %w", err)
	}
	bot.addHandler(drinksCmd)

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// addHandler routes a command, and its components if it has any, to cmd
func (b *Bot) addHandler(cmd CommandHandler) {
	b.commands[cmd.GetName()] = cmd
	if ch, ok := cmd.(ComponentHandler); ok {
		b.components = append(b.components, ch)
	}
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, cmd := range b.commands {
		if err := b.RegisterCommand(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.GetName(), err)
		}
	}

	b.logger.Info("bot is now running")
	return nil
}

// Stop removes the registered commands and closes the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Error("failed to delete command",
				slog.String("command", cmdName),
				slog.String("command_id", cmdID),
				slog.Any("error", err))
		} else {
			b.logger.Info("deleted command",
				slog.String("command", cmdName),
				slog.String("command_id", cmdID))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. If a guild ID is
// configured the command is registered for that guild only.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		slog.String("command", cmd.GetName()),
		slog.String("command_id", createdCmd.ID),
		slog.String("guild_id", b.config.GuildID))

	return nil
}

// appID falls back to the session user when no application ID is configured
func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("error handling command",
					slog.String("command", name),
					slog.Any("error", err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("error handling component interaction",
				slog.String("custom_id", i.MessageComponentData().CustomID),
				slog.Any("error", err))
		}
	}
}

// handleComponentInteraction routes button clicks to the handler owning them
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID

	if h := b.componentHandler(customID); h != nil {
		return h.HandleComponent(s, i)
	}

	resp := renderError(fmt.Sprintf("Unknown button: %s", customID))
	return s.InteractionRespond(i.Interaction, resp.interactionResponse(discordgo.InteractionResponseChannelMessageWithSource))
}

func (b *Bot) componentHandler(customID string) ComponentHandler {
	for _, h := range b.components {
		if h.HandlesComponent(customID) {
			return h
		}
	}
	return nil
}
