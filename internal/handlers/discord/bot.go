package discord

import (
	"errors"
	"fmt"

	"github.com/KirkDiggler/warbot/internal/services/messaging"
	"github.com/KirkDiggler/warbot/internal/services/war"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot represents the Discord bot instance
type Bot struct {
	session          *discordgo.Session
	commands         map[string]CommandHandler
	commandIDs       map[string]string // Maps command name to command ID
	warService       war.Service
	messagingService messaging.Service
	config           *Config
	logger           *zap.Logger
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// ResultsChannelID receives settled war results; empty skips the post
	ResultsChannelID string

	WarService       war.Service
	MessagingService messaging.Service

	Logger *zap.Logger
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.WarService == nil {
		return nil, errors.New("war service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	bot := newBot(cfg)
	bot.session = session

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// newBot builds a bot without a gateway session
func newBot(cfg *Config) *Bot {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bot := &Bot{
		commands:         make(map[string]CommandHandler),
		commandIDs:       make(map[string]string),
		warService:       cfg.WarService,
		messagingService: cfg.MessagingService,
		config:           cfg,
		logger:           logger,
	}

	warCmd := NewWarCommand()
	bot.commands[warCmd.GetName()] = warCmd

	return bot
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

	b.logger.Info("bot is running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("id", cmdID),
				zap.Error(err))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("id", createdCmd.ID),
		zap.String("guild", b.config.GuildID))

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.dispatch(s, i)
}

// dispatch routes an interaction and makes sure it is acknowledged exactly
// once, whatever the handler does
func (b *Bot) dispatch(r Responder, i *discordgo.InteractionCreate) {
	x := newInteraction(r, i)

	defer func() {
		if p := recover(); p != nil {
			b.logger.Error("panic handling interaction",
				zap.String("interaction", i.ID),
				zap.Any("panic", p),
				zap.Stack("stack"))
			b.fallback(x)
		}
	}()

	var err error
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			err = h.Handle(x)
		}
	case discordgo.InteractionMessageComponent:
		err = b.handleComponent(x)
	case discordgo.InteractionModalSubmit:
		err = b.handleModal(x)
	default:
		return
	}

	if err != nil {
		b.logger.Error("failed to handle interaction",
			zap.String("interaction", i.ID),
			zap.Error(err))
	}

	if x.pending() {
		b.fallback(x)
	}
}

// fallback answers an interaction the handler left unanswered
func (b *Bot) fallback(x *interaction) {
	if !x.pending() {
		return
	}
	if err := x.reply(genericFailure); err != nil {
		b.logger.Error("failed to acknowledge interaction", zap.Error(err))
	}
}
