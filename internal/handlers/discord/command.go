package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Responder is the part of *discordgo.Session the handlers answer through
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	FollowupMessageCreate(interaction *discordgo.Interaction, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(x *interaction) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption

	// Permissions restricts who sees the command; nil means everyone
	Permissions *int64
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     c.Name,
		Description:              c.Description,
		Options:                  c.Options,
		DefaultMemberPermissions: c.Permissions,
	}
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(r Responder, i *discordgo.InteractionCreate, message string) error {
	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithEphemeralEmbedAndButtons sends an ephemeral embed response with buttons to an interaction
func RespondWithEphemeralEmbedAndButtons(r Responder, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, buttons []discordgo.MessageComponent) error {
	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{Components: buttons},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithModal opens a modal dialog
func RespondWithModal(r Responder, i *discordgo.InteractionCreate, modal *discordgo.InteractionResponseData) error {
	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: modal,
	})
}

// interaction wraps one incoming interaction and remembers how it was
// answered, so every exit path acknowledges it exactly once
type interaction struct {
	r Responder
	i *discordgo.InteractionCreate

	// acked is set once Discord has received a response of any kind
	acked bool

	// deferred is set when the response was a deferral awaiting a followup
	deferred bool

	// answered is set once the user has been shown something
	answered bool
}

func newInteraction(r Responder, i *discordgo.InteractionCreate) *interaction {
	return &interaction{r: r, i: i}
}

// userID returns the ID of the user who triggered the interaction
func (x *interaction) userID() string {
	if x.i.Member != nil && x.i.Member.User != nil {
		return x.i.Member.User.ID
	}
	if x.i.User != nil {
		return x.i.User.ID
	}
	return ""
}

// isAdmin reports whether the member holds the administrator permission
func (x *interaction) isAdmin() bool {
	return x.i.Member != nil && x.i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// deferReply acknowledges now and promises an ephemeral followup
func (x *interaction) deferReply() error {
	err := x.r.InteractionRespond(x.i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		return err
	}
	x.acked = true
	x.deferred = true
	return nil
}

// deferUpdate acknowledges a component click without changing anything
func (x *interaction) deferUpdate() error {
	err := x.r.InteractionRespond(x.i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		return err
	}
	x.acked = true
	x.deferred = true
	x.answered = true
	return nil
}

// reply shows an ephemeral message, as a followup when the interaction was
// deferred
func (x *interaction) reply(message string) error {
	return x.send(&discordgo.InteractionResponseData{Content: message})
}

// send shows ephemeral content, as a followup when the interaction was
// deferred
func (x *interaction) send(data *discordgo.InteractionResponseData) error {
	if x.deferred {
		_, err := x.r.FollowupMessageCreate(x.i.Interaction, true, &discordgo.WebhookParams{
			Content:    data.Content,
			Embeds:     data.Embeds,
			Components: data.Components,
			Files:      data.Files,
			Flags:      discordgo.MessageFlagsEphemeral,
		})
		if err != nil {
			return err
		}
		x.answered = true
		return nil
	}

	data.Flags |= discordgo.MessageFlagsEphemeral
	if err := x.r.InteractionRespond(x.i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}); err != nil {
		return err
	}
	x.acked = true
	x.answered = true
	return nil
}

// modal opens a modal dialog
func (x *interaction) modal(data *discordgo.InteractionResponseData) error {
	if err := RespondWithModal(x.r, x.i, data); err != nil {
		return err
	}
	x.acked = true
	x.answered = true
	return nil
}

// pending reports whether the user still needs to be shown something
func (x *interaction) pending() bool {
	return !x.acked || !x.answered
}
