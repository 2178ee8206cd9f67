package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

const (
	commandWar       = "내전"
	subcommandManage = "관리"
	optionChannel    = "채널"
)

// WarCommand handles the /내전 command
type WarCommand struct {
	BaseCommand
}

// NewWarCommand creates a new war command handler
func NewWarCommand() *WarCommand {
	adminOnly := int64(discordgo.PermissionAdministrator)

	return &WarCommand{
		BaseCommand: BaseCommand{
			Name:        commandWar,
			Description: "내전 관리 명령어",
			Permissions: &adminOnly,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        subcommandManage,
					Description: "내전 관리 메시지를 전송합니다.",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:         discordgo.ApplicationCommandOptionChannel,
							Name:         optionChannel,
							Description:  "메시지를 전송할 채널을 선택하세요.",
							ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
							Required:     true,
						},
					},
				},
			},
		},
	}
}

// Handle posts the signup panel to the chosen channel
func (c *WarCommand) Handle(x *interaction) error {
	data := x.i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	if sub.Name != subcommandManage {
		return x.reply(fmt.Sprintf("알 수 없는 명령입니다: %s", sub.Name))
	}

	var channelID string
	for _, opt := range sub.Options {
		if opt.Name == optionChannel {
			channelID = opt.ChannelValue(nil).ID
		}
	}

	if channelID == "" {
		return x.reply("메시지를 전송할 채널을 선택하세요.")
	}

	if _, err := x.r.ChannelMessageSendComplex(channelID, renderPanel()); err != nil {
		return fmt.Errorf("failed to post war panel: %w", err)
	}

	return x.reply(fmt.Sprintf("<#%s> 채널에 메시지가 전송되었습니다.", channelID))
}
