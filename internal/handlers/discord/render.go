package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/warbot/internal/common/names"
	"github.com/bwmarrin/discordgo"
)

// Component custom IDs
const (
	ButtonJoin   = "war_join"
	ButtonCancel = "war_cancel"
	ButtonCount  = "war_count"
	ButtonManage = "war_manage"

	ButtonOpen   = "war_open"
	ButtonClose  = "war_close"
	ButtonWin    = "war_win"
	ButtonRecord = "war_record"

	// Confirm and abort carry the confirmation token after a colon
	ButtonCloseConfirm = "war_close_confirm"
	ButtonCloseAbort   = "war_close_abort"

	SelectWinners = "war_win_select"

	ModalJoin   = "war_join_modal"
	ModalCancel = "war_cancel_modal"
	ModalRecord = "war_record_modal"

	InputNickname = "nickname"
	InputLine     = "line"
	InputDate     = "date"

	customIDSeparator = ":"
)

// Win selector limits
const (
	dummyPrefix      = "dummy_"
	minWinnerOptions = 10
	maxWinnerOptions = 25
	maxWinners       = 10
)

// Embed colors
const (
	colorBlue  = 0x3498db
	colorRed   = 0xe74c3c
	colorGreen = 0x2ecc71
)

// renderPanel builds the persistent signup panel
func renderPanel() *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "내전 참여 안내",
				Description: "내전에 참여하거나 취소하려면 아래 버튼을 사용하세요.",
				Color:       colorBlue,
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "내전 참여", Style: discordgo.PrimaryButton, CustomID: ButtonJoin},
					discordgo.Button{Label: "참여 취소", Style: discordgo.DangerButton, CustomID: ButtonCancel},
					discordgo.Button{Label: "인원", Style: discordgo.SecondaryButton, CustomID: ButtonCount},
					discordgo.Button{Label: "관리", Style: discordgo.SuccessButton, CustomID: ButtonManage},
				},
			},
		},
	}
}

// renderManageView builds the administrator menu
func renderManageView() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content: "관리 옵션을 선택하세요:",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "열기", Style: discordgo.SuccessButton, CustomID: ButtonOpen},
					discordgo.Button{Label: "닫기", Style: discordgo.DangerButton, CustomID: ButtonClose},
					discordgo.Button{Label: "승리", Style: discordgo.PrimaryButton, CustomID: ButtonWin},
					discordgo.Button{Label: "기록", Style: discordgo.SecondaryButton, CustomID: ButtonRecord},
				},
			},
		},
	}
}

// renderCloseConfirm builds the close prompt bound to token
func renderCloseConfirm(token, sheetName string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "내전 닫기 확인",
				Description: "정말로 내전을 닫으시겠습니까?",
				Color:       colorRed,
				Footer:      &discordgo.MessageEmbedFooter{Text: sheetName},
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{Label: "확인", Style: discordgo.DangerButton, CustomID: withToken(ButtonCloseConfirm, token)},
					discordgo.Button{Label: "취소", Style: discordgo.SecondaryButton, CustomID: withToken(ButtonCloseAbort, token)},
				},
			},
		},
	}
}

// renderWinSelect builds the winner selector. Options are padded with dummy
// entries so up to ten winners can always be picked.
func renderWinSelect(roster []string) *discordgo.InteractionResponseData {
	options := make([]discordgo.SelectMenuOption, 0, maxWinnerOptions)
	for _, name := range roster {
		if len(options) == maxWinnerOptions {
			break
		}
		options = append(options, discordgo.SelectMenuOption{Label: name, Value: name})
	}
	for n := 1; len(options) < minWinnerOptions; n++ {
		options = append(options, discordgo.SelectMenuOption{
			Label: fmt.Sprintf("더미 옵션 %d", n),
			Value: fmt.Sprintf("%s%d", dummyPrefix, n),
		})
	}

	minValues := 1
	return &discordgo.InteractionResponseData{
		Content: "승리팀을 선택하세요:",
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						CustomID:    SelectWinners,
						Placeholder: "승리팀을 최대 10명까지 선택하세요",
						MinValues:   &minValues,
						MaxValues:   maxWinners,
						Options:     options,
					},
				},
			},
		},
	}
}

// selectedWinners drops the padding entries from a winner selection. Padding
// values carry no tag, so they can never be a roster name.
func selectedWinners(values []string) []string {
	winners := make([]string, 0, len(values))
	for _, v := range values {
		if !names.IsValidParticipant(v) {
			continue
		}
		winners = append(winners, v)
	}
	return winners
}

// renderResultEmbed builds the results channel announcement
func renderResultEmbed(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       colorGreen,
	}
}

func textInput(id, label, placeholder string, required bool) discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    id,
				Label:       label,
				Style:       discordgo.TextInputShort,
				Placeholder: placeholder,
				Required:    required,
				MaxLength:   100,
			},
		},
	}
}

func renderJoinModal() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: ModalJoin,
		Title:    "내전 참여",
		Components: []discordgo.MessageComponent{
			textInput(InputNickname, "닉네임", "닉네임#태그를 입력하세요 (예: Player#1234)", true),
			textInput(InputLine, "라인", "주 라인을 입력하세요 (예: 탑, 미드, 정글, 원딜, 서폿)", false),
		},
	}
}

func renderCancelModal() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: ModalCancel,
		Title:    "참여 취소",
		Components: []discordgo.MessageComponent{
			textInput(InputNickname, "닉네임", "참여 취소할 닉네임을 입력하세요", true),
		},
	}
}

func renderRecordModal() *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: ModalRecord,
		Title:    "내전 기록 다운로드",
		Components: []discordgo.MessageComponent{
			textInput(InputDate, "날짜 입력 (YYYY-MM-DD)", "기록을 다운로드할 날짜를 입력하세요", true),
		},
	}
}

// modalValues flattens the text inputs of a submitted modal by custom ID
func modalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := make(map[string]string)
	for _, c := range data.Components {
		var row []discordgo.MessageComponent
		switch r := c.(type) {
		case *discordgo.ActionsRow:
			row = r.Components
		case discordgo.ActionsRow:
			row = r.Components
		}
		for _, inner := range row {
			switch input := inner.(type) {
			case *discordgo.TextInput:
				values[input.CustomID] = input.Value
			case discordgo.TextInput:
				values[input.CustomID] = input.Value
			}
		}
	}
	return values
}

func withToken(customID, token string) string {
	return customID + customIDSeparator + token
}

// splitCustomID separates a custom ID from its token, if any
func splitCustomID(customID string) (string, string) {
	id, token, _ := strings.Cut(customID, customIDSeparator)
	return id, token
}
