package discord

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/KirkDiggler/warbot/internal/models"
	"github.com/KirkDiggler/warbot/internal/services/messaging"
	"github.com/KirkDiggler/warbot/internal/services/war"
	"github.com/KirkDiggler/warbot/internal/services/war/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type channelPost struct {
	channelID string
	message   *discordgo.MessageSend
	embed     *discordgo.MessageEmbed
}

// fakeResponder records everything sent back to Discord
type fakeResponder struct {
	responses []*discordgo.InteractionResponse
	followups []*discordgo.WebhookParams
	posts     []channelPost
	files     map[string][]byte

	postErr error
}

func (f *fakeResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeResponder) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	for _, file := range data.Files {
		content, err := io.ReadAll(file.Reader)
		if err != nil {
			return nil, err
		}
		if f.files == nil {
			f.files = make(map[string][]byte)
		}
		f.files[file.Name] = content
	}
	f.followups = append(f.followups, data)
	return &discordgo.Message{}, nil
}

func (f *fakeResponder) ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.postErr != nil {
		return nil, f.postErr
	}
	f.posts = append(f.posts, channelPost{channelID: channelID, message: data})
	return &discordgo.Message{}, nil
}

func (f *fakeResponder) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.postErr != nil {
		return nil, f.postErr
	}
	f.posts = append(f.posts, channelPost{channelID: channelID, embed: embed})
	return &discordgo.Message{}, nil
}

type BotTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	warService *mocks.MockService
	responder  *fakeResponder
	bot        *Bot
}

func TestBotTestSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}

func (s *BotTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.warService = mocks.NewMockService(s.ctrl)
	s.responder = &fakeResponder{}

	messagingService, err := messaging.NewService(&messaging.ServiceConfig{Seed: 42})
	s.Require().NoError(err)

	s.bot = newBot(&Config{
		ResultsChannelID: "results",
		WarService:       s.warService,
		MessagingService: messagingService,
	})
}

func (s *BotTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func member(admin bool) *discordgo.Member {
	var perms int64
	if admin {
		perms = discordgo.PermissionAdministrator
	}
	return &discordgo.Member{
		User:        &discordgo.User{ID: "user-1"},
		Permissions: perms,
	}
}

func component(customID string, admin bool, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:     "interaction-1",
			Type:   discordgo.InteractionMessageComponent,
			Member: member(admin),
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
				Values:   values,
			},
		},
	}
}

func modal(customID string, admin bool, values map[string]string) *discordgo.InteractionCreate {
	rows := make([]discordgo.MessageComponent, 0, len(values))
	for id, value := range values {
		rows = append(rows, &discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: id, Value: value},
			},
		})
	}

	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:     "interaction-1",
			Type:   discordgo.InteractionModalSubmit,
			Member: member(admin),
			Data: discordgo.ModalSubmitInteractionData{
				CustomID:   customID,
				Components: rows,
			},
		},
	}
}

func openSession(names ...string) *war.GetSessionOutput {
	roster := make([]*models.Participant, 0, len(names))
	for _, name := range names {
		roster = append(roster, &models.Participant{DisplayName: name})
	}
	return &war.GetSessionOutput{
		Session: &models.Session{
			IsOpen:    true,
			SheetName: "내전-2024-06-01",
			Roster:    roster,
		},
	}
}

// onlyResponse asserts exactly one direct response and returns it
func (s *BotTestSuite) onlyResponse() *discordgo.InteractionResponse {
	s.Require().Len(s.responder.responses, 1)
	return s.responder.responses[0]
}

// onlyFollowup asserts a single deferral followed by one followup
func (s *BotTestSuite) onlyFollowup() *discordgo.WebhookParams {
	resp := s.onlyResponse()
	s.Equal(discordgo.InteractionResponseDeferredChannelMessageWithSource, resp.Type)
	s.Require().Len(s.responder.followups, 1)
	s.Equal(discordgo.MessageFlagsEphemeral, s.responder.followups[0].Flags)
	return s.responder.followups[0]
}

func (s *BotTestSuite) TestJoinButtonWhenClosed() {
	s.warService.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(&war.GetSessionOutput{Session: &models.Session{}}, nil)

	s.bot.dispatch(s.responder, component(ButtonJoin, false))

	resp := s.onlyResponse()
	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	s.Equal("현재 활성화된 내전이 없습니다.", resp.Data.Content)
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Empty(s.responder.followups)
}

func (s *BotTestSuite) TestJoinButtonOpensModal() {
	s.warService.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(openSession(), nil)

	s.bot.dispatch(s.responder, component(ButtonJoin, false))

	resp := s.onlyResponse()
	s.Equal(discordgo.InteractionResponseModal, resp.Type)
	s.Equal(ModalJoin, resp.Data.CustomID)
}

func (s *BotTestSuite) TestPanicIsAcknowledgedOnce() {
	s.warService.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *war.GetSessionInput) (*war.GetSessionOutput, error) {
			panic("boom")
		})

	s.bot.dispatch(s.responder, component(ButtonCancel, false))

	resp := s.onlyResponse()
	s.Equal(genericFailure, resp.Data.Content)
	s.Empty(s.responder.followups)
}

func (s *BotTestSuite) TestPanicAfterDeferUsesFollowup() {
	s.warService.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *war.CountInput) (*war.CountOutput, error) {
			panic("boom")
		})

	s.bot.dispatch(s.responder, component(ButtonCount, false))

	followup := s.onlyFollowup()
	s.Equal(genericFailure, followup.Content)
}

func (s *BotTestSuite) TestUnknownComponentStillAnswered() {
	s.bot.dispatch(s.responder, component("something_else", false))

	resp := s.onlyResponse()
	s.Equal(genericFailure, resp.Data.Content)
}

func (s *BotTestSuite) TestCountFollowup() {
	s.warService.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(&war.CountOutput{Count: 3, Names: []string{"A#1", "B#2", "C#3"}}, nil)

	s.bot.dispatch(s.responder, component(ButtonCount, false))

	s.Equal("현재 참여 인원: 3명", s.onlyFollowup().Content)
}

func (s *BotTestSuite) TestManageRequiresAdmin() {
	s.bot.dispatch(s.responder, component(ButtonManage, false))

	s.Equal("이 버튼은 관리자만 사용할 수 있습니다.", s.onlyResponse().Data.Content)
}

func (s *BotTestSuite) TestManageShowsMenu() {
	s.bot.dispatch(s.responder, component(ButtonManage, true))

	resp := s.onlyResponse()
	s.Equal("관리 옵션을 선택하세요:", resp.Data.Content)
	s.Len(resp.Data.Components, 1)
}

func (s *BotTestSuite) TestOpenWar() {
	s.warService.EXPECT().
		OpenWar(gomock.Any(), &war.OpenWarInput{IsAdmin: true}).
		Return(&war.OpenWarOutput{SheetName: "내전-2024-06-01"}, nil)

	s.bot.dispatch(s.responder, component(ButtonOpen, true))

	s.Equal("내전이 열렸습니다: 내전-2024-06-01", s.onlyFollowup().Content)
}

func (s *BotTestSuite) TestOpenWarAlreadyOpen() {
	s.warService.EXPECT().
		OpenWar(gomock.Any(), gomock.Any()).
		Return(nil, war.ErrAlreadyOpen)

	s.bot.dispatch(s.responder, component(ButtonOpen, true))

	s.Equal("이미 진행 중인 내전이 있습니다. 먼저 내전을 닫아주세요.", s.onlyFollowup().Content)
}

func (s *BotTestSuite) TestCloseShowsConfirmation() {
	s.warService.EXPECT().
		RequestClose(gomock.Any(), &war.RequestCloseInput{IsAdmin: true, UserID: "user-1"}).
		Return(&war.RequestCloseOutput{
			Token:     "tok",
			SheetName: "내전-2024-06-01",
			ExpiresAt: time.Now().Add(time.Minute),
		}, nil)

	s.bot.dispatch(s.responder, component(ButtonClose, true))

	resp := s.onlyResponse()
	s.Require().Len(resp.Data.Components, 1)
	row := resp.Data.Components[0].(discordgo.ActionsRow)
	s.Equal("war_close_confirm:tok", row.Components[0].(discordgo.Button).CustomID)
}

func (s *BotTestSuite) TestConfirmCloseSucceeds() {
	s.warService.EXPECT().
		ConfirmClose(gomock.Any(), &war.ConfirmCloseInput{Token: "tok", UserID: "user-1"}).
		Return(&war.ConfirmCloseOutput{SheetName: "내전-2024-06-01"}, nil)

	s.bot.dispatch(s.responder, component("war_close_confirm:tok", true))

	resp := s.onlyResponse()
	s.Equal(discordgo.InteractionResponseDeferredMessageUpdate, resp.Type)
	s.Require().Len(s.responder.followups, 1)
	s.Equal("내전이 성공적으로 닫혔습니다.", s.responder.followups[0].Content)
}

func (s *BotTestSuite) TestExpiredConfirmationIsSilent() {
	s.warService.EXPECT().
		ConfirmClose(gomock.Any(), gomock.Any()).
		Return(nil, war.ErrConfirmationExpired)

	s.bot.dispatch(s.responder, component("war_close_confirm:old", true))

	resp := s.onlyResponse()
	s.Equal(discordgo.InteractionResponseDeferredMessageUpdate, resp.Type)
	s.Empty(s.responder.followups)
}

func (s *BotTestSuite) TestAbortClose() {
	s.warService.EXPECT().
		AbortClose(gomock.Any(), &war.AbortCloseInput{Token: "tok", UserID: "user-1"}).
		Return(&war.AbortCloseOutput{SheetName: "내전-2024-06-01"}, nil)

	s.bot.dispatch(s.responder, component("war_close_abort:tok", true))

	s.Require().Len(s.responder.followups, 1)
	s.Equal("내전 닫기를 취소했습니다.", s.responder.followups[0].Content)
}

func (s *BotTestSuite) TestWinButtonEmptyRoster() {
	gomock.InOrder(
		s.warService.EXPECT().Count(gomock.Any(), gomock.Any()).Return(&war.CountOutput{}, nil),
		s.warService.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(openSession(), nil),
	)

	s.bot.dispatch(s.responder, component(ButtonWin, true))

	s.Equal("참여자가 없습니다.", s.onlyFollowup().Content)
}

func (s *BotTestSuite) TestWinButtonShowsSelector() {
	gomock.InOrder(
		s.warService.EXPECT().Count(gomock.Any(), gomock.Any()).Return(&war.CountOutput{Count: 2}, nil),
		s.warService.EXPECT().GetSession(gomock.Any(), gomock.Any()).Return(openSession("A#1", "B#2"), nil),
	)

	s.bot.dispatch(s.responder, component(ButtonWin, true))

	followup := s.onlyFollowup()
	s.Require().Len(followup.Components, 1)
	menu := followup.Components[0].(discordgo.ActionsRow).Components[0].(discordgo.SelectMenu)
	s.Len(menu.Options, minWinnerOptions)
	s.Equal("A#1", menu.Options[0].Value)
}

func (s *BotTestSuite) TestWinButtonClosed() {
	s.warService.EXPECT().Count(gomock.Any(), gomock.Any()).Return(nil, war.ErrNotOpen)

	s.bot.dispatch(s.responder, component(ButtonWin, true))

	s.Equal("현재 활성화된 내전이 없습니다.", s.onlyFollowup().Content)
}

func (s *BotTestSuite) TestWinSelectPostsResult() {
	s.warService.EXPECT().
		DeclareWinners(gomock.Any(), &war.DeclareWinnersInput{IsAdmin: true, Winners: []string{"A#1"}}).
		Return(&war.DeclareWinnersOutput{
			Result: &models.WarResult{
				Date:      time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC),
				SheetName: "내전-2024-06-01",
				Winners:   []string{"A#1"},
				Losers:    []string{"B#2"},
			},
		}, nil)

	s.bot.dispatch(s.responder, component(SelectWinners, true, "A#1", "dummy_2"))

	s.Require().Len(s.responder.posts, 1)
	post := s.responder.posts[0]
	s.Equal("results", post.channelID)
	s.Require().NotNil(post.embed)
	s.Equal("내전 결과", post.embed.Title)
	s.Contains(post.embed.Description, "⭐ 승리: A#1")
	s.Contains(post.embed.Description, "🧨 패배: B#2")

	s.NotEmpty(s.onlyFollowup().Content)
}

func (s *BotTestSuite) TestWinSelectResultPostFailureStillReplies() {
	s.responder.postErr = errors.New("missing access")
	s.warService.EXPECT().
		DeclareWinners(gomock.Any(), gomock.Any()).
		Return(&war.DeclareWinnersOutput{
			Result: &models.WarResult{Date: time.Now(), Winners: []string{"A#1"}},
		}, nil)

	s.bot.dispatch(s.responder, component(SelectWinners, true, "A#1"))

	s.Empty(s.responder.posts)
	s.NotEmpty(s.onlyFollowup().Content)
}

func (s *BotTestSuite) TestJoinModalRecordsSignup() {
	s.warService.EXPECT().
		Join(gomock.Any(), &war.JoinInput{Nickname: "player#1234", Line: "미드"}).
		Return(&war.JoinOutput{DisplayName: "Player#1234", Row: 5}, nil)

	s.bot.dispatch(s.responder, modal(ModalJoin, false, map[string]string{
		InputNickname: "player#1234",
		InputLine:     "미드",
	}))

	followup := s.onlyFollowup()
	s.Contains(followup.Content, "Player#1234")
	s.Contains(followup.Content, "(라인: 미드)")
}

func (s *BotTestSuite) TestJoinModalUnknownMember() {
	s.warService.EXPECT().
		Join(gomock.Any(), gomock.Any()).
		Return(nil, war.ErrMemberNotFound)

	s.bot.dispatch(s.responder, modal(ModalJoin, false, map[string]string{
		InputNickname: "Nobody#0000",
	}))

	s.Equal("닉네임#태그를 찾을 수 없습니다.", s.onlyFollowup().Content)
}

func (s *BotTestSuite) TestJoinModalGatewayFailure() {
	s.warService.EXPECT().
		Join(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("sheets unavailable"))

	s.bot.dispatch(s.responder, modal(ModalJoin, false, map[string]string{
		InputNickname: "Player#1234",
	}))

	s.Equal("참여 기록 중 오류가 발생했습니다.", s.onlyFollowup().Content)
}

func (s *BotTestSuite) TestCancelModalNotOnRoster() {
	s.warService.EXPECT().
		Cancel(gomock.Any(), &war.CancelInput{Nickname: "Ghost#1"}).
		Return(nil, war.ErrRecordNotFound)

	s.bot.dispatch(s.responder, modal(ModalCancel, false, map[string]string{
		InputNickname: "Ghost#1",
	}))

	s.Equal("`Ghost#1` 닉네임에 대한 참여 기록을 찾을 수 없습니다.", s.onlyFollowup().Content)
}

func (s *BotTestSuite) TestCancelModalSucceeds() {
	s.warService.EXPECT().
		Cancel(gomock.Any(), gomock.Any()).
		Return(&war.CancelOutput{DisplayName: "Player#1234", Row: 6}, nil)

	s.bot.dispatch(s.responder, modal(ModalCancel, false, map[string]string{
		InputNickname: "player#1234",
	}))

	s.Equal("`Player#1234` 님의 참여 취소 성공", s.onlyFollowup().Content)
}

func (s *BotTestSuite) TestRecordButtonRequiresAdmin() {
	s.bot.dispatch(s.responder, component(ButtonRecord, false))

	s.Equal("이 버튼은 관리자만 사용할 수 있습니다.", s.onlyResponse().Data.Content)
}

func (s *BotTestSuite) TestRecordModalSendsFile() {
	path := filepath.Join(s.T().TempDir(), "내전기록_2024-06-01_22-00-00.xlsx")
	s.Require().NoError(os.WriteFile(path, []byte("xlsx"), 0o644))

	s.warService.EXPECT().
		FindRecords(gomock.Any(), &war.FindRecordsInput{IsAdmin: true, Date: "2024-06-01"}).
		Return(&war.FindRecordsOutput{Paths: []string{path}}, nil)

	s.bot.dispatch(s.responder, modal(ModalRecord, true, map[string]string{
		InputDate: "2024-06-01",
	}))

	followup := s.onlyFollowup()
	s.Equal(recordMessage, followup.Content)
	s.Require().Len(followup.Files, 1)
	s.Equal(xlsxContentType, followup.Files[0].ContentType)
	s.Equal([]byte("xlsx"), s.responder.files["내전기록_2024-06-01_22-00-00.xlsx"])
}

func (s *BotTestSuite) TestRecordModalNoMatch() {
	s.warService.EXPECT().
		FindRecords(gomock.Any(), gomock.Any()).
		Return(nil, war.ErrRecordNotFound)

	s.bot.dispatch(s.responder, modal(ModalRecord, true, map[string]string{
		InputDate: "1999-01-01",
	}))

	s.Equal("해당 날짜의 기록을 찾을 수 없습니다.", s.onlyFollowup().Content)
}

func channelCommand(channelID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:     "interaction-1",
			Type:   discordgo.InteractionApplicationCommand,
			Member: member(true),
			Data: discordgo.ApplicationCommandInteractionData{
				Name: commandWar,
				Options: []*discordgo.ApplicationCommandInteractionDataOption{
					{
						Name: subcommandManage,
						Type: discordgo.ApplicationCommandOptionSubCommand,
						Options: []*discordgo.ApplicationCommandInteractionDataOption{
							{
								Name:  optionChannel,
								Type:  discordgo.ApplicationCommandOptionChannel,
								Value: channelID,
							},
						},
					},
				},
			},
		},
	}
}

func (s *BotTestSuite) TestWarCommandPostsPanel() {
	s.bot.dispatch(s.responder, channelCommand("signup"))

	s.Require().Len(s.responder.posts, 1)
	post := s.responder.posts[0]
	s.Equal("signup", post.channelID)
	s.Require().NotNil(post.message)
	s.Equal("내전 참여 안내", post.message.Embeds[0].Title)

	s.Equal("<#signup> 채널에 메시지가 전송되었습니다.", s.onlyResponse().Data.Content)
}

func (s *BotTestSuite) TestWarCommandPostFailure() {
	s.responder.postErr = errors.New("missing access")

	s.bot.dispatch(s.responder, channelCommand("signup"))

	s.Empty(s.responder.posts)
	s.Equal(genericFailure, s.onlyResponse().Data.Content)
}

func (s *BotTestSuite) TestWarCommandDefinition() {
	cmd := NewWarCommand().GetCommand()

	s.Equal(commandWar, cmd.Name)
	s.Require().NotNil(cmd.DefaultMemberPermissions)
	s.Equal(int64(discordgo.PermissionAdministrator), *cmd.DefaultMemberPermissions)
	s.Require().Len(cmd.Options, 1)
	s.Equal(subcommandManage, cmd.Options[0].Name)
}
