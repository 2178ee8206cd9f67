package discord

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/warbot/internal/services/messaging"
	"github.com/KirkDiggler/warbot/internal/services/war"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const (
	genericFailure  = "요청 처리 중 오류가 발생했습니다."
	recordMessage   = "기록 파일을 다운로드하세요:"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// handleComponent routes button clicks and select menus
func (b *Bot) handleComponent(x *interaction) error {
	ctx := context.Background()
	id, token := splitCustomID(x.i.MessageComponentData().CustomID)

	switch id {
	case ButtonJoin:
		return b.handleJoinButton(ctx, x)
	case ButtonCancel:
		return b.handleCancelButton(ctx, x)
	case ButtonCount:
		return b.handleCountButton(ctx, x)
	case ButtonManage:
		return b.handleManageButton(ctx, x)
	case ButtonOpen:
		return b.handleOpenButton(ctx, x)
	case ButtonClose:
		return b.handleCloseButton(ctx, x)
	case ButtonCloseConfirm:
		return b.handleCloseConfirm(ctx, x, token)
	case ButtonCloseAbort:
		return b.handleCloseAbort(ctx, x, token)
	case ButtonWin:
		return b.handleWinButton(ctx, x)
	case SelectWinners:
		return b.handleWinSelect(ctx, x)
	case ButtonRecord:
		return b.handleRecordButton(ctx, x)
	default:
		return fmt.Errorf("unknown component %q", id)
	}
}

// handleModal routes modal submissions
func (b *Bot) handleModal(x *interaction) error {
	ctx := context.Background()
	data := x.i.ModalSubmitData()
	values := modalValues(data)

	switch data.CustomID {
	case ModalJoin:
		return b.handleJoinModal(ctx, x, values[InputNickname], values[InputLine])
	case ModalCancel:
		return b.handleCancelModal(ctx, x, values[InputNickname])
	case ModalRecord:
		return b.handleRecordModal(ctx, x, values[InputDate])
	default:
		return fmt.Errorf("unknown modal %q", data.CustomID)
	}
}

// replyError shows the message for a failed action. Stale confirmation
// clicks are acknowledged without text.
func (b *Bot) replyError(ctx context.Context, x *interaction, action messaging.Action, err error, nickname string) error {
	var warErr war.WarError
	if errors.As(err, &warErr) && warErr != war.ErrCopyFailed {
		b.logger.Info("war action rejected",
			zap.String("action", string(action)),
			zap.String("user", x.userID()),
			zap.Error(err))
	} else {
		b.logger.Error("war action failed",
			zap.String("action", string(action)),
			zap.String("user", x.userID()),
			zap.Error(err))
	}

	output, msgErr := b.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Action:   action,
		Err:      err,
		Nickname: nickname,
	})
	if msgErr != nil {
		return msgErr
	}

	if output.Silent {
		if !x.acked {
			return x.deferUpdate()
		}
		return nil
	}

	return x.reply(output.Message)
}

func (b *Bot) handleJoinButton(ctx context.Context, x *interaction) error {
	session, err := b.warService.GetSession(ctx, &war.GetSessionInput{})
	if err != nil {
		return b.replyError(ctx, x, messaging.ActionJoin, err, "")
	}

	if !session.Session.IsOpen {
		return b.replyError(ctx, x, messaging.ActionJoin, war.ErrNotOpen, "")
	}

	return x.modal(renderJoinModal())
}

func (b *Bot) handleCancelButton(ctx context.Context, x *interaction) error {
	session, err := b.warService.GetSession(ctx, &war.GetSessionInput{})
	if err != nil {
		return b.replyError(ctx, x, messaging.ActionCancel, err, "")
	}

	if !session.Session.IsOpen {
		return b.replyError(ctx, x, messaging.ActionCancel, war.ErrNotOpen, "")
	}

	return x.modal(renderCancelModal())
}

func (b *Bot) handleCountButton(ctx context.Context, x *interaction) error {
	if err := x.deferReply(); err != nil {
		return err
	}

	output, err := b.warService.Count(ctx, &war.CountInput{})
	if err != nil {
		return b.replyError(ctx, x, messaging.ActionCount, err, "")
	}

	message, err := b.messagingService.GetCountMessage(ctx, &messaging.GetCountMessageInput{
		Count: output.Count,
	})
	if err != nil {
		return err
	}

	return x.reply(message.Message)
}

func (b *Bot) handleManageButton(ctx context.Context, x *interaction) error {
	if !x.isAdmin() {
		return b.replyError(ctx, x, messaging.ActionManage, war.ErrPermissionDenied, "")
	}

	return x.send(renderManageView())
}

func (b *Bot) handleOpenButton(ctx context.Context, x *interaction) error {
	if err := x.deferReply(); err != nil {
		return err
	}

	output, err := b.warService.OpenWar(ctx, &war.OpenWarInput{
		IsAdmin: x.isAdmin(),
	})
	if err != nil {
		return b.replyError(ctx, x, messaging.ActionOpen, err, "")
	}

	message, err := b.messagingService.GetOpenMessage(ctx, &messaging.GetOpenMessageInput{
		SheetName: output.SheetName,
	})
	if err != nil {
		return err
	}

	return x.reply(message.Message)
}

func (b *Bot) handleCloseButton(ctx context.Context, x *interaction) error {
	output, err := b.warService.RequestClose(ctx, &war.RequestCloseInput{
		IsAdmin: x.isAdmin(),
		UserID:  x.userID(),
	})
	if err != nil {
		return b.replyError(ctx, x, messaging.ActionClose, err, "")
	}

	return x.send(renderCloseConfirm(output.Token, output.SheetName))
}

func (b *Bot) handleCloseConfirm(ctx context.Context, x *interaction, token string) error {
	// Export and delete can outlast the response window.
	if err := x.deferUpdate(); err != nil {
		return err
	}

	output, err := b.warService.ConfirmClose(ctx, &war.ConfirmCloseInput{
		Token:  token,
		UserID: x.userID(),
	})
	if err != nil {
		return b.replyError(ctx, x, messaging.ActionClose, err, "")
	}

	message, err := b.messagingService.GetCloseMessage(ctx, &messaging.GetCloseMessageInput{
		SheetName: output.SheetName,
	})
	if err != nil {
		return err
	}

	return x.reply(message.Message)
}

func (b *Bot) handleCloseAbort(ctx context.Context, x *interaction, token string) error {
	if err := x.deferUpdate(); err != nil {
		return err
	}

	output, err := b.warService.AbortClose(ctx, &war.AbortCloseInput{
		Token:  token,
		UserID: x.userID(),
	})
	if err != nil {
		return b.replyError(ctx, x, messaging.ActionClose, err, "")
	}

	message, err := b.messagingService.GetCloseMessage(ctx, &messaging.GetCloseMessageInput{
		SheetName: output.SheetName,
		Aborted:   true,
	})
	if err != nil {
		return err
	}

	return x.reply(message.Message)
}

func (b *Bot) handleWinButton(ctx context.Context, x *interaction) error {
	if !x.isAdmin() {
		return b.replyError(ctx, x, messaging.ActionWin, war.ErrPermissionDenied, "")
	}

	if err := x.deferReply(); err != nil {
		return err
	}

	// Refresh so the selector lists the sheet's roster.
	if _, err := b.warService.Count(ctx, &war.CountInput{}); err != nil {
		if errors.Is(err, war.ErrNotOpen) {
			return b.replyError(ctx, x, messaging.ActionWin, err, "")
		}
		b.logger.Warn("failed to refresh roster for winner selection", zap.Error(err))
	}

	session, err := b.warService.GetSession(ctx, &war.GetSessionInput{})
	if err != nil {
		return b.replyError(ctx, x, messaging.ActionWin, err, "")
	}

	if !session.Session.IsOpen {
		return b.replyError(ctx, x, messaging.ActionWin, war.ErrNotOpen, "")
	}

	roster := session.Session.RosterNames()
	if len(roster) == 0 {
		return b.replyError(ctx, x, messaging.ActionWin, war.ErrEmptyRoster, "")
	}

	return x.send(renderWinSelect(roster))
}

func (b *Bot) handleWinSelect(ctx context.Context, x *interaction) error {
	if err := x.deferReply(); err != nil {
		return err
	}

	output, err := b.warService.DeclareWinners(ctx, &war.DeclareWinnersInput{
		IsAdmin: x.isAdmin(),
		Winners: selectedWinners(x.i.MessageComponentData().Values),
	})
	if err != nil {
		return b.replyError(ctx, x, messaging.ActionWin, err, "")
	}

	message, err := b.messagingService.GetResultMessage(ctx, &messaging.GetResultMessageInput{
		Result: output.Result,
	})
	if err != nil {
		return err
	}

	if channelID := b.config.ResultsChannelID; channelID != "" {
		if _, err := x.r.ChannelMessageSendEmbed(channelID, renderResultEmbed(message.Title, message.Description)); err != nil {
			b.logger.Warn("failed to post war result",
				zap.String("channel", channelID),
				zap.Error(err))
		}
	}

	return x.reply(message.Summary)
}

func (b *Bot) handleRecordButton(ctx context.Context, x *interaction) error {
	if !x.isAdmin() {
		return b.replyError(ctx, x, messaging.ActionRecord, war.ErrPermissionDenied, "")
	}

	return x.modal(renderRecordModal())
}

func (b *Bot) handleJoinModal(ctx context.Context, x *interaction, nickname, line string) error {
	if err := x.deferReply(); err != nil {
		return err
	}

	output, err := b.warService.Join(ctx, &war.JoinInput{
		Nickname: nickname,
		Line:     line,
	})
	if err != nil {
		return b.replyError(ctx, x, messaging.ActionJoin, err, nickname)
	}

	message, err := b.messagingService.GetJoinMessage(ctx, &messaging.GetJoinMessageInput{
		DisplayName:   output.DisplayName,
		Line:          line,
		AlreadyJoined: output.AlreadyJoined,
	})
	if err != nil {
		return err
	}

	return x.reply(message.Message)
}

func (b *Bot) handleCancelModal(ctx context.Context, x *interaction, nickname string) error {
	if err := x.deferReply(); err != nil {
		return err
	}

	output, err := b.warService.Cancel(ctx, &war.CancelInput{
		Nickname: nickname,
	})
	if err != nil {
		return b.replyError(ctx, x, messaging.ActionCancel, err, nickname)
	}

	message, err := b.messagingService.GetCancelMessage(ctx, &messaging.GetCancelMessageInput{
		DisplayName: output.DisplayName,
	})
	if err != nil {
		return err
	}

	return x.reply(message.Message)
}

func (b *Bot) handleRecordModal(ctx context.Context, x *interaction, date string) error {
	if err := x.deferReply(); err != nil {
		return err
	}

	output, err := b.warService.FindRecords(ctx, &war.FindRecordsInput{
		IsAdmin: x.isAdmin(),
		Date:    date,
	})
	if err != nil {
		return b.replyError(ctx, x, messaging.ActionRecord, err, "")
	}

	path := output.Paths[0]
	file, err := os.Open(path)
	if err != nil {
		return b.replyError(ctx, x, messaging.ActionRecord, err, "")
	}
	defer file.Close()

	return x.send(&discordgo.InteractionResponseData{
		Content: recordMessage,
		Files: []*discordgo.File{
			{
				Name:        filepath.Base(path),
				ContentType: xlsxContentType,
				Reader:      file,
			},
		},
	})
}
