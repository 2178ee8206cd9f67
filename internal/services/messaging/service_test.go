package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/warbot/internal/models"
	"github.com/KirkDiggler/warbot/internal/repositories/sheets"
	"github.com/KirkDiggler/warbot/internal/services/war"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	svc Service
	ctx context.Context
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.svc = svc
	s.ctx = context.Background()
}

func (s *MessagingServiceTestSuite) errorMessage(action Action, err error) *GetErrorMessageOutput {
	output, e := s.svc.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		Action:   action,
		Err:      err,
		Nickname: "Ghost#0",
	})
	s.Require().NoError(e)
	return output
}

func (s *MessagingServiceTestSuite) TestErrorMessages() {
	s.Equal("현재 활성화된 내전이 없습니다.", s.errorMessage(ActionJoin, war.ErrNotOpen).Message)
	s.Equal("닉네임#태그를 찾을 수 없습니다.", s.errorMessage(ActionJoin, war.ErrMemberNotFound).Message)
	s.Equal("이 버튼은 관리자만 사용할 수 있습니다.", s.errorMessage(ActionManage, war.ErrPermissionDenied).Message)
	s.Equal("참여자가 없습니다.", s.errorMessage(ActionWin, war.ErrEmptyRoster).Message)
	s.Equal("`Ghost#0` 닉네임에 대한 참여 기록을 찾을 수 없습니다.", s.errorMessage(ActionCancel, war.ErrRecordNotFound).Message)
	s.Equal("해당 날짜의 기록을 찾을 수 없습니다.", s.errorMessage(ActionRecord, war.ErrRecordNotFound).Message)
}

func (s *MessagingServiceTestSuite) TestWrappedErrorsAreUnwrapped() {
	err := fmt.Errorf("join: %w", war.ErrNotOpen)
	s.Equal("현재 활성화된 내전이 없습니다.", s.errorMessage(ActionJoin, err).Message)
}

func (s *MessagingServiceTestSuite) TestGatewayFailuresAreGeneric() {
	err := fmt.Errorf("failed to write roster row: %w", &sheets.GatewayError{
		Op:    "write",
		Sheet: "내전-2024-06-01",
		Err:   errors.New("quota exceeded"),
	})

	output := s.errorMessage(ActionJoin, err)
	s.Equal("참여 기록 중 오류가 발생했습니다.", output.Message)
	s.NotContains(output.Message, "quota")

	s.Equal("요청 처리 중 오류가 발생했습니다.", s.errorMessage(Action("unknown"), err).Message)
}

func (s *MessagingServiceTestSuite) TestConfirmationErrorsAreSilent() {
	s.True(s.errorMessage(ActionClose, war.ErrConfirmationExpired).Silent)
	s.True(s.errorMessage(ActionClose, war.ErrConfirmationMismatch).Silent)
	s.False(s.errorMessage(ActionClose, war.ErrNotOpen).Silent)
}

func (s *MessagingServiceTestSuite) TestJoinMessage() {
	output, err := s.svc.GetJoinMessage(s.ctx, &GetJoinMessageInput{DisplayName: "Alpha#1", Line: "미드"})
	s.Require().NoError(err)
	s.Contains(output.Message, "Alpha#1")
	s.Contains(output.Message, "미드")

	output, err = s.svc.GetJoinMessage(s.ctx, &GetJoinMessageInput{DisplayName: "Alpha#1", AlreadyJoined: true})
	s.Require().NoError(err)
	s.Contains(output.Message, "이미")
}

func (s *MessagingServiceTestSuite) TestSimpleMessages() {
	cancel, err := s.svc.GetCancelMessage(s.ctx, &GetCancelMessageInput{DisplayName: "Bravo#2"})
	s.Require().NoError(err)
	s.Equal("`Bravo#2` 님의 참여 취소 성공", cancel.Message)

	count, err := s.svc.GetCountMessage(s.ctx, &GetCountMessageInput{Count: 12})
	s.Require().NoError(err)
	s.Equal("현재 참여 인원: 12명", count.Message)

	open, err := s.svc.GetOpenMessage(s.ctx, &GetOpenMessageInput{SheetName: "내전-2024-06-01"})
	s.Require().NoError(err)
	s.Equal("내전이 열렸습니다: 내전-2024-06-01", open.Message)

	closed, err := s.svc.GetCloseMessage(s.ctx, &GetCloseMessageInput{})
	s.Require().NoError(err)
	s.Equal("내전이 성공적으로 닫혔습니다.", closed.Message)
}

func (s *MessagingServiceTestSuite) TestResultMessage() {
	output, err := s.svc.GetResultMessage(s.ctx, &GetResultMessageInput{
		Result: &models.WarResult{
			Date:    time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC),
			Winners: []string{"Alpha#1", "Charlie#3"},
			Losers:  []string{"Bravo#2"},
			Missing: []string{"Newbie#7"},
		},
	})
	s.Require().NoError(err)
	s.Equal("내전 결과", output.Title)
	s.Equal("진행된 날짜: 06-01\n⭐ 승리: Alpha#1, Charlie#3\n🧨 패배: Bravo#2", output.Description)
	s.Contains(output.Summary, "승리팀: Alpha#1, Charlie#3")
	s.Contains(output.Summary, "Newbie#7")

	_, err = s.svc.GetResultMessage(s.ctx, &GetResultMessageInput{})
	s.Error(err)
}
