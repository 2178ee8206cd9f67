package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/warbot/internal/services/war"
)

const (
	resultTitle      = "내전 결과"
	resultDateFormat = "01-02"
	emptyList        = "없음"
)

// genericErrors are shown when a failure has no specific message
var genericErrors = map[Action]string{
	ActionPanel:  "관리 메시지 전송 중 오류가 발생했습니다.",
	ActionManage: "관리 메뉴를 여는 중 오류가 발생했습니다.",
	ActionJoin:   "참여 기록 중 오류가 발생했습니다.",
	ActionCancel: "참여 취소 작업 중 오류가 발생했습니다.",
	ActionCount:  "인원 확인 중 오류가 발생했습니다.",
	ActionOpen:   "내전을 열 수 없습니다. 오류가 발생했습니다.",
	ActionClose:  "내전 닫기 중 오류가 발생했습니다.",
	ActionWin:    "승리 처리 중 오류가 발생했습니다.",
	ActionRecord: "기록 다운로드 중 오류가 발생했습니다.",
}

// service implements the Service interface
type service struct {
	// Random number generator for selecting messages
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// pick selects one of messages
func (s *service) pick(messages []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetErrorMessage maps war errors to user-facing text
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	switch {
	case input.Err == nil:
		message = genericError(input.Action)

	case errors.Is(input.Err, war.ErrConfirmationExpired),
		errors.Is(input.Err, war.ErrConfirmationMismatch):
		return &GetErrorMessageOutput{Silent: true}, nil

	case errors.Is(input.Err, war.ErrNotOpen):
		message = "현재 활성화된 내전이 없습니다."

	case errors.Is(input.Err, war.ErrAlreadyOpen):
		message = "이미 진행 중인 내전이 있습니다. 먼저 내전을 닫아주세요."

	case errors.Is(input.Err, war.ErrPermissionDenied):
		message = "이 버튼은 관리자만 사용할 수 있습니다."

	case errors.Is(input.Err, war.ErrMemberNotFound):
		message = "닉네임#태그를 찾을 수 없습니다."

	case errors.Is(input.Err, war.ErrEmptyNickname):
		message = "닉네임을 입력하세요."

	case errors.Is(input.Err, war.ErrEmptyRoster):
		message = "참여자가 없습니다."

	case errors.Is(input.Err, war.ErrRecordNotFound):
		if input.Action == ActionRecord {
			message = "해당 날짜의 기록을 찾을 수 없습니다."
		} else {
			message = fmt.Sprintf("`%s` 닉네임에 대한 참여 기록을 찾을 수 없습니다.", input.Nickname)
		}

	default:
		message = genericError(input.Action)
	}

	return &GetErrorMessageOutput{
		Message: message,
	}, nil
}

func genericError(action Action) string {
	if message, ok := genericErrors[action]; ok {
		return message
	}
	return "요청 처리 중 오류가 발생했습니다."
}

// GetJoinMessage returns a message for a recorded signup
func (s *service) GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.AlreadyJoined {
		return &GetJoinMessageOutput{
			Message: fmt.Sprintf("%s 님은 이미 참여 명단에 있습니다. 시트에는 한 줄이 더 기록되었습니다.", input.DisplayName),
		}, nil
	}

	messages := []string{
		fmt.Sprintf("%s 님의 참여가 기록되었습니다.", input.DisplayName),
		fmt.Sprintf("%s 님, 내전 참여 신청이 완료되었습니다.", input.DisplayName),
		fmt.Sprintf("%s 님의 참여 신청을 받았습니다. 좋은 경기 되세요!", input.DisplayName),
	}

	message := s.pick(messages)
	if input.Line != "" {
		message += fmt.Sprintf(" (라인: %s)", input.Line)
	}

	return &GetJoinMessageOutput{
		Message: message,
	}, nil
}

// GetCancelMessage returns a message for a cancelled signup
func (s *service) GetCancelMessage(ctx context.Context, input *GetCancelMessageInput) (*GetCancelMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetCancelMessageOutput{
		Message: fmt.Sprintf("`%s` 님의 참여 취소 성공", input.DisplayName),
	}, nil
}

// GetCountMessage returns the current participant count
func (s *service) GetCountMessage(ctx context.Context, input *GetCountMessageInput) (*GetCountMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetCountMessageOutput{
		Message: fmt.Sprintf("현재 참여 인원: %d명", input.Count),
	}, nil
}

// GetOpenMessage returns a message for an opened war
func (s *service) GetOpenMessage(ctx context.Context, input *GetOpenMessageInput) (*GetOpenMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetOpenMessageOutput{
		Message: fmt.Sprintf("내전이 열렸습니다: %s", input.SheetName),
	}, nil
}

// GetCloseMessage returns a message for a closed or kept war
func (s *service) GetCloseMessage(ctx context.Context, input *GetCloseMessageInput) (*GetCloseMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Aborted {
		return &GetCloseMessageOutput{
			Message: "내전 닫기를 취소했습니다.",
		}, nil
	}

	return &GetCloseMessageOutput{
		Message: "내전이 성공적으로 닫혔습니다.",
	}, nil
}

// GetResultMessage returns the result announcement of a settled war
func (s *service) GetResultMessage(ctx context.Context, input *GetResultMessageInput) (*GetResultMessageOutput, error) {
	if input == nil || input.Result == nil {
		return nil, errors.New("result cannot be nil")
	}

	result := input.Result
	winners := joinNames(result.Winners)

	description := fmt.Sprintf("진행된 날짜: %s\n⭐ 승리: %s\n🧨 패배: %s",
		result.Date.Format(resultDateFormat),
		winners,
		joinNames(result.Losers))

	summary := fmt.Sprintf("내전이 종료되었습니다! 승리팀: %s", winners)
	if len(result.Missing) > 0 {
		summary += fmt.Sprintf("\n멤버 시트에서 찾지 못해 기록되지 않은 참여자: %s", joinNames(result.Missing))
	}

	return &GetResultMessageOutput{
		Title:       resultTitle,
		Description: description,
		Summary:     summary,
	}, nil
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return emptyList
	}
	return strings.Join(names, ", ")
}
