package messaging

import (
	"github.com/KirkDiggler/warbot/internal/models"
)

// Action names the user action a message is about
type Action string

const (
	ActionPanel  Action = "panel"
	ActionManage Action = "manage"
	ActionJoin   Action = "join"
	ActionCancel Action = "cancel"
	ActionCount  Action = "count"
	ActionOpen   Action = "open"
	ActionClose  Action = "close"
	ActionWin    Action = "win"
	ActionRecord Action = "record"
)

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Action is what the user was trying to do
	Action Action

	// Err is the error the action failed with
	Err error

	// Nickname is echoed back for lookups that failed
	Nickname string
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Message is the text to show the user
	Message string

	// Silent is true when the failure should be acknowledged without text
	Silent bool
}

// GetJoinMessageInput contains parameters for getting a join message
type GetJoinMessageInput struct {
	DisplayName   string
	Line          string
	AlreadyJoined bool
}

// GetJoinMessageOutput contains the result of getting a join message
type GetJoinMessageOutput struct {
	Message string
}

// GetCancelMessageInput contains parameters for getting a cancel message
type GetCancelMessageInput struct {
	DisplayName string
}

// GetCancelMessageOutput contains the result of getting a cancel message
type GetCancelMessageOutput struct {
	Message string
}

// GetCountMessageInput contains parameters for getting a count message
type GetCountMessageInput struct {
	Count int
}

// GetCountMessageOutput contains the result of getting a count message
type GetCountMessageOutput struct {
	Message string
}

// GetOpenMessageInput contains parameters for getting an open message
type GetOpenMessageInput struct {
	SheetName string
}

// GetOpenMessageOutput contains the result of getting an open message
type GetOpenMessageOutput struct {
	Message string
}

// GetCloseMessageInput contains parameters for getting a close message
type GetCloseMessageInput struct {
	SheetName string

	// Aborted is true when the administrator kept the war open
	Aborted bool
}

// GetCloseMessageOutput contains the result of getting a close message
type GetCloseMessageOutput struct {
	Message string
}

// GetResultMessageInput contains parameters for getting a result message
type GetResultMessageInput struct {
	Result *models.WarResult
}

// GetResultMessageOutput contains the result announcement
type GetResultMessageOutput struct {
	// Title and Description make up the results channel embed
	Title       string
	Description string

	// Summary is the ephemeral reply to the administrator
	Summary string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes message selection; zero seeds from the clock
	Seed int64
}
