package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetErrorMessage returns a user-friendly message for a failed action
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetJoinMessage returns a message for a recorded signup
	GetJoinMessage(ctx context.Context, input *GetJoinMessageInput) (*GetJoinMessageOutput, error)

	// GetCancelMessage returns a message for a cancelled signup
	GetCancelMessage(ctx context.Context, input *GetCancelMessageInput) (*GetCancelMessageOutput, error)

	// GetCountMessage returns the current participant count
	GetCountMessage(ctx context.Context, input *GetCountMessageInput) (*GetCountMessageOutput, error)

	// GetOpenMessage returns a message for an opened war
	GetOpenMessage(ctx context.Context, input *GetOpenMessageInput) (*GetOpenMessageOutput, error)

	// GetCloseMessage returns a message for a closed or kept war
	GetCloseMessage(ctx context.Context, input *GetCloseMessageInput) (*GetCloseMessageOutput, error)

	// GetResultMessage returns the result announcement of a settled war
	GetResultMessage(ctx context.Context, input *GetResultMessageInput) (*GetResultMessageOutput, error)
}
