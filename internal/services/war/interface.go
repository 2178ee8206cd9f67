package war

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/warbot/internal/services/war Service

import "context"

// Service runs the single war session of the guild
type Service interface {
	// Restore adopts today's war sheet, if any, after a restart
	Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error)

	// OpenWar copies the template sheet and opens a new session
	OpenWar(ctx context.Context, input *OpenWarInput) (*OpenWarOutput, error)

	// RequestClose raises a confirmation that must be answered before closing
	RequestClose(ctx context.Context, input *RequestCloseInput) (*RequestCloseOutput, error)

	// ConfirmClose archives and deletes the war sheet, then resets the session
	ConfirmClose(ctx context.Context, input *ConfirmCloseInput) (*ConfirmCloseOutput, error)

	// AbortClose discards a pending close confirmation
	AbortClose(ctx context.Context, input *AbortCloseInput) (*AbortCloseOutput, error)

	// GetSession returns a snapshot of the session
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// Join signs a member up on the war sheet
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Cancel removes a member's row from the war sheet
	Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error)

	// Count rebuilds the roster from the war sheet
	Count(ctx context.Context, input *CountInput) (*CountOutput, error)

	// DeclareWinners settles the war and updates member counters
	DeclareWinners(ctx context.Context, input *DeclareWinnersInput) (*DeclareWinnersOutput, error)

	// FindRecords looks up archived war sheets by date
	FindRecords(ctx context.Context, input *FindRecordsInput) (*FindRecordsOutput, error)
}
