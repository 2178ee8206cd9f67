package confirmation

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/warbot/internal/repositories/confirmation Repository

import (
	"context"

	"github.com/KirkDiggler/warbot/internal/models"
)

// Repository stores pending yes/no prompts until they are answered or expire
type Repository interface {
	// CreateConfirmation stores a new pending confirmation
	CreateConfirmation(ctx context.Context, input *CreateConfirmationInput) (*models.Confirmation, error)

	// ConsumeConfirmation removes and returns a pending confirmation.
	// Each confirmation can be consumed once.
	ConsumeConfirmation(ctx context.Context, input *ConsumeConfirmationInput) (*models.Confirmation, error)
}
