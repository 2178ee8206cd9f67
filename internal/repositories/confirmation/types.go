package confirmation

import (
	"time"

	"github.com/KirkDiggler/warbot/internal/models"
)

// CreateConfirmationInput contains parameters for creating a confirmation
type CreateConfirmationInput struct {
	Action    models.ConfirmationAction
	UserID    string
	SheetName string

	// TTL is how long the confirmation stays valid
	TTL time.Duration
}

// ConsumeConfirmationInput contains parameters for consuming a confirmation
type ConsumeConfirmationInput struct {
	ID string
}
