package models

import "time"

// ConfirmationAction identifies what a pending confirmation will do
type ConfirmationAction string

const (
	// ConfirmationActionCloseWar closes the current war session
	ConfirmationActionCloseWar ConfirmationAction = "close_war"
)

// Confirmation is a pending yes/no prompt bound to the request that raised it
type Confirmation struct {
	// ID is the opaque token embedded in the prompt's buttons
	ID string

	// Action is what confirming will do
	Action ConfirmationAction

	// UserID is the Discord user who raised the prompt
	UserID string

	// SheetName is the war sheet the prompt was raised against
	SheetName string

	// CreatedAt is when the prompt was raised
	CreatedAt time.Time

	// ExpiresAt is when the prompt stops being honoured
	ExpiresAt time.Time
}
