package models

// Participant represents a member signed up for the current war session
type Participant struct {
	// DisplayName is the canonical name+tag as recorded in the member directory
	DisplayName string

	// Line is the optional role/position the member asked to play
	Line string
}
