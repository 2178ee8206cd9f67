package models

// Member is one row of the member directory sheet
type Member struct {
	// Row is the 1-based sheet row of the member
	Row int

	// Seq is the member sequence number
	Seq string

	// Name is the canonical name+tag
	Name string

	// Participation is the cumulative number of wars played
	Participation int

	// Wins is the cumulative number of wars won
	Wins int
}
