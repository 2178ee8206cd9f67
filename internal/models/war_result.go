package models

import "time"

// WarResult summarises a settled war session
type WarResult struct {
	// Date is when the result was declared
	Date time.Time

	// SheetName is the war sheet that was settled
	SheetName string

	// Winners are the roster names credited with a win
	Winners []string

	// Losers are the remaining roster names
	Losers []string

	// ArchivePath is the exported xlsx snapshot
	ArchivePath string

	// Updated lists members whose counters were written
	Updated []string

	// Missing lists roster names with no member directory row
	Missing []string
}
