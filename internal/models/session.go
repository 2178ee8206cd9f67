package models

// Session is a point-in-time snapshot of the war session state
type Session struct {
	// IsOpen indicates the session currently accepts joins and cancels
	IsOpen bool

	// SheetName is the spreadsheet tab backing the session, empty when closed
	SheetName string

	// Roster is the cached participant list, in signup order
	Roster []*Participant

	// ArchivedFiles are exported roster snapshots, newest last
	ArchivedFiles []string
}

// RosterNames returns the display names of the roster in order
func (s *Session) RosterNames() []string {
	names := make([]string, 0, len(s.Roster))
	for _, p := range s.Roster {
		names = append(names, p.DisplayName)
	}
	return names
}
