package war

import (
	"sync"

	"github.com/KirkDiggler/warbot/internal/common/names"
	"github.com/KirkDiggler/warbot/internal/models"
)

// session is the in-memory state of the guild's war. It is created once per
// service and reset, never replaced, when a war closes.
type session struct {
	mu            sync.RWMutex
	isOpen        bool
	sheetName     string
	roster        []*models.Participant
	archivedFiles []string
}

func newSession() *session {
	return &session{
		roster: []*models.Participant{},
	}
}

// snapshot copies the session so callers never share slices with it
func (s *session) snapshot() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	roster := make([]*models.Participant, 0, len(s.roster))
	for _, p := range s.roster {
		cp := *p
		roster = append(roster, &cp)
	}

	return &models.Session{
		IsOpen:        s.isOpen,
		SheetName:     s.sheetName,
		Roster:        roster,
		ArchivedFiles: append([]string(nil), s.archivedFiles...),
	}
}

// current returns the backing sheet and whether the session is open
func (s *session) current() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sheetName, s.isOpen
}

func (s *session) open(sheetName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = true
	s.sheetName = sheetName
	s.roster = []*models.Participant{}
}

// reset closes the session. Archives are kept for record lookups.
func (s *session) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = false
	s.sheetName = ""
	s.roster = []*models.Participant{}
}

// addParticipant appends p unless the roster already holds the same name,
// ignoring case. It reports whether p was added.
func (s *session) addParticipant(p *models.Participant) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.roster {
		if names.Equal(existing.DisplayName, p.DisplayName) {
			return false
		}
	}
	s.roster = append(s.roster, p)
	return true
}

// removeParticipant drops every roster entry matching name, ignoring case
func (s *session) removeParticipant(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.roster[:0]
	removed := 0
	for _, p := range s.roster {
		if names.Equal(p.DisplayName, name) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	s.roster = kept
	return removed
}

// replaceRoster rebuilds the roster from sheet names, keeping the line of
// participants that were already cached. It does nothing unless sheetName
// still backs an open session.
func (s *session) replaceRoster(sheetName string, displayNames []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isOpen || s.sheetName != sheetName {
		return false
	}

	lines := make(map[string]string, len(s.roster))
	for _, p := range s.roster {
		lines[p.DisplayName] = p.Line
	}

	roster := make([]*models.Participant, 0, len(displayNames))
	for _, name := range displayNames {
		roster = append(roster, &models.Participant{
			DisplayName: name,
			Line:        lines[name],
		})
	}
	s.roster = roster
	return true
}

func (s *session) addArchive(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archivedFiles = append(s.archivedFiles, path)
}

func (s *session) setArchives(paths []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.archivedFiles = append([]string(nil), paths...)
}

func (s *session) archives() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.archivedFiles...)
}
