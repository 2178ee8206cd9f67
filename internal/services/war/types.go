package war

import (
	"time"

	"github.com/KirkDiggler/warbot/internal/common/clock"
	"github.com/KirkDiggler/warbot/internal/models"
	"github.com/KirkDiggler/warbot/internal/repositories/confirmation"
	"github.com/KirkDiggler/warbot/internal/repositories/sheets"
	"go.uber.org/zap"
)

const (
	DefaultTemplateSheet  = "경내(원본)"
	DefaultSheetPrefix    = "내전"
	DefaultRecordPrefix   = "내전기록"
	DefaultRecordsDir     = "records"
	DefaultMemberSheet    = "MEMBER"
	DefaultConfirmTimeout = 60 * time.Second
)

// Config holds configuration for the war service
type Config struct {
	// TemplateSheet is copied to create each war sheet
	TemplateSheet string

	// SheetPrefix names war sheets as "<prefix>-<YYYY-MM-DD>"
	SheetPrefix string

	// RecordPrefix names archives as "<prefix>_<YYYY-MM-DD_HH-MM-SS>.xlsx"
	RecordPrefix string

	// RecordsDir is where archives are written
	RecordsDir string

	// MemberSheet is the member directory tab
	MemberSheet string

	// HistorySheet receives one row per settled war. Empty disables it.
	HistorySheet string

	// ConfirmTimeout is how long a close confirmation stays valid
	ConfirmTimeout time.Duration

	// Repository dependencies
	SheetsRepo       sheets.Repository
	ConfirmationRepo confirmation.Repository

	Clock  clock.Clock
	Logger *zap.Logger
}

// RestoreInput contains parameters for restoring a session
type RestoreInput struct{}

// RestoreOutput contains the result of restoring a session
type RestoreOutput struct {
	// Restored is true when today's sheet was adopted
	Restored bool

	SheetName string

	// Count is the number of participants rebuilt from the sheet
	Count int
}

// OpenWarInput contains parameters for opening a war
type OpenWarInput struct {
	IsAdmin bool
}

// OpenWarOutput contains the result of opening a war
type OpenWarOutput struct {
	SheetName string
}

// RequestCloseInput contains parameters for requesting a close
type RequestCloseInput struct {
	IsAdmin bool

	// UserID is the administrator asking to close
	UserID string
}

// RequestCloseOutput contains the pending confirmation
type RequestCloseOutput struct {
	// Token identifies the confirmation in the prompt's buttons
	Token string

	SheetName string
	ExpiresAt time.Time
}

// ConfirmCloseInput contains parameters for confirming a close
type ConfirmCloseInput struct {
	Token  string
	UserID string
}

// ConfirmCloseOutput contains the result of closing a war
type ConfirmCloseOutput struct {
	SheetName   string
	ArchivePath string
}

// AbortCloseInput contains parameters for aborting a close
type AbortCloseInput struct {
	Token  string
	UserID string
}

// AbortCloseOutput contains the result of aborting a close
type AbortCloseOutput struct {
	SheetName string
}

// GetSessionInput contains parameters for reading the session
type GetSessionInput struct{}

// GetSessionOutput contains a snapshot of the session
type GetSessionOutput struct {
	Session *models.Session
}

// JoinInput contains parameters for joining a war
type JoinInput struct {
	// Nickname is the name+tag typed by the member
	Nickname string

	// Line is the optional role/position
	Line string
}

// JoinOutput contains the result of joining a war
type JoinOutput struct {
	// DisplayName is the canonical name from the member directory
	DisplayName string

	// Row is the sheet row that was written
	Row int

	// AlreadyJoined is true when the roster already held this name
	AlreadyJoined bool
}

// CancelInput contains parameters for cancelling a signup
type CancelInput struct {
	Nickname string
}

// CancelOutput contains the result of cancelling a signup
type CancelOutput struct {
	// DisplayName is the name as it appeared on the sheet
	DisplayName string

	// Row is the sheet row that was removed
	Row int
}

// CountInput contains parameters for counting participants
type CountInput struct{}

// CountOutput contains the refreshed roster size
type CountOutput struct {
	Count int
	Names []string
}

// DeclareWinnersInput contains parameters for settling a war
type DeclareWinnersInput struct {
	IsAdmin bool

	// Winners are the roster names selected as the winning team
	Winners []string
}

// DeclareWinnersOutput contains the settlement summary
type DeclareWinnersOutput struct {
	Result *models.WarResult
}

// FindRecordsInput contains parameters for looking up archives
type FindRecordsInput struct {
	IsAdmin bool

	// Date is matched against the date part of archive names, e.g. "2024-06-01"
	Date string
}

// FindRecordsOutput contains matching archive paths, oldest first
type FindRecordsOutput struct {
	Paths []string
}
