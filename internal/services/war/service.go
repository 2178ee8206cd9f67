package war

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/warbot/internal/common/clock"
	"github.com/KirkDiggler/warbot/internal/repositories/confirmation"
	"github.com/KirkDiggler/warbot/internal/repositories/sheets"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Sheet layout of the war template and the member directory
const (
	// rosterBlock is the reserved signup block joins append to
	rosterBlock    = "W5:Y100"
	rosterFirstRow = 5
	rosterColumn   = "W"

	// rosterColumns is the full roster area cancel compacts
	rosterColumns = "W:Y"

	// nameColumn holds one participant name per row
	nameColumn = "X:X"

	// rosterHeader marks the row above the first participant
	rosterHeader = "번호"

	// memberLookup covers sequence number and name
	memberLookup = "C:D"

	// memberCounters extends the lookup to the win counter
	memberCounters = "C:L"

	participationColumn = "J"
	winsColumn          = "L"

	sheetDateFormat   = "2006-01-02"
	recordTimeFormat  = "2006-01-02_15-04-05"
	historyDateFormat = "2006-01-02"
)

// memberColumns are offsets from column C
var memberColumns = sheets.MemberColumns{
	Seq:           0,
	Name:          1,
	Participation: 7,
	Wins:          9,
}

// service implements the Service interface
type service struct {
	// mu serializes every operation that mutates the sheet or session
	mu sync.Mutex

	session *session
	counts  singleflight.Group

	templateSheet  string
	sheetPrefix    string
	recordPrefix   string
	recordsDir     string
	memberSheet    string
	historySheet   string
	confirmTimeout time.Duration

	sheetsRepo       sheets.Repository
	confirmationRepo confirmation.Repository
	clock            clock.Clock
	logger           *zap.Logger
}

// New creates a new war service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SheetsRepo == nil {
		return nil, ErrNilSheetsRepo
	}

	if cfg.ConfirmationRepo == nil {
		return nil, ErrNilConfirmationRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	svc := &service{
		session:          newSession(),
		templateSheet:    cfg.TemplateSheet,
		sheetPrefix:      cfg.SheetPrefix,
		recordPrefix:     cfg.RecordPrefix,
		recordsDir:       cfg.RecordsDir,
		memberSheet:      cfg.MemberSheet,
		historySheet:     cfg.HistorySheet,
		confirmTimeout:   cfg.ConfirmTimeout,
		sheetsRepo:       cfg.SheetsRepo,
		confirmationRepo: cfg.ConfirmationRepo,
		clock:            cfg.Clock,
		logger:           cfg.Logger,
	}

	// Set default values if not provided
	if svc.templateSheet == "" {
		svc.templateSheet = DefaultTemplateSheet
	}
	if svc.sheetPrefix == "" {
		svc.sheetPrefix = DefaultSheetPrefix
	}
	if svc.recordPrefix == "" {
		svc.recordPrefix = DefaultRecordPrefix
	}
	if svc.recordsDir == "" {
		svc.recordsDir = DefaultRecordsDir
	}
	if svc.memberSheet == "" {
		svc.memberSheet = DefaultMemberSheet
	}
	if svc.confirmTimeout <= 0 {
		svc.confirmTimeout = DefaultConfirmTimeout
	}
	if svc.logger == nil {
		svc.logger = zap.NewNop()
	}

	return svc, nil
}

// GetSession returns a snapshot of the session
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	return &GetSessionOutput{
		Session: s.session.snapshot(),
	}, nil
}

// sheetNameFor returns the war sheet name for the date of t
func (s *service) sheetNameFor(t time.Time) string {
	return s.sheetPrefix + "-" + t.Format(sheetDateFormat)
}
