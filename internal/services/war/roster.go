package war

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/warbot/internal/common/names"
	"github.com/KirkDiggler/warbot/internal/models"
	"github.com/KirkDiggler/warbot/internal/repositories/sheets"
	"go.uber.org/zap"
)

// Join looks the nickname up in the member directory and appends a row to
// the tail of the roster block. Joining twice writes a second row but keeps
// one roster entry.
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	nickname := names.Canonical(input.Nickname)
	if nickname == "" {
		return nil, ErrEmptyNickname
	}
	line := names.Canonical(input.Line)

	s.mu.Lock()
	defer s.mu.Unlock()

	sheetName, isOpen := s.session.current()
	if !isOpen {
		return nil, ErrNotOpen
	}

	member, err := s.findMember(ctx, nickname)
	if err != nil {
		return nil, err
	}

	block, err := s.sheetsRepo.ReadRange(ctx, &sheets.ReadRangeInput{
		SheetName: sheetName,
		Range:     rosterBlock,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	row := len(block.Rows) + rosterFirstRow
	err = s.sheetsRepo.WriteRange(ctx, &sheets.WriteRangeInput{
		SheetName:   sheetName,
		StartColumn: rosterColumn,
		StartRow:    row,
		Rows: [][]string{
			models.RosterRow{Seq: member.Seq, Name: member.Name, Line: line}.Values(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to write roster row: %w", err)
	}

	added := s.session.addParticipant(&models.Participant{
		DisplayName: names.Canonical(member.Name),
		Line:        line,
	})

	s.logger.Info("member joined war",
		zap.String("sheet", sheetName),
		zap.String("nickname", member.Name),
		zap.Int("row", row),
		zap.Bool("already_joined", !added))

	return &JoinOutput{
		DisplayName:   member.Name,
		Row:           row,
		AlreadyJoined: !added,
	}, nil
}

// findMember returns the first directory row whose name matches, ignoring case
func (s *service) findMember(ctx context.Context, nickname string) (*models.Member, error) {
	directory, err := s.sheetsRepo.ReadRange(ctx, &sheets.ReadRangeInput{
		SheetName: s.memberSheet,
		Range:     memberLookup,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read member directory: %w", err)
	}

	for _, member := range sheets.DecodeMembers(directory.Rows, 1, memberColumns) {
		if names.Equal(member.Name, nickname) {
			m := member
			return &m, nil
		}
	}

	s.logger.Info("member not found", zap.String("nickname", nickname))
	return nil, ErrMemberNotFound
}

// Cancel removes the first row matching nickname below the roster header and
// shifts the rows under it up by one, blanking the last populated row
func (s *service) Cancel(ctx context.Context, input *CancelInput) (*CancelOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	nickname := names.Canonical(input.Nickname)
	if nickname == "" {
		return nil, ErrEmptyNickname
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sheetName, isOpen := s.session.current()
	if !isOpen {
		return nil, ErrNotOpen
	}

	area, err := s.sheetsRepo.ReadRange(ctx, &sheets.ReadRangeInput{
		SheetName: sheetName,
		Range:     rosterColumns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	// Row 1 of the sheet is index 0.
	rows := sheets.DecodeRosterRows(area.Rows, 1)

	header, match, last := -1, -1, -1
	for i, row := range rows {
		if header < 0 {
			if row.Seq == rosterHeader {
				header = i
			}
			continue
		}
		if match < 0 && names.Equal(row.Name, nickname) {
			match = i
		}
		if row.Seq != "" && !names.IsURL(row.Seq) {
			last = i
		}
	}

	if match < 0 {
		s.logger.Info("no roster row to cancel",
			zap.String("sheet", sheetName),
			zap.String("nickname", nickname))
		return nil, ErrRecordNotFound
	}

	if last < match {
		last = match
	}

	shifted := make([][]string, 0, last-match+1)
	for i := match; i < last; i++ {
		shifted = append(shifted, rows[i+1].Values())
	}
	shifted = append(shifted, models.RosterRow{}.Values())

	removed := rows[match]
	err = s.sheetsRepo.WriteRange(ctx, &sheets.WriteRangeInput{
		SheetName:   sheetName,
		StartColumn: rosterColumn,
		StartRow:    removed.Row,
		Rows:        shifted,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compact roster: %w", err)
	}

	s.session.removeParticipant(removed.Name)

	s.logger.Info("member cancelled war",
		zap.String("sheet", sheetName),
		zap.String("nickname", removed.Name),
		zap.Int("row", removed.Row))

	return &CancelOutput{
		DisplayName: removed.Name,
		Row:         removed.Row,
	}, nil
}

// Count rebuilds the roster from the sheet's name column. It does not take
// the service lock; concurrent counts share one read.
func (s *service) Count(ctx context.Context, input *CountInput) (*CountOutput, error) {
	sheetName, isOpen := s.session.current()
	if !isOpen {
		return nil, ErrNotOpen
	}

	v, err, _ := s.counts.Do(sheetName, func() (interface{}, error) {
		roster, err := s.readRosterNames(ctx, sheetName)
		if err != nil {
			return nil, err
		}
		if !s.session.replaceRoster(sheetName, roster) {
			return nil, ErrNotOpen
		}
		return roster, nil
	})
	if err != nil {
		return nil, err
	}

	roster := v.([]string)
	return &CountOutput{
		Count: len(roster),
		Names: append([]string(nil), roster...),
	}, nil
}

// readRosterNames returns the valid participant names of a war sheet in row
// order. Names differing only in case count once; the first spelling wins.
func (s *service) readRosterNames(ctx context.Context, sheetName string) ([]string, error) {
	column, err := s.sheetsRepo.ReadRange(ctx, &sheets.ReadRangeInput{
		SheetName: sheetName,
		Range:     nameColumn,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read participant names: %w", err)
	}

	seen := make(map[string]struct{}, len(column.Rows))
	roster := make([]string, 0, len(column.Rows))
	for _, row := range column.Rows {
		name := names.Canonical(sheets.Cell(row, 0))
		if !names.IsValidParticipant(name) {
			continue
		}
		key := names.Fold(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		roster = append(roster, name)
	}
	return roster, nil
}
