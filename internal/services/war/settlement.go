package war

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/warbot/internal/common/names"
	"github.com/KirkDiggler/warbot/internal/models"
	"github.com/KirkDiggler/warbot/internal/repositories/sheets"
	"go.uber.org/zap"
)

// DeclareWinners settles the open war. The roster is re-read from the sheet
// first so counters follow the sheet rather than the cache. A failed counter
// write stops the loop and leaves the session open.
func (s *service) DeclareWinners(ctx context.Context, input *DeclareWinnersInput) (*DeclareWinnersOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.IsAdmin {
		return nil, ErrPermissionDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sheetName, isOpen := s.session.current()
	if !isOpen {
		return nil, ErrNotOpen
	}

	roster, err := s.readRosterNames(ctx, sheetName)
	if err != nil {
		return nil, err
	}
	s.session.replaceRoster(sheetName, roster)

	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}

	winners, losers := partition(roster, input.Winners)
	now := s.clock.Now()

	path, err := s.archive(ctx, sheetName)
	if err != nil {
		return nil, err
	}

	result := &models.WarResult{
		Date:        now,
		SheetName:   sheetName,
		Winners:     winners,
		Losers:      losers,
		ArchivePath: path,
		Updated:     []string{},
		Missing:     []string{},
	}

	if err := s.creditMembers(ctx, result); err != nil {
		return nil, err
	}

	s.appendHistory(ctx, result)

	if err := s.sheetsRepo.DeleteSheet(ctx, &sheets.DeleteSheetInput{
		SheetName: sheetName,
	}); err != nil {
		s.logger.Error("failed to delete settled war sheet", zap.String("sheet", sheetName), zap.Error(err))
		return nil, fmt.Errorf("failed to delete war sheet: %w", err)
	}

	s.session.reset()

	s.logger.Info("settled war",
		zap.String("sheet", sheetName),
		zap.Strings("winners", winners),
		zap.Strings("losers", losers),
		zap.Strings("missing", result.Missing))

	return &DeclareWinnersOutput{
		Result: result,
	}, nil
}

// partition splits roster into selected and unselected names, keeping roster
// order. Selected names not on the roster are dropped.
func partition(roster, selected []string) (winners, losers []string) {
	picked := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		picked[names.Fold(name)] = struct{}{}
	}

	winners = []string{}
	losers = []string{}
	for _, name := range roster {
		if _, ok := picked[names.Fold(name)]; ok {
			winners = append(winners, name)
		} else {
			losers = append(losers, name)
		}
	}
	return winners, losers
}

// creditMembers adds one participation to every roster member and one win to
// every winner, one cell at a time
func (s *service) creditMembers(ctx context.Context, result *models.WarResult) error {
	directory, err := s.sheetsRepo.ReadRange(ctx, &sheets.ReadRangeInput{
		SheetName: s.memberSheet,
		Range:     memberCounters,
	})
	if err != nil {
		return fmt.Errorf("failed to read member directory: %w", err)
	}

	members := sheets.DecodeMembers(directory.Rows, 1, memberColumns)
	// Roster names are canonical; key the directory the same way.
	byName := make(map[string]models.Member, len(members))
	for _, m := range members {
		key := names.Canonical(m.Name)
		if _, ok := byName[key]; !ok {
			byName[key] = m
		}
	}

	isWinner := make(map[string]bool, len(result.Winners))
	for _, name := range result.Winners {
		isWinner[name] = true
	}

	roster := append(append([]string{}, result.Winners...), result.Losers...)
	for _, name := range roster {
		member, ok := byName[names.Canonical(name)]
		if !ok {
			s.logger.Warn("participant missing from member directory",
				zap.String("sheet", result.SheetName),
				zap.String("nickname", name))
			result.Missing = append(result.Missing, name)
			continue
		}

		if err := s.writeCounter(ctx, participationColumn, member.Row, member.Participation+1); err != nil {
			return err
		}

		if isWinner[name] {
			if err := s.writeCounter(ctx, winsColumn, member.Row, member.Wins+1); err != nil {
				return err
			}
		}

		result.Updated = append(result.Updated, name)
	}

	return nil
}

func (s *service) writeCounter(ctx context.Context, column string, row, value int) error {
	err := s.sheetsRepo.WriteRange(ctx, &sheets.WriteRangeInput{
		SheetName:   s.memberSheet,
		StartColumn: column,
		StartRow:    row,
		Rows:        [][]string{{strconv.Itoa(value)}},
	})
	if err != nil {
		s.logger.Error("failed to update member counter",
			zap.String("column", column),
			zap.Int("row", row),
			zap.Error(err))
		return fmt.Errorf("failed to update member counter %s%d: %w", column, row, err)
	}
	return nil
}

// appendHistory records the result on the history sheet when one is set.
// Failures are logged only.
func (s *service) appendHistory(ctx context.Context, result *models.WarResult) {
	if s.historySheet == "" {
		return
	}

	err := s.sheetsRepo.AppendRow(ctx, &sheets.AppendRowInput{
		SheetName: s.historySheet,
		Values: []string{
			result.Date.Format(historyDateFormat),
			result.SheetName,
			strings.Join(result.Winners, ", "),
			strings.Join(result.Losers, ", "),
		},
	})
	if err != nil {
		s.logger.Warn("failed to append war history",
			zap.String("history", s.historySheet),
			zap.Error(err))
	}
}
