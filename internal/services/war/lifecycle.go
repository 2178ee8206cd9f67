package war

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/KirkDiggler/warbot/internal/models"
	"github.com/KirkDiggler/warbot/internal/repositories/confirmation"
	"github.com/KirkDiggler/warbot/internal/repositories/sheets"
	"go.uber.org/zap"
)

// Restore adopts today's war sheet after a restart. A missing sheet or a
// failed listing leaves the session closed and is not an error.
func (s *service) Restore(ctx context.Context, input *RestoreInput) (*RestoreOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seedArchives()

	sheetName := s.sheetNameFor(s.clock.Now())

	listed, err := s.sheetsRepo.ListSheetNames(ctx, &sheets.ListSheetNamesInput{})
	if err != nil {
		s.logger.Warn("failed to list sheets, starting without a war", zap.Error(err))
		return &RestoreOutput{}, nil
	}

	found := false
	for _, name := range listed.Names {
		if name == sheetName {
			found = true
			break
		}
	}

	if !found {
		s.logger.Info("no war sheet for today", zap.String("sheet", sheetName))
		return &RestoreOutput{}, nil
	}

	s.session.open(sheetName)

	roster, err := s.readRosterNames(ctx, sheetName)
	if err != nil {
		s.logger.Warn("restored war without roster",
			zap.String("sheet", sheetName),
			zap.Error(err))
		return &RestoreOutput{
			Restored:  true,
			SheetName: sheetName,
		}, nil
	}
	s.session.replaceRoster(sheetName, roster)

	s.logger.Info("restored war",
		zap.String("sheet", sheetName),
		zap.Int("participants", len(roster)))

	return &RestoreOutput{
		Restored:  true,
		SheetName: sheetName,
		Count:     len(roster),
	}, nil
}

// seedArchives loads archives written before the restart
func (s *service) seedArchives() {
	paths, err := filepath.Glob(filepath.Join(s.recordsDir, s.recordPrefix+"_*.xlsx"))
	if err != nil {
		s.logger.Warn("failed to scan records", zap.String("dir", s.recordsDir), zap.Error(err))
		return
	}
	// Timestamped names sort chronologically.
	sort.Strings(paths)
	s.session.setArchives(paths)
}

// OpenWar copies the template sheet under today's name and opens the session
func (s *service) OpenWar(ctx context.Context, input *OpenWarInput) (*OpenWarOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.IsAdmin {
		return nil, ErrPermissionDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if current, isOpen := s.session.current(); isOpen {
		s.logger.Info("war already open", zap.String("sheet", current))
		return nil, ErrAlreadyOpen
	}

	title := s.sheetNameFor(s.clock.Now())
	copied, err := s.sheetsRepo.CopySheet(ctx, &sheets.CopySheetInput{
		SourceName: s.templateSheet,
		Title:      title,
	})
	if err != nil {
		s.logger.Error("failed to copy war template",
			zap.String("template", s.templateSheet),
			zap.String("sheet", title),
			zap.Error(err))
		return nil, fmt.Errorf("failed to open war: %w", err)
	}

	if copied == nil || copied.SheetName == "" {
		return nil, ErrCopyFailed
	}

	s.session.open(copied.SheetName)

	s.logger.Info("opened war", zap.String("sheet", copied.SheetName))

	return &OpenWarOutput{
		SheetName: copied.SheetName,
	}, nil
}

// RequestClose stores a confirmation bound to the caller and the current sheet
func (s *service) RequestClose(ctx context.Context, input *RequestCloseInput) (*RequestCloseOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.IsAdmin {
		return nil, ErrPermissionDenied
	}

	sheetName, isOpen := s.session.current()
	if !isOpen {
		return nil, ErrNotOpen
	}

	pending, err := s.confirmationRepo.CreateConfirmation(ctx, &confirmation.CreateConfirmationInput{
		Action:    models.ConfirmationActionCloseWar,
		UserID:    input.UserID,
		SheetName: sheetName,
		TTL:       s.confirmTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create close confirmation: %w", err)
	}

	return &RequestCloseOutput{
		Token:     pending.ID,
		SheetName: sheetName,
		ExpiresAt: pending.ExpiresAt,
	}, nil
}

// ConfirmClose archives the war sheet, deletes it and resets the session.
// The session stays open if either step fails.
func (s *service) ConfirmClose(ctx context.Context, input *ConfirmCloseInput) (*ConfirmCloseOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	pending, err := s.consumeClose(ctx, input.Token, input.UserID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sheetName, isOpen := s.session.current()
	if !isOpen || sheetName != pending.SheetName {
		return nil, ErrConfirmationMismatch
	}

	path, err := s.archive(ctx, sheetName)
	if err != nil {
		return nil, err
	}

	if err := s.sheetsRepo.DeleteSheet(ctx, &sheets.DeleteSheetInput{
		SheetName: sheetName,
	}); err != nil {
		s.logger.Error("failed to delete war sheet", zap.String("sheet", sheetName), zap.Error(err))
		return nil, fmt.Errorf("failed to delete war sheet: %w", err)
	}

	s.session.reset()

	s.logger.Info("closed war",
		zap.String("sheet", sheetName),
		zap.String("archive", path))

	return &ConfirmCloseOutput{
		SheetName:   sheetName,
		ArchivePath: path,
	}, nil
}

// AbortClose discards a pending close confirmation
func (s *service) AbortClose(ctx context.Context, input *AbortCloseInput) (*AbortCloseOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	pending, err := s.consumeClose(ctx, input.Token, input.UserID)
	if err != nil {
		return nil, err
	}

	return &AbortCloseOutput{
		SheetName: pending.SheetName,
	}, nil
}

// consumeClose spends a close token on behalf of userID
func (s *service) consumeClose(ctx context.Context, token, userID string) (*models.Confirmation, error) {
	pending, err := s.confirmationRepo.ConsumeConfirmation(ctx, &confirmation.ConsumeConfirmationInput{
		ID: token,
	})
	if err != nil {
		if errors.Is(err, confirmation.ErrConfirmationNotFound) {
			return nil, ErrConfirmationExpired
		}
		return nil, fmt.Errorf("failed to consume confirmation: %w", err)
	}

	if s.clock.Now().After(pending.ExpiresAt) {
		return nil, ErrConfirmationExpired
	}

	if pending.Action != models.ConfirmationActionCloseWar || pending.UserID != userID {
		return nil, ErrConfirmationMismatch
	}

	return pending, nil
}

// archive exports sheetName to a timestamped xlsx and records its path
func (s *service) archive(ctx context.Context, sheetName string) (string, error) {
	fileName := fmt.Sprintf("%s_%s.xlsx", s.recordPrefix, s.clock.Now().Format(recordTimeFormat))
	path := filepath.Join(s.recordsDir, fileName)

	if err := s.sheetsRepo.ExportSheet(ctx, &sheets.ExportSheetInput{
		SheetName: sheetName,
		Path:      path,
	}); err != nil {
		s.logger.Error("failed to export war sheet",
			zap.String("sheet", sheetName),
			zap.String("path", path),
			zap.Error(err))
		return "", fmt.Errorf("failed to archive war sheet: %w", err)
	}

	s.session.addArchive(path)
	return path, nil
}
