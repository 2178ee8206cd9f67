package war

import (
	"context"
	"path/filepath"
	"strings"
)

// FindRecords returns archives whose date part contains input.Date
func (s *service) FindRecords(ctx context.Context, input *FindRecordsInput) (*FindRecordsOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if !input.IsAdmin {
		return nil, ErrPermissionDenied
	}

	date := strings.TrimSpace(input.Date)
	if date == "" {
		return nil, ErrRecordNotFound
	}

	var paths []string
	for _, path := range s.session.archives() {
		// <prefix>_<YYYY-MM-DD>_<HH-MM-SS>.xlsx
		parts := strings.Split(filepath.Base(path), "_")
		if len(parts) > 1 && strings.Contains(parts[1], date) {
			paths = append(paths, path)
		}
	}

	if len(paths) == 0 {
		return nil, ErrRecordNotFound
	}

	return &FindRecordsOutput{
		Paths: paths,
	}, nil
}
