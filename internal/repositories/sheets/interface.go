package sheets

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/warbot/internal/repositories/sheets Repository

import (
	"context"
)

// Repository is the gateway to the remote spreadsheet that acts as the
// system of record for members and war rosters
type Repository interface {
	// ListSheetNames returns the titles of every tab in the spreadsheet
	ListSheetNames(ctx context.Context, input *ListSheetNamesInput) (*ListSheetNamesOutput, error)

	// ReadRange returns the cell values of a range, row by row
	ReadRange(ctx context.Context, input *ReadRangeInput) (*ReadRangeOutput, error)

	// WriteRange writes a contiguous block anchored at a single cell
	WriteRange(ctx context.Context, input *WriteRangeInput) error

	// AppendRow appends a row after the last populated row of a sheet
	AppendRow(ctx context.Context, input *AppendRowInput) error

	// CopySheet duplicates a tab and gives the copy a new title
	CopySheet(ctx context.Context, input *CopySheetInput) (*CopySheetOutput, error)

	// DeleteSheet removes a tab
	DeleteSheet(ctx context.Context, input *DeleteSheetInput) error

	// ExportSheet writes the tabular content of a tab to a local xlsx file
	ExportSheet(ctx context.Context, input *ExportSheetInput) error
}
