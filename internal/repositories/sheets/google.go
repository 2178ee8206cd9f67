package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	valueInputUserEntered = "USER_ENTERED"
	valueInputRaw         = "RAW"
	insertRows            = "INSERT_ROWS"
	exportRange           = "A:Z"
	appendRange           = "A:Z"
)

// Config holds configuration for the Google Sheets repository
type Config struct {
	// SpreadsheetID is the document every call targets
	SpreadsheetID string

	// CredentialsFile is the service account key file
	CredentialsFile string

	// ClientOptions replace credential discovery when set
	ClientOptions []option.ClientOption

	Logger *zap.Logger
}

// googleRepository implements the Repository interface using the Sheets v4 API
type googleRepository struct {
	service       *gsheets.Service
	spreadsheetID string
	logger        *zap.Logger
}

// NewGoogle creates a new Google Sheets backed repository
func NewGoogle(ctx context.Context, cfg *Config) (*googleRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.SpreadsheetID == "" {
		return nil, ErrEmptySpreadsheetID
	}

	opts := cfg.ClientOptions
	if len(opts) == 0 {
		if cfg.CredentialsFile == "" {
			return nil, ErrMissingCredentials
		}
		opts = []option.ClientOption{
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(gsheets.SpreadsheetsScope),
		}
	}

	service, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &googleRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		logger:        logger,
	}, nil
}

// ListSheetNames returns the titles of every tab in the spreadsheet
func (r *googleRepository) ListSheetNames(ctx context.Context, input *ListSheetNamesInput) (*ListSheetNamesOutput, error) {
	props, err := r.sheetProperties(ctx)
	if err != nil {
		return nil, gatewayError("list", "", err)
	}

	names := make([]string, 0, len(props))
	for _, p := range props {
		names = append(names, p.Title)
	}

	return &ListSheetNamesOutput{
		Names: names,
	}, nil
}

// ReadRange returns the formatted values of a range
func (r *googleRepository) ReadRange(ctx context.Context, input *ReadRangeInput) (*ReadRangeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.SheetName == "" {
		return nil, ErrEmptySheetName
	}

	resp, err := r.service.Spreadsheets.Values.
		Get(r.spreadsheetID, A1(input.SheetName, input.Range)).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, gatewayError("read", input.SheetName, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			if v == nil {
				continue
			}
			cells[j] = fmt.Sprint(v)
		}
		rows[i] = cells
	}

	return &ReadRangeOutput{
		Rows: rows,
	}, nil
}

// WriteRange writes a block of values anchored at a single cell
func (r *googleRepository) WriteRange(ctx context.Context, input *WriteRangeInput) error {
	if input == nil {
		return ErrNilInput
	}

	anchor, err := CellRef(input.SheetName, input.StartColumn, input.StartRow)
	if err != nil {
		return err
	}

	_, err = r.service.Spreadsheets.Values.
		Update(r.spreadsheetID, anchor, &gsheets.ValueRange{Values: coerceRows(input.Rows)}).
		ValueInputOption(valueInputUserEntered).
		Context(ctx).
		Do()
	if err != nil {
		return gatewayError("write", input.SheetName, err)
	}

	r.logger.Debug("wrote range",
		zap.String("anchor", anchor),
		zap.Int("rows", len(input.Rows)))

	return nil
}

// AppendRow appends a row after the last populated row of a sheet
func (r *googleRepository) AppendRow(ctx context.Context, input *AppendRowInput) error {
	if input == nil {
		return ErrNilInput
	}

	if input.SheetName == "" {
		return ErrEmptySheetName
	}

	row := make([]interface{}, len(input.Values))
	for i, v := range input.Values {
		row[i] = v
	}

	_, err := r.service.Spreadsheets.Values.
		Append(r.spreadsheetID, A1(input.SheetName, appendRange), &gsheets.ValueRange{
			Values: [][]interface{}{row},
		}).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	if err != nil {
		return gatewayError("append", input.SheetName, err)
	}

	return nil
}

// CopySheet duplicates a tab within the spreadsheet and renames the copy
func (r *googleRepository) CopySheet(ctx context.Context, input *CopySheetInput) (*CopySheetOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	sourceID, err := r.sheetID(ctx, input.SourceName)
	if err != nil {
		return nil, gatewayError("copy", input.SourceName, err)
	}

	copied, err := r.service.Spreadsheets.Sheets.
		CopyTo(r.spreadsheetID, sourceID, &gsheets.CopySheetToAnotherSpreadsheetRequest{
			DestinationSpreadsheetId: r.spreadsheetID,
		}).
		Context(ctx).
		Do()
	if err != nil {
		return nil, gatewayError("copy", input.SourceName, err)
	}

	if copied == nil {
		return nil, gatewayError("copy", input.SourceName, ErrCopyReturnedNoSheet)
	}

	if input.Title == "" || input.Title == copied.Title {
		return &CopySheetOutput{SheetName: copied.Title}, nil
	}

	_, err = r.service.Spreadsheets.BatchUpdate(r.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{
			{
				UpdateSheetProperties: &gsheets.UpdateSheetPropertiesRequest{
					Properties: &gsheets.SheetProperties{
						SheetId:         copied.SheetId,
						Title:           input.Title,
						ForceSendFields: []string{"SheetId"},
					},
					Fields: "title",
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		// Don't leave an untitled copy of the template behind.
		if delErr := r.deleteSheetByID(ctx, copied.SheetId); delErr != nil {
			r.logger.Warn("failed to remove copy after rename failure",
				zap.String("copy", copied.Title),
				zap.Error(delErr))
		}
		return nil, gatewayError("rename", copied.Title, err)
	}

	return &CopySheetOutput{
		SheetName: input.Title,
	}, nil
}

// DeleteSheet removes a tab by title
func (r *googleRepository) DeleteSheet(ctx context.Context, input *DeleteSheetInput) error {
	if input == nil {
		return ErrNilInput
	}

	id, err := r.sheetID(ctx, input.SheetName)
	if err != nil {
		return gatewayError("delete", input.SheetName, err)
	}

	if err := r.deleteSheetByID(ctx, id); err != nil {
		return gatewayError("delete", input.SheetName, err)
	}

	return nil
}

// ExportSheet writes the A:Z content of a tab to an xlsx file
func (r *googleRepository) ExportSheet(ctx context.Context, input *ExportSheetInput) error {
	if input == nil {
		return ErrNilInput
	}

	values, err := r.ReadRange(ctx, &ReadRangeInput{
		SheetName: input.SheetName,
		Range:     exportRange,
	})
	if err != nil {
		return err
	}

	if len(values.Rows) == 0 {
		return gatewayError("export", input.SheetName, ErrEmptySheet)
	}

	if err := writeXLSX(input.Path, input.SheetName, values.Rows); err != nil {
		return gatewayError("export", input.SheetName, err)
	}

	r.logger.Info("exported sheet",
		zap.String("sheet", input.SheetName),
		zap.String("path", input.Path))

	return nil
}

func (r *googleRepository) sheetProperties(ctx context.Context) ([]*gsheets.SheetProperties, error) {
	spreadsheet, err := r.service.Spreadsheets.
		Get(r.spreadsheetID).
		Fields("sheets.properties(sheetId,title)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	props := make([]*gsheets.SheetProperties, 0, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		if sheet == nil || sheet.Properties == nil {
			continue
		}
		props = append(props, sheet.Properties)
	}
	return props, nil
}

func (r *googleRepository) sheetID(ctx context.Context, title string) (int64, error) {
	if title == "" {
		return 0, ErrEmptySheetName
	}

	props, err := r.sheetProperties(ctx)
	if err != nil {
		return 0, err
	}

	for _, p := range props {
		if p.Title == title {
			return p.SheetId, nil
		}
	}
	return 0, ErrSheetNotFound
}

func (r *googleRepository) deleteSheetByID(ctx context.Context, id int64) error {
	_, err := r.service.Spreadsheets.BatchUpdate(r.spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: []*gsheets.Request{
			{
				DeleteSheet: &gsheets.DeleteSheetRequest{
					SheetId:         id,
					ForceSendFields: []string{"SheetId"},
				},
			},
		},
	}).Context(ctx).Do()
	return err
}
