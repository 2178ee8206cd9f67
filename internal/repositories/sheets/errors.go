package sheets

import "fmt"

// SheetsError is a custom error type for spreadsheet gateway errors
type SheetsError string

// Error implements the error interface
func (e SheetsError) Error() string {
	return string(e)
}

const (
	ErrSheetNotFound       SheetsError = "sheet not found"
	ErrEmptySheet          SheetsError = "sheet has no data"
	ErrInvalidColumn       SheetsError = "invalid column"
	ErrInvalidRow          SheetsError = "invalid row"
	ErrEmptySheetName      SheetsError = "sheet name cannot be empty"
	ErrNilInput            SheetsError = "input cannot be nil"
	ErrNilConfig           SheetsError = "config cannot be nil"
	ErrEmptySpreadsheetID  SheetsError = "spreadsheet ID cannot be empty"
	ErrMissingCredentials  SheetsError = "credentials file or client options are required"
	ErrCopyReturnedNoSheet SheetsError = "copy returned no sheet"
)

// GatewayError wraps a failed call to the remote spreadsheet
type GatewayError struct {
	// Op is the gateway operation that failed
	Op string

	// Sheet is the tab the operation targeted, if any
	Sheet string

	Err error
}

func (e *GatewayError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("sheets %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("sheets %s %q: %v", e.Op, e.Sheet, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func gatewayError(op, sheet string, err error) error {
	return &GatewayError{Op: op, Sheet: sheet, Err: err}
}
