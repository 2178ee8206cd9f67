package sheets

// ListSheetNamesInput contains parameters for listing sheet titles
type ListSheetNamesInput struct{}

// ListSheetNamesOutput contains the sheet titles in spreadsheet order
type ListSheetNamesOutput struct {
	Names []string
}

// ReadRangeInput contains parameters for reading a range
type ReadRangeInput struct {
	// SheetName is the tab to read from
	SheetName string

	// Range is an A1 range without the sheet prefix, e.g. "W5:Y100" or "X:X"
	Range string
}

// ReadRangeOutput contains the values of a range.
// Rows may be shorter than the range width; trailing empty cells are omitted.
type ReadRangeOutput struct {
	Rows [][]string
}

// WriteRangeInput contains parameters for writing a block of values
type WriteRangeInput struct {
	SheetName string

	// StartColumn is the column letter of the top-left cell, e.g. "W"
	StartColumn string

	// StartRow is the 1-based row of the top-left cell
	StartRow int

	// Rows are written left to right, top to bottom.
	// Numeric-looking values are stored as numbers.
	Rows [][]string
}

// AppendRowInput contains parameters for appending a row
type AppendRowInput struct {
	SheetName string
	Values    []string
}

// CopySheetInput contains parameters for duplicating a tab
type CopySheetInput struct {
	// SourceName is the title of the tab to duplicate
	SourceName string

	// Title is the title given to the copy
	Title string
}

// CopySheetOutput contains the result of duplicating a tab
type CopySheetOutput struct {
	SheetName string
}

// DeleteSheetInput contains parameters for deleting a tab
type DeleteSheetInput struct {
	SheetName string
}

// ExportSheetInput contains parameters for exporting a tab
type ExportSheetInput struct {
	SheetName string

	// Path is the destination xlsx file; parent directories are created
	Path string
}
