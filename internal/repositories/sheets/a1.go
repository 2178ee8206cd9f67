package sheets

import (
	"fmt"
	"strings"
)

// QuoteSheetName quotes a tab title for use in A1 notation
func QuoteSheetName(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// A1 joins a tab title and a sheet-local range
func A1(sheetName, rng string) string {
	if rng == "" {
		return QuoteSheetName(sheetName)
	}
	return QuoteSheetName(sheetName) + "!" + rng
}

// ColumnIndex converts a column letter to its 0-based index ("A" is 0, "AA" is 26)
func ColumnIndex(column string) (int, error) {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return 0, ErrInvalidColumn
	}

	idx := 0
	for _, r := range column {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColumn, column)
		}
		idx = idx*26 + int(r-'A'+1)
	}
	return idx - 1, nil
}

// ColumnLetter converts a 0-based column index to its letter
func ColumnLetter(idx int) string {
	if idx < 0 {
		return ""
	}

	var b []byte
	for n := idx + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}

// CellRef returns the A1 reference of a single cell
func CellRef(sheetName, column string, row int) (string, error) {
	if _, err := ColumnIndex(column); err != nil {
		return "", err
	}
	if row < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidRow, row)
	}
	return A1(sheetName, fmt.Sprintf("%s%d", strings.ToUpper(column), row)), nil
}
