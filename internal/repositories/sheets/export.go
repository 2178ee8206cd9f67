package sheets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

const xlsxMaxSheetTitle = 31

// writeXLSX writes rows to a single-sheet workbook at path
func writeXLSX(path, sheetName string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create archive directory: %w", err)
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	title := xlsxSheetTitle(sheetName)
	if err := f.SetSheetName(f.GetSheetName(0), title); err != nil {
		return fmt.Errorf("failed to name worksheet: %w", err)
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = coerceCell(v)
		}
		anchor, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(title, anchor, &cells); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// xlsxSheetTitle strips characters Excel forbids in worksheet names
func xlsxSheetTitle(name string) string {
	title := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '-'
		}
		return r
	}, name)

	title = strings.Trim(title, "'")
	if title == "" {
		return "Sheet1"
	}

	runes := []rune(title)
	if len(runes) > xlsxMaxSheetTitle {
		runes = runes[:xlsxMaxSheetTitle]
	}
	return string(runes)
}
