package sheets

import (
	"strconv"
	"strings"
)

// coerceCell turns numeric-looking strings into numbers so the sheet stores
// them with a numeric cell type. Anything else is passed through as text.
func coerceCell(v string) interface{} {
	t := strings.TrimSpace(v)
	if t == "" {
		return v
	}

	if isDigits(t) {
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
		return v
	}

	if strings.Count(t, ".") == 1 && isDigits(strings.Replace(t, ".", "", 1)) {
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
	}

	return v
}

func coerceRows(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = coerceCell(v)
		}
		out[i] = cells
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
