package sheets

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/warbot/internal/models"
)

// MemberColumns locates member directory fields relative to the first
// column of the range that was read
type MemberColumns struct {
	Seq           int
	Name          int
	Participation int
	Wins          int
}

// Cell returns the trimmed value at idx, or "" when the row is too short
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// DecodeRosterRows decodes a three-column roster block (seq, name, line)
// whose first row sits at sheet row firstRow
func DecodeRosterRows(rows [][]string, firstRow int) []models.RosterRow {
	decoded := make([]models.RosterRow, 0, len(rows))
	for i, row := range rows {
		decoded = append(decoded, models.RosterRow{
			Row:  firstRow + i,
			Seq:  Cell(row, 0),
			Name: Cell(row, 1),
			Line: Cell(row, 2),
		})
	}
	return decoded
}

// DecodeMembers decodes member directory rows whose first row sits at sheet
// row firstRow. Rows without a name are skipped.
func DecodeMembers(rows [][]string, firstRow int, cols MemberColumns) []models.Member {
	members := make([]models.Member, 0, len(rows))
	for i, row := range rows {
		name := Cell(row, cols.Name)
		if name == "" {
			continue
		}
		members = append(members, models.Member{
			Row:           firstRow + i,
			Seq:           strings.TrimSpace(strings.TrimLeft(Cell(row, cols.Seq), "'")),
			Name:          name,
			Participation: parseCount(Cell(row, cols.Participation)),
			Wins:          parseCount(Cell(row, cols.Wins)),
		})
	}
	return members
}

// parseCount reads a counter cell; blank or non-numeric cells count as zero
func parseCount(v string) int {
	v = strings.TrimLeft(strings.TrimSpace(v), "'")
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return 0
}
