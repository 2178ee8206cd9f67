package models

// RosterRow is one row of the reserved roster block on a war sheet
type RosterRow struct {
	// Row is the 1-based sheet row the values were read from
	Row int

	// Seq is the member sequence number copied from the directory
	Seq string

	// Name is the canonical name+tag
	Name string

	// Line is the requested role/position
	Line string
}

// IsBlank reports whether every column of the row is empty
func (r RosterRow) IsBlank() bool {
	return r.Seq == "" && r.Name == "" && r.Line == ""
}

// Values returns the row in sheet column order
func (r RosterRow) Values() []string {
	return []string{r.Seq, r.Name, r.Line}
}
