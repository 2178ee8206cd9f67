package sheets

import (
	"testing"

	"github.com/KirkDiggler/warbot/internal/models"
	"github.com/stretchr/testify/suite"
)

type HelpersTestSuite struct {
	suite.Suite
}

func TestHelpersTestSuite(t *testing.T) {
	suite.Run(t, new(HelpersTestSuite))
}

func (s *HelpersTestSuite) TestColumnIndexRoundTrip() {
	for _, col := range []string{"A", "C", "J", "L", "W", "X", "Y", "Z", "AA", "AZ", "ZZ"} {
		idx, err := ColumnIndex(col)
		s.Require().NoError(err)
		s.Equal(col, ColumnLetter(idx))
	}

	idx, err := ColumnIndex("w")
	s.Require().NoError(err)
	s.Equal(22, idx)

	_, err = ColumnIndex("W5")
	s.ErrorIs(err, ErrInvalidColumn)
}

func (s *HelpersTestSuite) TestCellRefQuotesSheetName() {
	ref, err := CellRef("내전-2024-06-01", "w", 5)
	s.Require().NoError(err)
	s.Equal("'내전-2024-06-01'!W5", ref)

	s.Equal("'O''Brien'!X:X", A1("O'Brien", "X:X"))

	_, err = CellRef("MEMBER", "J", 0)
	s.ErrorIs(err, ErrInvalidRow)
}

func (s *HelpersTestSuite) TestCoerceCell() {
	s.Equal(int64(12), coerceCell("12"))
	s.Equal(int64(7), coerceCell(" 007 "))
	s.Equal(1.5, coerceCell("1.5"))
	s.Equal("Player#1", coerceCell("Player#1"))
	s.Equal("-3", coerceCell("-3"))
	s.Equal("1.2.3", coerceCell("1.2.3"))
	s.Equal("", coerceCell(""))
}

func (s *HelpersTestSuite) TestDecodeRosterRowsPadsMissingColumns() {
	rows := DecodeRosterRows([][]string{
		{"번호", "닉네임", "라인"},
		{"1", " A#1 ", "탑"},
		{"2", "B#2"},
		{},
	}, 4)

	s.Require().Len(rows, 4)
	s.Equal(models.RosterRow{Row: 5, Seq: "1", Name: "A#1", Line: "탑"}, rows[1])
	s.Equal(models.RosterRow{Row: 6, Seq: "2", Name: "B#2"}, rows[2])
	s.True(rows[3].IsBlank())
	s.Equal(7, rows[3].Row)
}

func (s *HelpersTestSuite) TestDecodeMembers() {
	cols := MemberColumns{Seq: 0, Name: 1, Participation: 7, Wins: 9}
	rows := [][]string{
		{"순번", "닉네임"},
		{"'012", "Player#1234", "", "", "", "", "", "3", "", "1"},
		{"013", "Other#1", "", "", "", "", "", ""},
		{"014", ""},
		{"015", "Odd#9", "", "", "", "", "", "abc", "", "2.0"},
	}

	members := DecodeMembers(rows, 1, cols)
	s.Require().Len(members, 4)

	s.Equal(models.Member{Row: 2, Seq: "012", Name: "Player#1234", Participation: 3, Wins: 1}, members[1])
	s.Equal(models.Member{Row: 3, Seq: "013", Name: "Other#1"}, members[2])
	s.Equal(models.Member{Row: 5, Seq: "015", Name: "Odd#9", Participation: 0, Wins: 2}, members[3])
}
