// Package names canonicalises member names typed into Discord modals so they
// can be compared with the names recorded in the spreadsheet. Korean names
// pasted from different clients can arrive in decomposed Hangul, so every
// comparison goes through NFC first.
package names

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// TagSeparator splits a canonical name into its name and tag parts.
const TagSeparator = "#"

// markerLabels are the labels printed by the war sheet template around the
// roster block. They share the name column with real participants.
var markerLabels = map[string]struct{}{
	"닉네임":   {},
	"팀장지원금": {},
	"시트등록":  {},
	"마감코드":  {},
	"내전마감":  {},
	"번호":    {},
}

// Canonical trims surrounding whitespace and normalises to NFC.
func Canonical(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Fold returns the case-folded canonical form of s.
func Fold(s string) string {
	// cases.Caser is stateful; build one per call.
	return cases.Fold().String(Canonical(s))
}

// Equal reports whether a and b name the same member, ignoring case.
func Equal(a, b string) bool {
	return Fold(a) == Fold(b)
}

// StripSpaces removes every whitespace rune from s.
func StripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// IsMarker reports whether s is one of the template's structural labels.
func IsMarker(s string) bool {
	_, ok := markerLabels[Fold(StripSpaces(s))]
	return ok
}

// IsURL reports whether s starts with an http or https scheme.
func IsURL(s string) bool {
	lower := strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// IsValidParticipant reports whether a cell from the roster name column holds
// a participant record rather than template furniture.
func IsValidParticipant(value string) bool {
	v := StripSpaces(Canonical(value))
	if utf8.RuneCountInString(v) < 2 {
		return false
	}
	if IsMarker(v) || IsURL(v) {
		return false
	}

	parts := strings.Split(v, TagSeparator)
	return len(parts) == 2 && parts[0] != "" && parts[1] != ""
}
