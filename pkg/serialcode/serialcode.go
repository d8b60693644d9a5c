package serialcode

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Serial numbers have the shape PP-YYYY-NNN: a two-letter prefix derived
// from the asset type, the allocation year, and a sequence number that is
// zero-padded to at least three digits and grows unbounded past 999.

const (
	prefixLength = 2
	filler       = 'X'
	minDigits    = 3
)

// Prefix derives the two-letter scope prefix from an asset type label.
// Non-letters are stripped, the first two letters are uppercased, and short
// results are padded with the filler letter.
func Prefix(assetType string) string {
	var letters []rune
	for _, r := range assetType {
		if unicode.IsLetter(r) {
			letters = append(letters, unicode.ToUpper(r))
			if len(letters) == prefixLength {
				break
			}
		}
	}
	for len(letters) < prefixLength {
		letters = append(letters, filler)
	}
	return string(letters)
}

func Format(prefix string, year, sequence int) string {
	return fmt.Sprintf("%s-%d-%0*d", prefix, year, minDigits, sequence)
}

// ScopePrefix returns the "PP-YYYY-" part shared by every serial in one
// allocator scope, usable as a LIKE pattern prefix.
func ScopePrefix(prefix string, year int) string {
	return fmt.Sprintf("%s-%d-", prefix, year)
}

// SequenceNumber extracts the numeric suffix of a serial belonging to the
// given scope. Widths diverge past 999, so callers must compare the returned
// number, never the raw string.
func SequenceNumber(serial, prefix string, year int) (int, bool) {
	scope := ScopePrefix(prefix, year)
	if !strings.HasPrefix(serial, scope) {
		return 0, false
	}
	n, err := strconv.Atoi(serial[len(scope):])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
