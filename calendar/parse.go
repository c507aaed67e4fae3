package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownMonth is returned when a token matches no English month name.
// Callers branch with errors.Is; the wrapped message carries the token.
var ErrUnknownMonth = errors.New("calendar: unknown month")

// minMonthPrefix is the shortest accepted month-name prefix. Three letters
// make every English month name unambiguous ("ju" is not, "jun" is).
const minMonthPrefix = 3

// ParseMonth resolves a month name or abbreviation, case-insensitively, by
// prefix match against the full English month names. At least three
// letters are required; with three, every prefix is already unique, so no
// ambiguity handling is needed beyond the length floor.
//
//	ParseMonth("feb")      → time.February
//	ParseMonth("SEPTEMB")  → time.September
//	ParseMonth("ju")       → ErrUnknownMonth (too short to disambiguate)
//
// Complexity: O(12) per call.
func ParseMonth(tok string) (time.Month, error) {
	needle := strings.ToLower(tok)
	if len(needle) < minMonthPrefix {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMonth, tok)
	}
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(strings.ToLower(m.String()), needle) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMonth, tok)
}
