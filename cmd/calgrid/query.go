package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/quennel/calgrid/calendar"
)

// ErrBadQuery marks a malformed command line. It is the single recoverable
// error type of the binary, distinct from the library's contract panics;
// cobra turns it into a usage message and a non-zero exit.
var ErrBadQuery = errors.New("calgrid: bad query")

// query is the parsed command line: a year, and optionally one month for
// single-month mode.
type query struct {
	year      int
	month     time.Month
	monthOnly bool
}

// parseQuery interprets argv (already stripped of flags) against a default
// year, usually time.Now().Year():
//
//	(nothing)        → full defaultYear
//	"2013"           → full year 2013
//	"feb"            → February of defaultYear
//	"1971 3", "3 1971", "1971 mar", "mar 1971" → March 1971
//
// A month token is a name prefix (≥3 letters) or a number 1..12; a year is
// any other integer. In the two-argument numeric-ambiguous case ("3 5")
// the first token is taken as the year, matching the "year month" order of
// the one-unambiguous-reading forms.
func parseQuery(args []string, defaultYear int) (query, error) {
	switch len(args) {
	case 0:
		return query{year: defaultYear}, nil

	case 1:
		// A lone number is always a year ("calgrid 3" is the year 3, not
		// March); months stand alone only by name.
		if y, ok := yearToken(args[0]); ok {
			return query{year: y}, nil
		}
		if m, err := calendar.ParseMonth(args[0]); err == nil {
			return query{year: defaultYear, month: m, monthOnly: true}, nil
		}

		return query{}, fmt.Errorf("%w: %q is neither a year nor a month", ErrBadQuery, args[0])

	case 2:
		for _, order := range [2][2]int{{0, 1}, {1, 0}} {
			y, yok := yearToken(args[order[0]])
			m, mok := monthToken(args[order[1]])
			if yok && mok {
				return query{year: y, month: m, monthOnly: true}, nil
			}
		}

		return query{}, fmt.Errorf("%w: %q %q is not a year and a month", ErrBadQuery, args[0], args[1])

	default:
		return query{}, fmt.Errorf("%w: at most two arguments", ErrBadQuery)
	}
}

// monthToken resolves a month name prefix or a numeric month 1..12.
func monthToken(tok string) (time.Month, bool) {
	if m, err := calendar.ParseMonth(tok); err == nil {
		return m, true
	}
	if n, err := strconv.Atoi(tok); err == nil && n >= 1 && n <= 12 {
		return time.Month(n), true
	}

	return 0, false
}

// yearToken accepts any integer year the time package can represent.
func yearToken(tok string) (int, bool) {
	y, err := strconv.Atoi(tok)

	return y, err == nil
}
