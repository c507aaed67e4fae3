// Package render defines layout constants, tunable options, and error
// definitions for the calendar formatters.
package render

import "errors"

// ErrOptionViolation is returned when an invalid Option is supplied
// (e.g. a non-positive cell width or months-per-row).
var ErrOptionViolation = errors.New("render: invalid option supplied")

// Layout defaults. These are the classic cal(1) proportions; all of them
// are reachable through options rather than baked into the formatters.
const (
	// DefaultCellWidth is the column width per day: one pad character
	// plus up to two digits, day numbers right-justified.
	DefaultCellWidth = 3

	// DaysPerWeek is fixed by the Gregorian week, Sunday through Saturday.
	DaysPerWeek = 7

	// DefaultMonthsPerRow is the number of month blocks laid side by side
	// in year mode.
	DefaultMonthsPerRow = 3

	// DefaultGutter separates adjacent month blocks within a row.
	DefaultGutter = " "
)

// Option configures the formatters via functional arguments. An invalid
// value is recorded internally and surfaced as ErrOptionViolation by the
// entry point that receives it.
type Option func(*Options)

// Options holds every layout knob. Zero-value fields are filled by
// DefaultOptions; construct through it rather than a literal.
type Options struct {
	// CellWidth is the per-day column width; WeekWidth derives from it.
	CellWidth int

	// MonthsPerRow is how many month blocks form one composited row in
	// year mode.
	MonthsPerRow int

	// Gutter separates month blocks within a composited row.
	Gutter string

	// WeekdayHeader, when true, inserts the Su..Sa abbreviation line
	// between the title and the first week.
	WeekdayHeader bool

	// YearInTitle, when true, appends the year to the month title
	// ("February 2013" instead of "February").
	YearInTitle bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the canonical layout: 3-column cells, 3 months
// per row, single-space gutter, no weekday header, no year in the title.
func DefaultOptions() Options {
	return Options{
		CellWidth:    DefaultCellWidth,
		MonthsPerRow: DefaultMonthsPerRow,
		Gutter:       DefaultGutter,
	}
}

// WeekWidth is the fixed width of every week line and month block under o.
func (o Options) WeekWidth() int { return o.CellWidth * DaysPerWeek }

// WithCellWidth overrides the per-day column width. Values below 3 cannot
// hold a pad plus two digits and are recorded as ErrOptionViolation.
func WithCellWidth(w int) Option {
	return func(o *Options) {
		if w < 3 {
			o.err = ErrOptionViolation
			return
		}
		o.CellWidth = w
	}
}

// WithMonthsPerRow overrides how many months are composited per row in
// year mode. Non-positive values are recorded as ErrOptionViolation.
func WithMonthsPerRow(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation
			return
		}
		o.MonthsPerRow = n
	}
}

// WithGutter overrides the separator between month blocks in a row.
// Any string is allowed, including empty.
func WithGutter(g string) Option {
	return func(o *Options) {
		o.Gutter = g
	}
}

// WithWeekdayHeader toggles the Su..Sa abbreviation line.
func WithWeekdayHeader(on bool) Option {
	return func(o *Options) {
		o.WeekdayHeader = on
	}
}

// WithYearInTitle toggles the year suffix on month titles.
func WithYearInTitle(on bool) Option {
	return func(o *Options) {
		o.YearInTitle = on
	}
}

// build folds opts over the defaults and reports the first recorded
// violation, if any.
func build(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}
