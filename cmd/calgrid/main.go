// Command calgrid prints a fixed-width text calendar.
//
//	calgrid            current year, months three abreast
//	calgrid 2013       the year 2013
//	calgrid feb        February of the current year
//	calgrid 1971 3     March 1971 (year and month, either order)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/quennel/calgrid/render"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd wires the cobra command. Output goes to w so tests can
// capture it without touching the process stdout.
func newRootCmd(w io.Writer) *cobra.Command {
	var (
		verbose bool
		logger  *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "calgrid [year] [month]",
		Short: "calgrid — a fixed-width text calendar",
		Long: `calgrid renders a year (or a single month) as aligned fixed-width text,
months laid out side by side. A month may be given by name prefix
("feb", "SEPT") or, together with a year, by number (1–12).`,
		Args:         cobra.MaximumNArgs(2),
		SilenceUsage: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg := zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(_ *cobra.Command, args []string) error {
			q, err := parseQuery(args, time.Now().Year())
			if err != nil {
				return err
			}

			var out string
			if q.monthOnly {
				logger.Debug("rendering single month",
					zap.Int("year", q.year), zap.Stringer("month", q.month))
				out, err = render.FormatMonthOf(q.year, q.month,
					render.WithWeekdayHeader(true),
					render.WithYearInTitle(true),
				)
			} else {
				logger.Debug("rendering full year", zap.Int("year", q.year))
				out, err = render.FormatYear(q.year,
					render.WithWeekdayHeader(true),
				)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(w, out)

			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return cmd
}
