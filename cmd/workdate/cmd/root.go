package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/working-date-go/internal/config"
	"github.com/cmlabs-hris/working-date-go/internal/pkg/businesstime"
	"github.com/cmlabs-hris/working-date-go/internal/pkg/holiday"
	"github.com/spf13/cobra"
)

type options struct {
	holidaysFile string
	holidaysURL  string
	noHolidays   bool
	timeout      time.Duration
}

// NewRootCmd builds the workdate command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "workdate",
		Short: "Business calendar arithmetic for a two-shift working day",
		Long: `workdate adds working days and hours to an instant using the working day
08:00-12:00 / 13:00-17:00 (America/Bogota), skipping weekends and holidays.

Holidays come from --holidays-file, --holidays-url or HOLIDAYS_URL.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.holidaysFile, "holidays-file", "", "JSON file with the holiday list")
	rootCmd.PersistentFlags().StringVar(&opts.holidaysURL, "holidays-url", "", "URL of the holiday list (default: HOLIDAYS_URL)")
	rootCmd.PersistentFlags().BoolVar(&opts.noHolidays, "no-holidays", false, "ignore holidays; only weekends are non-working")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "timeout for loading holidays")

	rootCmd.AddCommand(
		newComputeCmd(opts),
		newClassifyCmd(opts),
		newBetweenCmd(opts),
		newHolidaysCmd(opts),
	)

	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// environment is what every subcommand needs to run.
type environment struct {
	cfg      *config.Config
	schedule *businesstime.Schedule
	source   holiday.Source
}

func (o *options) environment() (*environment, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	schedule, err := cfg.Schedule()
	if err != nil {
		return nil, fmt.Errorf("invalid working schedule: %w", err)
	}

	var source holiday.Source
	switch {
	case o.noHolidays:
		source = holiday.StaticSource{}
	case o.holidaysFile != "":
		source = holiday.FileSource{Path: o.holidaysFile}
	case o.holidaysURL != "":
		source = holiday.NewClient(o.holidaysURL, cfg.Holidays.Timeout)
	default:
		source = holiday.NewClient(cfg.Holidays.URL, cfg.Holidays.Timeout)
	}

	return &environment{cfg: cfg, schedule: schedule, source: source}, nil
}

func (o *options) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), o.timeout)
}

// holidays loads the set through a one-shot cache so parsing and error
// wrapping match the server.
func (e *environment) holidays(ctx context.Context) (businesstime.HolidaySet, error) {
	cache := holiday.NewCache(e.source, e.cfg.Holidays.TTL, holiday.WithLogger(discardLogger()))
	return cache.Holidays(ctx)
}

// staticProvider serves an already loaded set to the working-date service.
type staticProvider businesstime.HolidaySet

func (p staticProvider) Holidays(context.Context) (businesstime.HolidaySet, error) {
	return businesstime.HolidaySet(p), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// parseInstant accepts a UTC timestamp with a Z suffix; empty means now.
func parseInstant(schedule *businesstime.Schedule, value string) (time.Time, error) {
	if value == "" {
		return schedule.Local(time.Now()), nil
	}
	t, ok := schedule.ParseUTCToLocal(value)
	if !ok {
		return time.Time{}, fmt.Errorf("invalid instant %q: expected ISO 8601 UTC with Z suffix", value)
	}
	return t, nil
}
