package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/kinotools/kinostarts/internal/calendar"
	"github.com/kinotools/kinostarts/internal/logger"
	"github.com/kinotools/kinostarts/internal/scraper"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1

	// DefaultOutputFile is written in the current directory when no output
	// path argument is given.
	DefaultOutputFile = "kinostarts_calendar.ics"
)

var (
	flagDate    string
	flagURL     string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinostarts [output-file]",
		Short: "Generate an iCalendar feed of upcoming German cinema releases",
		Long: `Fetches the InsideKino Startplan page, extracts upcoming film release
dates, and writes them as all-day events to an iCalendar (.ics) file.
Running this regularly (for example via cron) keeps the calendar feed in
sync with the latest data on InsideKino.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runGenerate,
	}

	cmd.Flags().StringVar(&flagDate, "date", "", "Reference date YYYY-MM-DD; releases before it are dropped (default: today)")
	cmd.Flags().StringVar(&flagURL, "url", scraper.StartplanURL, "Startplan page URL")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging to stderr")

	return cmd
}

// runGenerate is the main command logic
func runGenerate(cmd *cobra.Command, args []string) error {
	outputPath := DefaultOutputFile
	if len(args) > 0 {
		outputPath = args[0]
	}

	today := time.Now()
	if flagDate != "" {
		t, err := time.Parse("2006-01-02", flagDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q (want YYYY-MM-DD): %w", flagDate, err)
		}
		today = t
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, cmd.ErrOrStderr()))
	}

	logger.Debug("Fetching release dates", logger.Fields{"url": flagURL})

	sc := scraper.NewWithURL(flagURL)
	events, err := sc.FetchEvents(today)
	if err != nil {
		return fmt.Errorf("fetching events: %w", err)
	}

	logger.Debug("Harvested events", logger.Fields{"count": len(events)})

	if err := calendar.Write(events, outputPath); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d events and wrote to %s\n", len(events), outputPath)
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
