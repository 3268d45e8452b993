package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/s0up4200/goavwx/avwx"
	"github.com/s0up4200/goavwx/filter"
	"github.com/s0up4200/goavwx/metrics"
)

var (
	watchSchedule string
	watchKind     string
)

func init() {
	watchCmd.Flags().StringVarP(&watchSchedule, "schedule", "s", "", "cron schedule (default from config, */10 * * * *)")
	watchCmd.Flags().StringVarP(&watchKind, "kind", "k", "", "report kind to poll (default from config, metar)")
	addOptionsFlag(watchCmd)
	addFilterFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [ident...]",
	Short: "Poll reports on a schedule",
	Long: `Poll reports for a set of stations on a cron schedule until interrupted.

Stations default to watch.stations from the config. With --where or
--preset (or watch.preset) only matching reports are printed. When
metrics.textfile is set it is rewritten after every poll.`,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	stations := args
	if len(stations) == 0 {
		stations = cfg.Watch.Stations
	}
	if len(stations) == 0 {
		return fmt.Errorf("no stations given and watch.stations is empty")
	}

	schedule := cfg.Watch.Schedule
	if watchSchedule != "" {
		schedule = watchSchedule
	}
	kindName := cfg.Watch.Kind
	if watchKind != "" {
		kindName = watchKind
	}
	kind, err := avwx.ParseReportKind(kindName)
	if err != nil {
		return err
	}
	if preset == "" {
		preset = cfg.Watch.Preset
	}
	f, err := selectFilter()
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	poll := func() {
		pollReports(ctx, kind, stations, f)
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, poll); err != nil {
		return fmt.Errorf("failed to schedule watch %q: %w", schedule, err)
	}

	logger.Info().
		Str("schedule", schedule).
		Str("kind", kind.String()).
		Strs("stations", stations).
		Msg("Watching stations, press Ctrl+C to stop")

	// Run once immediately, then on schedule
	poll()
	c.Start()

	<-ctx.Done()
	logger.Info().Msg("Stopping watch")
	<-c.Stop().Done()
	return nil
}

// pollReports fetches, filters and prints one round of reports
func pollReports(ctx context.Context, kind avwx.ReportKind, stations []string, f filter.Filter) {
	if ctx.Err() != nil {
		return
	}
	start := time.Now()

	reports, err := fetchReports(ctx, client, kind, stations, avwx.ReportParams{Options: options})
	if err != nil {
		logger.Error().Err(err).Msg("Scheduled poll failed")
		return
	}

	matches := filter.Apply(f, reports, filter.FromReport)
	logger.Info().
		Int("reports", len(reports)).
		Int("matches", len(matches)).
		Dur("took", time.Since(start)).
		Msg("Poll complete")

	if len(matches) > 0 {
		if err := render(matches, func() string {
			return formatter.FormatReports(matches)
		}); err != nil {
			logger.Error().Err(err).Msg("Failed to print reports")
		}
	}

	if registry != nil && cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile, registry); err != nil {
			logger.Error().Err(err).Msg("Failed to write metrics textfile")
		}
	}
}
