package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/goavwx/avwx"
	"github.com/s0up4200/goavwx/filter"
)

// MaxConcurrency bounds parallel requests for multi-station commands
const MaxConcurrency = 5

var (
	onFail        string
	notamDistance int
)

func init() {
	for _, kind := range avwx.ReportKinds {
		rootCmd.AddCommand(newReportCmd(kind))
	}

	notamCmd.Flags().IntVar(&notamDistance, "distance", 0, "search radius in nautical miles")
	notamCmd.Flags().StringVar(&onFail, "onfail", "", "fallback when no report is available (error, cache, nearest)")
	rootCmd.AddCommand(notamCmd)

	rootCmd.AddCommand(airSigmetCmd)
}

// newReportCmd builds the retrieval command for one report kind
func newReportCmd(kind avwx.ReportKind) *cobra.Command {
	name := kind.String()
	cmd := &cobra.Command{
		Use:   name + " <ident|lat,lon>...",
		Short: fmt.Sprintf("Fetch the current %s for one or more stations", strings.ToUpper(name)),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReports(commandContext(cmd), kind, args)
		},
	}
	addOptionsFlag(cmd)
	addFilterFlags(cmd)
	cmd.Flags().StringVar(&onFail, "onfail", "", "fallback when no report is available (error, cache, nearest)")
	return cmd
}

func runReports(ctx context.Context, kind avwx.ReportKind, idents []string) error {
	f, err := selectFilter()
	if err != nil {
		return err
	}

	logger.Info().Str("kind", kind.String()).Strs("stations", idents).Msg("Fetching reports")

	reports, err := fetchReports(ctx, client, kind, idents, avwx.ReportParams{
		Options: options,
		OnFail:  onFail,
	})
	if err != nil {
		return err
	}

	reports = filter.Apply(f, reports, filter.FromReport)
	return render(reports, func() string {
		return formatter.FormatReports(reports)
	})
}

// fetchReports fetches one report per ident concurrently, in ident order
func fetchReports(ctx context.Context, api avwx.API, kind avwx.ReportKind, idents []string, p avwx.ReportParams) ([]avwx.Report, error) {
	return fanOut(ctx, idents, func(ctx context.Context, ident string) (avwx.Report, error) {
		return api.GetReport(ctx, kind, ident, p)
	})
}

// fanOut runs fetch for every ident with bounded concurrency. Failed idents
// are logged and skipped; an error is returned only if every ident failed.
func fanOut[T any](ctx context.Context, idents []string, fetch func(context.Context, string) (T, error)) ([]T, error) {
	results := make([]T, len(idents))
	errs := make([]error, len(idents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrency)

	for i, ident := range idents {
		g.Go(func() error {
			result, err := fetch(gctx, ident)
			if err != nil {
				logger.Warn().Err(err).Str("station", ident).Msg("Request failed")
				errs[i] = fmt.Errorf("%s: %w", ident, err)
				// Continue with the remaining stations
				return nil
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]T, 0, len(idents))
	var failed []error
	for i := range idents {
		if errs[i] != nil {
			failed = append(failed, errs[i])
			continue
		}
		out = append(out, results[i])
	}
	if len(idents) > 0 && len(failed) == len(idents) {
		return nil, errors.Join(failed...)
	}
	return out, nil
}

// notamCmd represents the notam command
var notamCmd = &cobra.Command{
	Use:   "notam <ident|lat,lon>",
	Short: "Fetch NOTAMs for a station or coordinate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := avwx.NotamParams{OnFail: onFail}
		if cmd.Flags().Changed("distance") {
			p.Distance = avwx.Some(notamDistance)
		}

		notam, err := client.GetNotam(commandContext(cmd), args[0], p)
		if err != nil {
			return err
		}
		return render(notam, func() string {
			return formatter.FormatNotam(notam)
		})
	},
}

// airSigmetCmd represents the airsigmet command
var airSigmetCmd = &cobra.Command{
	Use:   "airsigmet",
	Short: "Fetch current AIRMETs and SIGMETs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := client.GetAirSigmet(commandContext(cmd), avwx.AirSigmetParams{})
		if err != nil {
			return err
		}
		return render(report, func() string {
			return formatter.FormatAirSigmet(report)
		})
	},
}
