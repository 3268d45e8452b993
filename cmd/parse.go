package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/goavwx/avwx"
)

var parseKind string

func init() {
	addOptionsFlag(parseCmd)
	parseCmd.Flags().StringVarP(&parseKind, "kind", "k", "", "model product for nbm (default nbs) or gfs (default mav)")
	rootCmd.AddCommand(parseCmd)
}

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse <metar|taf|pirep|airsigmet|notam|nbm|gfs> [text|-]",
	Short: "Parse a raw report",
	Long: `Parse a raw report with the AVWX parser. The report text is taken from the
remaining arguments, or read from stdin when it is "-" or omitted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readReport(args[1:], os.Stdin)
		if err != nil {
			return err
		}

		result, console, err := parseReport(commandContext(cmd), client, args[0], raw, avwx.ParseParams{Options: options})
		if err != nil {
			return err
		}
		return render(result, console)
	},
}

// readReport joins args into the report text, or reads stdin for "-" or no args
func readReport(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read report from stdin: %w", err)
		}
		args = []string{string(data)}
	}

	raw := strings.TrimSpace(strings.Join(args, " "))
	if raw == "" {
		return "", fmt.Errorf("no report text given")
	}
	return raw, nil
}

// parseReport sends raw to the parser for target and returns the result
// with its console rendering
func parseReport(ctx context.Context, api avwx.API, target, raw string, p avwx.ParseParams) (any, func() string, error) {
	switch strings.ToLower(target) {
	case "metar":
		m, err := api.ParseMetar(ctx, raw, p)
		if err != nil {
			return nil, nil, err
		}
		return m, func() string { return formatter.FormatReports([]avwx.Report{m}) }, nil
	case "taf":
		t, err := api.ParseTaf(ctx, raw, p)
		if err != nil {
			return nil, nil, err
		}
		return t, func() string { return formatter.FormatReports([]avwx.Report{t}) }, nil
	case "pirep":
		pr, err := api.ParsePirep(ctx, raw, p)
		if err != nil {
			return nil, nil, err
		}
		return pr, func() string { return formatter.FormatReports([]avwx.Report{pr}) }, nil
	case "airsigmet":
		a, err := api.ParseAirSigmet(ctx, raw, p)
		if err != nil {
			return nil, nil, err
		}
		return a, func() string { return formatter.FormatAirSigmet(a) }, nil
	case "notam":
		n, err := api.ParseNotam(ctx, raw, p)
		if err != nil {
			return nil, nil, err
		}
		return n, func() string { return formatter.FormatNotam(n) }, nil
	case "nbm":
		kind, err := modelKind(avwx.ForecastNBS)
		if err != nil {
			return nil, nil, err
		}
		r, err := api.ParseNbm(ctx, kind, raw, p)
		if err != nil {
			return nil, nil, err
		}
		return r, func() string { return formatter.FormatForecast(kind, &r.ModelReport, &r.Partial) }, nil
	case "gfs":
		kind, err := modelKind(avwx.ForecastMAV)
		if err != nil {
			return nil, nil, err
		}
		r, err := api.ParseGfs(ctx, kind, raw, p)
		if err != nil {
			return nil, nil, err
		}
		return r, func() string { return formatter.FormatForecast(kind, &r.ModelReport, &r.Partial) }, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", avwx.ErrUnknownReportKind, target)
	}
}

func modelKind(fallback avwx.ForecastKind) (avwx.ForecastKind, error) {
	if parseKind == "" {
		return fallback, nil
	}
	return avwx.ParseForecastKind(parseKind)
}
