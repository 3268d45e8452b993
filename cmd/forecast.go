package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/goavwx/avwx"
)

func init() {
	addOptionsFlag(forecastCmd)
	forecastCmd.Flags().StringVar(&onFail, "onfail", "", "fallback when no report is available (error, cache, nearest)")
	rootCmd.AddCommand(forecastCmd)
}

// forecastCmd represents the forecast command
var forecastCmd = &cobra.Command{
	Use:   "forecast <nbm|gfs> <kind> <ident|lat,lon>",
	Short: "Fetch an NBM or GFS MOS forecast",
	Long: `Fetch a model forecast for a station.

NBM kinds: nbh (hourly), nbs (short), nbe (extended), nbx (extra-extended)
GFS kinds: mav (short), mex (extended)`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := avwx.ParseForecastKind(args[1])
		if err != nil {
			return err
		}
		ctx := commandContext(cmd)
		p := avwx.ReportParams{Options: options, OnFail: onFail}

		switch args[0] {
		case "nbm":
			report, err := client.GetNbm(ctx, kind, args[2], p)
			if err != nil {
				return err
			}
			return render(report, func() string {
				return formatter.FormatForecast(kind, &report.ModelReport, &report.Partial)
			})
		case "gfs":
			report, err := client.GetGfs(ctx, kind, args[2], p)
			if err != nil {
				return err
			}
			return render(report, func() string {
				return formatter.FormatForecast(kind, &report.ModelReport, &report.Partial)
			})
		default:
			return fmt.Errorf("unknown forecast model %q (must be nbm or gfs)", args[0])
		}
	},
}
