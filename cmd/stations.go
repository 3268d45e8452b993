package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/goavwx/avwx"
	"github.com/s0up4200/goavwx/filter"
)

var (
	stationCount  int
	airportOnly   bool
	reportingOnly bool
	routeDistance float64
)

func init() {
	addFilterFlags(stationCmd)
	rootCmd.AddCommand(stationCmd)

	for _, cmd := range []*cobra.Command{nearCmd, searchCmd} {
		cmd.Flags().IntVarP(&stationCount, "count", "n", avwx.DefaultNearCount, "number of stations to return")
		cmd.Flags().BoolVar(&airportOnly, "airport", false, "only return airports")
		cmd.Flags().BoolVar(&reportingOnly, "reporting", false, "only return stations that publish reports")
		addFilterFlags(cmd)
		rootCmd.AddCommand(cmd)
	}

	routeCmd.Flags().Float64Var(&routeDistance, "distance", 10, "distance from the route in nautical miles")
	addOptionsFlag(routeCmd)
	addFilterFlags(routeCmd)
	rootCmd.AddCommand(routeCmd)
}

// listParams builds search parameters from the flags that were set
func listParams(cmd *cobra.Command) avwx.ListParams {
	var p avwx.ListParams
	if cmd.Flags().Changed("count") {
		p.N = avwx.Some(stationCount)
	}
	if cmd.Flags().Changed("airport") {
		p.Airport = avwx.Some(airportOnly)
	}
	if cmd.Flags().Changed("reporting") {
		p.Reporting = avwx.Some(reportingOnly)
	}
	return p
}

// stationCmd represents the station command
var stationCmd = &cobra.Command{
	Use:   "station <ident>...",
	Short: "Show station details",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := selectFilter()
		if err != nil {
			return err
		}

		api := client
		stations, err := fanOut(commandContext(cmd), args, func(ctx context.Context, ident string) (avwx.Station, error) {
			s, err := api.GetStation(ctx, ident, avwx.StationParams{})
			if err != nil {
				return avwx.Station{}, err
			}
			return *s, nil
		})
		if err != nil {
			return err
		}

		stations = filter.Apply(f, stations, stationRecord)
		return render(stations, func() string {
			return formatter.FormatStations(stations)
		})
	},
}

// nearCmd represents the near command
var nearCmd = &cobra.Command{
	Use:   "near <lat,lon>",
	Short: "Find stations near a coordinate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := selectFilter()
		if err != nil {
			return err
		}

		near, err := client.GetNearStations(commandContext(cmd), args[0], listParams(cmd))
		if err != nil {
			return err
		}

		near = filter.Apply(f, near, func(n avwx.NearStation) filter.Record {
			return filter.FromNearStation(&n)
		})
		return render(near, func() string {
			return formatter.FormatNearStations(near)
		})
	},
}

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Search stations by ident, name or city",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := selectFilter()
		if err != nil {
			return err
		}

		stations, err := client.SearchStations(commandContext(cmd), args[0], listParams(cmd))
		if err != nil {
			return err
		}

		stations = filter.Apply(f, stations, stationRecord)
		return render(stations, func() string {
			return formatter.FormatStations(stations)
		})
	},
}

// routeCmd represents the route command
var routeCmd = &cobra.Command{
	Use:   "route <stations|metar|taf|summary|pirep> <route>",
	Short: "Find stations or reports along a flight route",
	Long: `Find stations or reports within --distance nautical miles of a route.
The route is a semicolon separated list of idents, navaids or coordinates,
e.g. "KLGA;LGA;12.34,-12.34;KMCO".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := selectFilter()
		if err != nil {
			return err
		}
		ctx := commandContext(cmd)

		if args[0] == "stations" {
			route, err := client.GetStationsAlongRoute(ctx, args[1], routeDistance, avwx.StationParams{})
			if err != nil {
				return err
			}
			route.Results = filter.Apply(f, route.Results, stationRecord)
			return render(route, func() string {
				return formatter.FormatStationRoute(route)
			})
		}

		kind, err := avwx.ParseReportKind(args[0])
		if err != nil {
			return fmt.Errorf("invalid route target: %w", err)
		}
		route, err := client.GetReportsAlongRoute(ctx, kind, args[1], routeDistance, avwx.ReportParams{Options: options})
		if err != nil {
			return err
		}
		route.Results = filter.Apply(f, route.Results, filter.FromReport)
		return render(route, func() string {
			return formatter.FormatReportsRoute(route)
		})
	},
}

func stationRecord(s avwx.Station) filter.Record {
	return filter.FromStation(&s)
}
