package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/goavwx/avwx"
	"github.com/s0up4200/goavwx/config"
	"github.com/s0up4200/goavwx/filter"
	"github.com/s0up4200/goavwx/format"
	"github.com/s0up4200/goavwx/metrics"
)

var (
	cfgFile   string
	cfg       *config.Config
	logger    zerolog.Logger
	client    avwx.API
	filters   *filter.Manager
	formatter *format.ConsoleFormatter
	registry  *prometheus.Registry

	// Command flags
	jsonOutput  bool
	showDetails bool
	showRaw     bool
	whereExpr   string
	preset      string
	options     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "goavwx",
	Short: "Aviation weather from the AVWX REST API",
	Long: `goavwx fetches and parses aviation weather from AVWX: METAR, TAF,
PIREP, NOTAM, AIRMET/SIGMET, NBM and GFS forecasts, plus station lookup
and route searches. Listings can be narrowed with filter expressions.`,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: finalizeApp,
	SilenceUsage:       true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().BoolVar(&showDetails, "details", false, "show all decoded details")
	rootCmd.PersistentFlags().BoolVar(&showRaw, "raw", false, "show raw report text")
}

// addFilterFlags registers the listing filter flags on cmd
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&whereExpr, "where", "w", "", "filter expression, e.g. 'rulesAtLeast(\"IFR\")'")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

// addOptionsFlag registers the AVWX options flag on cmd
func addOptionsFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&options, "options", "o", "", "AVWX options, e.g. info,translate,summary")
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Annotations["skipInit"] == "true" {
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Flags override the configured output settings
	if cmd.Flags().Changed("json") {
		if jsonOutput {
			cfg.Output.Format = "json"
		} else {
			cfg.Output.Format = "console"
		}
	}
	if cmd.Flags().Changed("details") {
		cfg.Output.Details = showDetails
	}
	if cmd.Flags().Changed("raw") {
		cfg.Output.Raw = showRaw
	}
	formatter = format.NewConsoleFormatter(format.Options{
		ShowDetails: cfg.Output.Details,
		ShowRaw:     cfg.Output.Raw,
	})

	clientOpts := []avwx.Option{
		avwx.WithBaseURL(cfg.API.BaseURL),
		avwx.WithTimeout(cfg.API.Timeout),
		avwx.WithMaxRetries(cfg.API.MaxRetries),
		avwx.WithRetryWait(cfg.API.RetryWait, 5*cfg.API.RetryWait),
		avwx.WithUserAgent(cfg.API.UserAgent),
	}

	// Metrics are only collected when something will export them
	if cfg.Metrics.Enabled || cfg.Metrics.Textfile != "" {
		registry = prometheus.NewRegistry()
		clientOpts = append(clientOpts, avwx.WithMetrics(metrics.NewCollector(cfg.Metrics.Namespace, registry)))
	}

	// Create AVWX client
	client, err = avwx.NewClient(cfg.API.Key, logger, clientOpts...)
	if err != nil {
		return fmt.Errorf("failed to create AVWX client: %w", err)
	}

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	logger.Debug().
		Str("base_url", cfg.API.BaseURL).
		Strs("presets", filters.ListFilters()).
		Msg("Initialized")

	return nil
}

// finalizeApp writes the metrics textfile when one is configured
func finalizeApp(cmd *cobra.Command, args []string) error {
	if registry == nil || cfg == nil || cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(cfg.Metrics.Textfile, registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	logger.Debug().Str("path", cfg.Metrics.Textfile).Msg("Wrote metrics textfile")
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, coloured only on a terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// selectFilter resolves --where and --preset into a filter, or nil
func selectFilter() (filter.Filter, error) {
	f, err := filters.Select(whereExpr, preset)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	if f == nil {
		return nil, nil
	}
	logger.Debug().Str("filter", f.Expression()).Msg("Filtering results")
	return f, nil
}

// render prints v as JSON or as the console text produced by console
func render(v any, console func() string) error {
	if cfg.Output.Format == "json" {
		return format.WriteJSON(os.Stdout, v)
	}
	fmt.Print(console())
	return nil
}

// commandContext returns a context cancelled on interrupt
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
