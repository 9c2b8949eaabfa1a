package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsinha/motoperf/pkg/domain/entities"
	"github.com/vsinha/motoperf/pkg/infrastructure/config"
	"github.com/vsinha/motoperf/pkg/infrastructure/logging"
)

const toolVersion = "1.0.0"

// flags holds command line overrides; only flags the user set win over config
type flags struct {
	logLevel    string
	bike        string
	budget      float64
	catalogFile string
	format      string
	chartFile   string
	metricsFile string
	verbose     bool
	stage       int
}

// NewRootCommand builds the motoperf command tree. Running it without a
// subcommand prints the upgrade report for the configured bike and budget.
func NewRootCommand() *cobra.Command {
	var (
		f   flags
		env *Environment
	)

	// withEnvironment closes the environment after fn, failed or not, so the
	// metrics file also records errors
	withEnvironment := func(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				err = errors.Join(err, env.Close())
			}()
			return fn(cmd, args)
		}
	}

	root := &cobra.Command{
		Use:   "motoperf",
		Short: "Motorcycle upgrade-path analyzer",
		Long: `motoperf models the economics of performance upgrades for a motorcycle.

It picks upgrades greedily by horsepower gain within a budget, computes the
resulting horsepower, weight, total cost and power-to-weight ratio, and renders
a cost versus horsepower comparison across the catalog.

Configuration is read from defaults, the YAML file named by MOTOPERF_CONFIG,
MOTOPERF_* environment variables (a .env file is honoured) and finally flags.

Examples:
  motoperf
  motoperf report --bike "Yamaha R1" --budget 5000 --format json
  motoperf metrics --bike "Ducati V4" "Race ECU" "Power Commander"
  motoperf chart --output comparison.html`,
		Version:       toolVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			applyFlags(cmd, cfg, &f)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}

			env, err = NewEnvironment(cfg, logger, cmd.OutOrStdout())
			return err
		},
		RunE: withEnvironment(func(cmd *cobra.Command, _ []string) error {
			return NewReportCommand(env, f.verbose).Execute(cmd.Context())
		}),
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVarP(&f.bike, "bike", "b", "Ducati V4", "Motorcycle to analyze")
	pf.StringVarP(&f.catalogFile, "catalog", "c", "", "Catalog file (.yaml, .yml or .csv); defaults to the built-in catalog")
	pf.StringVarP(&f.format, "format", "f", config.FormatText, "Output format: text, json")
	pf.StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics in textfile format after the run")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Enable verbose output")
	root.Flags().Float64Var(&f.budget, "budget", 15000, "Upgrade budget in dollars")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Select upgrades within a budget and print the report",
		Args:  cobra.NoArgs,
		RunE: withEnvironment(func(cmd *cobra.Command, _ []string) error {
			return NewReportCommand(env, f.verbose).Execute(cmd.Context())
		}),
	}
	reportCmd.Flags().Float64Var(&f.budget, "budget", 15000, "Upgrade budget in dollars")

	metricsCmd := &cobra.Command{
		Use:   "metrics [part name]...",
		Short: "Compute metrics for an explicit list of upgrades",
		Long: `Compute horsepower, weight, total cost and power-to-weight for the
selected bike with the named parts applied. A part may be named more than once.`,
		RunE: withEnvironment(func(cmd *cobra.Command, args []string) error {
			return NewMetricsCommand(env, args).Execute(cmd.Context())
		}),
	}

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "List bikes and parts",
		Args:  cobra.NoArgs,
		RunE: withEnvironment(func(cmd *cobra.Command, _ []string) error {
			filter := CatalogFilter{Stage: entities.Stage(f.stage)}
			if cmd.Flags().Changed("bike") {
				filter.Bike = entities.BikeName(env.Config.Bike)
			}
			return NewCatalogCommand(env, filter).Execute(cmd.Context())
		}),
	}
	catalogCmd.Flags().IntVar(&f.stage, "stage", 0, "Only list parts of this stage (1-3)")

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Write the cost vs horsepower comparison as an HTML page",
		Args:  cobra.NoArgs,
		RunE: withEnvironment(func(cmd *cobra.Command, _ []string) error {
			return NewChartCommand(env).Execute(cmd.Context())
		}),
	}
	chartCmd.Flags().StringVarP(&f.chartFile, "output", "o", "performance_comparison.html", "Chart output file")

	root.AddCommand(reportCmd, metricsCmd, catalogCmd, chartCmd)
	return root
}

// applyFlags copies explicitly set flags over the loaded configuration
func applyFlags(cmd *cobra.Command, cfg *config.Config, f *flags) {
	set := cmd.Flags().Changed
	if set("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if set("bike") {
		cfg.Bike = f.bike
	}
	if set("budget") {
		cfg.Budget = f.budget
	}
	if set("catalog") {
		cfg.CatalogFile = f.catalogFile
	}
	if set("format") {
		cfg.Format = f.format
	}
	if set("output") {
		cfg.ChartFile = f.chartFile
	}
	if set("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
}
