// Package cli wires configuration, route loading, the shortest-path engine
// and the text report into the airpaths command.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/airpaths/config"
	"github.com/katalvlaran/airpaths/core"
	"github.com/katalvlaran/airpaths/dijkstra"
	"github.com/katalvlaran/airpaths/report"
	"github.com/katalvlaran/airpaths/routes"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type flagValues struct {
	configPath string
	routesFile string
	start      string
	minWeight  int64
	maxWeight  int64
	seed       int64
	strict     bool
	verbose    bool
}

// Execute is the entry point of the CLI.
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}

// NewRootCommand builds the airpaths command.
func NewRootCommand(version string) *cobra.Command {
	var fv flagValues
	cmd := &cobra.Command{
		Use:          "airpaths",
		Short:        "Print shortest route distances from one airport to every reachable airport.",
		Args:         cobra.NoArgs,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd.Flags(), fv)
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, cmd.OutOrStdout(), newLogger(cmd.ErrOrStderr(), cfg.Level()))
		},
	}

	cmd.Flags().StringVarP(&fv.configPath, "config", "c", "", "path to YAML config file")
	cmd.Flags().StringVarP(&fv.routesFile, "routes", "f", config.DefaultRoutesFile, "path to routes file")
	cmd.Flags().StringVarP(&fv.start, "start", "s", config.DefaultStartAirport, "origin airport code")
	cmd.Flags().Int64Var(&fv.minWeight, "min-weight", config.Default().MinWeight, "lowest random route distance")
	cmd.Flags().Int64Var(&fv.maxWeight, "max-weight", config.Default().MaxWeight, "highest random route distance")
	cmd.Flags().Int64Var(&fv.seed, "seed", 0, "random seed for route distances (0 = clock)")
	cmd.Flags().BoolVar(&fv.strict, "strict", false, "fail when the routes file cannot be read completely")
	cmd.Flags().BoolVarP(&fv.verbose, "verbose", "v", false, "verbose output")

	return cmd
}

// resolveConfig layers defaults, the optional config file and explicitly set flags.
func resolveConfig(flags *pflag.FlagSet, fv flagValues) (config.Config, error) {
	cfg := config.Default()
	if fv.configPath != "" {
		var err error
		if cfg, err = config.Load(fv.configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "routes":
			cfg.RoutesFile = fv.routesFile
		case "start":
			cfg.StartAirport = fv.start
		case "min-weight":
			cfg.MinWeight = fv.minWeight
		case "max-weight":
			cfg.MaxWeight = fv.maxWeight
		case "seed":
			cfg.Seed = fv.seed
		case "strict":
			cfg.Strict = fv.strict
		case "verbose":
			if fv.verbose {
				cfg.LogLevel = log.DebugLevel.String()
			}
		}
	})

	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetLevel(level)

	return l
}

// run loads the graph, computes distances from the start airport and prints them.
// A read failure is logged and the run continues on the partial graph unless
// cfg.Strict is set.
func run(ctx context.Context, cfg config.Config, out io.Writer, logger log.FieldLogger) error {
	g := core.NewGraph()

	opts := []routes.Option{
		routes.WithWeightFn(cfg.WeightFn()),
		routes.WithLogger(logger),
	}
	if cfg.Seed != 0 {
		opts = append(opts, routes.WithSeed(cfg.Seed))
	}

	st, err := routes.LoadFile(cfg.RoutesFile, g, opts...)
	if err != nil {
		logger.WithField("file", cfg.RoutesFile).WithError(err).Error("error reading routes")
		if cfg.Strict {
			return err
		}
	}
	logger.WithFields(log.Fields{
		"file":     cfg.RoutesFile,
		"edges":    st.Edges,
		"skipped":  st.Skipped,
		"airports": g.VertexCount(),
	}).Debug("graph built")

	if err := ctx.Err(); err != nil {
		return err
	}

	dist, err := dijkstra.Dijkstra(g, dijkstra.Source(cfg.StartAirport))
	if err != nil {
		return fmt.Errorf("shortest paths from %s: %w", cfg.StartAirport, err)
	}

	if err := report.Write(out, cfg.StartAirport, dist); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
