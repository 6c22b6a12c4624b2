package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gonum-community/packing2d/anneal"
	"github.com/gonum-community/packing2d/config"
	"github.com/gonum-community/packing2d/render"
	"github.com/gonum-community/packing2d/shape"
	"github.com/gonum-community/packing2d/state"
	"github.com/gonum-community/packing2d/wallpaper"
)

func newRootCommand() *cobra.Command {
	opts := config.Defaults()

	cmd := &cobra.Command{
		Use:   "packing <wallpaper-group>",
		Short: "search for a dense periodic packing of a regular polygon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Group = args[0]
			opts.HasSeed = cmd.Flags().Changed("seed")
			return run(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.NumSides, "num-sides", opts.NumSides, "number of sides of the regular polygon to pack")
	flags.IntVar(&opts.Steps, "steps", opts.Steps, "number of annealing steps per start configuration")
	flags.Float64Var(&opts.KTStart, "kt-start", opts.KTStart, "initial annealing temperature")
	flags.Float64Var(&opts.KTFinish, "kt-finish", opts.KTFinish, "final annealing temperature")
	flags.Float64Var(&opts.MaxStepSize, "max-step-size", opts.MaxStepSize, "maximum basis step size, as a fraction of each parameter's range")
	flags.Uint64Var(&opts.Seed, "seed", 0, "random seed (default: drawn from the system entropy source)")
	flags.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level: debug, info, warn, error")

	return cmd
}

// run resolves opts into a search, runs it, and writes the resulting
// positions to w. It returns the first error encountered; the caller
// decides how that maps to an exit code.
func run(w io.Writer, opts config.Options) error {
	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if err := opts.Validate(); err != nil {
		logger.Error().Err(err).Msg("invalid options")
		return err
	}

	group, err := wallpaper.Lookup(opts.Group)
	if err != nil {
		logger.Error().Err(err).Str("group", opts.Group).Msg("unknown wallpaper group")
		return err
	}

	radii := make([]float64, opts.NumSides)
	for i := range radii {
		radii[i] = 1
	}
	poly, err := shape.FromRadial("polygon", radii)
	if err != nil {
		logger.Error().Err(err).Msg("failed to construct polygon")
		return err
	}

	initial, err := state.FromGroup(poly, group)
	if err != nil {
		logger.Error().Err(err).Msg("failed to build initial state")
		return err
	}
	if err := state.CheckFeasible(initial); err != nil {
		logger.Error().Err(err).Msg("initial configuration is infeasible")
		return err
	}

	startScore, _ := initial.Score()
	logger.Info().Float64("score", startScore).Str("group", group.Name).Msg("starting search")

	vars := anneal.Vars{
		KTStart:         opts.KTStart,
		KTFinish:        opts.KTFinish,
		MaxStepSize:     opts.MaxStepSize,
		NumStartConfigs: 1,
		Steps:           opts.Steps,
		Seed:            opts.Seed,
		HasSeed:         opts.HasSeed,
	}

	result, err := anneal.RunParallel(vars, initial.Clone)
	if err != nil {
		logger.Error().Err(err).Msg("search found no feasible state")
		return err
	}

	finalScore, _ := result.Best.Score()
	logger.Info().
		Float64("score", finalScore).
		Int("rejections", result.Rejections).
		Int("steps", result.Steps).
		Msg("search complete")

	return render.WritePositions(w, result.Best)
}
