package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/rocketsim/internal/config"
	"github.com/san-kum/rocketsim/internal/integrators"
	"github.com/san-kum/rocketsim/internal/logging"
	"github.com/san-kum/rocketsim/internal/metrics"
	"github.com/san-kum/rocketsim/internal/physics"
	"github.com/san-kum/rocketsim/internal/sim"
	"github.com/san-kum/rocketsim/internal/viz"
)

type options struct {
	logLevel string
	out      string
	noView   bool
	ascii    bool
	width    int
	height   int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		var rep reportedError
		if !errors.As(err, &rep) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// reportedError marks an error that has already been shown to the user.
type reportedError struct{ error }

func (e reportedError) Unwrap() error { return e.error }

// newRootCmd wires the CLI. Without a subcommand it flies the default preset.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	log := zerolog.Nop()

	rootCmd := &cobra.Command{
		Use:           "rocketsim",
		Short:         "vertical rocket flight simulator",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.New(stderr, opts.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreset(cmd.Context(), config.DefaultPreset, opts, log, stdout)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	addOutputFlags(rootCmd, opts)

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "simulate one preset and chart the flight",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := config.DefaultPreset
			if len(args) > 0 {
				name = args[0]
			}
			return runPreset(cmd.Context(), name, opts, log, stdout)
		},
	}
	addOutputFlags(runCmd, opts)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list the built-in launch configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPresets(stdout)
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "fly every preset concurrently and compare the flights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return comparePresets(cmd.Context(), log, stdout)
		},
	}

	rootCmd.AddCommand(runCmd, presetsCmd, compareCmd)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return reportedError{err}
	})
	for _, c := range []*cobra.Command{rootCmd, runCmd, presetsCmd, compareCmd} {
		c.RunE = logFailure(c.RunE, &log)
	}

	return rootCmd
}

// logFailure reports a failed command through the logger, which is only built
// once flags are parsed.
func logFailure(run func(*cobra.Command, []string) error, log *zerolog.Logger) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := run(cmd, args); err != nil {
			log.Error().Err(err).Str("command", cmd.Name()).Msg("command failed")
			return reportedError{err}
		}
		return nil
	}
}

func addOutputFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.out, "out", "o", viz.DefaultFigurePath, "figure path, format taken from the extension")
	cmd.Flags().BoolVar(&opts.noView, "no-view", false, "do not display the flight after saving the figure")
	cmd.Flags().BoolVar(&opts.ascii, "ascii", false, "print terminal charts instead of opening the viewer")
	cmd.Flags().IntVar(&opts.width, "width", 80, "terminal chart width")
	cmd.Flags().IntVar(&opts.height, "height", 12, "terminal chart height")
}

func newSimulator(log zerolog.Logger, r *physics.Rocket) *sim.Simulator {
	s := sim.New(integrators.NewEuler(), log)
	for _, m := range metrics.Defaults(r.DryMass()) {
		s.AddMetric(m)
	}
	return s
}

func runPreset(ctx context.Context, name string, opts *options, log zerolog.Logger, stdout io.Writer) error {
	cfg, err := config.GetPreset(name)
	if err != nil {
		return err
	}
	rocket, err := cfg.NewRocket()
	if err != nil {
		return err
	}

	log = log.With().Str("preset", name).Logger()
	log.Info().
		Float64("dry_mass", cfg.DryMass).
		Float64("propellant_mass", cfg.PropellantMass).
		Float64("thrust", cfg.Thrust).
		Float64("dt", cfg.Dt).
		Msg("launching")

	start := time.Now()
	res, err := newSimulator(log, rocket).Run(ctx, rocket, cfg.SimConfig())
	if err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("simulation finished")

	fmt.Fprintln(stdout, viz.Summary(res))

	if err := viz.SaveFigure(res, opts.out, viz.DefaultFigureOptions()); err != nil {
		return err
	}
	log.Info().Str("path", opts.out).Msg("figure saved")

	if opts.noView {
		return nil
	}
	if f, ok := stdout.(*os.File); ok && !opts.ascii && logging.IsTerminal(f) {
		return viz.RunViewer(name, res, nil, f)
	}
	fmt.Fprint(stdout, viz.RenderASCII(res, opts.width, opts.height))
	return nil
}

func listPresets(stdout io.Writer) error {
	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDRY MASS (g)\tPROPELLANT (g)\tRATE (g/s)\tTHRUST (N)\tT/W\tBURN (s)\tDESCRIPTION")
	for _, name := range config.ListPresets() {
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		r, err := cfg.NewRocket()
		if err != nil {
			return err
		}
		marker := ""
		if name == config.DefaultPreset {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\t%s\t%.2f\t%.1f\t%s\n",
			name, marker,
			humanize.Commaf(cfg.DryMass),
			humanize.Commaf(cfg.PropellantMass),
			humanize.Commaf(cfg.ConsumptionRate),
			humanize.Commaf(cfg.Thrust),
			r.ThrustToWeight(),
			r.BurnTime(),
			cfg.Description,
		)
	}
	return w.Flush()
}

func comparePresets(ctx context.Context, log zerolog.Logger, stdout io.Writer) error {
	names := config.ListPresets()
	rockets := make([]*physics.Rocket, len(names))
	simCfg := sim.DefaultConfig()
	for i, name := range names {
		cfg, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		if rockets[i], err = cfg.NewRocket(); err != nil {
			return err
		}
		if cfg.MaxSteps > simCfg.MaxSteps {
			simCfg.MaxSteps = cfg.MaxSteps
		}
	}

	ensemble := sim.NewEnsemble(func(r *physics.Rocket) *sim.Simulator {
		return newSimulator(log, r)
	})
	results, err := ensemble.Run(ctx, rockets, simCfg)
	if err != nil {
		var serr *sim.SimulationError
		if errors.As(err, &serr) {
			log.Warn().Int("step", serr.Step).Float64("time", serr.Time).Msg("a preset did not land")
		}
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSAMPLES\tAPOGEE (m)\tMAX SPEED (m/s)\tBURNOUT (s)\tIMPACT (m/s)\tFLIGHT (s)\tPROFILE")
	for i, res := range results {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
			names[i],
			res.Len(),
			res.Metrics["apogee"],
			res.Metrics["max_speed"],
			res.Metrics["burnout_time"],
			res.Metrics["impact_velocity"],
			res.FlightTime(),
			viz.Sparkline(res.Heights, 24),
		)
	}
	return w.Flush()
}
