// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/netflow/internal/config"
	"github.com/katalvlaran/netflow/internal/logging"
	"github.com/katalvlaran/netflow/linsys"
	"github.com/katalvlaran/netflow/network"
	"github.com/katalvlaran/netflow/render"
)

// version is set at build time via -ldflags.
var version = "dev"

var errSource = errors.New("exactly one of --file or --preset is required")

// app is the state shared by all subcommands of one invocation.
type app struct {
	file     string
	preset   string
	eps      float64
	steps    bool
	pause    bool
	logLevel string
	noColor  bool

	settings *config.Settings
	log      *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "netflow",
		Short: "Classify and solve network flow systems A·x = b",
		Long: "netflow builds the linear system of a node network, decides whether it has\n" +
			"a unique, an infinite or no exact solution, and computes the flows with\n" +
			"Gauss-Jordan elimination or the pseudo-inverse.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	f := root.PersistentFlags()
	f.StringVarP(&a.file, "file", "f", "", "YAML system file (raw matrix or nodes/links)")
	f.StringVarP(&a.preset, "preset", "p", "", "built-in network: triangle | adjusted")
	f.Float64Var(&a.eps, "eps", 0, "pivot tolerance (default from NETFLOW_EPSILON)")
	f.BoolVar(&a.steps, "steps", false, "print every elementary row operation")
	f.BoolVar(&a.pause, "pause", false, "wait for Enter after each step (implies --steps)")
	f.StringVar(&a.logLevel, "log-level", "", "debug | info | warn | error")
	f.BoolVar(&a.noColor, "no-color", false, "disable styled output")

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newClassifyCmd(a))
	root.AddCommand(newInvertCmd(a))
	root.AddCommand(newExampleCmd(a))
	root.Version = version

	return root
}

// setup merges environment settings with explicit flags and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	s, err := config.Load()
	if err != nil {
		return err
	}
	fl := cmd.Flags()
	if fl.Changed("eps") {
		s.Epsilon = a.eps
	}
	if fl.Changed("steps") {
		s.Trace = a.steps
	}
	if fl.Changed("pause") {
		s.Pause = a.pause
	}
	if fl.Changed("log-level") {
		s.LogLevel = a.logLevel
	}
	if a.noColor {
		s.Color = false
	}
	if s.Pause {
		s.Trace = true
	}
	if err = s.Validate(); err != nil {
		return err
	}

	log, err := logging.New(s.Logging())
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.settings, a.log = s, log

	return nil
}

// system resolves --file or --preset.
func (a *app) system() (*config.System, error) {
	switch {
	case a.file != "" && a.preset != "", a.file == "" && a.preset == "":
		return nil, errSource
	case a.file != "":
		return config.LoadSystem(a.file)
	}

	return presetSystem(a.preset)
}

func presetSystem(name string) (*config.System, error) {
	switch name {
	case "triangle":
		return config.FromNetwork(name, network.Triangle())
	case "adjusted":
		return config.FromNetwork(name, network.AdjustedTriangle())
	}

	return nil, fmt.Errorf("unknown preset %q (want triangle or adjusted)", name)
}

func (a *app) solveOptions() []linsys.Option {
	opts := []linsys.Option{linsys.WithEpsilon(a.settings.Epsilon), linsys.WithLogger(a.log)}
	if a.settings.Trace {
		opts = append(opts, linsys.WithTrace())
	}

	return opts
}

// renderer returns the Terminal for labels, wrapped in a Pager when pausing.
func (a *app) renderer(cmd *cobra.Command, labels []string) (*render.Terminal, render.Renderer) {
	term := render.NewTerminal(cmd.OutOrStdout(), render.WithColor(a.settings.Color), render.WithLabels(labels))
	if a.settings.Pause {
		return term, render.NewPager(term, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return term, term
}
