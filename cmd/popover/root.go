package main

import (
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-popover/internal/config"
	"github.com/grindlemire/go-popover/internal/debug"
)

// app carries state shared by every command.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "popover",
		Short: "Disclosure-widget primitive on a headless document",
		Long: `popover - a trigger toggles a floating panel anchored below it,
flipped above near the viewport bottom, with forward Tab trapped inside.

Settings are read from popover.toml in the working directory or
$XDG_CONFIG_HOME/popover, and from POPOVER_* environment variables.`,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: popover.toml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: console or json")

	root.AddCommand(
		newPlaceCmd(a),
		newDemoCmd(a),
		newRunCmd(a),
	)
	return root
}

// setup loads configuration and installs the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
	a.cfg = cfg

	if cfg.Logging.File != "" {
		return debug.Init(cfg.Logging.File, cfg.Logging.Level, cfg.Logging.Format)
	}

	l, err := debug.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	debug.SetLogger(l)
	return nil
}

func (a *app) teardown(*cobra.Command, []string) error {
	return debug.Close()
}
