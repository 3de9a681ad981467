package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"bb84sim/internal/config"
)

// commandContext carries the loaded configuration and logger into
// subcommands.
type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	var configFlag, logLevelFlag string
	ctx := &commandContext{configFlag: &configFlag, logLevelFlag: &logLevelFlag}

	rootCmd := &cobra.Command{
		Use:           "bb84sim",
		Short:         "BB84 key exchange simulator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Override the configured log level")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newTrialsCommand(ctx))

	return rootCmd
}

func (c *commandContext) setup() error {
	cfg, err := config.Load(*c.configFlag)
	if err != nil {
		return err
	}
	if *c.logLevelFlag != "" {
		cfg.LogLevel = *c.logLevelFlag
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	return nil
}
