package cmd

import (
	"github.com/grovetools/gametidy/config"
	"github.com/grovetools/gametidy/internal/logging"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg *config.Config
}

// load reads the config file and applies logging settings. Flags win over the file.
func (o *rootOptions) load(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = o.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = o.logFormat
	}
	if err := logging.Configure(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

// NewRootCmd creates the root command for gtidy. Without a subcommand it runs tidy.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	tidyOpts := &tidyOptions{}

	rootCmd := &cobra.Command{
		Use:   "gtidy",
		Short: "Reformat a run-on game transcript into one turn per line",
		Long: "Reads a game transcript written as one period-delimited run-on sentence and writes\n" +
			"one turn per line, dropping the preamble, the trailing fragment, and the last token of each turn.",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: opts.load,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTidy(cmd, opts, tidyOpts)
		},
	}
	addTidyFlags(rootCmd, tidyOpts)

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default ./"+config.DefaultPath+" if present)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", logging.FormatText, "Log format (text or json)")

	rootCmd.AddCommand(newTidyCmd(opts))
	rootCmd.AddCommand(newTurnsCmd(opts))
	rootCmd.AddCommand(newWatchCmd(opts))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
