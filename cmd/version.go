package cmd

import (
	"fmt"

	"github.com/grovetools/gametidy/internal/display"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X github.com/grovetools/gametidy/cmd.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return display.PrintJSON(map[string]string{
					"version":   Version,
					"commit":    Commit,
					"buildDate": BuildDate,
				}, cmd.OutOrStdout())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "gtidy %s (commit %s, built %s)\n", Version, Commit, BuildDate)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
