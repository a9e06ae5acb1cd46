package cmd

import (
	"github.com/grovetools/gametidy/internal/display"
	"github.com/grovetools/gametidy/internal/transcript"
	"github.com/spf13/cobra"
)

func newTurnsCmd(root *rootOptions) *cobra.Command {
	o := &tidyOptions{}

	cmd := &cobra.Command{
		Use:   "turns [flags]",
		Short: "Print the normalized turns without writing the output file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, _, policy := o.resolve(cmd, root)

			normalizer, err := transcript.NewNormalizer(policy)
			if err != nil {
				return err
			}

			turns, _, err := normalizer.ReadFile(in)
			if err != nil {
				return err
			}

			if o.jsonOutput {
				if turns == nil {
					turns = []string{}
				}
				return display.PrintJSON(turns, cmd.OutOrStdout())
			}
			return display.PrintTurnsTable(turns, cmd.OutOrStdout())
		},
	}
	addTidyFlags(cmd, o)
	_ = cmd.Flags().MarkHidden("out")

	return cmd
}
