package cmd

import (
	"fmt"

	"github.com/grovetools/gametidy/internal/display"
	"github.com/grovetools/gametidy/internal/transcript"
	"github.com/spf13/cobra"
)

type tidyOptions struct {
	in         string
	out        string
	dropHead   int
	dropTail   int
	jsonOutput bool
}

func addTidyFlags(cmd *cobra.Command, o *tidyOptions) {
	cmd.Flags().StringVarP(&o.in, "in", "i", transcript.DefaultInputFile, "Transcript file to read")
	cmd.Flags().StringVarP(&o.out, "out", "o", transcript.DefaultOutputFile, "File to write, one turn per line (truncated)")
	cmd.Flags().IntVar(&o.dropHead, "drop-head", 1, "Number of leading segments to discard")
	cmd.Flags().IntVar(&o.dropTail, "drop-tail", 1, "Number of trailing segments to discard")
	cmd.Flags().BoolVar(&o.jsonOutput, "json", false, "Output the result in JSON format")
}

// resolve merges flags over the loaded config.
func (o *tidyOptions) resolve(cmd *cobra.Command, root *rootOptions) (in, out string, policy transcript.Policy) {
	in, out = root.cfg.Tidy.Input, root.cfg.Tidy.Output
	policy = root.cfg.Policy()

	flags := cmd.Flags()
	if flags.Changed("in") || in == "" {
		in = o.in
	}
	if flags.Changed("out") || out == "" {
		out = o.out
	}
	if flags.Changed("drop-head") {
		policy.DropHead = o.dropHead
	}
	if flags.Changed("drop-tail") {
		policy.DropTail = o.dropTail
	}
	return in, out, policy
}

func newTidyCmd(root *rootOptions) *cobra.Command {
	o := &tidyOptions{}

	cmd := &cobra.Command{
		Use:   "tidy [flags]",
		Short: "Write the transcript as one turn per line",
		Long:  "Write the transcript as one turn per line. This is also what gtidy does without a subcommand.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTidy(cmd, root, o)
		},
	}
	addTidyFlags(cmd, o)

	return cmd
}

func runTidy(cmd *cobra.Command, root *rootOptions, o *tidyOptions) error {
	in, out, policy := o.resolve(cmd, root)

	normalizer, err := transcript.NewNormalizer(policy)
	if err != nil {
		return err
	}

	res, err := normalizer.TidyFile(in, out)
	if err != nil {
		return err
	}

	if o.jsonOutput {
		return display.PrintJSON(res, cmd.OutOrStdout())
	}
	fmt.Fprintln(cmd.OutOrStdout(), display.RenderSummary(res))
	return nil
}
