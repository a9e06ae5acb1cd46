package cmd

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/grovetools/gametidy/internal/display"
	"github.com/grovetools/gametidy/internal/transcript"
	"github.com/grovetools/gametidy/internal/watch"
	"github.com/spf13/cobra"
)

func newWatchCmd(root *rootOptions) *cobra.Command {
	o := &tidyOptions{}

	cmd := &cobra.Command{
		Use:   "watch [flags]",
		Short: "Re-run tidy whenever the input transcript changes",
		Long:  "Runs tidy once, then again each time the input file is written, until interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out, policy := o.resolve(cmd, root)

			same, err := samePath(in, out)
			if err != nil {
				return err
			}
			if same {
				return errOutputIsInput
			}

			normalizer, err := transcript.NewNormalizer(policy)
			if err != nil {
				return err
			}

			rerun := func(ctx context.Context) error {
				res, err := normalizer.TidyFile(in, out)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), display.RenderSummary(res))
				return nil
			}

			if err := rerun(cmd.Context()); err != nil {
				return err
			}

			return watch.New(in, root.cfg.Watch.Debounce, rerun).Run(cmd.Context())
		},
	}
	addTidyFlags(cmd, o)
	_ = cmd.Flags().MarkHidden("json")

	return cmd
}

// errOutputIsInput stops watch from re-triggering on its own output.
var errOutputIsInput = errors.New("output file must differ from the watched input file")

func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s: %w", a, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, fmt.Errorf("failed to resolve %s: %w", b, err)
	}
	return absA == absB, nil
}
