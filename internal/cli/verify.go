package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/padchain/keypad"
	"github.com/katalvlaran/padchain/planner"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check every planned path for gap avoidance and minimal length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, pad := range []*keypad.Pad{keypad.Numeric(), keypad.Directional()} {
				if err := planner.Verify(pad); err != nil {
					a.log.WithError(err).Errorw("verify failed", "pad", pad.Name())
					return err
				}
				n := len(pad.Keys())
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d paths ok\n", pad.Name(), n*(n-1))
			}
			return nil
		},
	}
}
