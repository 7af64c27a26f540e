package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/padchain/keypad"
	"github.com/katalvlaran/padchain/planner"
)

func padByName(name string) (*keypad.Pad, error) {
	switch name {
	case "numeric", "num", "n":
		return keypad.Numeric(), nil
	case "directional", "dir", "d":
		return keypad.Directional(), nil
	}
	return nil, fmt.Errorf("unknown pad %q: want numeric or directional", name)
}

func newPathsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "paths [numeric|directional]",
		Short:     "Print the canonical press sequence for every pair of keys",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"numeric", "directional"},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "directional"
			if len(args) == 1 {
				name = args[0]
			}
			pad, err := padByName(name)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range planner.Table(pad) {
				if e.From == e.To {
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.From, e.To, e.Path)
			}
			a.log.Debugw("paths printed", "pad", pad.Name())
			return tw.Flush()
		},
	}
}
