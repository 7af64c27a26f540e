package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/padchain/internal/store"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List recorded solve runs, or the codes of one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.NewSQLiteStore(a.cfg.DB)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer st.Close()

			ctx := cmd.Context()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			if len(args) == 1 {
				results, err := st.Results(ctx, args[0])
				if err != nil {
					return err
				}
				for _, r := range results {
					fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", r.Code, r.Presses, r.Value, r.Complexity)
				}
				return tw.Flush()
			}

			runs, err := st.List(ctx, limit)
			if err != nil {
				return err
			}
			for _, r := range runs {
				fmt.Fprintf(tw, "%s\t%s\tdepth=%d\tcodes=%d\t%d\n",
					r.ID, r.CreatedAt.Local().Format(time.DateTime), r.Depth, r.Codes, r.Total)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum runs to list (0 for all)")
	return cmd
}
