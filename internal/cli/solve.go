package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/padchain/cost"
	"github.com/katalvlaran/padchain/internal/config"
	"github.com/katalvlaran/padchain/internal/store"
	"github.com/katalvlaran/padchain/keypad"
	"github.com/katalvlaran/padchain/planner"
	"github.com/katalvlaran/padchain/solver"
)

// maxShowDepth bounds --show: the literal expansion grows exponentially.
const maxShowDepth = 4

type solveFlags struct {
	verbose bool
	record  bool
	show    bool
}

func newSolveCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Sum code complexities read from a file or stdin",
		Long: `Read one door code per line (e.g. 029A) and print the sum of
presses × numeric value over all codes, for the configured number of
directional robots between the human and the door.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := a.cfg.Input
			if len(args) == 1 {
				input = args[0]
			}
			return a.runSolve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), input, f)
		},
	}
	fl := cmd.Flags()
	fl.Int("depth", config.DefaultDepth, "number of directional robots between the human and the door")
	fl.Int("workers", config.DefaultWorkers, "codes solved concurrently")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "print one line per code")
	fl.BoolVar(&f.record, "record", false, "store the run in the history database")
	fl.BoolVar(&f.show, "show", false, fmt.Sprintf("print the human press string per code (depth <= %d)", maxShowDepth))
	mustBind(a.v, config.KeyDepth, fl.Lookup("depth"))
	mustBind(a.v, config.KeyWorkers, fl.Lookup("workers"))
	return cmd
}

func (a *app) runSolve(ctx context.Context, stdin io.Reader, out io.Writer, input string, f solveFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	codes, err := readCodes(stdin, input)
	if err != nil {
		return err
	}
	if f.show && a.cfg.Depth > maxShowDepth {
		return fmt.Errorf("--show supports depth <= %d, got %d", maxShowDepth, a.cfg.Depth)
	}

	log := a.log.WithFields("depth", a.cfg.Depth, "codes", len(codes), "workers", a.cfg.Workers)
	log.Infow("solving")

	cache := cost.NewCache()
	results, total, err := solver.SumResults(codes, a.cfg.Depth,
		solver.WithContext(ctx),
		solver.WithWorkers(a.cfg.Workers),
		solver.WithCache(cache),
		solver.WithOnMiss(func(e cost.Entry) {
			log.Debugw("cache miss", "level", e.Depth, "from", e.From.String(), "to", e.To.String(), "presses", e.Presses)
		}),
	)
	if err != nil {
		log.WithError(err).Errorw("solve failed")
		return err
	}
	log.Infow("solved", "total", total, "cache_entries", cache.Len())

	if f.verbose || f.show {
		if err := printResults(out, results, a.cfg.Depth, f.show); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, total)

	if f.record {
		return a.recordRun(ctx, results, total, cache.Len())
	}
	return nil
}

func readCodes(stdin io.Reader, input string) ([]solver.Code, error) {
	r := stdin
	if input != "" && input != "-" {
		fh, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer fh.Close()
		r = fh
	}
	codes, err := solver.ParseCodes(r)
	if err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	return codes, nil
}

func printResults(out io.Writer, results []solver.Result, depth int, show bool) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t×\t%d\t=\t%d", r.Code, r.Presses, r.Value, r.Complexity)
		if show {
			fmt.Fprintf(tw, "\t%s", humanPresses(r.Code, depth))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

// humanPresses spells out every press the human makes for code.
func humanPresses(code solver.Code, depth int) planner.Sequence {
	num := keypad.Numeric()
	var seq planner.Sequence
	prev := keypad.KeyA
	for _, k := range code.Keys() {
		seq = append(seq, cost.Expand(depth, planner.Path(num, prev, k))...)
		prev = k
	}
	return seq
}

func (a *app) recordRun(ctx context.Context, results []solver.Result, total uint64, cacheEntries int) error {
	st, err := store.NewSQLiteStore(a.cfg.DB)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer st.Close()

	rows := make([]store.CodeResult, len(results))
	for i, r := range results {
		rows[i] = store.CodeResult{
			Code:       r.Code.String(),
			Presses:    r.Presses,
			Value:      r.Value,
			Complexity: r.Complexity,
		}
	}
	run, err := st.Record(ctx, store.Run{Depth: a.cfg.Depth, Total: total, CacheEntries: cacheEntries}, rows)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	a.log.Infow("run recorded", "id", run.ID, "db", a.cfg.DB)
	return nil
}
