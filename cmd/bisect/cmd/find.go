package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bisect/bsearch"
)

func newFindCmd() *cobra.Command {
	var check bool
	var trace bool

	cmd := &cobra.Command{
		Use:   "find TARGET VALUE...",
		Short: "Search TARGET in the sorted VALUE list",
		Example: `  bisect find 8000 1000 2000 3000 4000 5000 6000 7000 8000 9000 10000
  bisect find --check 1 3 1 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseInt(args[0])
			if err != nil {
				return fmt.Errorf("target: %w", err)
			}
			values := make([]int64, 0, len(args)-1)
			for _, a := range args[1:] {
				v, err := parseInt(a)
				if err != nil {
					return fmt.Errorf("value: %w", err)
				}
				values = append(values, v)
			}
			return runSearch(cmd, values, target, check, trace)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Reject input that is not sorted")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print every probe to stderr")

	return cmd
}

// runSearch performs the search selected by the flags and prints the index.
func runSearch(cmd *cobra.Command, values []int64, target int64, check, trace bool) error {
	logger.Debug("search", "n", len(values), "target", target, "check", check)

	if check {
		if _, err := bsearch.SearchChecked(values, target); err != nil {
			return err
		}
	}

	var opts []bsearch.Option
	if trace {
		opts = append(opts, bsearch.WithProbe(func(mid, low, high int) {
			fmt.Fprintf(cmd.ErrOrStderr(), "probe [%d,%d] mid=%d value=%d\n", low, high, mid, values[mid])
		}))
	}
	res := bsearch.Trace(values, target, opts...)
	logger.Debug("result", "index", res.Index, "found", res.Found, "probes", res.Probes)

	fmt.Fprintln(cmd.OutOrStdout(), res.Index)
	return nil
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}
