package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bisect/builder"
)

func newRampCmd() *cobra.Command {
	var n int
	var start, step int64
	var trace bool

	cmd := &cobra.Command{
		Use:   "ramp TARGET",
		Short: "Search TARGET in the progression start, start+step, ...",
		Example: `  bisect ramp 8000                      # 1000..10000, prints 7
  bisect ramp 8400 --n 10 --start 1000 --step 1000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := parseInt(args[0])
			if err != nil {
				return err
			}
			values, err := builder.Ramp(n, start, step)
			if err != nil {
				return err
			}
			return runSearch(cmd, values, target, false, trace)
		},
	}

	cmd.Flags().IntVar(&n, "n", 10, "Number of elements")
	cmd.Flags().Int64Var(&start, "start", 1000, "First element")
	cmd.Flags().Int64Var(&step, "step", 1000, "Distance between neighbours (>= 0)")
	cmd.Flags().BoolVar(&trace, "trace", false, "Print every probe to stderr")

	return cmd
}
