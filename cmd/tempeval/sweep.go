package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	tempeval "github.com/jamesainslie/go-tempeval"
	"github.com/jamesainslie/go-tempeval/internal/bench"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep [flags] PATH...",
		Short: "Find the IoU threshold with the best overall F1",
		Long: `Score every input at a range of IoU thresholds and print the
aggregate precision, recall and F1 for each. PATH may be a JSON file or a
directory of JSON files.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSweep,
	}

	f := cmd.Flags()
	f.Float64("min", 0.05, "Sweep minimum threshold")
	f.Float64("max", 1.0, "Sweep maximum threshold (exclusive)")
	f.Float64("step", 0.05, "Sweep step size")
	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	min, _ := cmd.Flags().GetFloat64("min")
	max, _ := cmd.Flags().GetFloat64("max")
	step, _ := cmd.Flags().GetFloat64("step")
	thresholds := bench.SweepThresholds(min, max, step)
	if len(thresholds) == 0 {
		return fmt.Errorf("empty sweep range: min=%v max=%v step=%v", min, max, step)
	}

	files, err := tempeval.LoadPaths(args)
	if err != nil {
		return err
	}
	logger.Info("loaded inputs", "files", len(files))

	results, err := bench.Sweep(files, thresholds, scorerOptions(cfg, logger)...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Threshold Sweep Results (%d files)\n", len(files))
	fmt.Fprintln(out, strings.Repeat("-", 44))
	fmt.Fprintf(out, "%-10s %-10s %-10s %-10s\n", "Thresh", "Prec", "Rec", "F1")

	// Print sorted by threshold for readability
	for _, t := range thresholds {
		for _, r := range results {
			if r.Threshold == t {
				fmt.Fprintf(out, "%-10.3f %-10.4f %-10.4f %-10.4f\n",
					r.Threshold, r.Scores.Precision, r.Scores.Recall, r.Scores.F1)
				break
			}
		}
	}

	fmt.Fprintln(out, strings.Repeat("-", 44))
	best := results[0]
	fmt.Fprintf(out, "Optimal: %.3f (F1: %.4f)\n", best.Threshold, best.Scores.F1)
	return nil
}
