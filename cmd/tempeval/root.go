package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	tempeval "github.com/jamesainslie/go-tempeval"
	"github.com/jamesainslie/go-tempeval/interval"
	"github.com/jamesainslie/go-tempeval/internal/config"
	"github.com/jamesainslie/go-tempeval/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tempeval [flags] FILE...",
		Short: "Score predicted event intervals against ground truth",
		Long: `Score predicted event intervals against ground truth.

Each FILE is a JSON array of records with a "ground_truth" text and a
"prediction" (or "result") text. Intervals are read from "(MM:SS, MM:SS)"
ranges and the event category from the ground truth. The report maps each
file's base name to overall and per-category precision, recall and F1.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runScore,
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Path to YAML configuration file")
	pf.Float64("threshold", interval.DefaultThreshold, "IoU match threshold")
	pf.StringSlice("categories", nil, "Ordered category list (default: built-in football events)")
	pf.Bool("unknown-bucket", false, "List uncategorised records under \"unknown\"")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("log-format", "text", "Log format: text or json")

	f := cmd.Flags()
	f.String("format", "json", "Report format: json or yaml")
	f.Int("indent", 4, "Report indentation in spaces")
	f.Bool("counts", false, "Include raw per-category counters")
	f.Bool("keep-going", false, "Skip files that fail to load instead of aborting")

	cmd.AddCommand(newSweepCmd())
	return cmd
}

// setup loads configuration and builds the logger for cmd.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, nil, err
	}
	if path != "" {
		logger.Debug("configuration loaded", "path", path)
	}
	return cfg, logger, nil
}

func scorerOptions(cfg *config.Config, logger *slog.Logger) []tempeval.Option {
	return []tempeval.Option{
		tempeval.WithThreshold(cfg.Scoring.Threshold),
		tempeval.WithCategories(cfg.CategoryList()...),
		tempeval.WithUnknownBucket(cfg.Scoring.UnknownBucket),
		tempeval.WithKeepGoing(cfg.Scoring.KeepGoing),
		tempeval.WithLogger(logger),
	}
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}

	s, err := tempeval.New(scorerOptions(cfg, logger)...)
	if err != nil {
		return err
	}

	report, scoreErr := s.ScoreFiles(args)
	if report == nil {
		return scoreErr
	}

	opts := tempeval.EncodeOptions{Indent: cfg.Output.Indent, Counts: cfg.Output.Counts}
	out := cmd.OutOrStdout()
	switch cfg.Output.Format {
	case "yaml":
		err = report.WriteYAML(out, opts)
	default:
		err = report.WriteJSON(out, opts)
	}
	if err != nil {
		return err
	}

	// With --keep-going a partial report is still a failed run.
	return scoreErr
}
