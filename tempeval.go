package tempeval

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/jamesainslie/go-tempeval/action"
	"github.com/jamesainslie/go-tempeval/interval"
	"github.com/jamesainslie/go-tempeval/metrics"
)

// Scorer matches predicted intervals against ground truth and aggregates
// the results per category. A Scorer holds no state between calls.
type Scorer struct {
	threshold     float64
	classifier    *action.Classifier
	unknownBucket bool
	keepGoing     bool
	logger        *slog.Logger
}

// New creates a Scorer.
func New(opts ...Option) (*Scorer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !(cfg.threshold > 0 && cfg.threshold <= 1) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidThreshold, cfg.threshold)
	}

	classifier, err := action.NewClassifier(cfg.categories)
	if err != nil {
		return nil, err
	}

	return &Scorer{
		threshold:     cfg.threshold,
		classifier:    classifier,
		unknownBucket: cfg.unknownBucket,
		keepGoing:     cfg.keepGoing,
		logger:        cfg.logger,
	}, nil
}

// Threshold returns the IoU match threshold.
func (s *Scorer) Threshold() float64 {
	return s.threshold
}

// Categories returns the categories in report order.
func (s *Scorer) Categories() []action.Category {
	return s.classifier.Categories()
}

// RecordResult is the outcome of scoring one record.
type RecordResult struct {
	Category    action.Category // empty when Known is false
	Known       bool
	Predicted   []interval.Interval
	GroundTruth []interval.Interval
	Match       interval.MatchResult
}

// Counts returns the record's contribution to its category counters.
func (r RecordResult) Counts() metrics.Counts {
	var c metrics.Counts
	c.Observe(r.Predicted, r.GroundTruth, r.Match)
	return c
}

// ScoreRecord parses and matches a single record. Only the ground truth is
// classified.
func (s *Scorer) ScoreRecord(rec Record) RecordResult {
	pred := interval.Parse(rec.Prediction)
	gt := interval.Parse(rec.GroundTruth)
	cat, ok := s.classifier.Classify(rec.GroundTruth)

	return RecordResult{
		Category:    cat,
		Known:       ok,
		Predicted:   pred,
		GroundTruth: gt,
		Match:       interval.Match(pred, gt, s.threshold),
	}
}

// Score aggregates records into a report named name.
// Records with no category count toward the totals only, unless the unknown
// bucket is enabled.
func (s *Scorer) Score(name string, records []Record) FileReport {
	buckets := make(map[action.Category]metrics.Counts)
	var unknown int

	for i, rec := range records {
		res := s.ScoreRecord(rec)
		key := res.Category
		if !res.Known {
			key = action.Unknown
			unknown++
			s.logger.Debug("no category in ground truth",
				"file", name,
				"record", i,
			)
		}
		c := buckets[key]
		c.Add(res.Counts())
		buckets[key] = c
	}

	total := lo.Reduce(lo.Values(buckets), func(acc metrics.Counts, c metrics.Counts, _ int) metrics.Counts {
		acc.Add(c)
		return acc
	}, metrics.Counts{})

	order := s.classifier.Categories()
	if s.unknownBucket {
		order = append(order, action.Unknown)
	}
	categories := lo.Map(order, func(cat action.Category, _ int) CategoryReport {
		c := buckets[cat]
		return CategoryReport{
			Category: cat,
			Counts:   c,
			Scores:   c.Compute(),
		}
	})

	report := FileReport{
		Name:       name,
		Records:    len(records),
		Total:      total,
		Scores:     total.Compute(),
		Categories: categories,
	}

	s.logger.Debug("scored records",
		"file", name,
		"records", len(records),
		"uncategorised", unknown,
	)

	return report
}

// ScoreFile loads and scores one input file.
func (s *Scorer) ScoreFile(path string) (FileReport, error) {
	f, err := LoadFile(path)
	if err != nil {
		return FileReport{}, err
	}
	return s.Score(f.Name, f.Records), nil
}

// ScoreFiles scores each path in order. By default the first failure aborts
// and no report is returned. With WithKeepGoing, failing files are logged
// and skipped; the partial report is returned with the joined errors.
func (s *Scorer) ScoreFiles(paths []string) (*Report, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	report := &Report{}
	var errs []error
	for _, path := range paths {
		f, err := s.ScoreFile(path)
		if err != nil {
			if !s.keepGoing {
				return nil, err
			}
			s.logger.Error("skipping file", "path", path, "error", err)
			errs = append(errs, err)
			continue
		}
		s.logger.Info("scored file",
			"file", f.Name,
			"records", f.Records,
			"precision", f.Scores.Precision,
			"recall", f.Scores.Recall,
			"f1", f.Scores.F1,
		)
		report.Add(f)
	}

	return report, errors.Join(errs...)
}
