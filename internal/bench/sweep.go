// Package bench searches for the IoU threshold that maximises F1 over a set
// of scored files.
package bench

import (
	"math"
	"sort"

	"github.com/samber/lo"

	tempeval "github.com/jamesainslie/go-tempeval"
	"github.com/jamesainslie/go-tempeval/metrics"
)

// SweepResult holds aggregate metrics for one threshold value.
type SweepResult struct {
	Threshold float64
	Total     metrics.Counts
	Scores    metrics.Scores
}

// SweepThresholds generates threshold values from min (inclusive) to max
// (exclusive) with given step.
func SweepThresholds(min, max, step float64) []float64 {
	if step <= 0 || max <= min {
		return nil
	}

	// Count steps up front so float drift cannot add or drop a value.
	n := int(math.Ceil((max-min)/step - 1e-9))
	thresholds := make([]float64, n)
	for i := range thresholds {
		thresholds[i] = math.Round((min+float64(i)*step)*1e9) / 1e9
	}
	return thresholds
}

// Sweep scores every file at each threshold and returns results sorted by
// total F1, best first. Ties go to the lower threshold.
func Sweep(files []*tempeval.File, thresholds []float64, opts ...tempeval.Option) ([]SweepResult, error) {
	results := make([]SweepResult, 0, len(thresholds))

	for _, threshold := range thresholds {
		s, err := tempeval.New(append(opts, tempeval.WithThreshold(threshold))...)
		if err != nil {
			return nil, err
		}

		// Aggregate counts across all files
		total := lo.Reduce(files, func(acc metrics.Counts, f *tempeval.File, _ int) metrics.Counts {
			acc.Add(s.Score(f.Name, f.Records).Total)
			return acc
		}, metrics.Counts{})

		results = append(results, SweepResult{
			Threshold: threshold,
			Total:     total,
			Scores:    total.Compute(),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Scores.F1 != results[j].Scores.F1 {
			return results[i].Scores.F1 > results[j].Scores.F1
		}
		return results[i].Threshold < results[j].Threshold
	})

	return results, nil
}
