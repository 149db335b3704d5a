// Package metrics accumulates interval match counts and derives precision,
// recall and F1 from them.
package metrics

import "github.com/jamesainslie/go-tempeval/interval"

// Counts accumulates interval totals for one category.
type Counts struct {
	GroundTruth        int `json:"ground_truth" yaml:"ground_truth"`
	Predicted          int `json:"predicted" yaml:"predicted"`
	MatchedPredictions int `json:"matched_predictions" yaml:"matched_predictions"`
	MatchedGroundTruth int `json:"matched_ground_truth" yaml:"matched_ground_truth"`
}

// Observe adds one record's intervals and match result.
func (c *Counts) Observe(predicted, truth []interval.Interval, m interval.MatchResult) {
	c.Add(Counts{
		GroundTruth:        len(truth),
		Predicted:          len(predicted),
		MatchedPredictions: m.MatchedPredictions,
		MatchedGroundTruth: m.MatchedGroundTruth,
	})
}

// Add accumulates other into c.
func (c *Counts) Add(other Counts) {
	c.GroundTruth += other.GroundTruth
	c.Predicted += other.Predicted
	c.MatchedPredictions += other.MatchedPredictions
	c.MatchedGroundTruth += other.MatchedGroundTruth
}

// Scores holds the ratios derived from Counts.
type Scores struct {
	Precision float64
	Recall    float64
	F1        float64
}

// Compute derives precision, recall and F1 from c.
// Empty denominators yield 0 rather than an error.
func (c Counts) Compute() Scores {
	s := Scores{
		Precision: SafeRatio(c.MatchedPredictions, c.Predicted, 1),
		Recall:    SafeRatio(c.MatchedGroundTruth, c.GroundTruth, 1),
	}
	s.F1 = F1(s.Precision, s.Recall)
	return s
}

// SafeRatio returns num/den, dividing by defaultDen when den is 0.
// Returns 0 when both den and defaultDen are 0.
func SafeRatio(num, den, defaultDen int) float64 {
	if den == 0 {
		den = defaultDen
	}
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}

// F1 returns the harmonic mean of precision and recall, or 0 when both are 0.
func F1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}
