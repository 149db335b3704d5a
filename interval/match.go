package interval

// DefaultThreshold is the IoU an interval pair needs to count as a match.
const DefaultThreshold = 0.3

// MatchResult holds the outcome of matching one prediction set against one
// ground-truth set.
type MatchResult struct {
	// MatchedPredictions counts distinct predicted intervals that reach the
	// threshold against at least one ground-truth interval.
	MatchedPredictions int
	// MatchedGroundTruth counts ground-truth intervals whose best IoU
	// reaches the threshold.
	MatchedGroundTruth int
}

// Match compares predicted intervals against ground truth.
// A prediction may satisfy several ground-truth intervals but is counted
// once.
func Match(predicted, truth []Interval, threshold float64) MatchResult {
	matchedPreds := make(map[int]struct{})
	var res MatchResult

	for _, gt := range truth {
		best := 0.0
		for i, p := range predicted {
			score := IoU(gt, p)
			if score >= threshold {
				matchedPreds[i] = struct{}{}
			}
			if score > best {
				best = score
			}
		}
		if best >= threshold {
			res.MatchedGroundTruth++
		}
	}

	res.MatchedPredictions = len(matchedPreds)
	return res
}
