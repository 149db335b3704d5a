package interval

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		predicted  []Interval
		truth      []Interval
		threshold  float64
		wantPreds  int
		wantTruths int
	}{
		{
			name:      "below threshold",
			predicted: []Interval{{0, 10}},
			truth:     []Interval{{5, 20}},
			threshold: DefaultThreshold,
		},
		{
			name:       "above threshold",
			predicted:  []Interval{{0, 10}},
			truth:      []Interval{{2, 10}},
			threshold:  DefaultThreshold,
			wantPreds:  1,
			wantTruths: 1,
		},
		{
			name:       "extra prediction unmatched",
			predicted:  []Interval{{0, 10}, {20, 30}},
			truth:      []Interval{{0, 10}},
			threshold:  DefaultThreshold,
			wantPreds:  1,
			wantTruths: 1,
		},
		{
			name:       "one prediction claimed twice",
			predicted:  []Interval{{0, 20}},
			truth:      []Interval{{0, 10}, {10, 20}},
			threshold:  DefaultThreshold,
			wantPreds:  1,
			wantTruths: 2,
		},
		{
			name:       "lower threshold admits partial overlap",
			predicted:  []Interval{{0, 10}},
			truth:      []Interval{{5, 20}},
			threshold:  0.25,
			wantPreds:  1,
			wantTruths: 1,
		},
		{
			name:      "no predictions",
			truth:     []Interval{{0, 10}},
			threshold: DefaultThreshold,
		},
		{
			name:      "no ground truth",
			predicted: []Interval{{0, 10}},
			threshold: DefaultThreshold,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(tt.predicted, tt.truth, tt.threshold)
			if got.MatchedPredictions != tt.wantPreds {
				t.Errorf("MatchedPredictions = %d, want %d", got.MatchedPredictions, tt.wantPreds)
			}
			if got.MatchedGroundTruth != tt.wantTruths {
				t.Errorf("MatchedGroundTruth = %d, want %d", got.MatchedGroundTruth, tt.wantTruths)
			}
		})
	}
}
