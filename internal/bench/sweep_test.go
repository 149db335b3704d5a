package bench

import (
	"io"
	"log/slog"
	"testing"

	tempeval "github.com/jamesainslie/go-tempeval"
)

func TestSweepThresholds(t *testing.T) {
	thresholds := SweepThresholds(0.01, 0.1, 0.02)

	want := []float64{0.01, 0.03, 0.05, 0.07, 0.09}
	if len(thresholds) != len(want) {
		t.Errorf("got %d thresholds, want %d", len(thresholds), len(want))
		t.Logf("got: %v", thresholds)
		return
	}

	for i := range want {
		diff := thresholds[i] - want[i]
		if diff < -0.001 || diff > 0.001 {
			t.Errorf("threshold[%d] = %v, want %v", i, thresholds[i], want[i])
		}
	}
}

func TestSweepThresholds_Exclusive(t *testing.T) {
	got := SweepThresholds(0.1, 0.5, 0.1)
	if len(got) != 4 {
		t.Errorf("got %v, want 4 values excluding 0.5", got)
	}
	if got := SweepThresholds(0.1, 0.5, 0); got != nil {
		t.Errorf("zero step: got %v, want nil", got)
	}
}

func TestSweep(t *testing.T) {
	files := []*tempeval.File{{
		Name: "f",
		Records: []tempeval.Record{
			// IoU 0.25
			{GroundTruth: "goal (00:05, 00:20)", Prediction: "(00:00, 00:10)"},
			// IoU 0.8
			{GroundTruth: "goal (00:32, 00:40)", Prediction: "(00:30, 00:40)"},
		},
	}}

	quiet := tempeval.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	results, err := Sweep(files, []float64{0.9, 0.2, 0.5, 0.1}, quiet)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}

	// 0.1 and 0.2 both match everything; the lower threshold sorts first.
	if results[0].Threshold != 0.1 || results[0].Scores.F1 != 1 {
		t.Errorf("best = %+v, want threshold 0.1 with F1 1", results[0])
	}
	if results[1].Threshold != 0.2 {
		t.Errorf("second = %v, want 0.2", results[1].Threshold)
	}
	if results[2].Threshold != 0.5 || results[2].Total.MatchedGroundTruth != 1 {
		t.Errorf("third = %+v, want threshold 0.5 with one match", results[2])
	}
	if last := results[3]; last.Threshold != 0.9 || last.Scores.F1 != 0 {
		t.Errorf("last = %+v, want threshold 0.9 with F1 0", last)
	}
}

func TestSweep_InvalidThreshold(t *testing.T) {
	if _, err := Sweep(nil, []float64{0}); err == nil {
		t.Error("expected error for zero threshold")
	}
}
