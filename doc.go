// Package tempeval scores predicted time-interval annotations against ground
// truth and reports precision, recall and F1 per event category.
//
// # Quick Start
//
//	s, err := tempeval.New(tempeval.WithThreshold(0.3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := s.ScoreFiles([]string{"results/model-a.json"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = report.WriteJSON(os.Stdout, tempeval.EncodeOptions{Indent: 4})
//
// # Input Format
//
// Each input file holds a JSON array of records:
//
//	[
//	  {"ground_truth": "Corner at (01:30, 01:45)", "prediction": "(01:31, 01:44)"},
//	  {"ground_truth": "Goal (10:02, 10:20)", "result": ["(10:00, 10:15)", "ignored"]}
//	]
//
// Intervals are "(MM:SS, MM:SS)" ranges found anywhere in the text. The
// category is taken from the ground truth only.
//
// # Matching
//
// A ground-truth interval is matched when its best IoU against any predicted
// interval reaches the threshold. A predicted interval is matched when it
// reaches the threshold against at least one ground-truth interval, and is
// counted once however many it satisfies.
package tempeval
