// Package interval parses, compares and matches time intervals expressed in
// whole seconds.
package interval

import "fmt"

// Interval is a time range in seconds. Start <= End is expected but not
// enforced; a degenerate interval has Start == End.
type Interval struct {
	Start int
	End   int
}

// Len returns End - Start.
func (iv Interval) Len() int {
	return iv.End - iv.Start
}

// String formats the interval the way it appears in annotation text.
func (iv Interval) String() string {
	return fmt.Sprintf("(%s, %s)", formatClock(iv.Start), formatClock(iv.End))
}

// IoU returns intersection over union of a and b.
// Returns 0 when the union is empty.
func IoU(a, b Interval) float64 {
	intersection := min(a.End, b.End) - max(a.Start, b.Start)
	if intersection < 0 {
		intersection = 0
	}
	union := max(a.End, b.End) - min(a.Start, b.Start)
	if union <= 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func formatClock(sec int) string {
	sign := ""
	if sec < 0 {
		sign = "-"
		sec = -sec
	}
	return fmt.Sprintf("%s%02d:%02d", sign, sec/60, sec%60)
}
