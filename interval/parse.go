package interval

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// rangePattern matches "(MM:SS, MM:SS)" with 1-3 minute digits and exactly
// two second digits.
var rangePattern = regexp.MustCompile(`\((\d{1,3}:\d{2})\s*,\s*(\d{1,3}:\d{2})\)`)

// Parse extracts every "(MM:SS, MM:SS)" range in text, left to right.
// Text that does not match contributes nothing.
func Parse(text string) []Interval {
	matches := rangePattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	intervals := make([]Interval, 0, len(matches))
	for _, m := range matches {
		// The pattern guarantees both clocks are well formed.
		start, _ := Seconds(m[1])
		end, _ := Seconds(m[2])
		intervals = append(intervals, Interval{Start: start, End: end})
	}
	return intervals
}

// Seconds converts an "M:SS" style clock to total seconds.
func Seconds(clock string) (int, error) {
	minutes, seconds, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("clock %q: missing ':'", clock)
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, fmt.Errorf("clock %q: minutes: %w", clock, err)
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, fmt.Errorf("clock %q: seconds: %w", clock, err)
	}
	return m*60 + s, nil
}
