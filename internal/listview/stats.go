package listview

import "fmt"

// CountBy tallies records per key. Keys that keyFn declines (ok ==
// false) are left out of the map entirely; callers treat a missing key
// as zero. The map is rebuilt from scratch on every call.
func CountBy[R any](records []R, keyFn func(R) (string, bool)) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		key, ok := keyFn(r)
		if !ok {
			continue
		}
		counts[key]++
	}
	return counts
}

// SumBy sums a numeric field across the records.
func SumBy[R any](records []R, valueFn func(R) float64) float64 {
	var sum float64
	for _, r := range records {
		sum += valueFn(r)
	}
	return sum
}

// Average formats sum/total to one decimal place for the stat cards,
// returning "0.0" when total is zero.
func Average(sum float64, total int) string {
	if total == 0 {
		return "0.0"
	}
	return fmt.Sprintf("%.1f", sum/float64(total))
}

// Percent formats part/total as a whole-number percentage string,
// returning "0" when total is zero.
func Percent(part, total int) string {
	if total == 0 {
		return "0"
	}
	return fmt.Sprintf("%.0f", float64(part)/float64(total)*100)
}
