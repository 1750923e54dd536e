package attendance

import "github.com/worklane-hq/worklane-bff-go/internal/listview"

// Stats feeds the attendance stat cards. ByStatus holds only keys
// observed in the current filtered set; readers treat a missing key as
// zero.
type Stats struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"by_status"`
	TotalHours   float64        `json:"total_hours"`
	AverageHours string         `json:"average_hours"`
}

// ComputeStats tallies the filtered set from scratch. Two business
// rules apply: a late arrival counts as present, so it increments both
// the "late" and "present" buckets, and a not_marked record counts
// toward Total but never appears in the per-status tally.
// TODO(product): confirm both rules are intended; changing either
// shifts reported headcounts.
func ComputeStats(records []Record) Stats {
	stats := Stats{
		Total:    len(records),
		ByStatus: make(map[string]int),
	}

	for _, r := range records {
		stats.TotalHours += r.WorkHours

		if r.Status == StatusNotMarked {
			continue
		}
		if r.ArrivalStatus == ArrivalLate {
			stats.ByStatus["late"]++
			stats.ByStatus[StatusPresent]++
			continue
		}
		stats.ByStatus[r.Status]++
	}

	stats.AverageHours = listview.Average(stats.TotalHours, stats.Total)
	return stats
}
