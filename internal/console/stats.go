package console

import "github.com/aanand-mishra/students-cli/internal/types"

// Stats is the aggregate the statistics screen renders. It is computed
// purely from a snapshot of the collection — the store is never asked
// to aggregate anything itself.
type Stats struct {
	Total      int
	AverageGPA float64
	HighestGPA float64
	LowestGPA  float64

	// Bracket counts. The brackets partition the 0.0-10.0 scale:
	// excellent >= 8.0, good 6.0-7.9, average 4.0-5.9, fail < 4.0.
	Excellent int
	Good      int
	Average   int
	Fail      int
}

// ComputeStats aggregates GPA statistics over the given records.
// An empty input yields the zero Stats; callers check Total before
// rendering averages.
func ComputeStats(students []types.Student) Stats {
	stats := Stats{Total: len(students)}
	if stats.Total == 0 {
		return stats
	}

	var sum float64
	stats.HighestGPA = students[0].GPA
	stats.LowestGPA = students[0].GPA

	for _, s := range students {
		sum += s.GPA
		if s.GPA > stats.HighestGPA {
			stats.HighestGPA = s.GPA
		}
		if s.GPA < stats.LowestGPA {
			stats.LowestGPA = s.GPA
		}

		switch {
		case s.GPA >= 8.0:
			stats.Excellent++
		case s.GPA >= 6.0:
			stats.Good++
		case s.GPA >= 4.0:
			stats.Average++
		default:
			stats.Fail++
		}
	}

	stats.AverageGPA = sum / float64(stats.Total)
	return stats
}
