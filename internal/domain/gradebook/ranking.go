package gradebook

import (
	"fmt"
	"sort"
)

// ══════════════════════════════════════════════════════════════════════════════
// RANKING
// ══════════════════════════════════════════════════════════════════════════════

// RankEntry is one (studentID, average) pair in a ranking.
type RankEntry struct {
	// Rank - position in the ranking (1-based).
	Rank int

	// StudentID - the ranked student.
	StudentID string

	// Average - arithmetic mean of the student's points.
	Average float64
}

// String returns a human-readable representation for display and logging.
func (e RankEntry) String() string {
	return fmt.Sprintf("#%d %s (%.2f)", e.Rank, e.StudentID, e.Average)
}

// rankByAverage sorts entries descending by average and assigns 1-based
// ranks. Ties are broken by ascending student ID, which keeps the order
// deterministic regardless of map iteration.
func rankByAverage(entries []RankEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Average != entries[j].Average {
			return entries[i].Average > entries[j].Average
		}
		return entries[i].StudentID < entries[j].StudentID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
}
