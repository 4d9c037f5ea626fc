package gradebook

import (
	"strings"

	"github.com/alem-hub/campus-gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// SCORE MANAGER (per-student score ledger)
// ══════════════════════════════════════════════════════════════════════════════

// Manager maps student IDs to their scores in insertion order. A student ID
// absent from the mapping has zero scores. The mapping is correlated with
// the roster only by the ID string; no referential integrity is enforced.
// Manager is not safe for concurrent use.
type Manager struct {
	scores  map[string][]*Score
	order   []string // student IDs in first-score order, for deterministic iteration
	journal *shared.Journal
}

// NewManager creates an empty score ledger.
func NewManager() *Manager {
	return &Manager{
		scores:  make(map[string][]*Score),
		order:   make([]string, 0),
		journal: shared.NewJournal(),
	}
}

// AddScore appends a score to the student's list, creating it if absent.
// Subjects are not unique: the same subject may be recorded many times.
func (m *Manager) AddScore(studentID string, score *Score) error {
	if strings.TrimSpace(studentID) == "" {
		return ErrEmptyStudentID
	}
	if score == nil {
		return ErrNilScore
	}

	if _, exists := m.scores[studentID]; !exists {
		m.order = append(m.order, studentID)
	}
	m.scores[studentID] = append(m.scores[studentID], score.Clone())

	m.journal.Record(shared.NewScoreRecordedEvent(studentID, score.Subject, score.Points))
	return nil
}

// GetStudentScores returns a defensive copy of the student's scores in
// insertion order, or an empty slice when the ID is unknown.
func (m *Manager) GetStudentScores(studentID string) ([]*Score, error) {
	if strings.TrimSpace(studentID) == "" {
		return nil, ErrEmptyStudentID
	}

	stored := m.scores[studentID]
	out := make([]*Score, 0, len(stored))
	for _, s := range stored {
		out = append(out, s.Clone())
	}
	return out, nil
}

// CalculateAverage returns the arithmetic mean of the student's points,
// or exactly 0.0 when the student has no scores.
func (m *Manager) CalculateAverage(studentID string) (float64, error) {
	if strings.TrimSpace(studentID) == "" {
		return 0, ErrEmptyStudentID
	}

	stored := m.scores[studentID]
	if len(stored) == 0 {
		return 0.0, nil
	}

	var sum float64
	for _, s := range stored {
		sum += s.Points
	}
	return sum / float64(len(stored)), nil
}

// GetTopStudents computes the average for every student in the ledger and
// returns the first min(count, total) entries, averages descending. Equal
// averages are ordered by ascending student ID so the result is
// deterministic. A count <= 0 yields an empty result.
func (m *Manager) GetTopStudents(count int) []RankEntry {
	if count < 0 {
		count = 0
	}

	entries := make([]RankEntry, 0, len(m.order))
	for _, id := range m.order {
		avg, err := m.CalculateAverage(id)
		if err != nil {
			continue
		}
		entries = append(entries, RankEntry{StudentID: id, Average: avg})
	}

	rankByAverage(entries)

	if count < len(entries) {
		entries = entries[:count]
	}
	return entries
}

// GetAllScores returns a deep copy of the entire mapping.
func (m *Manager) GetAllScores() map[string][]*Score {
	out := make(map[string][]*Score, len(m.scores))
	for id, list := range m.scores {
		copied := make([]*Score, 0, len(list))
		for _, s := range list {
			copied = append(copied, s.Clone())
		}
		out[id] = copied
	}
	return out
}

// Count returns the number of students with at least one score.
func (m *Manager) Count() int {
	return len(m.scores)
}

// Events returns the ledger's recorded domain events in occurrence order.
func (m *Manager) Events() []shared.Event {
	return m.journal.Events()
}
