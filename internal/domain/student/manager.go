package student

import (
	"sort"

	"github.com/alem-hub/campus-gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT MANAGER (in-memory roster)
// ══════════════════════════════════════════════════════════════════════════════

// Manager holds the roster: an ordered collection of unique students, always
// kept sorted by ID after every insertion. Manager is not safe for concurrent
// use; callers that need it must add their own synchronization.
type Manager struct {
	students []*Student
	byID     map[ID]*Student
	journal  *shared.Journal
}

// NewManager creates an empty roster.
func NewManager() *Manager {
	return &Manager{
		students: make([]*Student, 0),
		byID:     make(map[ID]*Student),
		journal:  shared.NewJournal(),
	}
}

// Add enrolls a student and re-sorts the roster by ID.
func (m *Manager) Add(s *Student) error {
	if s == nil {
		return ErrNilStudent
	}
	if _, exists := m.byID[s.ID]; exists {
		return ErrAlreadyExists
	}

	stored := s.Clone()
	m.students = append(m.students, stored)
	m.byID[stored.ID] = stored

	sort.Slice(m.students, func(i, j int) bool {
		return m.students[i].ID.Less(m.students[j].ID)
	})

	m.journal.Record(shared.NewStudentEnrolledEvent(stored.ID.String(), stored.Name, stored.Age))
	return nil
}

// Remove withdraws a student, matched by ID equality.
func (m *Manager) Remove(s *Student) error {
	if s == nil {
		return ErrNilStudent
	}
	if _, exists := m.byID[s.ID]; !exists {
		return ErrNotFound
	}

	delete(m.byID, s.ID)
	for i, stored := range m.students {
		if stored.ID == s.ID {
			m.students = append(m.students[:i], m.students[i+1:]...)
			break
		}
	}

	m.journal.Record(shared.NewStudentRemovedEvent(s.ID.String()))
	return nil
}

// GetAll returns a defensive copy of the full sorted roster.
func (m *Manager) GetAll() []*Student {
	out := make([]*Student, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, s.Clone())
	}
	return out
}

// Find returns all students satisfying the predicate, in roster order.
func (m *Manager) Find(p Predicate) ([]*Student, error) {
	if p == nil {
		return nil, ErrNilPredicate
	}

	out := make([]*Student, 0)
	for _, s := range m.students {
		if p(s) {
			out = append(out, s.Clone())
		}
	}
	return out, nil
}

// GetStudentsByAge returns students with age in [min, max] inclusive,
// in roster order.
func (m *Manager) GetStudentsByAge(min, max int) ([]*Student, error) {
	if min < 0 || max < 0 || min > max {
		return nil, ErrBadAgeRange
	}
	return m.Find(func(s *Student) bool {
		return s.Age >= min && s.Age <= max
	})
}

// GetByID returns the enrolled student with the given ID, or ErrNotFound.
func (m *Manager) GetByID(id ID) (*Student, error) {
	s, exists := m.byID[id]
	if !exists {
		return nil, ErrNotFound
	}
	return s.Clone(), nil
}

// Count returns the number of enrolled students.
func (m *Manager) Count() int {
	return len(m.students)
}

// Events returns the roster's recorded domain events in occurrence order.
func (m *Manager) Events() []shared.Event {
	return m.journal.Events()
}

// compile-time interface check
var _ Repository = (*Manager)(nil)
