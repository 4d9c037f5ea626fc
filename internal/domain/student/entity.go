// Package student contains the student domain model of Campus Gradebook.
// This is the core of the business logic - no external dependencies here.
package student

import (
	"fmt"
	"strings"

	"github.com/alem-hub/campus-gradebook/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// ID represents a unique student identifier, e.g. "2021001".
// Students are compared and ordered by ID (ordinal string order).
type ID string

// IsValid checks that the ID is not empty or whitespace-only.
func (id ID) IsValid() bool {
	return strings.TrimSpace(string(id)) != ""
}

// String returns the string representation of the ID.
func (id ID) String() string {
	return string(id)
}

// Less reports whether id orders before other (ordinal comparison).
func (id ID) Less(other ID) bool {
	return string(id) < string(other)
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrEmptyID - student ID is empty or whitespace-only.
	ErrEmptyID = shared.NewDomainError("student", "Validate", shared.ErrEmptyValue, "student id must not be empty")

	// ErrEmptyName - student name is empty or whitespace-only.
	ErrEmptyName = shared.NewDomainError("student", "Validate", shared.ErrEmptyValue, "student name must not be empty")

	// ErrNegativeAge - student age is negative.
	ErrNegativeAge = shared.NewDomainError("student", "Validate", shared.ErrNegativeValue, "student age must not be negative")

	// ErrNotFound - student is not present in the roster.
	ErrNotFound = shared.NewDomainError("roster", "Remove", shared.ErrNotFound, "student not found")

	// ErrAlreadyExists - a student with the same ID is already enrolled.
	ErrAlreadyExists = shared.NewDomainError("roster", "Add", shared.ErrAlreadyExists, "student already enrolled")

	// ErrNilStudent - a nil student was passed where a value is required.
	ErrNilStudent = shared.NewDomainError("roster", "Add", shared.ErrNilValue, "student must not be nil")

	// ErrNilPredicate - a nil predicate was passed to Find.
	ErrNilPredicate = shared.NewDomainError("roster", "Find", shared.ErrNilValue, "predicate must not be nil")

	// ErrBadAgeRange - negative bound or min greater than max.
	ErrBadAgeRange = shared.NewDomainError("roster", "GetStudentsByAge", shared.ErrInvalidRange, "age range must be 0 <= min <= max")
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: STUDENT
// ══════════════════════════════════════════════════════════════════════════════

// Student is a value entity describing one enrolled student.
// It is immutable after construction: mutate by removing and re-adding.
type Student struct {
	// ID - unique student identifier, the roster key.
	ID ID

	// Name - display name of the student.
	Name string

	// Age - age in full years, never negative.
	Age int
}

// New creates a Student with validation of all fields. Fields are stored as
// given: whitespace is only inspected to reject blank values, never stripped,
// so "s1" and " s1" are distinct IDs.
func New(id, name string, age int) (*Student, error) {
	sid := ID(id)
	if !sid.IsValid() {
		return nil, ErrEmptyID
	}

	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}

	if age < 0 {
		return nil, ErrNegativeAge
	}

	return &Student{
		ID:   sid,
		Name: name,
		Age:  age,
	}, nil
}

// Equal reports whether two students are the same entity (same ID).
func (s *Student) Equal(other *Student) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.ID == other.ID
}

// Clone creates a copy of the student.
func (s *Student) Clone() *Student {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

// String returns a human-readable representation for display and logging.
func (s *Student) String() string {
	return fmt.Sprintf("Student{ID: %s, Name: %s, Age: %d}", s.ID, s.Name, s.Age)
}
