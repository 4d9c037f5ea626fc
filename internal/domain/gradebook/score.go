// Package gradebook contains the scoring domain model of Campus Gradebook:
// score records, letter grades, and the per-student score ledger with
// average computation and top-N ranking.
package gradebook

import (
	"fmt"
	"strings"

	"github.com/alem-hub/campus-gradebook/internal/domain/shared"
)

// MinPoints and MaxPoints bound a valid score.
const (
	MinPoints = 0.0
	MaxPoints = 100.0
)

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrEmptySubject - score subject is empty or whitespace-only.
	ErrEmptySubject = shared.NewDomainError("score", "Validate", shared.ErrEmptyValue, "subject must not be empty")

	// ErrPointsOutOfRange - points outside [0, 100].
	ErrPointsOutOfRange = shared.NewDomainError("score", "Validate", shared.ErrValueOutOfRange, "points must be between 0 and 100")

	// ErrEmptyStudentID - empty student ID passed to a gradebook operation.
	ErrEmptyStudentID = shared.NewDomainError("gradebook", "Validate", shared.ErrEmptyValue, "student id must not be empty")

	// ErrNilScore - a nil score was passed where a value is required.
	ErrNilScore = shared.NewDomainError("gradebook", "AddScore", shared.ErrNilValue, "score must not be nil")
)

// ══════════════════════════════════════════════════════════════════════════════
// SCORE ENTITY
// ══════════════════════════════════════════════════════════════════════════════

// Score is one (subject, points) record attributed to a student.
// Immutable after construction.
type Score struct {
	// Subject - course or exam the points were earned in.
	Subject string

	// Points - earned points in [0, 100].
	Points float64
}

// NewScore creates a Score with validation.
func NewScore(subject string, points float64) (*Score, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, ErrEmptySubject
	}

	if points < MinPoints || points > MaxPoints {
		return nil, ErrPointsOutOfRange
	}

	return &Score{
		Subject: subject,
		Points:  points,
	}, nil
}

// Clone creates a copy of the score.
func (s *Score) Clone() *Score {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

// String returns a human-readable representation, points rounded to 2 decimals.
func (s *Score) String() string {
	return fmt.Sprintf("Score{Subject: %s, Points: %.2f}", s.Subject, s.Points)
}
