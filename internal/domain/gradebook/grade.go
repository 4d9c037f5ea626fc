package gradebook

// Grade is a letter tier derived from a numeric score via fixed thresholds.
type Grade string

const (
	GradeA Grade = "A" // >= 90
	GradeB Grade = "B" // >= 80
	GradeC Grade = "C" // >= 70
	GradeD Grade = "D" // >= 60
	GradeF Grade = "F" // everything below
)

// IsValid checks that the grade is one of the defined tiers.
func (g Grade) IsValid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeD, GradeF:
		return true
	default:
		return false
	}
}

// IsPassing reports whether the grade is D or better.
func (g Grade) IsPassing() bool {
	return g.IsValid() && g != GradeF
}

// String returns the letter of the grade.
func (g Grade) String() string {
	return string(g)
}

// GradeFor maps points to a Grade by descending threshold check.
// Points outside [0, 100] fail with ErrPointsOutOfRange.
func GradeFor(points float64) (Grade, error) {
	if points < MinPoints || points > MaxPoints {
		return "", ErrPointsOutOfRange
	}

	switch {
	case points >= 90:
		return GradeA, nil
	case points >= 80:
		return GradeB, nil
	case points >= 70:
		return GradeC, nil
	case points >= 60:
		return GradeD, nil
	default:
		return GradeF, nil
	}
}
