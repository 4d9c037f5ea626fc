package gradebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/campus-gradebook/internal/domain/shared"
)

func TestNewScore(t *testing.T) {
	s, err := NewScore("Math", 95.5)
	require.NoError(t, err)
	assert.Equal(t, "Math", s.Subject)
	assert.Equal(t, 95.5, s.Points)
}

func TestNewScore_Validation(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		points  float64
		wantErr error
	}{
		{"empty subject", "", 50, ErrEmptySubject},
		{"whitespace subject", "  ", 50, ErrEmptySubject},
		{"points below range", "Math", -0.1, ErrPointsOutOfRange},
		{"points above range", "Math", 100.1, ErrPointsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScore(tt.subject, tt.points)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, shared.IsValidation(err))
		})
	}
}

func TestNewScore_Bounds(t *testing.T) {
	for _, points := range []float64{0, 100} {
		s, err := NewScore("Math", points)
		require.NoError(t, err)
		assert.Equal(t, points, s.Points)
	}
}

func TestScore_String(t *testing.T) {
	s, err := NewScore("Math", 87)
	require.NoError(t, err)
	assert.Equal(t, "Score{Subject: Math, Points: 87.00}", s.String())
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		points float64
		want   Grade
	}{
		{100, GradeA},
		{90.0, GradeA},
		{89.999, GradeB},
		{80, GradeB},
		{79.9, GradeC},
		{70, GradeC},
		{69.5, GradeD},
		{60, GradeD},
		{59.999, GradeF},
		{0.0, GradeF},
	}

	for _, tt := range tests {
		got, err := GradeFor(tt.points)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "points %v", tt.points)
	}
}

func TestGradeFor_OutOfRange(t *testing.T) {
	for _, points := range []float64{-1, 100.001, 1000} {
		got, err := GradeFor(points)
		assert.ErrorIs(t, err, ErrPointsOutOfRange)
		assert.False(t, got.IsValid())
	}
}

func TestGrade_IsPassing(t *testing.T) {
	assert.True(t, GradeA.IsPassing())
	assert.True(t, GradeD.IsPassing())
	assert.False(t, GradeF.IsPassing())
	assert.False(t, Grade("X").IsPassing())
}
