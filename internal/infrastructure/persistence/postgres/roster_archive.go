package postgres

import (
	"context"
	"fmt"

	"github.com/alem-hub/campus-gradebook/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// ROSTER ARCHIVE
// ══════════════════════════════════════════════════════════════════════════════

// RosterArchive stores roster snapshots in PostgreSQL as an alternative sink
// to the CSV file. Snapshots replace each other: SaveAll truncates the table
// before writing, matching the overwrite semantics of the file store.
type RosterArchive struct {
	conn *Connection
}

// NewRosterArchive creates a new RosterArchive.
func NewRosterArchive(conn *Connection) *RosterArchive {
	return &RosterArchive{conn: conn}
}

// EnsureSchema creates the roster table when it does not exist yet.
func (a *RosterArchive) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS roster_students (
			student_id TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			age        INTEGER NOT NULL CHECK (age >= 0),
			saved_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := a.conn.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure roster schema: %w", err)
	}
	return nil
}

// SaveAll replaces the archived roster with the given students.
func (a *RosterArchive) SaveAll(ctx context.Context, students []*student.Student) error {
	if _, err := a.conn.Exec(ctx, `TRUNCATE roster_students`); err != nil {
		return fmt.Errorf("failed to truncate roster archive: %w", err)
	}

	query := `
		INSERT INTO roster_students (student_id, name, age)
		VALUES ($1, $2, $3)
	`
	for _, s := range students {
		if s == nil {
			continue
		}
		if _, err := a.conn.Exec(ctx, query, s.ID.String(), s.Name, s.Age); err != nil {
			if IsUniqueViolation(err) {
				return student.ErrAlreadyExists
			}
			return fmt.Errorf("failed to archive student %s: %w", s.ID, err)
		}
	}
	return nil
}

// LoadAll returns the archived roster ordered by student ID.
func (a *RosterArchive) LoadAll(ctx context.Context) ([]*student.Student, error) {
	query := `
		SELECT student_id, name, age
		FROM roster_students
		ORDER BY student_id
	`

	rows, err := a.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query roster archive: %w", err)
	}
	defer rows.Close()

	students := make([]*student.Student, 0)
	for rows.Next() {
		var (
			id   string
			name string
			age  int
		)
		if err := rows.Scan(&id, &name, &age); err != nil {
			return nil, fmt.Errorf("failed to scan archived student: %w", err)
		}

		s, err := student.New(id, name, age)
		if err != nil {
			// Rows that no longer pass domain validation are skipped,
			// mirroring the file store's treatment of malformed lines.
			continue
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while reading roster archive: %w", err)
	}
	return students, nil
}

// Count returns the number of archived students.
func (a *RosterArchive) Count(ctx context.Context) (int, error) {
	var count int
	err := a.conn.QueryRow(ctx, `SELECT count(*) FROM roster_students`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count archived students: %w", err)
	}
	return count, nil
}
