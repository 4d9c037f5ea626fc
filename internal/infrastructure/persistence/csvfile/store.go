// Package csvfile implements the file persistence layer for Campus Gradebook.
// The persisted format is a plain comma-joined text file with a fixed header;
// values are written without quoting or escaping, so names or IDs containing
// a comma will corrupt parsing on reload. That is a documented limitation of
// the format, not something this package tries to fix.
package csvfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alem-hub/campus-gradebook/internal/domain/shared"
	"github.com/alem-hub/campus-gradebook/internal/domain/student"
	"github.com/alem-hub/campus-gradebook/pkg/logger"
)

// Header is the literal first line of every roster file.
const Header = "StudentId,Name,Age"

// Store reads and writes the student roster as a CSV-like text file.
// I/O failures are reported through the logger and swallowed: saving is
// best-effort, and loading degrades to an empty or partial roster. Callers
// cannot distinguish an empty file from a failed read.
type Store struct {
	log     *logger.Logger
	journal *shared.Journal
}

// NewStore creates a Store logging through the given logger.
// A nil logger falls back to the default one.
func NewStore(log *logger.Logger) *Store {
	if log == nil {
		log = logger.Default()
	}
	return &Store{
		log:     log.With(logger.Component("csvfile")),
		journal: shared.NewJournal(),
	}
}

// ioError tags an underlying failure with the persistence error kind.
func ioError(op string, err error) error {
	return shared.WrapError("roster", op, shared.ErrIO, "i/o failure", err)
}

// SaveStudents writes the header and one line per student, in the order
// given, truncating any existing file at path. Nil entries are skipped.
func (s *Store) SaveStudents(students []*student.Student, path string) {
	f, err := os.Create(path)
	if err != nil {
		s.log.Error("failed to open roster file for writing", logger.Path(path), logger.Err(ioError("Save", err)))
		return
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintln(w, Header); err != nil {
		s.log.Error("failed to write roster header", logger.Path(path), logger.Err(ioError("Save", err)))
		return
	}

	written := 0
	for _, st := range students {
		if st == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s,%s,%d\n", st.ID, st.Name, st.Age); err != nil {
			s.log.Error("failed to write roster line", logger.Path(path), logger.StudentID(st.ID.String()), logger.Err(ioError("Save", err)))
			return
		}
		written++
	}

	if err := w.Flush(); err != nil {
		s.log.Error("failed to flush roster file", logger.Path(path), logger.Err(ioError("Save", err)))
		return
	}

	s.journal.Record(shared.NewRosterSavedEvent(path, written))
	s.log.Info("roster saved", logger.Path(path), logger.Count(written))
}

// LoadStudents reads the file at path, discarding the header line. A data
// line is accepted only when it has exactly 3 comma-separated fields and the
// third field parses as an integer; the fields then go through the Student
// constructor, which may still reject them. Malformed lines are skipped
// silently. On I/O failure an empty or partially-filled list is returned.
func (s *Store) LoadStudents(path string) []*student.Student {
	students := make([]*student.Student, 0)

	f, err := os.Open(path)
	if err != nil {
		s.log.Error("failed to open roster file for reading", logger.Path(path), logger.Err(ioError("Load", err)))
		return students
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			// Header line is discarded, whatever it contains.
			first = false
			continue
		}

		st, ok := parseLine(line)
		if !ok {
			continue
		}
		students = append(students, st)
	}

	if err := scanner.Err(); err != nil {
		s.log.Error("failed while reading roster file", logger.Path(path), logger.Err(ioError("Load", err)))
		return students
	}

	s.journal.Record(shared.NewRosterLoadedEvent(path, len(students)))
	s.log.Info("roster loaded", logger.Path(path), logger.Count(len(students)))
	return students
}

// Events returns the store's recorded domain events in occurrence order.
func (s *Store) Events() []shared.Event {
	return s.journal.Events()
}

// parseLine converts one data line into a Student, reporting acceptance.
func parseLine(line string) (*student.Student, bool) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return nil, false
	}

	age, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, false
	}

	st, err := student.New(fields[0], fields[1], age)
	if err != nil {
		return nil, false
	}
	return st, true
}
