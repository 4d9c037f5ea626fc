package csvfile

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/campus-gradebook/internal/domain/shared"
	"github.com/alem-hub/campus-gradebook/internal/domain/student"
	"github.com/alem-hub/campus-gradebook/pkg/logger"
)

func quietStore() *Store {
	return NewStore(logger.New(logger.Options{Output: io.Discard}))
}

func mustStudent(t *testing.T, id, name string, age int) *student.Student {
	t.Helper()
	s, err := student.New(id, name, age)
	require.NoError(t, err)
	return s
}

func TestStore_SaveStudents_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	store := quietStore()

	store.SaveStudents([]*student.Student{
		mustStudent(t, "2021001", "张三", 20),
		mustStudent(t, "2021002", "李四", 19),
	}, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "StudentId,Name,Age\n2021001,张三,20\n2021002,李四,19\n", string(data))
}

func TestStore_SaveStudents_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	store := quietStore()

	store.SaveStudents([]*student.Student{mustStudent(t, "a", "Alice", 20)}, path)
	store.SaveStudents([]*student.Student{mustStudent(t, "b", "Bob", 21)}, path)

	got := store.LoadStudents(path)
	require.Len(t, got, 1)
	assert.Equal(t, student.ID("b"), got[0].ID)
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	store := quietStore()

	original := []*student.Student{
		mustStudent(t, "2021001", "张三", 20),
		mustStudent(t, "2021002", "李四", 19),
		mustStudent(t, "2021003", "王五", 21),
	}
	store.SaveStudents(original, path)

	loaded := store.LoadStudents(path)
	require.Len(t, loaded, len(original))
	for i := range original {
		assert.Equal(t, original[i], loaded[i])
	}
}

func TestStore_LoadStudents_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	content := "StudentId,Name,Age\n" +
		"s1,Alice,20\n" +
		"s2,Bob\n" + // too few fields
		"s3,Carol,twenty\n" + // non-integer age
		"s4,Dave,20,extra\n" + // too many fields
		"s5,,20\n" + // constructor rejects empty name
		"s6,Eve,-1\n" + // constructor rejects negative age
		"s7,Frank,22\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got := quietStore().LoadStudents(path)
	require.Len(t, got, 2)
	assert.Equal(t, student.ID("s1"), got[0].ID)
	assert.Equal(t, student.ID("s7"), got[1].ID)
}

func TestStore_LoadStudents_MissingFile(t *testing.T) {
	got := quietStore().LoadStudents(filepath.Join(t.TempDir(), "nope.csv"))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStore_SaveStudents_UnwritablePath(t *testing.T) {
	store := quietStore()
	// Directory component does not exist; the failure must be swallowed.
	assert.NotPanics(t, func() {
		store.SaveStudents([]*student.Student{mustStudent(t, "s1", "Alice", 20)}, filepath.Join(t.TempDir(), "missing", "roster.csv"))
	})
	assert.Empty(t, store.Events(), "no saved event on failure")
}

func TestStore_SaveStudents_LogsIOErrorKind(t *testing.T) {
	var buf bytes.Buffer
	store := NewStore(logger.New(logger.Options{Output: &buf, Level: logger.LevelError}))

	store.SaveStudents([]*student.Student{mustStudent(t, "s1", "Alice", 20)}, filepath.Join(t.TempDir(), "missing", "roster.csv"))

	assert.Contains(t, buf.String(), "roster.Save: i/o failure")
}

func TestIOError_Kind(t *testing.T) {
	err := ioError("Load", errors.New("disk gone"))
	assert.ErrorIs(t, err, shared.ErrIO)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestStore_SaveStudents_SkipsNilAndCountsWritten(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	store := quietStore()

	store.SaveStudents([]*student.Student{
		mustStudent(t, "s1", "Alice", 20),
		nil,
		mustStudent(t, "s2", "Bob", 21),
	}, path)

	got := store.LoadStudents(path)
	require.Len(t, got, 2)

	events := store.Events()
	require.Len(t, events, 2)
	saved, ok := events[0].(shared.RosterSavedEvent)
	require.True(t, ok)
	assert.Equal(t, 2, saved.Count, "nil entries are not counted as written")
}

func TestStore_Events(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.csv")
	store := quietStore()

	store.SaveStudents([]*student.Student{mustStudent(t, "s1", "Alice", 20)}, path)
	store.LoadStudents(path)

	events := store.Events()
	require.Len(t, events, 2)
	assert.Equal(t, shared.EventRosterSaved, events[0].EventType())
	assert.Equal(t, shared.EventRosterLoaded, events[1].EventType())
}
