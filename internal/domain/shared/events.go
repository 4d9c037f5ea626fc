package shared

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event represents something significant that
// happened to the roster or the gradebook.
const (
	// Roster events
	EventStudentEnrolled EventType = "roster.student_enrolled"
	EventStudentRemoved  EventType = "roster.student_removed"

	// Gradebook events
	EventScoreRecorded EventType = "gradebook.score_recorded"

	// Persistence events
	EventRosterSaved  EventType = "persistence.roster_saved"
	EventRosterLoaded EventType = "persistence.roster_loaded"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventID returns the unique identifier of this event instance.
	EventID() string

	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
}

// EventID implements Event interface.
func (e BaseEvent) EventID() string {
	return e.ID
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event with a generated event ID.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		ID:          uuid.New().String(),
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		AggregateId: aggregateID,
	}
}

// StudentEnrolledEvent is emitted when a student is added to the roster.
type StudentEnrolledEvent struct {
	BaseEvent
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// NewStudentEnrolledEvent creates a new StudentEnrolledEvent.
func NewStudentEnrolledEvent(studentID, name string, age int) StudentEnrolledEvent {
	return StudentEnrolledEvent{
		BaseEvent: NewBaseEvent(EventStudentEnrolled, studentID),
		Name:      name,
		Age:       age,
	}
}

// StudentRemovedEvent is emitted when a student is removed from the roster.
type StudentRemovedEvent struct {
	BaseEvent
}

// NewStudentRemovedEvent creates a new StudentRemovedEvent.
func NewStudentRemovedEvent(studentID string) StudentRemovedEvent {
	return StudentRemovedEvent{
		BaseEvent: NewBaseEvent(EventStudentRemoved, studentID),
	}
}

// ScoreRecordedEvent is emitted when a score is recorded for a student.
type ScoreRecordedEvent struct {
	BaseEvent
	Subject string  `json:"subject"`
	Points  float64 `json:"points"`
}

// NewScoreRecordedEvent creates a new ScoreRecordedEvent.
func NewScoreRecordedEvent(studentID, subject string, points float64) ScoreRecordedEvent {
	return ScoreRecordedEvent{
		BaseEvent: NewBaseEvent(EventScoreRecorded, studentID),
		Subject:   subject,
		Points:    points,
	}
}

// RosterSavedEvent is emitted after the roster is written to a sink.
type RosterSavedEvent struct {
	BaseEvent
	Destination string `json:"destination"`
	Count       int    `json:"count"`
}

// NewRosterSavedEvent creates a new RosterSavedEvent.
func NewRosterSavedEvent(destination string, count int) RosterSavedEvent {
	return RosterSavedEvent{
		BaseEvent:   NewBaseEvent(EventRosterSaved, destination),
		Destination: destination,
		Count:       count,
	}
}

// RosterLoadedEvent is emitted after the roster is read from a source.
type RosterLoadedEvent struct {
	BaseEvent
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// NewRosterLoadedEvent creates a new RosterLoadedEvent.
func NewRosterLoadedEvent(source string, count int) RosterLoadedEvent {
	return RosterLoadedEvent{
		BaseEvent: NewBaseEvent(EventRosterLoaded, source),
		Source:    source,
		Count:     count,
	}
}

// Journal collects domain events in occurrence order. Managers append to a
// journal as they mutate state; the driver reads it for display or audit.
type Journal struct {
	events []Event
}

// NewJournal creates an empty Journal.
func NewJournal() *Journal {
	return &Journal{events: make([]Event, 0)}
}

// Record appends an event to the journal. Nil events are ignored.
func (j *Journal) Record(e Event) {
	if e == nil {
		return
	}
	j.events = append(j.events, e)
}

// Events returns a copy of all recorded events in order.
func (j *Journal) Events() []Event {
	out := make([]Event, len(j.events))
	copy(out, j.events)
	return out
}

// Len returns the number of recorded events.
func (j *Journal) Len() int {
	return len(j.events)
}
