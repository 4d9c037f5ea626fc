package student

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACE
// The roster capability: an ordered, unique collection of students.
// The in-memory Manager in this package is the only implementer the system
// requires; the interface exists so callers depend on the contract only.
// ══════════════════════════════════════════════════════════════════════════════

// Predicate is a boolean filter over students.
type Predicate func(*Student) bool

// Repository defines the roster operations.
type Repository interface {
	// Add enrolls a student.
	// Returns ErrNilStudent for nil input and ErrAlreadyExists when a
	// student with the same ID is already enrolled.
	Add(s *Student) error

	// Remove withdraws a student, matched by ID equality.
	// Returns ErrNilStudent for nil input and ErrNotFound when absent.
	Remove(s *Student) error

	// GetAll returns a defensive copy of the roster, sorted ascending by ID.
	GetAll() []*Student

	// Find returns all students satisfying the predicate, in roster order.
	// Returns ErrNilPredicate when the predicate is nil.
	Find(p Predicate) ([]*Student, error)
}
