// Package service implements the student store: the in-memory ordered
// collection of records, its validation and uniqueness rules, and the
// synchronisation with a persistence backend after every mutation.
//
// INVARIANTS MAINTAINED HERE:
//
//   - No two records in the collection share an ID.
//   - The next-ID counter is always strictly greater than the highest
//     ID currently present (or ever added). It never decreases, even
//     when the highest record is deleted.
//   - After every successful Add/Update/Delete the backend holds a
//     serialisation of the full in-memory collection.
//
// Mutations report success as a plain bool. A false from Add does not
// say whether validation or the duplicate-ID check failed — callers get
// one answer, the log records which check tripped. Persistence failures
// are logged diagnostics, not errors: the in-memory state remains the
// source of truth for the rest of the run.
package service

import (
	"log/slog"

	"github.com/aanand-mishra/students-cli/internal/storage"
	"github.com/aanand-mishra/students-cli/internal/types"
	"github.com/aanand-mishra/students-cli/internal/validation"
)

// Service owns the in-memory collection and the next-ID counter.
// It is single-threaded by design: the console drives it one blocking
// call at a time, so there is no locking.
type Service struct {
	// backend is interface-typed: the service never knows whether it
	// is talking to the flat file, SQLite, or a test fake.
	backend  storage.Backend
	log      *slog.Logger
	students []types.Student
	nextID   int
}

// New constructs the service and loads every persisted record into
// memory. A backend with no data yields an empty store with next ID 1.
// A load failure is reported and the store starts empty — the program
// stays usable, it just cannot see the old data.
func New(backend storage.Backend, log *slog.Logger) *Service {
	s := &Service{
		backend:  backend,
		log:      log,
		students: make([]types.Student, 0),
		nextID:   1,
	}

	loaded, err := backend.LoadStudents()
	if err != nil {
		log.Error("failed to load students, starting empty",
			slog.String("error", err.Error()))
		return s
	}

	s.students = loaded
	for _, student := range loaded {
		if student.ID >= s.nextID {
			s.nextID = student.ID + 1
		}
	}

	log.Info("students loaded",
		slog.Int("count", len(loaded)),
		slog.Int("next_id", s.nextID),
	)
	return s
}

// Add inserts a new record.
//
// It returns false — with no side effect — when any field fails
// validation or when a record with the same ID already exists. On
// success the record is appended, the next-ID counter advances past it,
// and the full collection is persisted.
func (s *Service) Add(student types.Student) bool {
	if err := validation.Validate(student); err != nil {
		s.log.Debug("add rejected: validation failed",
			slog.Int("id", student.ID),
			slog.String("error", err.Error()))
		return false
	}

	if _, exists := s.FindByID(student.ID); exists {
		s.log.Debug("add rejected: duplicate id", slog.Int("id", student.ID))
		return false
	}

	s.students = append(s.students, student)

	// The counter must stay strictly above every ID ever added, also
	// when the caller supplied an ID beyond the current counter.
	if student.ID >= s.nextID {
		s.nextID = student.ID + 1
	}

	s.persist()

	s.log.Info("student added", slog.Int("id", student.ID))
	return true
}

// FindByID scans the collection in order and returns the first record
// with a matching ID. The second result reports whether one was found.
func (s *Service) FindByID(id int) (types.Student, bool) {
	for _, student := range s.students {
		if student.ID == id {
			return student, true
		}
	}
	return types.Student{}, false
}

// Update replaces the stored record carrying the same ID with the given
// snapshot, keeping its position in the collection.
//
// It returns false — with no side effect — when the record fails
// validation or when no record with that ID exists. No uniqueness check
// is needed: the update targets an ID that is already in place.
func (s *Service) Update(student types.Student) bool {
	if err := validation.Validate(student); err != nil {
		s.log.Debug("update rejected: validation failed",
			slog.Int("id", student.ID),
			slog.String("error", err.Error()))
		return false
	}

	for i := range s.students {
		if s.students[i].ID == student.ID {
			s.students[i] = student
			s.persist()
			s.log.Info("student updated", slog.Int("id", student.ID))
			return true
		}
	}

	s.log.Debug("update rejected: id not found", slog.Int("id", student.ID))
	return false
}

// Delete removes the record with the given ID and reports whether a
// removal happened. The collection is only persisted when it actually
// changed; the next-ID counter never moves backwards.
func (s *Service) Delete(id int) bool {
	kept := s.students[:0]
	removed := false
	for _, student := range s.students {
		if student.ID == id {
			removed = true
			continue
		}
		kept = append(kept, student)
	}

	if !removed {
		return false
	}

	s.students = kept
	s.persist()

	s.log.Info("student deleted", slog.Int("id", id))
	return true
}

// GetAll returns a copy of the collection in current order. Callers can
// sort or filter the result freely without touching the store's state.
func (s *Service) GetAll() []types.Student {
	all := make([]types.Student, len(s.students))
	copy(all, s.students)
	return all
}

// NextID returns the next unused ID without reserving it. The value is
// only consumed when a record carrying it is actually added.
func (s *Service) NextID() int {
	return s.nextID
}

// persist pushes the current collection to the backend. Failures are
// logged and swallowed: the mutation already happened in memory and the
// caller has been told it succeeded. This is the documented weak point
// of the rewrite-on-mutation design.
func (s *Service) persist() {
	if err := s.backend.SaveStudents(s.students); err != nil {
		s.log.Error("failed to persist students",
			slog.Int("count", len(s.students)),
			slog.String("error", err.Error()),
		)
	}
}
