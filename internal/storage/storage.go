// Package storage defines the Backend interface — the contract any
// persistence backend must satisfy to work with the student service.
//
// The service layer depends only on this interface, never on a concrete
// backend. Swapping the flat text file for SQLite (or a test fake) is a
// one-line change in main.go; the service does not change at all.
//
// The contract is deliberately coarse: the whole collection is loaded
// once at startup and rewritten in full after every mutation. That is
// the persistence model of this system — simple, and proportional to
// the total record count per write.
package storage

import "github.com/aanand-mishra/students-cli/internal/types"

// Backend is the persistence contract.
type Backend interface {
	// LoadStudents reads every persisted record, in stored order.
	// A backend with no data yet (file absent, empty table) returns an
	// empty slice and nil error, not a failure.
	LoadStudents() ([]types.Student, error)

	// SaveStudents replaces the entire persisted collection with the
	// given snapshot, preserving slice order as stored order.
	SaveStudents(students []types.Student) error
}
