// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// the console, service, and storage layers can all import types without
// depending on each other.
package types

import "fmt"

// Student represents one student record.
//
// Identity is defined by ID alone: two Student values with the same ID
// describe the same entity even when every other field differs. Records
// are value snapshots — "updating" a student means replacing the stored
// snapshot wholesale with a new one carrying the same ID.
//
// The validate:"..." tags are rules checked by the go-playground/validator
// package through internal/validation; the custom tags (student_name,
// student_email, ...) are registered there.
type Student struct {
	ID          int     `validate:"gt=0"`
	FirstName   string  `validate:"student_name"`
	LastName    string  `validate:"student_name"`
	Email       string  `validate:"student_email"`
	PhoneNumber string  `validate:"phone_number"`
	Course      string  `validate:"course_name"`
	GPA         float64 `validate:"gte=0,lte=10"`
}

// FullName returns "FirstName LastName" for display.
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// String renders the student as one fixed-width console table row.
// Column widths match the header printed by the console layer.
func (s Student) String() string {
	return fmt.Sprintf("ID: %-5d | Name: %-20s | Email: %-25s | Phone: %-12s | Course: %-15s | GPA: %.2f",
		s.ID, s.FullName(), s.Email, s.PhoneNumber, s.Course, s.GPA)
}
