// Package validation contains the field-level rules for student records.
//
// Two layers use the same rules:
//
//  1. The console layer calls the exported predicates (IsValidName, ...)
//     inside its prompt/retry loops, so bad input is rejected before a
//     record is ever built.
//  2. The service layer calls Validate, which runs the whole Student
//     struct through go-playground/validator. The predicates are
//     registered as custom validation tags, so both layers can never
//     disagree about what "valid" means.
//
// All predicates operate on the trimmed form of their input and never
// mutate it.
package validation

import (
	"regexp"
	"strings"

	"github.com/aanand-mishra/students-cli/internal/types"
	"github.com/go-playground/validator/v10"
)

// Patterns are compiled once at package load.
//
//	email: local part of letters/digits/+_.- then @, a domain of
//	       letters/digits/.-, and a final label of >= 2 letters
//	phone: optional leading +, then exactly 10-15 digits
var (
	emailPattern  = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phonePattern  = regexp.MustCompile(`^[+]?[0-9]{10,15}$`)
	namePattern   = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	coursePattern = regexp.MustCompile(`^[a-zA-Z0-9\s&.-]+$`)
)

// validate is the shared validator instance with our custom tags
// registered. validator.Validate is safe for concurrent use and caches
// struct metadata, so one instance serves the whole process.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Each custom tag delegates to the matching exported predicate so
	// struct validation and prompt-time validation share one rule set.
	// RegisterValidation only errors on an empty tag name — a
	// programmer mistake worth a panic at package init.
	register := func(tag string, pred func(string) bool) {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return pred(fl.Field().String())
		})
		if err != nil {
			panic("validation: register " + tag + ": " + err.Error())
		}
	}

	register("student_name", IsValidName)
	register("student_email", IsValidEmail)
	register("phone_number", IsValidPhoneNumber)
	register("course_name", IsValidCourse)

	return v
}

// IsValidString reports whether s is non-blank after trimming whitespace.
func IsValidString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStudentID reports whether id is a usable student ID.
// IDs are positive integers; zero and negatives are rejected.
func IsValidStudentID(id int) bool {
	return id > 0
}

// IsValidEmail reports whether s looks like local-part@domain.tld.
func IsValidEmail(s string) bool {
	if !IsValidString(s) {
		return false
	}
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// IsValidPhoneNumber reports whether s is 10-15 digits with an optional
// leading + for international numbers.
func IsValidPhoneNumber(s string) bool {
	if !IsValidString(s) {
		return false
	}
	return phonePattern.MatchString(strings.TrimSpace(s))
}

// IsValidGPA reports whether g is inside the 0.0-10.0 scale, inclusive
// at both ends.
func IsValidGPA(g float64) bool {
	return g >= 0.0 && g <= 10.0
}

// IsValidName reports whether s is a plausible first or last name:
// at least 2 characters after trimming, letters and whitespace only.
func IsValidName(s string) bool {
	if !IsValidString(s) {
		return false
	}
	trimmed := strings.TrimSpace(s)
	return len(trimmed) >= 2 && namePattern.MatchString(trimmed)
}

// IsValidCourse reports whether s is a plausible course name: at least
// 2 characters after trimming; letters, digits, whitespace, and the
// punctuation set & . - are allowed.
func IsValidCourse(s string) bool {
	if !IsValidString(s) {
		return false
	}
	trimmed := strings.TrimSpace(s)
	return len(trimmed) >= 2 && coursePattern.MatchString(trimmed)
}

// Validate runs every field rule against the record at once.
//
// It returns nil when the record is valid, or a
// validator.ValidationErrors listing each failing field — the console
// layer turns that into per-field messages via utils/display.
func Validate(student types.Student) error {
	return validate.Struct(student)
}
