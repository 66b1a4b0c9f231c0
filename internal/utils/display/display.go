// Package display provides helpers for writing consistent console
// output.
//
// Every screen in this application prints banners, table headers, and
// status lines. Rather than repeating the same fmt calls in every menu
// handler, they are centralised here — the console always looks the
// same no matter which handler drew it.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Widths used by banners and the student table. The row format lives in
// types.Student.String; these must stay in step with it.
const (
	bannerWidth = 50
	tableWidth  = 100
)

// Banner prints a titled section header:
//
//	==================================================
//	              ADD NEW STUDENT
//	==================================================
func Banner(w io.Writer, title string) {
	line := strings.Repeat("=", bannerWidth)
	pad := (bannerWidth - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, strings.Repeat(" ", pad)+title)
	fmt.Fprintln(w, line)
}

// TableHeader prints the column header and rule for student listings.
// Column widths match types.Student.String.
func TableHeader(w io.Writer) {
	fmt.Fprintf(w, "%-9s | %-26s | %-32s | %-19s | %-23s | %s\n",
		"ID", "Name", "Email", "Phone", "Course", "GPA")
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))
}

// Rule prints a horizontal separator at table width.
func Rule(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))
}

// Successf prints a success status line.
func Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "[ok] "+format+"\n", args...)
}

// Errorf prints a failure status line.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "[!] "+format+"\n", args...)
}

// ValidationMessage converts a slice of validator.FieldError values
// into a single human-readable string.
//
// The go-playground/validator package returns one FieldError per
// failing struct field; each becomes a plain English fragment, joined
// with ", " so the user sees one descriptive line.
func ValidationMessage(errs validator.ValidationErrors) string {
	var msgs []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "gt":
			msgs = append(msgs, fmt.Sprintf("field %s must be positive", e.Field()))
		case "gte", "lte":
			msgs = append(msgs, fmt.Sprintf("field %s must be between 0.0 and 10.0", e.Field()))
		case "student_name":
			msgs = append(msgs, fmt.Sprintf("field %s must be at least 2 letters", e.Field()))
		case "student_email":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid email address", e.Field()))
		case "phone_number":
			msgs = append(msgs, fmt.Sprintf("field %s must be 10-15 digits", e.Field()))
		case "course_name":
			msgs = append(msgs, fmt.Sprintf("field %s must be a valid course name", e.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(msgs, ", ")
}
