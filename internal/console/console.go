// Package console implements the menu-driven terminal interface.
//
// The console is a thin collaborator over the service layer: it renders
// menus, gathers and validates input, invokes store operations, and
// formats output. It holds no student state of its own — every screen
// is drawn from fresh service calls.
//
// DEPENDENCY INJECTION:
// ─────────────────────
// Input and output are injected as io.Reader / io.Writer instead of
// touching os.Stdin / os.Stdout directly. main.go passes the real
// terminal; tests pass a strings.Reader with a scripted session and a
// bytes.Buffer to capture what was printed.
//
// Input validation happens twice on purpose: the prompt loops here
// reuse the validation predicates so the user is re-asked immediately,
// and the service runs the same rules again as a second line of
// defense before anything is stored.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aanand-mishra/students-cli/internal/service"
	"github.com/aanand-mishra/students-cli/internal/types"
	"github.com/aanand-mishra/students-cli/internal/utils/display"
	"github.com/aanand-mishra/students-cli/internal/validation"
	"github.com/go-playground/validator/v10"
)

// Console drives one interactive session.
type Console struct {
	service *service.Service
	in      *bufio.Scanner
	out     io.Writer
	log     *slog.Logger
}

// New wires a console to a service and an input/output pair.
func New(svc *service.Service, in io.Reader, out io.Writer, log *slog.Logger) *Console {
	return &Console{
		service: svc,
		in:      bufio.NewScanner(in),
		out:     out,
		log:     log,
	}
}

// Run shows the menu in a loop until the user chooses to exit or input
// ends. Invalid selections are reported and the menu is shown again —
// nothing the user types can terminate the session except option 7.
func (c *Console) Run() {
	fmt.Fprintln(c.out, strings.Repeat("=", 60))
	fmt.Fprintln(c.out, "    WELCOME TO STUDENT MANAGEMENT SYSTEM")
	fmt.Fprintln(c.out, strings.Repeat("=", 60))

	for {
		c.printMenu()

		line, ok := c.readLine()
		if !ok {
			// Input stream closed (EOF / piped session ended).
			return
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			choice = -1
		}

		c.log.Debug("menu selection", slog.Int("choice", choice))

		switch choice {
		case 1:
			c.addStudent()
		case 2:
			c.listStudents()
		case 3:
			c.searchStudent()
		case 4:
			c.updateStudent()
		case 5:
			c.deleteStudent()
		case 6:
			c.showStatistics()
		case 7:
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, "Thank you for using Student Management System!")
			fmt.Fprintln(c.out, "Goodbye!")
			return
		default:
			display.Errorf(c.out, "Invalid choice! Please select 1-7.")
		}

		fmt.Fprintln(c.out)
		fmt.Fprint(c.out, "Press Enter to continue...")
		if _, ok := c.readLine(); !ok {
			return
		}
	}
}

func (c *Console) printMenu() {
	display.Banner(c.out, "MAIN MENU")
	fmt.Fprintln(c.out, "1. Add New Student")
	fmt.Fprintln(c.out, "2. View All Students")
	fmt.Fprintln(c.out, "3. Search Student by ID")
	fmt.Fprintln(c.out, "4. Update Student Information")
	fmt.Fprintln(c.out, "5. Delete Student")
	fmt.Fprintln(c.out, "6. Display Statistics")
	fmt.Fprintln(c.out, "7. Exit")
	fmt.Fprintln(c.out, strings.Repeat("=", 50))
	fmt.Fprint(c.out, "Enter your choice (1-7): ")
}

// addStudent collects every field through a validate-and-retry prompt,
// then hands the assembled record to the service. The ID is announced
// up front — it comes from the store's next-ID counter, never from the
// user.
func (c *Console) addStudent() {
	display.Banner(c.out, "ADD NEW STUDENT")

	id := c.service.NextID()
	fmt.Fprintf(c.out, "Student ID (auto-generated): %d\n", id)

	firstName, ok := c.promptValid("First Name: ", validation.IsValidName,
		"First name must contain only letters and be at least 2 characters long.")
	if !ok {
		return
	}
	lastName, ok := c.promptValid("Last Name: ", validation.IsValidName,
		"Last name must contain only letters and be at least 2 characters long.")
	if !ok {
		return
	}
	email, ok := c.promptValid("Email: ", validation.IsValidEmail,
		"Please enter a valid email address (e.g., student@example.com).")
	if !ok {
		return
	}
	phone, ok := c.promptValid("Phone Number: ", validation.IsValidPhoneNumber,
		"Phone number must be 10-15 digits (optional + prefix for international).")
	if !ok {
		return
	}
	course, ok := c.promptValid("Course: ", validation.IsValidCourse,
		"Course name must be at least 2 characters and contain only letters, numbers, and common punctuation.")
	if !ok {
		return
	}
	gpa, ok := c.promptGPA()
	if !ok {
		return
	}

	student := types.Student{
		ID:          id,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		PhoneNumber: phone,
		Course:      course,
		GPA:         gpa,
	}

	// Whole-record check before submitting, mirroring the service's
	// own validation. The per-field prompts make this pass in practice;
	// if the two rule sets ever drift, the user sees which field the
	// service would reject instead of a generic failure.
	if err := validation.Validate(student); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			display.Errorf(c.out, "%s", display.ValidationMessage(verrs))
			return
		}
	}

	if c.service.Add(student) {
		fmt.Fprintln(c.out)
		display.Successf(c.out, "Student added successfully!")
		fmt.Fprintln(c.out, "Student Details:")
		display.Rule(c.out)
		fmt.Fprintln(c.out, student)
	} else {
		fmt.Fprintln(c.out)
		display.Errorf(c.out, "Failed to add student. Please check the information and try again.")
	}
}

// listStudents renders every record as a table, in store order.
func (c *Console) listStudents() {
	display.Banner(c.out, "ALL STUDENTS")

	students := c.service.GetAll()
	if len(students) == 0 {
		fmt.Fprintln(c.out, "No students found in the system.")
		return
	}

	display.TableHeader(c.out)
	for _, student := range students {
		fmt.Fprintln(c.out, student)
	}
	display.Rule(c.out)
	fmt.Fprintf(c.out, "Total Students: %d\n", len(students))
}

// searchStudent looks one record up by ID and shows it.
func (c *Console) searchStudent() {
	display.Banner(c.out, "SEARCH STUDENT")

	id, ok := c.promptInt("Enter Student ID: ")
	if !ok {
		display.Errorf(c.out, "Invalid input. Please enter a valid student ID.")
		return
	}
	if !validation.IsValidStudentID(id) {
		display.Errorf(c.out, "Invalid Student ID. Please enter a positive number.")
		return
	}

	student, found := c.service.FindByID(id)
	if !found {
		display.Errorf(c.out, "Student with ID %d not found.", id)
		return
	}

	fmt.Fprintln(c.out)
	display.Successf(c.out, "Student Found:")
	display.TableHeader(c.out)
	fmt.Fprintln(c.out, student)
}

// updateStudent shows the current record and prompts per field; an
// empty answer keeps the current value. The assembled snapshot replaces
// the stored one wholesale under the same ID.
func (c *Console) updateStudent() {
	display.Banner(c.out, "UPDATE STUDENT")

	id, ok := c.promptInt("Enter Student ID to update: ")
	if !ok {
		display.Errorf(c.out, "Invalid input. Please enter a valid student ID.")
		return
	}

	existing, found := c.service.FindByID(id)
	if !found {
		display.Errorf(c.out, "Student with ID %d not found.", id)
		return
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Current Student Information:")
	display.Rule(c.out)
	fmt.Fprintln(c.out, existing)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Enter new information (press Enter to keep current value):")

	firstName, ok := c.promptOptional(
		fmt.Sprintf("First Name [%s]: ", existing.FirstName),
		existing.FirstName, validation.IsValidName,
		"First name must contain only letters and be at least 2 characters long.")
	if !ok {
		return
	}
	lastName, ok := c.promptOptional(
		fmt.Sprintf("Last Name [%s]: ", existing.LastName),
		existing.LastName, validation.IsValidName,
		"Last name must contain only letters and be at least 2 characters long.")
	if !ok {
		return
	}
	email, ok := c.promptOptional(
		fmt.Sprintf("Email [%s]: ", existing.Email),
		existing.Email, validation.IsValidEmail,
		"Please enter a valid email address.")
	if !ok {
		return
	}
	phone, ok := c.promptOptional(
		fmt.Sprintf("Phone Number [%s]: ", existing.PhoneNumber),
		existing.PhoneNumber, validation.IsValidPhoneNumber,
		"Phone number must be 10-15 digits.")
	if !ok {
		return
	}
	course, ok := c.promptOptional(
		fmt.Sprintf("Course [%s]: ", existing.Course),
		existing.Course, validation.IsValidCourse,
		"Course name must be at least 2 characters.")
	if !ok {
		return
	}
	gpa, ok := c.promptOptionalGPA(existing.GPA)
	if !ok {
		return
	}

	updated := types.Student{
		ID:          id,
		FirstName:   firstName,
		LastName:    lastName,
		Email:       email,
		PhoneNumber: phone,
		Course:      course,
		GPA:         gpa,
	}

	if err := validation.Validate(updated); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			display.Errorf(c.out, "%s", display.ValidationMessage(verrs))
			return
		}
	}

	if c.service.Update(updated) {
		fmt.Fprintln(c.out)
		display.Successf(c.out, "Student updated successfully!")
		fmt.Fprintln(c.out, "Updated Student Details:")
		display.Rule(c.out)
		fmt.Fprintln(c.out, updated)
	} else {
		fmt.Fprintln(c.out)
		display.Errorf(c.out, "Failed to update student.")
	}
}

// deleteStudent removes one record after showing it and asking for an
// explicit yes. Anything other than yes/y cancels.
func (c *Console) deleteStudent() {
	display.Banner(c.out, "DELETE STUDENT")

	id, ok := c.promptInt("Enter Student ID to delete: ")
	if !ok {
		display.Errorf(c.out, "Invalid input. Please enter a valid student ID.")
		return
	}

	student, found := c.service.FindByID(id)
	if !found {
		display.Errorf(c.out, "Student with ID %d not found.", id)
		return
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Student to be deleted:")
	display.Rule(c.out)
	fmt.Fprintln(c.out, student)

	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, "Are you sure you want to delete this student? (yes/no): ")
	answer, ok := c.readLine()
	if !ok {
		return
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		if c.service.Delete(id) {
			fmt.Fprintln(c.out)
			display.Successf(c.out, "Student deleted successfully!")
		} else {
			fmt.Fprintln(c.out)
			display.Errorf(c.out, "Failed to delete student.")
		}
	default:
		fmt.Fprintln(c.out)
		display.Errorf(c.out, "Deletion cancelled.")
	}
}

// showStatistics aggregates over GetAll and prints the GPA summary.
func (c *Console) showStatistics() {
	display.Banner(c.out, "SYSTEM STATISTICS")

	stats := ComputeStats(c.service.GetAll())
	if stats.Total == 0 {
		fmt.Fprintln(c.out, "No students in the system.")
		return
	}

	fmt.Fprintf(c.out, "Total Students: %d\n", stats.Total)
	fmt.Fprintf(c.out, "Average GPA:    %.2f\n", stats.AverageGPA)
	fmt.Fprintf(c.out, "Highest GPA:    %.2f\n", stats.HighestGPA)
	fmt.Fprintf(c.out, "Lowest GPA:     %.2f\n", stats.LowestGPA)
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "GPA Distribution:")
	fmt.Fprintf(c.out, "  Excellent (8.0-10.0): %d students\n", stats.Excellent)
	fmt.Fprintf(c.out, "  Good      (6.0-7.9):  %d students\n", stats.Good)
	fmt.Fprintf(c.out, "  Average   (4.0-5.9):  %d students\n", stats.Average)
	fmt.Fprintf(c.out, "  Fail      (<4.0):     %d students\n", stats.Fail)
}

// ── input helpers ────────────────────────────────────────────────────

// readLine reads one line from the session. The second result is false
// once the input stream ends; every caller treats that as "session
// over" rather than an error.
func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// promptValid re-asks until the predicate accepts the (trimmed) input.
func (c *Console) promptValid(prompt string, pred func(string) bool, errMsg string) (string, bool) {
	for {
		fmt.Fprint(c.out, prompt)
		line, ok := c.readLine()
		if !ok {
			return "", false
		}
		input := strings.TrimSpace(line)
		if pred(input) {
			return input, true
		}
		display.Errorf(c.out, "%s", errMsg)
	}
}

// promptOptional is promptValid with a default: an empty answer keeps
// the current value.
func (c *Console) promptOptional(prompt, current string, pred func(string) bool, errMsg string) (string, bool) {
	for {
		fmt.Fprint(c.out, prompt)
		line, ok := c.readLine()
		if !ok {
			return "", false
		}
		input := strings.TrimSpace(line)
		if input == "" {
			return current, true
		}
		if pred(input) {
			return input, true
		}
		display.Errorf(c.out, "%s", errMsg)
	}
}

// promptInt reads a single integer attempt. Unlike the field prompts it
// does not retry — a non-numeric ID sends the user back to the menu,
// matching the search/update/delete flows.
func (c *Console) promptInt(prompt string) (int, bool) {
	fmt.Fprint(c.out, prompt)
	line, ok := c.readLine()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false
	}
	return n, true
}

// promptGPA re-asks until the input parses as a float inside the scale.
func (c *Console) promptGPA() (float64, bool) {
	for {
		fmt.Fprint(c.out, "GPA (0.0-10.0): ")
		line, ok := c.readLine()
		if !ok {
			return 0, false
		}
		gpa, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			display.Errorf(c.out, "Please enter a valid number for GPA.")
			continue
		}
		if !validation.IsValidGPA(gpa) {
			display.Errorf(c.out, "GPA must be between 0.0 and 10.0.")
			continue
		}
		return gpa, true
	}
}

// promptOptionalGPA is promptGPA with a default for the update flow.
func (c *Console) promptOptionalGPA(current float64) (float64, bool) {
	for {
		fmt.Fprintf(c.out, "GPA [%.2f]: ", current)
		line, ok := c.readLine()
		if !ok {
			return 0, false
		}
		input := strings.TrimSpace(line)
		if input == "" {
			return current, true
		}
		gpa, err := strconv.ParseFloat(input, 64)
		if err != nil {
			display.Errorf(c.out, "Please enter a valid number for GPA.")
			continue
		}
		if !validation.IsValidGPA(gpa) {
			display.Errorf(c.out, "GPA must be between 0.0 and 10.0.")
			continue
		}
		return gpa, true
	}
}
