package validation

import (
	"testing"

	"github.com/aanand-mishra/students-cli/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestIsValidString(t *testing.T) {
	assert.True(t, IsValidString("x"))
	assert.True(t, IsValidString("  x  "))
	assert.False(t, IsValidString(""))
	assert.False(t, IsValidString("   "))
	assert.False(t, IsValidString("\t\n"))
}

func TestIsValidStudentID(t *testing.T) {
	assert.True(t, IsValidStudentID(1))
	assert.True(t, IsValidStudentID(9999))
	assert.False(t, IsValidStudentID(0))
	assert.False(t, IsValidStudentID(-5))
}

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"student@example.com", true},
		{"first.last+tag@mail.example.org", true},
		{"  padded@example.com  ", true}, // trimmed before matching
		{"a@b", false},                   // missing dot-tld
		{"a@b.c", false},                 // tld shorter than 2 letters
		{"@example.com", false},          // empty local part
		{"plainstring", false},
		{"", false},
		{"two words@example.com", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidEmail(tc.email), "email %q", tc.email)
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"1234567890", true},        // 10 digits
		{"123456789012345", true},   // 15 digits
		{"+1234567890", true},       // international prefix
		{"+123456789012345", true},  // + plus 15 digits
		{"123456789", false},        // 9 digits
		{"1234567890123456", false}, // 16 digits
		{"12345abcde", false},
		{"123-456-7890", false}, // separators are not accepted
		{"++1234567890", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidPhoneNumber(tc.phone), "phone %q", tc.phone)
	}
}

func TestIsValidGPA(t *testing.T) {
	assert.True(t, IsValidGPA(0.0))
	assert.True(t, IsValidGPA(10.0))
	assert.True(t, IsValidGPA(7.25))
	assert.False(t, IsValidGPA(10.01))
	assert.False(t, IsValidGPA(-0.01))
}

func TestIsValidName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Jo", true},
		{"Ann Lee", true},
		{"  Ann  ", true}, // trimmed before checking length
		{"J", false},      // too short
		{"J0e", false},    // digits not allowed
		{"Ann-Marie", false},
		{"", false},
		{"  ", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidName(tc.name), "name %q", tc.name)
	}
}

func TestIsValidCourse(t *testing.T) {
	cases := []struct {
		course string
		want   bool
	}{
		{"CS", true},
		{"Computer Science 101", true},
		{"Maths & Stats", true},
		{"B.Tech - IT", true},
		{"C", false}, // too short
		{"Math!", false},
		{"CS|101", false}, // pipe would corrupt the file format
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, IsValidCourse(tc.course), "course %q", tc.course)
	}
}

func validStudent() types.Student {
	return types.Student{
		ID:          1,
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       "ann@x.com",
		PhoneNumber: "1234567890",
		Course:      "CS",
		GPA:         9.0,
	}
}

func TestValidate_ValidStudent(t *testing.T) {
	assert.NoError(t, Validate(validStudent()))
}

func TestValidate_ReportsEachBadField(t *testing.T) {
	student := validStudent()
	student.ID = 0
	student.Email = "not-an-email"
	student.GPA = 11.0

	err := Validate(student)
	assert.Error(t, err)

	validationErrs, ok := err.(validator.ValidationErrors)
	assert.True(t, ok, "expected validator.ValidationErrors, got %T", err)

	fields := make(map[string]bool)
	for _, fe := range validationErrs {
		fields[fe.Field()] = true
	}
	assert.True(t, fields["ID"])
	assert.True(t, fields["Email"])
	assert.True(t, fields["GPA"])
	assert.False(t, fields["FirstName"])
}
