// Package flatfile implements storage.Backend on top of a plain text
// file — the classic students.txt.
//
// FILE FORMAT:
// ────────────
// One record per line, seven pipe-separated fields in fixed order:
//
//	id|firstName|lastName|email|phoneNumber|course|gpa
//
// GPA is written with exactly two decimal digits. Fields are NOT
// escaped: a literal | inside a name or course would corrupt that line
// on the next read. This is an acknowledged limitation of the format,
// kept for compatibility, not something this package tries to fix.
//
// Whitespace around each field is trimmed on read. A line that does not
// parse (wrong field count, non-numeric id or gpa) is skipped with a
// logged warning — one bad line never aborts loading the rest.
package flatfile

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aanand-mishra/students-cli/internal/types"
)

// fieldCount is the number of pipe-separated fields per line.
const fieldCount = 7

// FlatFile is the concrete text-file implementation of storage.Backend.
type FlatFile struct {
	path string
	log  *slog.Logger
}

// New returns a backend reading and writing the file at path.
// The file itself is not touched here — a missing file is a valid
// empty store until the first save creates it.
func New(path string, log *slog.Logger) *FlatFile {
	return &FlatFile{path: path, log: log}
}

// LoadStudents reads the backing file line by line.
//
// A missing file is not an error: the store simply starts empty.
// Malformed lines are skipped individually; only a real I/O failure
// (permissions, disk error) is returned to the caller.
func (f *FlatFile) LoadStudents() ([]types.Student, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []types.Student{}, nil
		}
		return nil, fmt.Errorf("LoadStudents: open %s: %w", f.path, err)
	}
	// defer here guarantees the handle is released on every exit path,
	// including a scanner error mid-file.
	defer file.Close()

	students := make([]types.Student, 0)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		student, err := parseLine(line)
		if err != nil {
			f.log.Warn("skipping malformed line",
				slog.String("file", f.path),
				slog.Int("line", lineNo),
				slog.String("error", err.Error()),
			)
			continue
		}
		students = append(students, student)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("LoadStudents: read %s: %w", f.path, err)
	}

	return students, nil
}

// SaveStudents rewrites the whole file with the given snapshot.
//
// os.Create truncates any existing content, so the file always ends up
// holding exactly the current collection — this is a full overwrite,
// not an append. There is no atomic-rename step: a crash mid-write can
// truncate the file, which the load path tolerates line by line.
func (f *FlatFile) SaveStudents(students []types.Student) error {
	file, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("SaveStudents: create %s: %w", f.path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, s := range students {
		if _, err := fmt.Fprintln(w, formatLine(s)); err != nil {
			return fmt.Errorf("SaveStudents: write %s: %w", f.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("SaveStudents: flush %s: %w", f.path, err)
	}

	return nil
}

// parseLine reconstructs one Student from a pipe-separated line.
func parseLine(line string) (types.Student, error) {
	parts := strings.Split(line, "|")
	if len(parts) != fieldCount {
		return types.Student{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(parts))
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return types.Student{}, fmt.Errorf("bad id %q: %w", parts[0], err)
	}

	gpa, err := strconv.ParseFloat(parts[6], 64)
	if err != nil {
		return types.Student{}, fmt.Errorf("bad gpa %q: %w", parts[6], err)
	}

	return types.Student{
		ID:          id,
		FirstName:   parts[1],
		LastName:    parts[2],
		Email:       parts[3],
		PhoneNumber: parts[4],
		Course:      parts[5],
		GPA:         gpa,
	}, nil
}

// formatLine serialises one Student to its on-disk representation.
// %.2f keeps the GPA at exactly two decimal digits, matching the
// documented file format.
func formatLine(s types.Student) string {
	return fmt.Sprintf("%d|%s|%s|%s|%s|%s|%.2f",
		s.ID, s.FirstName, s.LastName, s.Email, s.PhoneNumber, s.Course, s.GPA)
}
