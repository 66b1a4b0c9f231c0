// Package sqlite provides a SQLite-backed implementation of the
// storage.Backend interface using Go's standard database/sql package.
//
// WHY SQLite AS AN ALTERNATIVE BACKEND?
// ─────────────────────────────────────
// SQLite stores everything in a single file on disk — no server
// process, no network, nothing to install beyond the driver. It keeps
// the same "one local file" deployment story as the flat text backend
// while surviving records that contain the | separator.
//
// The contract is still the coarse snapshot one: LoadStudents reads the
// whole table, SaveStudents replaces the whole table. SaveStudents runs
// inside a single transaction so the table is never observed half
// rewritten, but that is an implementation detail of "rewrite the whole
// store", not a new durability guarantee.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/students-cli/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	// Without this the sql.Open("sqlite3", ...) call would fail with
	// "unknown driver".
	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete database implementation of storage.Backend.
// It holds a *sql.DB, the connection pool managed by database/sql.
type SQLite struct {
	db *sql.DB
}

// New opens the SQLite database at path, creates the students table if
// it does not already exist, and returns a ready-to-use backend.
func New(path string) (*SQLite, error) {
	// sql.Open does NOT open a real connection yet — it just validates
	// the driver name and DSN. The first actual connection happens on
	// the first query.
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe on every startup.
	//
	// Note: id is the record's own identifier (assigned by the service
	// layer's next-ID counter), NOT an autoincrement column. The
	// implicit rowid preserves insertion order for LoadStudents.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			id           INTEGER NOT NULL,
			first_name   TEXT    NOT NULL,
			last_name    TEXT    NOT NULL,
			email        TEXT    NOT NULL,
			phone_number TEXT    NOT NULL,
			course       TEXT    NOT NULL,
			gpa          REAL    NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &SQLite{db: db}, nil
}

// LoadStudents returns every stored record in insertion (rowid) order,
// mirroring the line order of the flat-file backend.
func (s *SQLite) LoadStudents() ([]types.Student, error) {
	rows, err := s.db.Query(`
		SELECT id, first_name, last_name, email, phone_number, course, gpa
		FROM students
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("LoadStudents: query: %w", err)
	}
	defer rows.Close() // must close rows to free the DB connection

	// Pre-allocate an empty (non-nil) slice: "no students yet" is a
	// valid store, not an error.
	students := make([]types.Student, 0)

	for rows.Next() {
		var student types.Student
		if err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.Email,
			&student.PhoneNumber,
			&student.Course,
			&student.GPA,
		); err != nil {
			return nil, fmt.Errorf("LoadStudents: scan row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("LoadStudents: rows iteration: %w", err)
	}

	return students, nil
}

// SaveStudents replaces the whole table with the given snapshot.
//
// DELETE + re-INSERT inside one transaction is the SQL spelling of
// "truncate the file and rewrite every line". Insert order assigns
// fresh increasing rowids, so the next LoadStudents sees the slice
// order again.
func (s *SQLite) SaveStudents(students []types.Student) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("SaveStudents: begin tx: %w", err)
	}
	// Rollback after a successful Commit is a no-op, so deferring it
	// unconditionally covers every early-return path below.
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM students"); err != nil {
		return fmt.Errorf("SaveStudents: clear table: %w", err)
	}

	// Prepare once, execute per record. The ? placeholders keep values
	// as pure data — never spliced into the SQL text.
	stmt, err := tx.Prepare(`
		INSERT INTO students (id, first_name, last_name, email, phone_number, course, gpa)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("SaveStudents: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, student := range students {
		_, err := stmt.Exec(
			student.ID,
			student.FirstName,
			student.LastName,
			student.Email,
			student.PhoneNumber,
			student.Course,
			student.GPA,
		)
		if err != nil {
			return fmt.Errorf("SaveStudents: insert id %d: %w", student.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("SaveStudents: commit: %w", err)
	}

	return nil
}

// Close releases the underlying connection pool. The CLI calls this on
// exit; it is safe to call once after all other methods.
func (s *SQLite) Close() error {
	return s.db.Close()
}
