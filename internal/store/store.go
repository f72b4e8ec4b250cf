package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/store/migrations"
)

// Store wraps a SQLite database connection for invocation history.
// It implements the domain.HistoryStore interface.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// New opens the database at path and runs pending migrations.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db, path); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(path)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db, path: path, now: time.Now}, nil
}

// NewWithDB creates a Store from an existing database connection.
// Useful for testing with pre-configured databases.
func NewWithDB(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func configureSQLite(db *sql.DB, path string) error {
	if path == ":memory:" {
		// Every pooled connection would get its own database.
		db.SetMaxOpenConns(1)
		return nil
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}
	return nil
}

// setDBPermissions sets restrictive file permissions on the database and its WAL/SHM files.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

// Record stores a history record. Missing IDs and timestamps are filled in.
func (s *Store) Record(record domain.HistoryRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now()
	}

	_, err := s.db.Exec(
		`INSERT INTO history (id, sender, line, outcome, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Sender,
		record.Line,
		record.Outcome,
		record.Error,
		record.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

func where(filter domain.HistoryFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	if filter.Sender != "" {
		clauses = append(clauses, "sender = ?")
		args = append(args, filter.Sender)
	}

	if filter.Outcome != "" {
		clauses = append(clauses, "outcome = ?")
		args = append(args, filter.Outcome)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// List returns records matching the filter, newest first.
func (s *Store) List(filter domain.HistoryFilter) ([]domain.HistoryRecord, error) {
	clause, args := where(filter)
	query := `SELECT id, sender, line, outcome, error, created_at FROM history` +
		clause + ` ORDER BY created_at DESC, rowid DESC`

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []domain.HistoryRecord
	for rows.Next() {
		var (
			r       domain.HistoryRecord
			created string
		)
		if err := rows.Scan(&r.ID, &r.Sender, &r.Line, &r.Outcome, &r.Error, &created); err != nil {
			return nil, err
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", created, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Count(filter domain.HistoryFilter) (int, error) {
	clause, args := where(filter)

	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM history`+clause, args...).Scan(&count)
	return count, err
}

func (s *Store) Clear() (int64, error) {
	res, err := s.db.Exec(`DELETE FROM history`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

var _ domain.HistoryStore = (*Store)(nil)
