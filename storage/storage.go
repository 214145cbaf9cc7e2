// Package storage persists finished quiz sessions and their query
// histories to SQLite, keeping a record of past games for the history
// command.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/regexsoup-xyz/go-regexsoup/regex"
	"github.com/regexsoup-xyz/go-regexsoup/session"
)

// Store handles SQLite database operations for session logging.
type Store struct {
	db *sql.DB
}

// SessionRecord is one finished quiz session.
type SessionRecord struct {
	ID         string
	Channel    string
	Difficulty int
	Answer     string
	StartedAt  time.Time
	EndedAt    time.Time
	Solved     bool
	Winner     string
}

// QueryRow is one recorded query of a session.
type QueryRow struct {
	SessionID string
	Seq       int
	Input     string
	Matched   bool
	AskedAt   time.Time
}

// New opens (or creates) the database at dbPath and migrates the schema.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		channel TEXT NOT NULL,
		difficulty INTEGER NOT NULL,
		answer TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		ended_at DATETIME NOT NULL,
		solved INTEGER NOT NULL DEFAULT 0,
		winner TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS queries (
		session_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		input TEXT NOT NULL,
		matched INTEGER NOT NULL,
		asked_at DATETIME NOT NULL,
		PRIMARY KEY (session_id, seq),
		FOREIGN KEY (session_id) REFERENCES sessions(id)
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_channel ON sessions(channel);
	CREATE INDEX IF NOT EXISTS idx_sessions_ended ON sessions(ended_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveSession records a finished quiz and its full query history in one
// transaction.
func (s *Store) SaveSession(quiz *session.Quiz, channel string, solved bool, winner string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO sessions (id, channel, difficulty, answer, started_at, ended_at, solved, winner)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		quiz.ID(), channel, quiz.Difficulty(), regex.Render(quiz.Answer()),
		quiz.StartedAt(), time.Now(), solved, winner,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	for seq, record := range quiz.History() {
		_, err = tx.Exec(
			`INSERT INTO queries (session_id, seq, input, matched, asked_at)
			 VALUES (?, ?, ?, ?, ?)`,
			quiz.ID(), seq, record.Input, record.Matched, record.AskedAt,
		)
		if err != nil {
			return fmt.Errorf("insert query %d: %w", seq, err)
		}
	}

	return tx.Commit()
}

// RecentSessions lists finished sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]SessionRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, channel, difficulty, answer, started_at, ended_at, solved, winner
		 FROM sessions ORDER BY ended_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		if err := rows.Scan(&r.ID, &r.Channel, &r.Difficulty, &r.Answer,
			&r.StartedAt, &r.EndedAt, &r.Solved, &r.Winner); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SessionQueries returns a session's query history in asked order.
func (s *Store) SessionQueries(sessionID string) ([]QueryRow, error) {
	rows, err := s.db.Query(
		`SELECT session_id, seq, input, matched, asked_at
		 FROM queries WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []QueryRow
	for rows.Next() {
		var r QueryRow
		if err := rows.Scan(&r.SessionID, &r.Seq, &r.Input, &r.Matched, &r.AskedAt); err != nil {
			return nil, fmt.Errorf("scan query: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
