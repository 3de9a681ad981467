// Package results persists simulated round outcomes in SQLite for experiment
// bookkeeping.
package results

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// A Record captures the outcome of one simulated round.
type Record struct {
	ID          string
	CreatedAt   time.Time
	Qubits      int
	Intercepted bool
	SampleSize  int
	Seed        int64
	Accepted    bool
	QBER        float64
	SiftedBits  int
	KeyBits     int
	// Key is the final key as a bitstring; empty when the round aborted.
	Key string
}

// A Summary aggregates the stored rounds.
type Summary struct {
	Rounds   int
	Accepted int
	Aborted  int
	MeanQBER float64
	KeyBits  int
}

// Store manages round persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

const schema = `
CREATE TABLE IF NOT EXISTS rounds (
    id           TEXT PRIMARY KEY,
    created_at   TEXT NOT NULL,
    qubits       INTEGER NOT NULL,
    intercepted  INTEGER NOT NULL,
    sample_size  INTEGER NOT NULL,
    seed         INTEGER NOT NULL,
    accepted     INTEGER NOT NULL,
    qber         REAL NOT NULL,
    sifted_bits  INTEGER NOT NULL,
    key_bits     INTEGER NOT NULL,
    key          TEXT NOT NULL
)`

// Open initializes or connects to the results database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, errors.Wrapf(execErr, "apply pragma %q", pragma)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "apply schema")
	}
	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Add inserts a round record, assigning it an identifier and timestamp, and
// returns the stored record.
func (s *Store) Add(ctx context.Context, rec Record) (Record, error) {
	rec.ID = uuid.NewString()
	rec.CreatedAt = time.Now().UTC()
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO rounds (
            id, created_at, qubits, intercepted, sample_size, seed,
            accepted, qber, sifted_bits, key_bits, key
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.CreatedAt.Format(time.RFC3339Nano),
		rec.Qubits,
		boolToInt(rec.Intercepted),
		rec.SampleSize,
		rec.Seed,
		boolToInt(rec.Accepted),
		rec.QBER,
		rec.SiftedBits,
		rec.KeyBits,
		rec.Key,
	)
	if err != nil {
		return Record{}, errors.Wrap(err, "insert round")
	}
	return rec, nil
}

// List returns all stored rounds ordered by creation time.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, created_at, qubits, intercepted, sample_size, seed,
                accepted, qber, sifted_bits, key_bits, key
         FROM rounds ORDER BY created_at`)
	if err != nil {
		return nil, errors.Wrap(err, "list rounds")
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var (
			rec         Record
			createdRaw  string
			intercepted int
			accepted    int
		)
		if err := rows.Scan(
			&rec.ID, &createdRaw, &rec.Qubits, &intercepted, &rec.SampleSize,
			&rec.Seed, &accepted, &rec.QBER, &rec.SiftedBits, &rec.KeyBits, &rec.Key,
		); err != nil {
			return nil, errors.Wrap(err, "scan round")
		}
		rec.Intercepted = intercepted != 0
		rec.Accepted = accepted != 0
		if created, err := time.Parse(time.RFC3339Nano, createdRaw); err == nil {
			rec.CreatedAt = created
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// Summarize aggregates all stored rounds.
func (s *Store) Summarize(ctx context.Context) (Summary, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(1),
                COALESCE(SUM(accepted), 0),
                COALESCE(AVG(qber), 0),
                COALESCE(SUM(key_bits), 0)
         FROM rounds`)
	var sum Summary
	if err := row.Scan(&sum.Rounds, &sum.Accepted, &sum.MeanQBER, &sum.KeyBits); err != nil {
		return Summary{}, errors.Wrap(err, "summarize rounds")
	}
	sum.Aborted = sum.Rounds - sum.Accepted
	return sum, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
