package scores

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/samdwyer/digger/internal/logger"
)

// PostgresStore keeps results in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to PostgreSQL and makes sure the schema exists.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS results (
		id TEXT PRIMARY KEY,
		level TEXT NOT NULL,
		score INTEGER NOT NULL,
		ticks INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		played_at TIMESTAMP WITH TIME ZONE NOT NULL
	);

	CREATE INDEX IF NOT EXISTS results_score_idx ON results (score DESC, ticks ASC);
	`

	_, err := ps.db.Exec(schema)
	return err
}

// SaveResult stores a result, replacing any result with the same ID.
func (ps *PostgresStore) SaveResult(result *Result) error {
	query := `
	INSERT INTO results (id, level, score, ticks, outcome, played_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (id)
	DO UPDATE SET
		level = $2, score = $3, ticks = $4, outcome = $5, played_at = $6
	`

	_, err := ps.db.Exec(query,
		result.ID, result.Level, result.Score, result.Ticks,
		string(result.Outcome), result.PlayedAt)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// LoadResult loads a result by ID.
func (ps *PostgresStore) LoadResult(id string) (*Result, error) {
	query := `SELECT id, level, score, ticks, outcome, played_at FROM results WHERE id = $1`

	var result Result
	var outcome string
	err := ps.db.QueryRow(query, id).Scan(
		&result.ID, &result.Level, &result.Score, &result.Ticks, &outcome, &result.PlayedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load result: %w", err)
	}
	result.Outcome = Outcome(outcome)

	return &result, nil
}

// TopResults returns up to n best results.
func (ps *PostgresStore) TopResults(n int) ([]Result, error) {
	query := `
	SELECT id, level, score, ticks, outcome, played_at FROM results
	ORDER BY score DESC, ticks ASC, played_at ASC
	LIMIT $1
	`

	rows, err := ps.db.Query(query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var result Result
		var outcome string
		if err := rows.Scan(&result.ID, &result.Level, &result.Score, &result.Ticks, &outcome, &result.PlayedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		result.Outcome = Outcome(outcome)
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read results: %w", err)
	}

	return results, nil
}

// Close closes the database connection.
func (ps *PostgresStore) Close() error {
	logger.Component("scores").Info("closing database connection")
	return ps.db.Close()
}
