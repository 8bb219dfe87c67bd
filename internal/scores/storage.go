// Package scores records finished runs and serves the high-score table.
package scores

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a result does not exist.
var ErrNotFound = errors.New("result not found")

// Outcome describes how a run ended.
type Outcome string

const (
	OutcomeDied Outcome = "died"
	OutcomeQuit Outcome = "quit"
)

// Result is one finished run.
type Result struct {
	ID       string    `json:"id"`
	Level    string    `json:"level"`
	Score    int       `json:"score"`
	Ticks    int       `json:"ticks"`
	Outcome  Outcome   `json:"outcome"`
	PlayedAt time.Time `json:"playedAt"`
}

// NewResult creates a result with a fresh ID, stamped with the current time.
func NewResult(level string, score, ticks int, outcome Outcome) *Result {
	return &Result{
		ID:       uuid.NewString(),
		Level:    level,
		Score:    score,
		Ticks:    ticks,
		Outcome:  outcome,
		PlayedAt: time.Now().UTC(),
	}
}

// Storage defines the interface for high-score persistence.
type Storage interface {
	SaveResult(result *Result) error
	LoadResult(id string) (*Result, error)
	TopResults(n int) ([]Result, error)
	Close() error
}

// rank sorts results best first: higher score, then fewer ticks, then earlier.
func rank(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Ticks != b.Ticks {
			return a.Ticks < b.Ticks
		}
		return a.PlayedAt.Before(b.PlayedAt)
	})
}

// Open returns the store selected by dbType: "postgres" uses databaseURL,
// anything else the JSON file at dbFile.
func Open(dbType, dbFile, databaseURL string) (Storage, error) {
	if dbType == "postgres" {
		return NewPostgresStore(databaseURL)
	}
	return NewJSONStore(dbFile)
}
