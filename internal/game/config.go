package game

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/digger/internal/world"
)

// RandomLevel selects a generated level instead of a built-in one.
const RandomLevel = "random"

// Config holds game configuration options.
type Config struct {
	// Seed for random level generation. A seed of 0 means a random seed will be generated.
	Seed int64

	// Level is a built-in level ID, or RandomLevel. Empty selects the first built-in level.
	Level string

	// Width and Height size generated levels.
	Width, Height int

	// TickInterval is the wall-clock time between simulation ticks.
	TickInterval time.Duration

	// Score storage: DBType "postgres" uses DatabaseURL, otherwise the JSON file DBFile.
	DBType      string
	DBFile      string
	DatabaseURL string
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Width:        world.DefaultWidth,
		Height:       world.DefaultHeight,
		TickInterval: 150 * time.Millisecond,
		DBType:       "json",
		DBFile:       "scores.json",
		DatabaseURL:  "host=localhost user=digger password=digger dbname=digger sslmode=disable",
	}
}

// LoadConfig reads configuration from the environment on top of DefaultConfig:
// DIGGER_SEED, DIGGER_LEVEL, DIGGER_WIDTH, DIGGER_HEIGHT, DIGGER_TICK_MS,
// DB_TYPE, DB_FILE and DATABASE_URL.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("DIGGER_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid DIGGER_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("DIGGER_LEVEL"); v != "" {
		cfg.Level = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"DIGGER_WIDTH", &cfg.Width},
		{"DIGGER_HEIGHT", &cfg.Height},
	}
	for _, e := range ints {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("invalid %s %q: must be a positive integer", e.name, v)
		}
		*e.dst = n
	}

	if v := os.Getenv("DIGGER_TICK_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return cfg, fmt.Errorf("invalid DIGGER_TICK_MS %q: must be a positive integer", v)
		}
		cfg.TickInterval = time.Duration(ms) * time.Millisecond
	}

	if v := os.Getenv("DB_TYPE"); v != "" {
		cfg.DBType = v
	}
	if v := os.Getenv("DB_FILE"); v != "" {
		cfg.DBFile = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}

	return cfg, nil
}
