// Package main is the entry point for Digger.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/digger/internal/game"
	"github.com/samdwyer/digger/internal/logger"
	"github.com/samdwyer/digger/internal/scores"
	"github.com/samdwyer/digger/internal/telemetry"
)

func main() {
	top := flag.Int("scores", 0, "print the best N results and exit")
	resultID := flag.String("result", "", "print the result with this ID and exit")
	flag.Parse()

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	logFile, err := logger.Init()
	if err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logFile.Close()

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	store, err := scores.Open(cfg.DBType, cfg.DBFile, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open score store: %v", err)
	}
	defer store.Close()

	if *resultID != "" {
		if err := printResult(store, *resultID); err != nil {
			log.Fatalf("Failed to read result: %v", err)
		}
		return
	}

	if *top > 0 {
		if err := printScores(store, *top); err != nil {
			log.Fatalf("Failed to read scores: %v", err)
		}
		return
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("telemetry setup failed, running without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Log.WithError(err).Error("error shutting down telemetry")
			}
		}()
	}

	g, err := game.New(cfg, store)
	if err != nil {
		log.Fatalf("Failed to initialize game: %v", err)
	}

	if err := g.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("game error")
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the high-score table to stdout.
func printScores(store scores.Storage, n int) error {
	results, err := store.TopResults(n)
	if err != nil {
		return err
	}
	for i, r := range results {
		fmt.Printf("%2d. %s  %s\n", i+1, formatResult(r), r.ID)
	}
	return nil
}

// printResult writes a single stored result to stdout.
func printResult(store scores.Storage, id string) error {
	r, err := store.LoadResult(id)
	if err != nil {
		return err
	}
	fmt.Println(formatResult(*r))
	return nil
}

func formatResult(r scores.Result) string {
	return fmt.Sprintf("%6d  %-16s %5d ticks  %-5s %s",
		r.Score, r.Level, r.Ticks, r.Outcome, r.PlayedAt.Format("2006-01-02 15:04"))
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	// The .env file may hold an unexpanded variable reference, so the
	// headers are built here from the key and dataset.
	apiKey := os.Getenv("HONEYCOMB_DIGGER_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DIGGER_DATASET")
	if dataset == "" {
		dataset = "digger"
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
