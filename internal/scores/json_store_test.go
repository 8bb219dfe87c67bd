package scores

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")

	store, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("NewJSONStore() error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("store file not created: %v", err)
	}

	result := NewResult("classic", 40, 120, OutcomeDied)
	if err := store.SaveResult(result); err != nil {
		t.Fatalf("SaveResult() error: %v", err)
	}

	// Reopen from disk.
	reopened, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	loaded, err := reopened.LoadResult(result.ID)
	if err != nil {
		t.Fatalf("LoadResult() error: %v", err)
	}
	if loaded.Score != 40 || loaded.Level != "classic" || loaded.Outcome != OutcomeDied || loaded.Ticks != 120 {
		t.Errorf("loaded = %+v", loaded)
	}
	if !loaded.PlayedAt.Equal(result.PlayedAt) {
		t.Errorf("PlayedAt = %v, want %v", loaded.PlayedAt, result.PlayedAt)
	}
}

func TestJSONStoreNotFound(t *testing.T) {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.LoadResult("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadResult() error = %v, want ErrNotFound", err)
	}
}

func TestJSONStoreTopResults(t *testing.T) {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatal(err)
	}

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	results := []Result{
		{ID: "a", Score: 10, Ticks: 50, PlayedAt: base},
		{ID: "b", Score: 30, Ticks: 90, PlayedAt: base},
		{ID: "c", Score: 30, Ticks: 40, PlayedAt: base},
		{ID: "d", Score: 0, Ticks: 5, PlayedAt: base},
		{ID: "e", Score: 10, Ticks: 50, PlayedAt: base.Add(time.Hour)},
	}
	for i := range results {
		if err := store.SaveResult(&results[i]); err != nil {
			t.Fatal(err)
		}
	}

	top, err := store.TopResults(4)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"c", "b", "a", "e"}
	if len(top) != len(want) {
		t.Fatalf("TopResults(4) returned %d results", len(top))
	}
	for i, id := range want {
		if top[i].ID != id {
			t.Errorf("TopResults(4)[%d] = %s, want %s", i, top[i].ID, id)
		}
	}

	all, _ := store.TopResults(100)
	if len(all) != len(results) {
		t.Errorf("TopResults(100) returned %d, want %d", len(all), len(results))
	}
}

func TestJSONStoreCopiesResults(t *testing.T) {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "scores.json"))
	if err != nil {
		t.Fatal(err)
	}

	result := NewResult("tutorial", 10, 3, OutcomeQuit)
	if err := store.SaveResult(result); err != nil {
		t.Fatal(err)
	}
	result.Score = 9999

	loaded, err := store.LoadResult(result.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Score != 10 {
		t.Errorf("stored score changed to %d after caller mutation", loaded.Score)
	}
}

func TestOpenDefaultsToJSON(t *testing.T) {
	store, err := Open("", filepath.Join(t.TempDir(), "scores.json"), "")
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if _, ok := store.(*JSONStore); !ok {
		t.Errorf("Open(\"\") = %T, want *JSONStore", store)
	}
}
