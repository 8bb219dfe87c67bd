package scores

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// JSONStore keeps results in a local JSON file.
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	data     *jsonData
}

// jsonData is the on-disk layout of the JSON store.
type jsonData struct {
	Results map[string]*Result `json:"results"`
}

// NewJSONStore opens the store at filePath, creating the file if needed.
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{
		filePath: filePath,
		data: &jsonData{
			Results: make(map[string]*Result),
		},
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("failed to load score file: %w", err)
		}
	} else {
		if err := store.saveToFile(); err != nil {
			return nil, fmt.Errorf("failed to create score file: %w", err)
		}
	}

	return store, nil
}

func (js *JSONStore) loadFromFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	file, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(file, js.data); err != nil {
		return err
	}
	if js.data.Results == nil {
		js.data.Results = make(map[string]*Result)
	}
	return nil
}

func (js *JSONStore) saveToFile() error {
	js.mutex.RLock()
	data, err := json.MarshalIndent(js.data, "", "  ")
	js.mutex.RUnlock()
	if err != nil {
		return err
	}

	return os.WriteFile(js.filePath, data, 0o644)
}

// SaveResult stores a result, replacing any result with the same ID.
func (js *JSONStore) SaveResult(result *Result) error {
	js.mutex.Lock()
	stored := *result
	js.data.Results[result.ID] = &stored
	js.mutex.Unlock()

	if err := js.saveToFile(); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// LoadResult loads a result by ID.
func (js *JSONStore) LoadResult(id string) (*Result, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()

	result, exists := js.data.Results[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	loaded := *result
	return &loaded, nil
}

// TopResults returns up to n best results.
func (js *JSONStore) TopResults(n int) ([]Result, error) {
	js.mutex.RLock()
	results := make([]Result, 0, len(js.data.Results))
	for _, r := range js.data.Results {
		results = append(results, *r)
	}
	js.mutex.RUnlock()

	rank(results)
	if n >= 0 && len(results) > n {
		results = results[:n]
	}
	return results, nil
}

// Close is a no-op for the JSON store.
func (js *JSONStore) Close() error {
	return nil
}
