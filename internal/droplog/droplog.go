// Package droplog records products discarded at the fetcher boundary so
// normalization failures can be inspected after the fact.
package droplog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store appends dropped-product records to a daily JSONL file.
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore creates a drop log rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Write appends one dropped-product record. Callers treat errors as
// best-effort: a broken drop log never fails a fetch.
func (s *Store) Write(store, nativeID, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	fpath := filepath.Join(s.dir, fmt.Sprintf("dropped_%s.jsonl", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	record := map[string]any{
		"store":     store,
		"native_id": nativeID,
		"reason":    reason,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	_, err = f.Write(append(data, '\n'))
	return err
}
