// Package record provides session record persistence backends.
package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

// FileStore persists the session record as a single JSON file. Writes go
// through a temporary file and an atomic rename, so a crash leaves either the
// old record or the new one, never a torn write.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a FileStore at path, creating parent directories as
// needed.
func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("record dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (f *FileStore) Save(_ context.Context, rec ports.SessionRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("swap record: %w", err)
	}
	return nil
}

func (f *FileStore) Load(ctx context.Context) (*ports.SessionRecord, error) {
	f.mu.Lock()
	data, err := os.ReadFile(f.path)
	f.mu.Unlock()

	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}

	var rec ports.SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		// Corrupt record: remove it and report absence.
		_ = f.Delete(ctx)
		return nil, nil
	}
	return &rec, nil
}

func (f *FileStore) Delete(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete record: %w", err)
	}
	return nil
}
