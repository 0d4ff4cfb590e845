package record

import (
	"context"
	"sync"

	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

// MemoryStore keeps the session record in process memory. Intended for tests
// and ephemeral runs where durability across restarts is not needed.
type MemoryStore struct {
	mu  sync.Mutex
	rec *ports.SessionRecord
}

var _ ports.RecordStore = (*MemoryStore)(nil)
var _ ports.RecordStore = (*FileStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(_ context.Context, rec ports.SessionRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := rec
	clone.Identity = rec.Identity.Clone()
	m.rec = &clone
	return nil
}

func (m *MemoryStore) Load(_ context.Context) (*ports.SessionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return nil, nil
	}
	clone := *m.rec
	clone.Identity = m.rec.Identity.Clone()
	return &clone, nil
}

func (m *MemoryStore) Delete(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = nil
	return nil
}
