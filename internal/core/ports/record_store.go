package ports

import (
	"context"

	"github.com/marketsquare/vendor-portal/internal/core/domain"
)

// SessionRecord is the durable serialization of a session. It carries the
// opaque token and the identity as two separate entries under a fixed name;
// no TTL or signature is applied — staleness is only ever discovered by the
// remote API rejecting the token.
type SessionRecord struct {
	Token    string           `json:"token"`
	Identity *domain.Identity `json:"identity,omitempty"`
}

// RecordStore persists the single session record of this process.
// Implementations must be safe for concurrent use.
type RecordStore interface {
	// Save overwrites the record.
	Save(ctx context.Context, rec SessionRecord) error

	// Load retrieves the record. Returns (nil, nil) when no record exists.
	// A malformed or partially written record is treated as absent: the
	// implementation removes it and returns (nil, nil).
	Load(ctx context.Context) (*SessionRecord, error)

	// Delete removes the record. Deleting an absent record is not an error.
	Delete(ctx context.Context) error
}
