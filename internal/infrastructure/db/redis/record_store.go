package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/marketsquare/vendor-portal/internal/core/domain"
	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

// RecordStore persists the session record in Redis under two fixed keys: one
// for the opaque token, one for the serialized identity. No TTL is applied;
// staleness is detected only by the remote API rejecting the token.
type RecordStore struct {
	client *redis.Client
	name   string
}

var _ ports.RecordStore = (*RecordStore)(nil)

// NewRecordStore creates a RecordStore. name scopes the keys so that several
// deployments can share one Redis instance.
func NewRecordStore(client *redis.Client, name string) *RecordStore {
	if name == "" {
		name = "portal"
	}
	return &RecordStore{client: client, name: name}
}

func (r *RecordStore) Save(ctx context.Context, rec ports.SessionRecord) error {
	identity, err := json.Marshal(rec.Identity)
	if err != nil {
		return fmt.Errorf("encode identity: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.tokenKey(), rec.Token, 0)
	pipe.Set(ctx, r.identityKey(), identity, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}

func (r *RecordStore) Load(ctx context.Context) (*ports.SessionRecord, error) {
	token, err := r.client.Get(ctx, r.tokenKey()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session token: %w", err)
	}

	rec := ports.SessionRecord{Token: token}

	raw, err := r.client.Get(ctx, r.identityKey()).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		// Token without identity: a partially written record, treat as absent.
		_ = r.Delete(ctx)
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("load session identity: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		_ = r.Delete(ctx)
		return nil, nil
	}
	rec.Identity = &identity

	return &rec, nil
}

func (r *RecordStore) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.tokenKey(), r.identityKey()).Err(); err != nil {
		return fmt.Errorf("delete session record: %w", err)
	}
	return nil
}

func (r *RecordStore) tokenKey() string {
	return fmt.Sprintf("session:%s:token", r.name)
}

func (r *RecordStore) identityKey() string {
	return fmt.Sprintf("session:%s:identity", r.name)
}
