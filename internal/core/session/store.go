// Package session holds the single authoritative container for the signed-in
// identity and its bearer token. All authentication state flows through one
// Store: the route guard reads it, the authorization transport reads and
// clears it, and handlers mutate it in response to remote API results.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/marketsquare/vendor-portal/internal/api/metrics"
	"github.com/marketsquare/vendor-portal/internal/core/domain"
	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

// Store owns the in-memory session and its persisted record. Login, Logout
// and UpdateIdentity are the only mutation paths; each one updates both the
// token and identity atomically and re-persists before returning.
//
// A failing record store degrades durability only: the in-memory mutation
// always succeeds, the failure is logged and the process continues with a
// memory-only session.
type Store struct {
	mu      sync.RWMutex
	session domain.Session

	record ports.RecordStore
	log    zerolog.Logger

	subMu   sync.Mutex
	subs    map[int]func(domain.Session)
	nextSub int
}

// NewStore creates an empty Store backed by the given record store.
func NewStore(record ports.RecordStore, log zerolog.Logger) *Store {
	return &Store{
		record: record,
		log:    log,
		subs:   make(map[int]func(domain.Session)),
	}
}

// Login establishes a new session from a (token, identity) pair obtained
// through the remote authentication exchange. The token must be non-empty;
// the caller is responsible for having validated the credential remotely.
func (s *Store) Login(ctx context.Context, token string, identity domain.Identity) {
	if token == "" {
		s.log.Warn().Msg("session: login called with empty token, ignored")
		return
	}

	s.mu.Lock()
	s.session = domain.Session{Token: token, Identity: identity.Clone()}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.notify(snapshot)
}

// Logout clears the session and deletes the persisted record. Calling it when
// already signed out leaves the same end state and notifies nobody.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	wasAuthenticated := s.session.Authenticated()
	s.session = domain.Session{}
	s.mu.Unlock()

	if err := s.record.Delete(ctx); err != nil {
		s.log.Warn().Err(err).Msg("session: failed to delete persisted record")
	}
	if wasAuthenticated {
		s.notify(domain.Session{})
	}
}

// UpdateIdentity merges patch into the current identity and re-persists.
// When no identity is held (signed out) there is nothing to update and the
// call is a no-op.
func (s *Store) UpdateIdentity(ctx context.Context, patch domain.IdentityPatch) {
	s.mu.Lock()
	if s.session.Identity == nil {
		s.mu.Unlock()
		return
	}
	identity := s.session.Identity.Clone()
	patch.Apply(identity)
	s.session.Identity = identity
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
	s.notify(snapshot)
}

// Restore rehydrates the session from the persisted record. It is called once
// at startup, before the first read. An absent or malformed record leaves the
// session empty; restore never fails the process.
func (s *Store) Restore(ctx context.Context) {
	rec, err := s.record.Load(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session: failed to load persisted record, starting signed out")
		metrics.SessionRestoresTotal.WithLabelValues("empty").Inc()
		return
	}
	if rec == nil {
		metrics.SessionRestoresTotal.WithLabelValues("empty").Inc()
		return
	}
	if rec.Token == "" {
		// An identity without a token is an invalid record.
		s.log.Warn().Msg("session: persisted record has no token, discarding")
		if err := s.record.Delete(ctx); err != nil {
			s.log.Warn().Err(err).Msg("session: failed to delete invalid record")
		}
		metrics.SessionRestoresTotal.WithLabelValues("empty").Inc()
		return
	}

	s.mu.Lock()
	s.session = domain.Session{Token: rec.Token, Identity: rec.Identity.Clone()}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	metrics.SessionRestoresTotal.WithLabelValues("restored").Inc()
	s.notify(snapshot)
}

// Session returns a consistent snapshot of the current session. Mutations
// made through the store are visible to every subsequent call; the snapshot
// itself is a copy and safe to retain.
func (s *Store) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to be called with a session snapshot after every
// mutation. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(domain.Session)) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) snapshotLocked() domain.Session {
	return domain.Session{Token: s.session.Token, Identity: s.session.Identity.Clone()}
}

func (s *Store) persist(ctx context.Context, snapshot domain.Session) {
	rec := ports.SessionRecord{Token: snapshot.Token, Identity: snapshot.Identity}
	if err := s.record.Save(ctx, rec); err != nil {
		s.log.Warn().Err(err).Msg("session: failed to persist record, continuing in memory only")
	}
}

func (s *Store) notify(snapshot domain.Session) {
	s.subMu.Lock()
	fns := make([]func(domain.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
