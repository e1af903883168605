// internal/client/favorites/store.go

// Package favorites keeps the per-identity favorite product ids. Each
// identity (device token or logged-in user) owns an independent set;
// switching identity never merges or drops another identity's set. The full
// map is persisted on every mutation.
package favorites

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/kccr/storefront/internal/client/identity"
	"github.com/kccr/storefront/internal/client/storage"
)

const (
	storageKey = "favorites_v2"

	// legacyStorageKey held a single flat id list before favorites became
	// identity-scoped. It is migrated and removed on first load.
	legacyStorageKey = "favorites"
)

type persistedState struct {
	ByIdentity      map[string][]string `json:"byUser"`
	CurrentIdentity string              `json:"currentUserKey"`
}

// Store is safe for concurrent use; one mutex serializes every
// read-modify-write so racing toggles cannot lose updates.
type Store struct {
	mu          sync.Mutex
	storage     *storage.Store
	byIdentity  map[string][]string
	current     string
	unsubscribe func()
}

// New loads persisted favorites, migrates the legacy format if present, and
// subscribes to identity changes so the active set always tracks the auth
// state. Call Close to unsubscribe.
func New(st *storage.Store, resolver *identity.Resolver) *Store {
	s := &Store{
		storage:    st,
		byIdentity: make(map[string][]string),
	}

	s.load(resolver.CurrentKey())
	s.unsubscribe = resolver.Subscribe(s.SetCurrentIdentity)
	return s
}

// load runs at most once per store instance. Current-schema data passes
// through unchanged; a legacy flat list is moved under the resolved
// identity and its key deleted, which makes a second run a no-op.
func (s *Store) load(identityKey string) {
	s.current = identityKey

	var state persistedState
	if s.storage.ReadJSON(storageKey, &state) && state.ByIdentity != nil && state.CurrentIdentity != "" {
		s.byIdentity = state.ByIdentity
		return
	}

	var legacy []string
	if s.storage.ReadJSON(legacyStorageKey, &legacy) {
		s.byIdentity[identityKey] = dedupe(legacy)
		if err := s.storage.Delete(legacyStorageKey); err != nil {
			logrus.WithError(err).Warn("Could not remove legacy favorites key")
		}
		s.persistLocked()
		return
	}

	// Nothing stored yet; start empty.
}

func (s *Store) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// SetCurrentIdentity switches the active set without touching any other
// identity's favorites.
func (s *Store) SetCurrentIdentity(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == key {
		return
	}
	s.current = key
	s.persistLocked()
}

// List returns the current identity's favorite ids in insertion order.
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byIdentity[s.current]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

func (s *Store) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.byIdentity[s.current], id)
}

func (s *Store) Add(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if contains(s.byIdentity[s.current], id) {
		return
	}
	s.byIdentity[s.current] = append(s.byIdentity[s.current], id)
	s.persistLocked()
}

func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byIdentity[s.current]
	if !contains(ids, id) {
		return
	}

	out := make([]string, 0, len(ids)-1)
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	s.byIdentity[s.current] = out
	s.persistLocked()
}

// Toggle flips membership under the store mutex, so the read and the write
// cannot interleave with another toggle on the same id.
func (s *Store) Toggle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byIdentity[s.current]
	if contains(ids, id) {
		out := make([]string, 0, len(ids)-1)
		for _, v := range ids {
			if v != id {
				out = append(out, v)
			}
		}
		s.byIdentity[s.current] = out
	} else {
		s.byIdentity[s.current] = append(ids, id)
	}
	s.persistLocked()
}

// Clear empties only the current identity's set.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byIdentity[s.current] = []string{}
	s.persistLocked()
}

// persistLocked writes the whole map. Favorites are convenience state, so a
// failed write degrades to a logged warning instead of an error the UI has
// to handle.
func (s *Store) persistLocked() {
	state := persistedState{
		ByIdentity:      s.byIdentity,
		CurrentIdentity: s.current,
	}
	if err := s.storage.WriteJSON(storageKey, state); err != nil {
		logrus.WithError(err).Warn("Could not persist favorites")
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
