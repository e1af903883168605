// internal/client/filter/store.go

// Package filter persists the active search and picker selections across
// restarts. Unlike favorites, filters are per-install, not per-identity.
package filter

import (
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/kccr/storefront/internal/client/catalog"
	"github.com/kccr/storefront/internal/client/storage"
)

const storageKey = "product_filters"

// persistedState includes the expanded flag: reopening the app with the
// filter panel the way the user left it matched the shipped behavior.
type persistedState struct {
	catalog.Criteria
	Expanded bool `json:"expanded"`
}

type Store struct {
	mu       sync.Mutex
	storage  *storage.Store
	criteria catalog.Criteria
	expanded bool
}

// New loads the persisted filters; corrupt or missing data degrades to the
// zero state.
func New(st *storage.Store) *Store {
	s := &Store{storage: st}

	var state persistedState
	if st.ReadJSON(storageKey, &state) {
		s.criteria = state.Criteria
		s.expanded = state.Expanded
	}
	return s
}

// Criteria returns a copy of the active filter criteria.
func (s *Store) Criteria() catalog.Criteria {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.criteria
}

func (s *Store) SetCategory(v string) { s.set(func(c *catalog.Criteria) { c.Category = v }) }
func (s *Store) SetBrand(v string)    { s.set(func(c *catalog.Criteria) { c.Brand = v }) }
func (s *Store) SetStore(v string)    { s.set(func(c *catalog.Criteria) { c.Store = v }) }
func (s *Store) SetGlutenFree(v string) {
	s.set(func(c *catalog.Criteria) { c.GlutenFree = v })
}

// SetSearch trims the free-text query before storing it; a blank query
// means no search filter.
func (s *Store) SetSearch(v string) {
	s.set(func(c *catalog.Criteria) { c.Search = strings.TrimSpace(v) })
}

// Reset clears every filter field but keeps the panel expansion state.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.criteria = catalog.Criteria{}
	s.persistLocked()
}

// IsActive reports whether any filter field is set.
func (s *Store) IsActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.criteria.IsZero()
}

func (s *Store) Expanded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.expanded
}

func (s *Store) ToggleExpanded() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expanded = !s.expanded
	s.persistLocked()
}

func (s *Store) SetExpanded(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.expanded == v {
		return
	}
	s.expanded = v
	s.persistLocked()
}

func (s *Store) set(mutate func(*catalog.Criteria)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.criteria)
	s.persistLocked()
}

func (s *Store) persistLocked() {
	state := persistedState{
		Criteria: s.criteria,
		Expanded: s.expanded,
	}
	if err := s.storage.WriteJSON(storageKey, state); err != nil {
		logrus.WithError(err).Warn("Could not persist filters")
	}
}
