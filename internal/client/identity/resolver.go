// internal/client/identity/resolver.go

// Package identity derives the storage key that scopes per-user state such
// as favorites. Anonymous installs get a generated device token that lives
// for the lifetime of the install; a logged-in user is keyed by normalized
// email so favorites follow the account across devices.
package identity

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kccr/storefront/internal/client/storage"
)

const (
	deviceTokenKey = "device_id"

	// AnonKey is the fallback identity when the device token cannot be
	// generated or persisted.
	AnonKey = "anon"
)

// Resolver tracks the current identity key and notifies subscribers
// synchronously on every auth transition, so dependent stores are never
// left pointing at a stale identity.
type Resolver struct {
	mu        sync.Mutex
	store     *storage.Store
	deviceKey string
	userEmail string // normalized; empty when logged out
	subs      map[int]func(key string)
	nextSubID int
}

func NewResolver(store *storage.Store) *Resolver {
	r := &Resolver{
		store: store,
		subs:  make(map[int]func(string)),
	}
	r.deviceKey = r.loadOrCreateDeviceToken()
	return r
}

// loadOrCreateDeviceToken returns the persisted per-install token, creating
// it on first run. If the token cannot be persisted the install degrades to
// the shared anonymous key rather than minting a fresh identity every start.
func (r *Resolver) loadOrCreateDeviceToken() string {
	var token string
	if r.store.ReadJSON(deviceTokenKey, &token) && token != "" {
		return token
	}

	token = "device_" + uuid.New().String()
	if err := r.store.WriteJSON(deviceTokenKey, token); err != nil {
		logrus.WithError(err).Warn("Could not persist device token, using anonymous identity")
		return AnonKey
	}
	return token
}

// CurrentKey returns the active identity key: the normalized user email
// when authenticated, the device token otherwise.
func (r *Resolver) CurrentKey() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.userEmail != "" {
		return r.userEmail
	}
	return r.deviceKey
}

// SetUser records a login. The email is normalized (trimmed, lower-cased)
// before use; an empty email is treated as a logout.
func (r *Resolver) SetUser(email string) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		r.ClearUser()
		return
	}

	r.mu.Lock()
	if r.userEmail == normalized {
		r.mu.Unlock()
		return
	}
	r.userEmail = normalized
	key := normalized
	subs := r.snapshotSubs()
	r.mu.Unlock()

	notify(subs, key)
}

// ClearUser records a logout, reverting to the device identity.
func (r *Resolver) ClearUser() {
	r.mu.Lock()
	if r.userEmail == "" {
		r.mu.Unlock()
		return
	}
	r.userEmail = ""
	key := r.deviceKey
	subs := r.snapshotSubs()
	r.mu.Unlock()

	notify(subs, key)
}

// Subscribe registers fn to be called with the new identity key on every
// auth transition. The returned function unsubscribes.
func (r *Resolver) Subscribe(fn func(key string)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSubID
	r.nextSubID++
	r.subs[id] = fn

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs, id)
	}
}

func (r *Resolver) snapshotSubs() []func(string) {
	subs := make([]func(string), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func(string), key string) {
	for _, fn := range subs {
		fn(key)
	}
}
