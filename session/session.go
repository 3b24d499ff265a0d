// Package session holds the client-side record of who is logged in. The
// store is the only writer of that state: callers mutate it through SetUser,
// Logout and SetLoading, and observe it through the accessors or Subscribe.
package session

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/spotilike/go-client/storage"
	"github.com/spotilike/go-client/users"
)

// State is the snapshot delivered to subscribers after every mutation.
// IsAuthenticated is always equal to (CurrentUser != nil).
type State struct {
	CurrentUser     *users.User
	IsAuthenticated bool
	IsLoading       bool
}

// Store is the process-wide session state. Construct one per process (or one
// per test case; tests must never share an instance across cases).
type Store struct {
	storage     storage.Repo
	lock        sync.RWMutex
	state       State
	subscribers []func(State)
}

func New(storageRepo storage.Repo) (*Store, error) {
	if storageRepo == nil {
		return nil, errors.New("[session.New] storage repo is required")
	}
	return &Store{storage: storageRepo}, nil
}

// SetUser sets the current user and re-derives the authenticated flag. A
// non-nil user is persisted under storage.UserKey; a nil user clears the
// persisted record, keeping storage consistent with the in-memory state.
func (s *Store) SetUser(user *users.User) {
	s.mutate(func(st *State) {
		st.CurrentUser = user
		st.IsAuthenticated = user != nil
	})

	if user != nil {
		data, err := json.Marshal(user)
		if err != nil {
			log.Err(err).Msg("Failed to serialize user record")
			return
		}
		if err := s.storage.Set(storage.UserKey, string(data)); err != nil {
			log.Err(err).Msg("Failed to persist user record")
		}
		return
	}
	if err := s.storage.Delete(storage.UserKey); err != nil {
		log.Err(err).Msg("Failed to remove persisted user record")
	}
}

// Logout clears the session state and removes the persisted user record.
// The bearer token is owned by the auth service and is not touched here.
func (s *Store) Logout() {
	s.mutate(func(st *State) {
		st.CurrentUser = nil
		st.IsAuthenticated = false
	})

	if err := s.storage.Delete(storage.UserKey); err != nil {
		log.Err(err).Msg("Failed to remove persisted user record")
	}
}

// LoadUserFromStorage restores the session from the persisted user record.
// Called once at startup. A corrupt record resets the store to a clean
// anonymous state via Logout. The stored token is not re-verified.
func (s *Store) LoadUserFromStorage() {
	raw, ok, err := s.storage.Get(storage.UserKey)
	if err != nil {
		log.Err(err).Msg("Failed to read persisted user record")
		return
	}
	if !ok {
		return
	}

	var user users.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Err(err).Msg("Corrupt persisted user record, resetting session")
		s.Logout()
		return
	}

	s.mutate(func(st *State) {
		st.CurrentUser = &user
		st.IsAuthenticated = true
	})
}

// SetLoading toggles the transient busy flag shown while an auth operation
// is in flight. Advisory only; overlapping operations are last-writer-wins.
func (s *Store) SetLoading(loading bool) {
	s.mutate(func(st *State) {
		st.IsLoading = loading
	})
}

func (s *Store) CurrentUser() *users.User {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.state.CurrentUser
}

func (s *Store) IsAuthenticated() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.state.IsAuthenticated
}

func (s *Store) IsLoading() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.state.IsLoading
}

// Subscribe registers fn to be called with the post-mutation state after
// every mutation. Subscriptions last for the lifetime of the store.
func (s *Store) Subscribe(fn func(State)) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// mutate applies fn under the write lock, then notifies subscribers outside
// of it so a subscriber may call the accessors without deadlocking.
func (s *Store) mutate(fn func(*State)) {
	s.lock.Lock()
	fn(&s.state)
	state := s.state
	subscribers := make([]func(State), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.lock.Unlock()

	for _, subscriber := range subscribers {
		subscriber(state)
	}
}
