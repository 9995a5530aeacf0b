// Package session holds the current admin session as an explicit state
// container created at startup. There is no ambient singleton: the DI graph
// owns the store and hands it to whoever needs it.
package session

import (
	"sync"

	authDto "dost/internal/domains/auth/model/dto"
)

type Snapshot struct {
	User    *authDto.AuthUser
	Loading bool
}

type Store struct {
	mu      sync.RWMutex
	user    *authDto.AuthUser
	loading bool

	subs    map[int]func()
	nextSub int
}

func NewStore() *Store {
	return &Store{
		loading: true,
		subs:    map[int]func(){},
	}
}

// SetUser records a signed-in user and clears the loading flag.
func (s *Store) SetUser(user authDto.AuthUser) {
	s.mu.Lock()
	copied := user
	s.user = &copied
	s.loading = false
	s.mu.Unlock()

	s.broadcast()
}

// SetLoading flips the loading gate.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()

	s.broadcast()
}

// Reset drops the session on logout.
func (s *Store) Reset() {
	s.mu.Lock()
	s.user = nil
	s.loading = false
	s.mu.Unlock()

	s.broadcast()
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{Loading: s.loading}
	if s.user != nil {
		copied := *s.user
		snap.User = &copied
	}

	return snap
}

// Subscribe registers a callback invoked after every state change and returns
// the matching unsubscribe function.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) broadcast() {
	s.mu.RLock()
	listeners := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}
