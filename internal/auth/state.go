package auth

import (
	"sort"
	"sync"

	"accountdeck/internal/domain"
)

// State is an in-memory domain.AuthState.
//
// Every Set or Clear installs a new account reference and then calls the
// subscribed listeners synchronously, outside the lock, in the order they
// subscribed.
type State struct {
	mu        sync.RWMutex
	account   *domain.Account
	listeners map[int]func(*domain.Account)
	nextID    int
}

// NewState returns a signed-out State.
func NewState() *State {
	return &State{listeners: make(map[int]func(*domain.Account))}
}

// Current returns the signed-in account or nil.
func (s *State) Current() *domain.Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}

// Set installs a copy of account as the current account.
func (s *State) Set(account *domain.Account) {
	var next *domain.Account
	if account != nil {
		cp := *account
		next = &cp
	}
	s.replace(next)
}

// Clear signs out.
func (s *State) Clear() { s.replace(nil) }

// Subscribe registers listener and returns a function that removes it.
func (s *State) Subscribe(listener func(*domain.Account)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = listener

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
		})
	}
}

func (s *State) replace(next *domain.Account) {
	s.mu.Lock()
	s.account = next
	ids := make([]int, 0, len(s.listeners))
	for id := range s.listeners {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(*domain.Account), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.listeners[id])
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}

// Compile-time assertion that State implements domain.AuthState.
var _ domain.AuthState = (*State)(nil)
