package settings

import "sync"

// Update is either a replacement value or a function of the previous value.
type Update[T any] struct {
	value T
	fn    func(prev T) T
}

// Set returns an Update that replaces the current value with v.
func Set[T any](v T) Update[T] { return Update[T]{value: v} }

// Apply returns an Update that derives the next value from the previous one.
func Apply[T any](fn func(prev T) T) Update[T] { return Update[T]{fn: fn} }

// Resolve returns the value u produces when applied to prev.
func (u Update[T]) Resolve(prev T) T {
	if u.fn != nil {
		return u.fn(prev)
	}
	return u.value
}

// Setter receives updates for one piece of state.
type Setter[T any] func(Update[T])

// State holds a value and applies updates to it one at a time.
type State[T any] struct {
	mu    sync.Mutex
	value T

	// OnChange, when set, runs after each update with the new value.
	OnChange func(T)
}

// NewState returns a State holding initial.
func NewState[T any](initial T) *State[T] {
	return &State[T]{value: initial}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set applies u to the current value.
func (s *State[T]) Set(u Update[T]) {
	s.mu.Lock()
	s.value = u.Resolve(s.value)
	next := s.value
	onChange := s.OnChange
	s.mu.Unlock()

	if onChange != nil {
		onChange(next)
	}
}

// Setter returns s.Set as a Setter.
func (s *State[T]) Setter() Setter[T] { return s.Set }
