// Package store holds the dashboard's navigation and visibility flags.
//
// A Store is created by the caller and handed to the views that need it;
// there is no package-level instance, so tests build as many independent
// stores as they like. Every write notifies subscribers synchronously with
// the previous and next state.
package store

import (
	"sync"

	"github.com/google/uuid"
)

// State is the full set of UI flags.
type State struct {
	SidebarOpen   bool
	ActivePage    Page
	AuthModalOpen bool
	LoggedIn      bool
}

// DefaultState is the state a fresh session starts in.
func DefaultState() State {
	return State{
		SidebarOpen: true,
		ActivePage:  PageLeads,
	}
}

// Listener observes a state transition.
type Listener func(prev, next State)

type subscription struct {
	id string
	fn Listener
}

// Store is an observable container for State. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	state State
	subs  []subscription
}

// New returns a store holding initial.
func New(initial State) *Store {
	return &Store{state: initial}
}

// State returns a copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn for every subsequent write and returns a function
// that removes it. Listeners run in subscription order on the writer's goroutine.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	id := uuid.New().String()
	s.mu.Lock()
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Store) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
			return
		}
	}
}

// update applies fn to the state and notifies subscribers outside the lock.
func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	prev := s.state
	fn(&s.state)
	next := s.state
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(prev, next)
	}
}

// ToggleSidebar flips SidebarOpen.
func (s *Store) ToggleSidebar() {
	s.update(func(st *State) { st.SidebarOpen = !st.SidebarOpen })
}

// SetActivePage switches the rendered page.
func (s *Store) SetActivePage(p Page) {
	s.update(func(st *State) { st.ActivePage = p })
}

// OpenAuthModal shows the authentication modal.
func (s *Store) OpenAuthModal() {
	s.update(func(st *State) { st.AuthModalOpen = true })
}

// CloseAuthModal hides the authentication modal.
func (s *Store) CloseAuthModal() {
	s.update(func(st *State) { st.AuthModalOpen = false })
}

// Login marks the session logged in and closes the modal.
func (s *Store) Login() {
	s.update(func(st *State) {
		st.LoggedIn = true
		st.AuthModalOpen = false
	})
}

// Logout marks the session logged out and reopens the modal.
func (s *Store) Logout() {
	s.update(func(st *State) {
		st.LoggedIn = false
		st.AuthModalOpen = true
	})
}
