package permission

import (
	"sync"

	"github.com/c360/semsubject/subject"
)

// Store provides thread-safe access to a Permissions snapshot.
//
// Permission sets are intended to be built once and treated as
// immutable; "updating" means building a new set and swapping it in.
// Store guarantees readers never observe a partially-updated rule
// list: Current returns whichever complete snapshot was installed
// last, and in-flight resolutions keep using the snapshot they read.
type Store struct {
	mu    sync.RWMutex
	perms Permissions
}

// NewStore creates a store holding the given snapshot.
func NewStore(perms Permissions) *Store {
	return &Store{perms: perms}
}

// Current returns the installed snapshot.
func (s *Store) Current() Permissions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.perms
}

// Swap atomically installs a new snapshot.
func (s *Store) Swap(perms Permissions) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.perms = perms
}

// Allowed resolves against the current snapshot.
func (s *Store) Allowed(sub subject.Subject, op Operation) bool {
	return s.Current().Allowed(sub, op)
}
