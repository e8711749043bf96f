package profile

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cardsposters/storefront/internal/logger"
)

// Store owns the current profile for the process lifetime. The state
// transition (replace the in-memory profile) is applied first; persistence is
// an explicit post-commit step, so transitions stay testable in isolation.
type Store struct {
	mu      sync.Mutex
	repo    Repository
	current *UserProfile
}

// NewStore creates a profile store over a repository. Call Load once at
// startup to restore any persisted profile.
func NewStore(repo Repository) *Store { return &Store{repo: repo} }

// Load restores the persisted profile. Absent or malformed stored data
// degrades to the absent state and never returns an error: a corrupt record
// must not take the storefront down.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.repo.Load()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("stored profile unreadable, starting without one", logger.ErrorF(err))
		}
		s.current = nil
		return
	}
	s.current = p
}

// Save validates and replaces the profile wholesale, then persists it under
// the fixed key. A blank required field rejects the whole save; the caller's
// input is never silently dropped.
func (s *Store) Save(p UserProfile) error {
	const op = "profile.Store.Save"

	required := []struct{ field, value string }{
		{"name", p.Name},
		{"department", p.Department},
		{"section", p.Section},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s: %s is required: %w", op, f.field, ErrValidation)
		}
	}

	if p.OrderHistory == nil {
		p.OrderHistory = []OrderRecord{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &p
	if err := s.repo.Save(&p); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Current returns the saved profile, or false when none exists yet.
func (s *Store) Current() (UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return UserProfile{}, false
	}
	return *s.current, true
}
