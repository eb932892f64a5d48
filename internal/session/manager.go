// Package session manages the authenticated identity. At most one user is
// logged in at a time; the identity survives restarts through the
// persistent store and is destroyed on logout.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jon4hz/productflow/internal/store"
)

// Manager holds the current session state. It is safe for concurrent use
// by HTTP handlers.
type Manager struct {
	store store.Store
	delay time.Duration

	mu   sync.RWMutex
	user *User
}

// NewManager creates a session manager backed by s and restores a
// previously persisted session if one exists. A corrupt user record is
// discarded with a logged diagnostic instead of failing startup.
func NewManager(s store.Store, loginDelay time.Duration) (*Manager, error) {
	m := &Manager{store: s, delay: loginDelay}

	raw, ok, err := s.Read(store.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("failed to load persisted session: %w", err)
	}
	if !ok {
		return m, nil
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		log.Warn("discarding corrupt session record", "error", err)
		if err := s.Delete(store.KeyUser); err != nil {
			return nil, fmt.Errorf("failed to remove corrupt session record: %w", err)
		}
		return m, nil
	}

	m.user = &user
	log.Debug("restored session", "username", user.Username, "role", user.Role)
	return m, nil
}

// Login validates the given credentials against the static credential
// table. It returns false for unknown credentials and an error only for
// unexpected internal faults. The configured delay emulates the latency
// of a real authentication backend.
func (m *Manager) Login(ctx context.Context, username, password string) (bool, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}

	user, ok := lookupCredential(username, password)
	if !ok {
		return false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.persistLocked(&user); err != nil {
		return false, err
	}
	m.user = &user
	return true, nil
}

// Logout clears the session state and removes the persisted record.
// Logging out without an active session is a no-op.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Delete(store.KeyUser); err != nil {
		return fmt.Errorf("failed to remove session record: %w", err)
	}
	m.user = nil
	return nil
}

// UpdateUser merges the given fields into the current user record and
// persists the result. Without an active session it does nothing.
func (m *Manager) UpdateUser(update Update) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return nil
	}

	merged := *m.user
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.Phone != nil {
		merged.Phone = *update.Phone
	}
	if update.Avatar != nil {
		merged.Avatar = *update.Avatar
	}

	if err := m.persistLocked(&merged); err != nil {
		return err
	}
	m.user = &merged
	return nil
}

// Current returns a copy of the authenticated user, or nil when no
// session is active.
func (m *Manager) Current() *User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.user == nil {
		return nil
	}
	user := *m.user
	return &user
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

func (m *Manager) persistLocked(user *User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := m.store.Write(store.KeyUser, string(raw)); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
