// Package session tracks the single current logged-in username.
//
// The session is one optional store record with no expiry: set on login,
// cleared on logout or when the referenced user no longer exists. All session
// reads and writes go through the Manager so no other code touches the record.
package session

import (
	"context"

	"skillconnect/internal/kv"
	"skillconnect/internal/middleware"
)

// Guest is the display name used for actions taken without a session.
const Guest = "Guest"

// Manager is the load/save boundary for the current session.
type Manager struct {
	store *kv.Store
}

// NewManager creates a session manager over the given store.
func NewManager(store *kv.Store) *Manager {
	return &Manager{store: store}
}

// Current returns the current username. The second result is false when no
// session exists; store errors degrade to "no session".
func (m *Manager) Current(ctx context.Context) (string, bool) {
	username, ok, err := m.store.Get(ctx, kv.CurrentKey)
	if err != nil {
		middleware.Logger.WarnContext(ctx, "session read failed", "error", err)
		return "", false
	}
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// SetCurrent records username as the current session.
func (m *Manager) SetCurrent(ctx context.Context, username string) error {
	return m.store.Set(ctx, kv.CurrentKey, username)
}

// Clear drops the current session.
func (m *Manager) Clear(ctx context.Context) error {
	return m.store.Delete(ctx, kv.CurrentKey)
}
