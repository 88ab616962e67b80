// Package store provides key-value persistence for ledger state.
// Values are JSON documents keyed by string; a miss or an unreadable value
// degrades to the caller's default rather than failing the operation.
package store

import "sync"

// ─── Storage Keys ───────────────────────────────────────────────────────────

const (
	// UserKeyPrefix prefixes the per-user record key.
	UserKeyPrefix = "user_"
	// PINKey stores the admin PIN fingerprint.
	PINKey = "admin_pin_hash"
	// SessionKey stores the current login session.
	SessionKey = "session"
)

// UserKey returns the storage key for a user's record.
func UserKey(userID string) string {
	return UserKeyPrefix + userID
}

// ─── KV Contract ────────────────────────────────────────────────────────────

// KV is the persistence collaborator used by every service.
//
// Get decodes the stored value into dst and reports whether anything usable
// was found. On a missing key, a decode failure, or a backend fault it
// returns false and leaves dst untouched — callers keep their defaults.
//
// Set stores the JSON encoding of v under key, replacing any prior value.
type KV interface {
	Get(key string, dst any) bool
	Set(key string, v any) error
}

// ─── In-Memory Store ────────────────────────────────────────────────────────

// Mem is an in-memory KV, used by tests and throwaway sessions.
type Mem struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMem creates an empty in-memory store.
func NewMem() *Mem {
	return &Mem{data: map[string][]byte{}}
}

// Get implements KV.
func (m *Mem) Get(key string, dst any) bool {
	m.mu.Lock()
	raw, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return false
	}
	return decodeJSON(raw, dst)
}

// Set implements KV.
func (m *Mem) Set(key string, v any) error {
	raw, err := encodeJSON(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	return nil
}
