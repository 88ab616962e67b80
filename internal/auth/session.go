package auth

import "github.com/candytrack/candyd/internal/infra/store"

// Session is the explicit login context: who is using the app and whether
// the admin gate has been unlocked. It is passed to whoever needs it, loaded
// and saved at process boundaries — never ambient package state.
type Session struct {
	CurrentUser   string `json:"current_user"`
	AdminUnlocked bool   `json:"admin_unlocked"`
}

// LoadSession reads the persisted session, or a logged-out one if none.
func LoadSession(kv store.KV) Session {
	var s Session
	kv.Get(store.SessionKey, &s)
	return s
}

// Save persists the session.
func (s Session) Save(kv store.KV) error {
	return kv.Set(store.SessionKey, s)
}

// Login returns the session with the given user signed in.
func (s Session) Login(userID string) Session {
	s.CurrentUser = userID
	return s
}

// LoginAdmin returns the session with the admin gate unlocked and the admin
// user signed in.
func (s Session) LoginAdmin(adminID string) Session {
	s.AdminUnlocked = true
	s.CurrentUser = adminID
	return s
}

// Logout returns a cleared session.
func (s Session) Logout() Session {
	return Session{}
}
