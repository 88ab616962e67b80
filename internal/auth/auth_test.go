package auth

import (
	"testing"

	"github.com/candytrack/candyd/internal/infra/store"
)

func TestFingerprintPIN(t *testing.T) {
	a := FingerprintPIN("1234")
	b := FingerprintPIN("1234")
	c := FingerprintPIN("4321")

	if a != b {
		t.Errorf("fingerprint not deterministic: %q vs %q", a, b)
	}
	if a == c {
		t.Errorf("different PINs collided: %q", a)
	}
	if a == "1234" {
		t.Error("fingerprint must not be the PIN itself")
	}
}

func TestVerifyWithoutPINSet(t *testing.T) {
	p := NewPIN(store.NewMem())

	if p.HasPIN() {
		t.Error("HasPIN = true on empty store")
	}
	if p.Verify("1234") {
		t.Error("Verify = true with no PIN set")
	}
}

func TestSetAndVerify(t *testing.T) {
	p := NewPIN(store.NewMem())
	p.SetPIN("1234")

	if !p.HasPIN() {
		t.Error("HasPIN = false after SetPIN")
	}
	if !p.Verify("1234") {
		t.Error("Verify(correct) = false")
	}
	if p.Verify("0000") {
		t.Error("Verify(wrong) = true")
	}
}

func TestChangePIN(t *testing.T) {
	p := NewPIN(store.NewMem())
	p.SetPIN("1234")
	p.SetPIN("5678")

	if p.Verify("1234") {
		t.Error("old PIN still verifies after change")
	}
	if !p.Verify("5678") {
		t.Error("new PIN does not verify")
	}
}

func TestValidFormat(t *testing.T) {
	tests := []struct {
		pin  string
		want bool
	}{
		{"1234", true},
		{"0000", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.pin, func(t *testing.T) {
			if got := ValidFormat(tt.pin); got != tt.want {
				t.Errorf("ValidFormat(%q) = %v, want %v", tt.pin, got, tt.want)
			}
		})
	}
}

func TestSessionRoundTrip(t *testing.T) {
	kv := store.NewMem()

	s := LoadSession(kv)
	if s.CurrentUser != "" || s.AdminUnlocked {
		t.Errorf("fresh session = %+v, want logged out", s)
	}

	s = s.Login("musa")
	if err := s.Save(kv); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := LoadSession(kv)
	if got.CurrentUser != "musa" || got.AdminUnlocked {
		t.Errorf("LoadSession = %+v, want musa without admin", got)
	}
}

func TestSessionAdminAndLogout(t *testing.T) {
	s := Session{}.LoginAdmin("bilal")
	if !s.AdminUnlocked || s.CurrentUser != "bilal" {
		t.Errorf("LoginAdmin = %+v", s)
	}

	s = s.Logout()
	if s.AdminUnlocked || s.CurrentUser != "" {
		t.Errorf("Logout = %+v, want cleared", s)
	}
}
