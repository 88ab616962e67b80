// Package auth holds the admin PIN gate and the login session state.
//
// The PIN is a soft parental deterrent, not a security boundary: the
// fingerprint is a deterministic non-cryptographic transform, kept cheap on
// purpose. None of the functions here ever panic or return an error to the
// caller flow — a missing or mismatched PIN simply verifies false.
package auth

import (
	"strconv"

	"github.com/candytrack/candyd/internal/infra/store"
)

// PIN gates admin operations behind a shared 4-digit code.
type PIN struct {
	kv store.KV
}

// NewPIN creates the PIN gate over the given store.
func NewPIN(kv store.KV) *PIN {
	return &PIN{kv: kv}
}

// FingerprintPIN maps a PIN to its stored form: a 31-multiplier signed
// 32-bit string hash over a salted string, rendered in base 36.
func FingerprintPIN(pin string) string {
	var h int32
	for _, c := range "candytrack_" + pin + "_ledger" {
		h = h*31 + int32(c)
	}
	return strconv.FormatInt(int64(h), 36)
}

// HasPIN reports whether an admin PIN has ever been set.
func (p *PIN) HasPIN() bool {
	var stored string
	return p.kv.Get(store.PINKey, &stored)
}

// SetPIN stores the fingerprint of the given PIN, replacing any prior one.
func (p *PIN) SetPIN(pin string) {
	_ = p.kv.Set(store.PINKey, FingerprintPIN(pin))
}

// Verify reports whether pin matches the stored fingerprint. False when no
// PIN has ever been set.
func (p *PIN) Verify(pin string) bool {
	var stored string
	if !p.kv.Get(store.PINKey, &stored) {
		return false
	}
	return FingerprintPIN(pin) == stored
}

// ValidFormat reports whether pin is exactly four ASCII digits.
func ValidFormat(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
