package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Infrastructure faults only. Rule violations travel as Result values.

var (
	ErrUnknownUser = errors.New("unknown user")
	ErrInvalidPIN  = errors.New("PIN must be exactly 4 digits")
	ErrPINNotSet   = errors.New("no admin PIN has been set")
	ErrPINMismatch = errors.New("PIN does not match")
)
