package usecase

import "context"

// AccessGate decides whether a presented token authorizes continuation.
// The decision is a pure read: the gate never mutates state, and it is
// decoupled from any particular request-handling continuation mechanism.
type AccessGate interface {
	// Check returns nil when the token matches a stored identity.
	// A missing or unknown token yields the unauthorized domain error; a
	// store failure yields the distinct lookup domain error, so callers can
	// tell "credential invalid" apart from "could not check credential".
	Check(ctx context.Context, token string) error
}
