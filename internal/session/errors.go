package session

import "errors"

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMalformedCommand = errors.New("malformed command")
	ErrWrongPhase       = errors.New("not allowed in this phase")
	ErrNoShips          = errors.New("fleet has no ships")
	ErrTooManySessions  = errors.New("too many sessions")
	ErrSessionNotFound  = errors.New("session not found")
)
