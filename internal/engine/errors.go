package engine

import "errors"

// All engine errors are deterministic validation failures. An operation that
// returns one of these has left the match state untouched, so the caller can
// correct the request and retry safely.
var (
	ErrNotYourTurn       = errors.New("not your turn")
	ErrMatchFull         = errors.New("match is already full")
	ErrCardNotFound      = errors.New("card not found in hand")
	ErrInsufficientCash  = errors.New("not enough cash")
	ErrCardLimitReached  = errors.New("card limit reached for this turn")
	ErrAttackAlreadyUsed = errors.New("attack already used this turn")
	ErrNoGDPToAttack     = errors.New("no gdp to attack with")
	ErrMissingOpponent   = errors.New("waiting for an opponent to join")
)
