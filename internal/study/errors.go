package study

import "errors"

var (
	// ErrUnknownWord means the referenced word ID has no word.
	ErrUnknownWord = errors.New("unknown word")

	// ErrSessionNotFound means the session token matches no live session.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidSessionKind means the session kind was not "new" or "review".
	ErrInvalidSessionKind = errors.New("invalid session kind")
)
